// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidLanguage is returned when a caller passes anything other than
// the two supported language values.
var ErrInvalidLanguage = errors.New(`language must be "he" or "en"`)

// PrefKey is the fixed key under which the language preference is persisted.
const PrefKey = "preferred_language"

// PrefStore is the durable key-value store the Service persists the active
// language to. Persistence is best-effort: a failing store never blocks an
// in-memory language change.
type PrefStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type subscriber struct {
	id uint64
	fn func(Language)
}

// Service is the single authority for the active language, its derived text
// direction, and translation lookup.
//
// Construct with New and share one instance per composition root. All
// methods are safe for concurrent use by HTTP handlers.
type Service struct {
	store  *Store
	prefs  PrefStore
	logger zerolog.Logger

	mu      sync.Mutex
	active  Language
	subs    []subscriber
	nextSub uint64

	// missingOnce deduplicates logs for unresolvable keys.
	// The key is lang+"\x00"+key.
	missingOnce sync.Map
}

// New creates a Service whose initial language is the persisted preference,
// falling back to defaultLang when nothing valid is stored. An invalid
// defaultLang falls back to DefaultLanguage. prefs may be nil, in which case
// nothing is persisted.
func New(prefs PrefStore, defaultLang Language) *Service {
	if !defaultLang.Valid() {
		defaultLang = DefaultLanguage
	}

	svc := &Service{
		store:  NewStore(),
		prefs:  prefs,
		logger: log.With().Str("sys", "i18n").Logger(),
		active: defaultLang,
	}

	if prefs != nil {
		stored, err := prefs.Get(PrefKey)
		if err != nil {
			// Treated as "no stored preference".
			svc.logger.Warn().Err(err).Msg("Failed to read persisted language preference")
		} else if lang, ok := ParseLanguage(stored); ok {
			svc.active = lang
		}
	}

	return svc
}

// SetLanguage makes lang the active language, persists the choice, and
// synchronously notifies every subscriber before returning. Calls with the
// current language are not deduplicated: each one persists and notifies
// again. Persistence failures are logged and never propagated.
func (s *Service) SetLanguage(lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidLanguage, lang)
	}

	s.mu.Lock()
	s.active = lang
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(PrefKey, string(lang)); err != nil {
			s.logger.Warn().Err(err).Str("lang", string(lang)).Msg("Failed to persist language preference")
		}
	}

	// Registration order, each subscriber exactly once per change.
	for _, sub := range subs {
		sub.fn(lang)
	}

	return nil
}

// Language returns the active language.
func (s *Service) Language() Language {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// Direction returns the reading direction derived from the active language.
func (s *Service) Direction() Direction {
	return s.Language().Direction()
}

// LoadTranslations replaces the translation document for lang wholesale.
func (s *Service) LoadTranslations(lang Language, doc []byte) error {
	return s.store.Load(lang, doc)
}

// Subscribe registers fn to be called on every language change and returns
// the matching unsubscribe function. Unsubscribing is idempotent and removes
// exactly this registration.
func (s *Service) Subscribe(fn func(Language)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = slices.Delete(s.subs, i, i+1)

				break
			}
		}
	}
}

// Translate resolves key in the active language. See TranslateIn.
func (s *Service) Translate(key string, kv ...any) string {
	return s.TranslateIn(s.Language(), key, kv...)
}

// TranslateIn resolves a dotted key in lang's document. On any miss the
// lookup restarts once from the English document using the full original
// key; a key absent from both documents is returned verbatim. Optional
// key-value pairs fill {{name}} placeholders in the resolved string;
// unmatched placeholders are left intact. TranslateIn never fails and never
// returns an empty string for a non-empty key.
func (s *Service) TranslateIn(lang Language, key string, kv ...any) string {
	if !lang.Valid() {
		lang = s.Language()
	}

	text, found := s.store.Lookup(lang, key)
	if !found {
		text, found = s.store.Lookup(English, key)
	}

	if !found {
		s.logMissingOnce(lang, key)

		text = key
	}

	return interpolate(text, v(kv...))
}

// logMissingOnce logs an unresolvable key once per (language, key) pair.
func (s *Service) logMissingOnce(lang Language, key string) {
	id := string(lang) + "\x00" + key
	if _, loaded := s.missingOnce.LoadOrStore(id, struct{}{}); !loaded {
		s.logger.Debug().
			Str("lang", string(lang)).
			Str("key", key).
			Msg("Missing translation key")
	}
}
