// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument is returned by Load when a translation document is not
// well-formed JSON.
var ErrInvalidDocument = errors.New("translation document is not valid JSON")

// Store holds one translation document per language.
//
// A document is a nested JSON object whose leaves are strings. Documents are
// loaded wholesale; a later Load for the same language replaces the previous
// document entirely, never merges into it.
type Store struct {
	mu   sync.RWMutex
	docs map[Language][]byte
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{docs: make(map[Language][]byte)}
}

// Load replaces the document stored for lang. The last call for a given
// language wins. Load is safe to call again at any time, for example when
// content is hot-reloaded.
func (st *Store) Load(lang Language, doc []byte) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidLanguage, lang)
	}

	if !gjson.ValidBytes(doc) {
		return ErrInvalidDocument
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.docs[lang] = bytes.Clone(doc)

	return nil
}

// Lookup walks the dotted key path through lang's document.
//
// It reports success only when the full path resolves to a string leaf;
// a missing segment or a non-string value is a miss. Fallback policy is the
// caller's concern.
func (st *Store) Lookup(lang Language, key string) (string, bool) {
	st.mu.RLock()
	doc := st.docs[lang]
	st.mu.RUnlock()

	if len(doc) == 0 || key == "" {
		return "", false
	}

	res := gjson.GetBytes(doc, key)
	if !res.Exists() || res.Type != gjson.String {
		return "", false
	}

	return res.String(), true
}
