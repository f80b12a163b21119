// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/Ehudaviv/Ofra-CV-Site/core/cookie"
	"github.com/Ehudaviv/Ofra-CV-Site/core/untrusted"
)

type contextKeyType struct{}

var langKey = contextKeyType{}

// LangParam is the name of the URL query parameter used to override the UI
// language for a single request. The cookie counterpart is [cookie.LangCookie].
const LangParam = "lang"

// WithLang stores lang in ctx and returns the derived context.
//
// The returned context should be passed to downstream code that renders
// translated text. The ctx must not be nil.
func WithLang(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, langKey, lang)
}

// LangFrom returns the language stored in ctx, or DefaultLanguage if none
// is present. It never returns an invalid language.
func LangFrom(ctx context.Context) Language {
	if ctx != nil {
		if lang, _ := ctx.Value(langKey).(Language); lang.Valid() {
			return lang
		}
	}

	return DefaultLanguage
}

// FromRequest returns the best language for r by inspecting user
// preferences in priority order:
//  1. query parameter [LangParam]
//  2. cookie [cookie.LangCookie]
//  3. Accept-Language header
//
// Anything that is not exactly "he" or "en" at steps 1 and 2 is ignored.
// If r is nil or nothing matches, fallback is returned (or DefaultLanguage
// when fallback itself is invalid).
func FromRequest(r *http.Request, fallback Language) Language {
	if !fallback.Valid() {
		fallback = DefaultLanguage
	}

	if r == nil {
		return fallback
	}

	if lang, ok := ParseLanguage(r.URL.Query().Get(LangParam)); ok {
		return lang
	}

	if lang, ok := ParseLanguage(untrusted.GetCookie(r, cookie.LangCookie)); ok {
		return lang
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		tags := []language.Tag{language.Hebrew, language.English}
		if fallback == English {
			tags = []language.Tag{language.English, language.Hebrew}
		}

		matched, _ := language.MatchStrings(language.NewMatcher(tags), al)
		if base, _ := matched.Base(); base.String() == "en" {
			return English
		}

		return Hebrew
	}

	return fallback
}

// WithRequest resolves the language from r using [FromRequest] and installs
// it in the returned context. The ctx must not be nil.
func WithRequest(ctx context.Context, r *http.Request, fallback Language) context.Context {
	return WithLang(ctx, FromRequest(r, fallback))
}
