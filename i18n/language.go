// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// Language is one of the two UI languages of the site.
type Language string

const (
	Hebrew  Language = "he"
	English Language = "en"
)

// DefaultLanguage is used when no preference is persisted and the caller
// supplied no fallback of its own.
const DefaultLanguage = Hebrew

// Direction is a reading direction derived from a Language.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// Valid reports whether l is one of the two supported languages.
func (l Language) Valid() bool {
	return l == Hebrew || l == English
}

// Direction returns the reading direction for l. Direction is a pure
// function of language; the two can never disagree.
func (l Language) Direction() Direction {
	if l == Hebrew {
		return RTL
	}

	return LTR
}

// ParseLanguage converts s to a Language, rejecting anything that is not
// exactly "he" or "en".
func ParseLanguage(s string) (Language, bool) {
	l := Language(s)
	if l.Valid() {
		return l, true
	}

	return "", false
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{Hebrew, English}
}
