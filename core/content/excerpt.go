// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// excerptRuneLimit bounds the plain-text excerpt length on list pages.
const excerptRuneLimit = 240

// Excerpt reduces authored HTML to collapsed plain text, truncated to at
// most limit runes at a word boundary with a trailing ellipsis.
func Excerpt(html string, limit int) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if limit <= 0 || len([]rune(text)) <= limit {
		return text, nil
	}

	runes := []rune(text)
	cut := string(runes[:limit])

	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}

	return cut + "…", nil
}
