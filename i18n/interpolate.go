// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"strings"
)

// Vars holds named values for {{name}} placeholders.
type Vars map[string]any

// interpolate replaces every {{name}} occurrence in s with the matching
// value from data. Placeholders without a matching entry are left intact.
func interpolate(s string, data Vars) string {
	if len(data) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	for name, value := range data {
		s = strings.ReplaceAll(s, "{{"+name+"}}", stringify(value))
	}

	return s
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n.v: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("i18n.v: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
