// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeLength(t *testing.T) {
	id := Make()
	// 6 time digits + 4 base64 chars for 3 bytes of entropy
	assert.Len(t, id, 10)
}

func TestMakeUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		seen[Make()] = true
	}

	assert.Greater(t, len(seen), 1, "expect entropy to vary between calls")
}
