// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils_test

import (
	"crypto/tls"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

func TestSanitizeReturnPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Relative path", "/gallery", "/gallery"},
		{"Path with query", "/gallery?open=2", "/gallery?open=2"},
		{"Root", "/", "/"},
		{"Empty", "", ""},
		{"Whitespace only", "  ", ""},
		{"Absolute URL", "https://evil.example/phish", ""},
		{"Scheme-relative", "//evil.example/phish", ""},
		{"No leading slash", "gallery", ""},
		{"Scheme buried in path", "/redirect?to=https://evil.example", "/redirect?to=https://evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := utils.SanitizeReturnPath(tt.input); got != tt.expected {
				t.Errorf("utils.SanitizeReturnPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetQueryParam(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/gallery?open=3&empty=", nil)

	if got := utils.GetQueryParam(r, "open"); got != "3" {
		t.Errorf(`GetQueryParam("open") = %q, want "3"`, got)
	}
	if got := utils.GetQueryParam(r, "missing"); got != "" {
		t.Errorf(`GetQueryParam("missing") = %q, want ""`, got)
	}
	if got := utils.GetQueryParam(r, "missing", "fallback"); got != "fallback" {
		t.Errorf(`GetQueryParam("missing", "fallback") = %q, want "fallback"`, got)
	}
	if got := utils.GetQueryParam(r, "empty", "fallback"); got != "fallback" {
		t.Errorf(`GetQueryParam("empty", "fallback") = %q, want "fallback"`, got)
	}
}

func TestGetFormValue(t *testing.T) {
	t.Parallel()

	form := url.Values{"language": {"he"}}
	r := httptest.NewRequest("POST", "/settings/language", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if got := utils.GetFormValue(r, "language"); got != "he" {
		t.Errorf(`GetFormValue("language") = %q, want "he"`, got)
	}
	if got := utils.GetFormValue(r, "returnPath", "/"); got != "/" {
		t.Errorf(`GetFormValue("returnPath", "/") = %q, want "/"`, got)
	}
}

func TestGetOriginFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		proto    string
		tls      bool
		expected string
	}{
		{"Plain HTTP", "", false, "http://example.com"},
		{"Forwarded proto", "https", false, "https://example.com"},
		{"TLS connection", "", true, "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "http://example.com/", nil)
			if tt.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}

			if got := utils.GetOriginFromRequest(r); got != tt.expected {
				t.Errorf("GetOriginFromRequest() = %q, want %q", got, tt.expected)
			}
		})
	}
}
