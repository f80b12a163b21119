// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ehudaviv/Ofra-CV-Site/core/content"
	"github.com/Ehudaviv/Ofra-CV-Site/core/gallery"
	"github.com/Ehudaviv/Ofra-CV-Site/core/prefs"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

// setupHandlerTest wires Deps with an in-memory renderer and a three-exhibit
// catalog, returning the i18n service for assertions.
func setupHandlerTest(t *testing.T) *i18n.Service {
	t.Helper()

	svc := i18n.New(prefs.NewMemStore(), i18n.Hebrew)
	require.NoError(t, svc.LoadTranslations(i18n.Hebrew, []byte(
		`{"gallery": {"captions": {"one": "אריגה", "two": "זיכרון"}}}`,
	)))
	require.NoError(t, svc.LoadTranslations(i18n.English, []byte(
		`{"gallery": {"captions": {"one": "Weaving", "two": "Memory"}}}`,
	)))

	fsys := fstest.MapFS{
		"templates/layout.html": {Data: []byte(
			`{{ define "layout" }}{{ template "content" . }}{{ end }}`,
		)},
		"templates/pages/gallery.html": {Data: []byte(
			`{{ define "content" }}items={{ len .Data.Items }}` +
				`{{ with .Data.Lightbox }} open={{ .Index }} prev={{ .HasPrev }} next={{ .HasNext }}{{ end }}{{ end }}`,
		)},
		"templates/pages/settings.html": {Data: []byte(
			`{{ define "content" }}active={{ .Data.Active }} captions={{ .Data.CaptionsVisible }}{{ end }}`,
		)},
	}

	renderer, err := template.NewRenderer(fsys, svc)
	require.NoError(t, err)

	exhibits := make([]gallery.Image, 0, 3)
	for _, id := range []string{"weave", "memory", "thread"} {
		exhibits = append(exhibits, gallery.Image{
			ID:         id,
			ThumbURL:   "/img/thumb/" + id + ".jpg",
			FullURL:    "/img/full/" + id + ".jpg",
			CaptionKey: "gallery.captions.one",
		})
	}

	Setup(Deps{
		I18n:     svc,
		Catalog:  &content.Catalog{Exhibits: exhibits},
		Renderer: renderer,
	})

	return svc
}

func galleryRequest(target string) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	ctx := request_context.WithRequestContext(req.Context(), req, i18n.Hebrew)

	return req.WithContext(ctx)
}

func TestGalleryPage(t *testing.T) {
	setupHandlerTest(t)

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"No open parameter", "/gallery", "items=3"},
		{"Open middle work", "/gallery?open=1", "items=3 open=1 prev=true next=true"},
		{"Open first work has no prev", "/gallery?open=0", "items=3 open=0 prev=false next=true"},
		{"Open last work has no next", "/gallery?open=2", "items=3 open=2 prev=true next=false"},
		{"Out-of-range index stays closed", "/gallery?open=99", "items=3"},
		{"Negative index stays closed", "/gallery?open=-1", "items=3"},
		{"Non-numeric index stays closed", "/gallery?open=abc", "items=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			require.NoError(t, GalleryPage(rr, galleryRequest(tt.target)))
			assert.Equal(t, tt.expected, rr.Body.String())
		})
	}
}

func settingsRequest(action string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", "/settings/"+action, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("action", action)

	ctx := request_context.WithRequestContext(req.Context(), req, i18n.Hebrew)

	return req.WithContext(ctx)
}

func TestSettingsPOSTLanguage(t *testing.T) {
	svc := setupHandlerTest(t)

	rr := httptest.NewRecorder()
	req := settingsRequest("language", url.Values{
		"language":   {"en"},
		"returnPath": {"/gallery?open=1"},
	})

	require.NoError(t, SettingsPOST(rr, req))

	assert.Equal(t, i18n.English, svc.Language())
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/gallery?open=1", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "Lang", cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
}

func TestSettingsPOSTInvalidLanguage(t *testing.T) {
	svc := setupHandlerTest(t)

	rr := httptest.NewRecorder()
	req := settingsRequest("language", url.Values{"language": {"fr"}})

	assert.ErrorIs(t, SettingsPOST(rr, req), i18n.ErrInvalidLanguage)
	assert.Equal(t, i18n.Hebrew, svc.Language())
}

func TestSettingsPOSTUnknownAction(t *testing.T) {
	setupHandlerTest(t)

	rr := httptest.NewRecorder()
	req := settingsRequest("impersonate", url.Values{})

	assert.ErrorIs(t, SettingsPOST(rr, req), errUnknownAction)
}

func TestSettingsPOSTUnsafeReturnPath(t *testing.T) {
	setupHandlerTest(t)

	rr := httptest.NewRecorder()
	req := settingsRequest("captions", url.Values{
		"visible":    {"false"},
		"returnPath": {"https://evil.example/"},
	})

	require.NoError(t, SettingsPOST(rr, req))

	// The unsafe return path is dropped; with no same-origin referrer the
	// response is a plain 200 instead of a redirect.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Location"))
}
