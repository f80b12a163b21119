// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"github.com/Ehudaviv/Ofra-CV-Site/core/cookie"
	"github.com/Ehudaviv/Ofra-CV-Site/core/untrusted"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

var errUnknownAction = errors.New("no such setting is available")

// SettingsData is the data for the settings page.
type SettingsData struct {
	Active          i18n.Language
	Languages       []i18n.Language
	CaptionsVisible bool
}

// SettingsPage is the handler for the /settings page.
func SettingsPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")

	rc := request_context.FromRequest(r)

	pageData := SettingsData{
		Active:          rc.Lang,
		Languages:       i18n.Languages(),
		CaptionsVisible: rc.CommonData.CaptionsVisible,
	}

	return deps.Renderer.Render(w, r, "settings", template.TemplateData{
		Title: "settings.title",
		Data:  pageData,
	})
}

var actions = map[string]func(http.ResponseWriter, *http.Request) error{
	"language":  setLanguage,
	"captions":  setCaptions,
	"reset_all": resetAll,
}

// SettingsPOST dispatches POST /settings/{action} to the matching action.
func SettingsPOST(w http.ResponseWriter, r *http.Request) error {
	action, ok := actions[utils.GetPathVar(r, "action")]
	if !ok {
		return errUnknownAction
	}

	if err := action(w, r); err != nil {
		return err
	}

	utils.RedirectToWhenceYouCame(w, r, utils.SanitizeReturnPath(r.FormValue("returnPath")))

	return nil
}

// setLanguage switches the site language.
//
// The service persists the choice server-side and notifies subscribers; the
// cookie makes the choice stick per-browser so concurrent visitors don't
// fight over one preference.
func setLanguage(w http.ResponseWriter, r *http.Request) error {
	lang, ok := i18n.ParseLanguage(utils.GetFormValue(r, "language"))
	if !ok {
		return i18n.ErrInvalidLanguage
	}

	if err := deps.I18n.SetLanguage(lang); err != nil {
		return err
	}

	untrusted.SetCookie(w, r, cookie.LangCookie, string(lang))

	return nil
}

// setCaptions toggles gallery caption visibility.
func setCaptions(w http.ResponseWriter, r *http.Request) error {
	if utils.GetFormValue(r, "visible") == "false" {
		untrusted.SetCookie(w, r, cookie.CaptionsVisibleCookie, "false")
	} else {
		untrusted.SetCookie(w, r, cookie.CaptionsVisibleCookie, "true")
	}

	return nil
}

func resetAll(w http.ResponseWriter, r *http.Request) error {
	// Clear-Site-Data header with wildcard to clear everything
	w.Header().Set("Clear-Site-Data", "*")

	// Cookie clearing as fallback
	untrusted.ClearAllCookies(w, r)

	return nil
}
