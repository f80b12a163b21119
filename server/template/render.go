// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package template renders the site's HTML pages.

Templates are parsed once at startup from the embedded assets and looked up
by page name. Every page executes inside the shared layout, which sets the
document language and text direction from the request.
*/
package template

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template/commondata"
)

// Renderer handles template rendering with per-page parsed template sets.
type Renderer struct {
	templates map[string]*template.Template
	svc       *i18n.Service
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title string
	Lang  i18n.Language
	Dir   i18n.Direction

	CommonData commondata.PageCommonData

	Data any
}

const (
	layoutPath   = "templates/layout.html"
	partialsDir  = "templates/partials"
	pagesDir     = "templates/pages"
	layoutName   = "layout"
	templateExt  = ".html"
)

// NewRenderer parses all page templates from the filesystem.
func NewRenderer(templatesFS fs.FS, svc *i18n.Service) (*Renderer, error) {
	rnd := &Renderer{
		templates: make(map[string]*template.Template),
		svc:       svc,
	}

	partials, err := templateFiles(templatesFS, partialsDir)
	if err != nil {
		return nil, fmt.Errorf("listing partials: %w", err)
	}

	pages, err := templateFiles(templatesFS, pagesDir)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	for _, pagePath := range pages {
		name := strings.TrimSuffix(path.Base(pagePath), templateExt)

		// Parse in order: layout, partials, page template.
		files := []string{layoutPath}
		files = append(files, partials...)
		files = append(files, pagePath)

		tmpl, err := template.New("").Funcs(rnd.funcs()).ParseFS(templatesFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}

		rnd.templates[name] = tmpl
	}

	return rnd, nil
}

// templateFiles returns all .html files directly inside dir.
func templateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		// Directory might not exist, that's ok
		return nil, nil
	}

	var files []string

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), templateExt) {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// funcs returns the functions available inside templates.
//
// Translation functions take the display language explicitly so that a single
// parsed template set serves both languages.
func (rnd *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"tr": func(lang i18n.Language, key string, kv ...any) string {
			return rnd.svc.TranslateIn(lang, key, kv...)
		},
		"dir": func(lang i18n.Language) string {
			return string(lang.Direction())
		},
		"otherLang": func(lang i18n.Language) i18n.Language {
			if lang == i18n.Hebrew {
				return i18n.English
			}

			return i18n.Hebrew
		},
		"dict": func(kv ...any) (map[string]any, error) {
			if len(kv)%2 != 0 {
				return nil, fmt.Errorf("dict: odd argument count %d", len(kv))
			}

			m := make(map[string]any, len(kv)/2)

			for i := 0; i < len(kv); i += 2 {
				key, ok := kv[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
				}

				m[key] = kv[i+1]
			}

			return m, nil
		},
		"safe": func(s string) template.HTML {
			return template.HTML(s) // #nosec:G203 -- only trusted article markup reaches this
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"version": func() string {
			return config.BuildVersion
		},
		"revision": func() string {
			return config.Global.Build.Revision()
		},
	}
}

// Render executes the named page inside the shared layout and writes it to w.
//
// The display language and direction are resolved from the request context
// unless the caller set them on data explicitly.
func (rnd *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data TemplateData) error {
	tmpl, ok := rnd.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	rc := request_context.FromRequest(r)

	if data.Lang == "" {
		data.Lang = rc.Lang
	}

	data.Dir = data.Lang.Direction()
	data.CommonData = rc.CommonData

	// Render to buffer first to catch errors.
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, layoutName, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err := buf.WriteTo(w)

	return err
}
