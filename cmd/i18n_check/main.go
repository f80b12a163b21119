// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_check verifies that every translation key referenced from Go
// sources or HTML templates resolves in every locale document.
//
// Keys reach translations through two call shapes:
//
//	svc.Translate("dotted.key", ...)
//	svc.TranslateIn(lang, "dotted.key", ...)
//
// and through the tr template function. Keys built at runtime (non-constant
// arguments) can't be checked statically and are skipped.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/tools/go/packages"
)

// trTemplateRegexp matches string-literal keys passed to the tr template
// function, e.g. {{ tr .Lang "nav.gallery" }}.
var trTemplateRegexp = regexp.MustCompile(`\btr\s+[$.]\w*\.?\w*\s+"([^"]+)"`)

func main() {
	localesDir := flag.String("locales", "assets/locales", "directory of locale JSON documents")
	templatesDir := flag.String("templates", "assets/templates", "directory of HTML templates")
	flag.Parse()

	keys := map[string][]string{}

	if err := collectGoKeys(keys); err != nil {
		log.Fatalf("failed to scan Go sources: %v", err)
	}

	if err := collectTemplateKeys(*templatesDir, keys); err != nil {
		log.Fatalf("failed to scan templates: %v", err)
	}

	locales, err := loadLocales(*localesDir)
	if err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}

	missing := 0

	for _, key := range sortedKeys(keys) {
		for _, locale := range locales {
			if result := gjson.GetBytes(locale.doc, key); result.Type == gjson.String {
				continue
			}

			missing++

			fmt.Fprintf(os.Stderr, "%s: missing in %s (referenced at %s)\n",
				key, locale.name, strings.Join(keys[key], ", "))
		}
	}

	if missing > 0 {
		os.Exit(1)
	}
}

type locale struct {
	name string
	doc  []byte
}

// loadLocales reads every .json document in dir.
func loadLocales(dir string) ([]locale, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var locales []locale

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		doc, err := os.ReadFile(filepath.Join(dir, entry.Name())) // #nosec:G304
		if err != nil {
			return nil, err
		}

		if !gjson.ValidBytes(doc) {
			return nil, fmt.Errorf("%s is not valid JSON", entry.Name())
		}

		locales = append(locales, locale{name: entry.Name(), doc: doc})
	}

	return locales, nil
}

// collectGoKeys scans all buildable packages for constant keys passed to
// Translate and TranslateIn.
func collectGoKeys(keys map[string][]string) error {
	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		return err
	}

	if packages.PrintErrors(pkgs) > 0 {
		return fmt.Errorf("packages loaded with errors")
	}

	for _, pkg := range pkgs {
		for i, file := range pkg.Syntax {
			filename := filepath.Base(pkg.CompiledGoFiles[i])

			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				if key, ok := translateKey(pkg.TypesInfo, call); ok {
					pos := pkg.Fset.Position(call.Pos())
					keys[key] = append(keys[key], fmt.Sprintf("%s:%d", filename, pos.Line))
				}

				return true
			})
		}
	}

	return nil
}

// translateKey returns the constant key argument of a Translate or
// TranslateIn call, if the call has one.
func translateKey(info *types.Info, call *ast.CallExpr) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	var keyArg ast.Expr

	switch sel.Sel.Name {
	case "Translate":
		if len(call.Args) < 1 {
			return "", false
		}

		keyArg = call.Args[0]
	case "TranslateIn":
		if len(call.Args) < 2 {
			return "", false
		}

		keyArg = call.Args[1]
	default:
		return "", false
	}

	tv, ok := info.Types[keyArg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// collectTemplateKeys scans HTML templates for tr calls with literal keys.
func collectTemplateKeys(dir string, keys map[string][]string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".html") {
			return err
		}

		data, err := os.ReadFile(path) // #nosec:G304
		if err != nil {
			return err
		}

		for _, match := range trTemplateRegexp.FindAllStringSubmatch(string(data), -1) {
			keys[match[1]] = append(keys[match[1]], filepath.Base(path))
		}

		return nil
	})
}

func sortedKeys(keys map[string][]string) []string {
	out := make([]string, 0, len(keys))
	for key := range keys {
		out = append(out, key)
	}

	sort.Strings(out)

	return out
}
