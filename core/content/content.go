// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package content supplies the descriptor lists the pages render: the gallery
exhibits and the academic articles. Descriptors are data, not logic; the
provider reads them from bundled YAML and does not check that the referenced
image or document files exist.
*/
package content

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	"github.com/Ehudaviv/Ofra-CV-Site/core/gallery"
)

const (
	exhibitsPath = "content/exhibits.yaml"
	articlesPath = "content/articles.yaml"
)

var errDuplicateExhibitID = errors.New("duplicate exhibit id")

// Article describes one academic article available in the document viewer.
type Article struct {
	// ID is the URL slug of the article page.
	ID string `yaml:"id"`

	// TitleKey is the dotted translation key for the title.
	TitleKey string `yaml:"titleKey"`

	// File is the document path served under /docs/.
	File string `yaml:"file"`

	// Year of publication, shown on the list page.
	Year int `yaml:"year"`

	// AbstractHTML is the authored abstract markup.
	AbstractHTML string `yaml:"abstract"`

	// Excerpt is the plain-text reduction of AbstractHTML, derived at load
	// time for the list page.
	Excerpt string `yaml:"-"`
}

// Catalog holds every descriptor list the site renders.
type Catalog struct {
	Exhibits []gallery.Image `yaml:"exhibits"`
	Articles []Article       `yaml:"articles"`
}

// Provider loads the catalog from a filesystem, typically the embedded
// assets.
type Provider struct {
	fsys fs.FS
}

// NewProvider returns a Provider reading from fsys.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys}
}

// Load reads and validates both descriptor lists. Any failure is returned
// as a whole-list error; callers must not render a partial catalog.
func (p *Provider) Load() (*Catalog, error) {
	var (
		catalog  Catalog
		group    errgroup.Group
		exhibits struct {
			Exhibits []gallery.Image `yaml:"exhibits"`
		}
		articles struct {
			Articles []Article `yaml:"articles"`
		}
	)

	group.Go(func() error {
		return p.readYAML(exhibitsPath, &exhibits)
	})

	group.Go(func() error {
		return p.readYAML(articlesPath, &articles)
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	catalog.Exhibits = exhibits.Exhibits
	catalog.Articles = articles.Articles

	if err := validateExhibits(catalog.Exhibits); err != nil {
		return nil, err
	}

	for i := range catalog.Articles {
		excerpt, err := Excerpt(catalog.Articles[i].AbstractHTML, excerptRuneLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to derive excerpt for article %q: %w", catalog.Articles[i].ID, err)
		}

		catalog.Articles[i].Excerpt = excerpt
	}

	return &catalog, nil
}

// Article returns the article with the given id.
func (c *Catalog) Article(id string) (Article, bool) {
	for _, a := range c.Articles {
		if a.ID == id {
			return a, true
		}
	}

	return Article{}, false
}

func (p *Provider) readYAML(path string, out any) error {
	data, err := fs.ReadFile(p.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

func validateExhibits(exhibits []gallery.Image) error {
	seen := make(map[string]bool, len(exhibits))

	for _, img := range exhibits {
		if img.ID == "" {
			return errors.New("exhibit with empty id")
		}

		if seen[img.ID] {
			return fmt.Errorf("%w: %q", errDuplicateExhibitID, img.ID)
		}

		seen[img.ID] = true
	}

	return nil
}
