// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS(exhibits, articles string) fstest.MapFS {
	return fstest.MapFS{
		"content/exhibits.yaml": {Data: []byte(exhibits)},
		"content/articles.yaml": {Data: []byte(articles)},
	}
}

const validExhibits = `
exhibits:
  - id: loom
    thumb: /img/thumb/loom.jpg
    full: /img/full/loom.jpg
    captionKey: gallery.captions.loom
  - id: thread
    thumb: /img/thumb/thread.jpg
    full: /img/full/thread.jpg
    captionKey: gallery.captions.thread
    alt: A red thread
`

const validArticles = `
articles:
  - id: memory
    titleKey: articles.titles.memory
    file: memory.pdf
    year: 2020
    abstract: "<p>Weaving predates <em>writing</em> as a   way of fixing memory.</p>"
`

func TestProviderLoad(t *testing.T) {
	catalog, err := NewProvider(testFS(validExhibits, validArticles)).Load()
	require.NoError(t, err)

	require.Len(t, catalog.Exhibits, 2)
	assert.Equal(t, "loom", catalog.Exhibits[0].ID)
	assert.Equal(t, "/img/thumb/loom.jpg", catalog.Exhibits[0].ThumbURL)
	assert.Equal(t, "A red thread", catalog.Exhibits[1].Alt)

	require.Len(t, catalog.Articles, 1)
	article := catalog.Articles[0]
	assert.Equal(t, 2020, article.Year)

	// The excerpt is derived plain text with collapsed whitespace.
	assert.Equal(t, "Weaving predates writing as a way of fixing memory.", article.Excerpt)
}

func TestProviderRejectsDuplicateIDs(t *testing.T) {
	dup := `
exhibits:
  - id: loom
    thumb: /a.jpg
    full: /b.jpg
    captionKey: k
  - id: loom
    thumb: /c.jpg
    full: /d.jpg
    captionKey: k2
`

	_, err := NewProvider(testFS(dup, validArticles)).Load()
	assert.Error(t, err)
}

func TestProviderMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"content/exhibits.yaml": {Data: []byte(validExhibits)},
	}

	_, err := NewProvider(fsys).Load()
	assert.Error(t, err)
}

func TestCatalogArticle(t *testing.T) {
	catalog, err := NewProvider(testFS(validExhibits, validArticles)).Load()
	require.NoError(t, err)

	article, ok := catalog.Article("memory")
	assert.True(t, ok)
	assert.Equal(t, "articles.titles.memory", article.TitleKey)

	_, ok = catalog.Article("absent")
	assert.False(t, ok)
}
