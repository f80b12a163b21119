// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
)

func testI18n(t *testing.T) *i18n.Service {
	t.Helper()

	svc := i18n.New(nil, i18n.Hebrew)

	require.NoError(t, svc.LoadTranslations(i18n.Hebrew, []byte(`{
		"gallery": {"captions": {"one": "עבודה ראשונה"}}
	}`)))
	require.NoError(t, svc.LoadTranslations(i18n.English, []byte(`{
		"gallery": {"captions": {"one": "First work", "two": "Second work"}}
	}`)))

	return svc
}

func testImages(n int) []Image {
	images := make([]Image, 0, n)

	for i := range n {
		images = append(images, Image{
			ID:         fmt.Sprintf("work-%d", i),
			ThumbURL:   fmt.Sprintf("/img/thumb/work-%d.jpg", i),
			FullURL:    fmt.Sprintf("/img/full/work-%d.jpg", i),
			CaptionKey: "gallery.captions.one",
		})
	}

	return images
}

func TestGalleryOpenBounds(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})
	g.SetImages(testImages(3))

	assert.False(t, g.Open(-1))
	assert.False(t, g.Open(3))

	_, open := g.Selected()
	assert.False(t, open)

	assert.True(t, g.Open(2))

	idx, open := g.Selected()
	assert.True(t, open)
	assert.Equal(t, 2, idx)
}

func TestGalleryEmptyCannotOpen(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})

	assert.Equal(t, 0, g.Len())
	assert.False(t, g.Open(0))
	assert.False(t, g.HandleKey(KeyEscape))
}

func TestGalleryNavigationClamps(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})
	g.SetImages(testImages(3))

	require.True(t, g.Open(0))
	assert.False(t, g.CanPrev())
	assert.True(t, g.CanNext())

	// Prev at the first image stays put; no wraparound.
	g.Prev()

	idx, _ := g.Selected()
	assert.Equal(t, 0, idx)

	g.Next()
	g.Next()
	assert.False(t, g.CanNext())

	// Next at the last image stays put.
	g.Next()

	idx, _ = g.Selected()
	assert.Equal(t, 2, idx)
}

func TestGalleryKeyboardScenario(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})
	g.SetImages(testImages(3))

	// Keys do nothing while the lightbox is closed.
	assert.False(t, g.HandleKey(KeyArrowRight))

	require.True(t, g.Open(0))

	// Three ArrowRight presses from the first of three images: the third
	// clamps at the end.
	assert.True(t, g.HandleKey(KeyArrowRight))
	assert.True(t, g.HandleKey(KeyArrowRight))
	assert.True(t, g.HandleKey(KeyArrowRight))

	idx, open := g.Selected()
	assert.True(t, open)
	assert.Equal(t, 2, idx)

	// Escape closes; afterwards keys are ignored again.
	assert.True(t, g.HandleKey(KeyEscape))

	_, open = g.Selected()
	assert.False(t, open)
	assert.False(t, g.HandleKey(KeyArrowLeft))

	// Unknown keys are never consumed.
	require.True(t, g.Open(1))
	assert.False(t, g.HandleKey("Enter"))
}

func TestGalleryPerImageIndependence(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})
	g.SetImages(testImages(3))

	// All images started loading immediately (nil detector fails open).
	for i := range 3 {
		assert.Equal(t, StateLoading, g.Item(fmt.Sprintf("work-%d", i)).State())
	}

	assert.True(t, g.FinishLoad("work-0", nil))
	assert.True(t, g.FinishLoad("work-1", errors.New("truncated")))

	assert.Equal(t, StateLoaded, g.Item("work-0").State())
	assert.Equal(t, StateErrored, g.Item("work-1").State())
	assert.Equal(t, StateLoading, g.Item("work-2").State())

	assert.False(t, g.FinishLoad("unknown", nil))
}

func TestGallerySetImagesReseeds(t *testing.T) {
	det := &fakeDetector{}

	g := New(testI18n(t), det, ObserverConfig{})
	g.SetImages(testImages(2))

	require.True(t, g.Open(1))

	// Load the first image, then install a fresh list.
	det.reports[0](true)
	require.True(t, g.FinishLoad("work-0", nil))

	g.SetImages(testImages(2))

	// Old observers were released, state starts over, lightbox is closed.
	assert.Equal(t, 2, det.released)
	assert.Equal(t, StateIdle, g.Item("work-0").State())

	_, open := g.Selected()
	assert.False(t, open)
}

func TestGalleryCaptionsAndLabels(t *testing.T) {
	g := New(testI18n(t), nil, ObserverConfig{})

	images := testImages(2)
	images[1].CaptionKey = "gallery.captions.two"
	images[1].Alt = "Detail of the second work"
	g.SetImages(images)

	assert.Equal(t, "עבודה ראשונה", g.Caption(i18n.Hebrew, 0))

	// Hebrew document lacks this key; English fills in.
	assert.Equal(t, "Second work", g.Caption(i18n.Hebrew, 1))

	// Alt text wins over the translated caption for the label.
	assert.Equal(t, "עבודה ראשונה", g.AriaLabel(i18n.Hebrew, 0))
	assert.Equal(t, "Detail of the second work", g.AriaLabel(i18n.Hebrew, 1))

	assert.Equal(t, "", g.Caption(i18n.Hebrew, 5))
}
