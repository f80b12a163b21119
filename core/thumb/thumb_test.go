// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package thumb

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestImage produces an encoded JPEG of the given dimensions.
func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 120, G: 90, B: 60, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))

	return buf.Bytes()
}

func testService(t *testing.T) *Service {
	t.Helper()

	fsys := fstest.MapFS{
		"loom.jpg": {Data: encodeTestImage(t, 800, 600)},
	}

	svc, err := New(fsys, 8)
	require.NoError(t, err)

	return svc
}

func TestRenderScalesToWidth(t *testing.T) {
	svc := testService(t)

	data, err := svc.Render("loom.jpg", 200)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 150, bounds.Dy(), "aspect ratio preserved")
}

func TestRenderCaches(t *testing.T) {
	svc := testService(t)

	first, err := svc.Render("loom.jpg", 200)
	require.NoError(t, err)

	second, err := svc.Render("loom.jpg", 200)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, svc.cache.Len())

	// A different width is a distinct cache entry.
	_, err = svc.Render("loom.jpg", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.cache.Len())
}

func TestRenderLeadingSlash(t *testing.T) {
	svc := testService(t)

	_, err := svc.Render("/loom.jpg", 200)
	require.NoError(t, err)
}

func TestRenderRejectsTraversal(t *testing.T) {
	svc := testService(t)

	for _, name := range []string{"..", "../secret.jpg", "a/../../b.jpg"} {
		_, err := svc.Render(name, 200)
		assert.Error(t, err, "expected %q to be rejected", name)
	}
}

func TestRenderMissingOriginal(t *testing.T) {
	svc := testService(t)

	_, err := svc.Render("absent.jpg", 200)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenderInvalidWidth(t *testing.T) {
	svc := testService(t)

	_, err := svc.Render("loom.jpg", 0)
	assert.Error(t, err)
}

func TestPrewarm(t *testing.T) {
	svc := testService(t)

	// Missing names are logged, not fatal.
	svc.Prewarm(t.Context(), []string{"loom.jpg", "absent.jpg"}, 200)

	assert.Equal(t, 1, svc.cache.Len())
}
