// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testImage = Image{
	ID:         "loom",
	ThumbURL:   "/img/thumb/loom.jpg",
	FullURL:    "/img/full/loom.jpg",
	CaptionKey: "gallery.captions.loom",
	Alt:        "A loom",
}

func TestLazyImageLoadsOnFirstVisibility(t *testing.T) {
	det := &fakeDetector{}

	li := NewLazyImage(testImage, det, ObserverConfig{}, Hooks{})
	assert.Equal(t, StateIdle, li.State())

	report := det.reports[0]

	report(true)
	assert.Equal(t, StateLoading, li.State())

	// Visibility changes after the load started are irrelevant.
	report(false)
	report(true)
	assert.Equal(t, StateLoading, li.State())
}

func TestLazyImageImmediateLoadWithoutDetector(t *testing.T) {
	li := NewLazyImage(testImage, nil, ObserverConfig{}, Hooks{})

	assert.Equal(t, StateLoading, li.State())
}

func TestLazyImageTerminalStates(t *testing.T) {
	loads, errs := 0, 0
	hooks := Hooks{OnLoad: func() { loads++ }, OnError: func() { errs++ }}

	li := NewLazyImage(testImage, nil, ObserverConfig{}, hooks)

	li.FinishLoad(nil)
	assert.Equal(t, StateLoaded, li.State())
	assert.Equal(t, 1, loads)

	// Terminal: a late failure report changes nothing.
	li.FinishLoad(errors.New("timeout"))
	assert.Equal(t, StateLoaded, li.State())
	assert.Equal(t, 1, loads)
	assert.Equal(t, 0, errs)
}

func TestLazyImageErrorIsTerminal(t *testing.T) {
	errs := 0

	li := NewLazyImage(testImage, nil, ObserverConfig{}, Hooks{OnError: func() { errs++ }})

	li.FinishLoad(errors.New("404"))
	assert.Equal(t, StateErrored, li.State())

	li.FinishLoad(nil)
	assert.Equal(t, StateErrored, li.State())
	assert.Equal(t, 1, errs)
}

func TestLazyImageFinishBeforeVisibilityIgnored(t *testing.T) {
	det := &fakeDetector{}

	li := NewLazyImage(testImage, det, ObserverConfig{}, Hooks{})

	// The image is still idle; a completion report makes no sense yet.
	li.FinishLoad(nil)
	assert.Equal(t, StateIdle, li.State())
}

func TestLazyImageView(t *testing.T) {
	det := &fakeDetector{}

	li := NewLazyImage(testImage, det, ObserverConfig{}, Hooks{})

	view := li.View()
	assert.Equal(t, "status", view.Role)
	assert.True(t, view.Placeholder)

	det.reports[0](true)
	li.FinishLoad(nil)

	view = li.View()
	assert.Equal(t, "img", view.Role)
	assert.Equal(t, testImage.ThumbURL, view.URL)
	assert.False(t, view.Placeholder)

	li2 := NewLazyImage(testImage, nil, ObserverConfig{}, Hooks{})
	li2.FinishLoad(errors.New("boom"))

	view = li2.View()
	assert.Equal(t, "img", view.Role)
	assert.Equal(t, testImage.Alt, view.Label)
	assert.True(t, view.Placeholder)
}
