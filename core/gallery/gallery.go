// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

import (
	"slices"
	"sync"

	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
)

// Key names of the lightbox keyboard contract. Bindings are active only
// while the lightbox is open.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Gallery renders a grid of lazily loaded thumbnails and owns the lightbox
// overlay state for the full-resolution sequence.
//
// Lightbox state is either closed, or open at an index that is always valid
// for the current image list. Navigation clamps at both ends; there is no
// wraparound.
type Gallery struct {
	svc *i18n.Service
	det Detector
	cfg ObserverConfig

	mu       sync.Mutex
	images   []Image
	items    map[string]*LazyImage
	open     bool
	selected int
}

// New creates an empty gallery. svc resolves captions; det may be nil, in
// which case every image counts as visible immediately.
func New(svc *i18n.Service, det Detector, cfg ObserverConfig) *Gallery {
	return &Gallery{
		svc:   svc,
		det:   det,
		cfg:   cfg,
		items: make(map[string]*LazyImage),
	}
}

// SetImages installs a fresh descriptor list. Per-image state is reseeded
// for every entry: previous observers are released and each image starts
// from its initial loading placeholder. The input slice is copied, never
// mutated. Installing a new list also closes the lightbox, since indices
// into the old sequence are meaningless against the new one.
func (g *Gallery) SetImages(images []Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, item := range g.items {
		item.Release()
	}

	g.images = slices.Clone(images)
	g.items = make(map[string]*LazyImage, len(images))

	for _, img := range g.images {
		g.items[img.ID] = NewLazyImage(img, g.det, g.cfg, Hooks{})
	}

	g.open = false
	g.selected = 0
}

// Images returns a copy of the current descriptor list.
func (g *Gallery) Images() []Image {
	g.mu.Lock()
	defer g.mu.Unlock()

	return slices.Clone(g.images)
}

// Len returns the number of images.
func (g *Gallery) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.images)
}

// Item returns the per-image state machine for id, or nil for an unknown id.
func (g *Gallery) Item(id string) *LazyImage {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.items[id]
}

// FinishLoad records a fetch outcome for the image with the given id.
// Outcomes are independent per image: one image erroring never affects its
// siblings. It reports whether the id was known.
func (g *Gallery) FinishLoad(id string, err error) bool {
	g.mu.Lock()
	item := g.items[id]
	g.mu.Unlock()

	if item == nil {
		return false
	}

	item.FinishLoad(err)

	return true
}

// Open transitions the lightbox from closed to open at index i. Out-of-range
// indices, including any index against an empty gallery, are rejected.
func (g *Gallery) Open(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.images) {
		return false
	}

	g.open = true
	g.selected = i

	return true
}

// Close transitions the lightbox to closed and clears the selected index.
func (g *Gallery) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.open = false
	g.selected = 0
}

// Selected returns the open image index. The second result is false while
// the lightbox is closed.
func (g *Gallery) Selected() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return 0, false
	}

	return g.selected, true
}

// Next advances to the following image. At the last image it is a no-op.
func (g *Gallery) Next() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open && g.selected+1 < len(g.images) {
		g.selected++
	}
}

// Prev retreats to the preceding image. At the first image it is a no-op.
func (g *Gallery) Prev() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open && g.selected-1 >= 0 {
		g.selected--
	}
}

// CanNext reports whether the "next" control is enabled.
func (g *Gallery) CanNext() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.open && g.selected+1 < len(g.images)
}

// CanPrev reports whether the "previous" control is enabled.
func (g *Gallery) CanPrev() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.open && g.selected > 0
}

// HandleKey applies the lightbox keyboard contract: Escape closes,
// ArrowLeft goes to the previous image, ArrowRight to the next. It reports
// whether the key was consumed; while the lightbox is closed no key is.
func (g *Gallery) HandleKey(key string) bool {
	g.mu.Lock()
	open := g.open
	g.mu.Unlock()

	if !open {
		return false
	}

	switch key {
	case KeyEscape:
		g.Close()
	case KeyArrowLeft:
		g.Prev()
	case KeyArrowRight:
		g.Next()
	default:
		return false
	}

	return true
}

// Caption resolves the caption of the image at index i in lang.
func (g *Gallery) Caption(lang i18n.Language, i int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.images) {
		return ""
	}

	return g.svc.TranslateIn(lang, g.images[i].CaptionKey)
}

// AriaLabel returns the assistive-technology label for the image at index
// i: the descriptor's fallback text when present, otherwise the translated
// caption.
func (g *Gallery) AriaLabel(lang i18n.Language, i int) string {
	g.mu.Lock()

	if i < 0 || i >= len(g.images) {
		g.mu.Unlock()

		return ""
	}

	img := g.images[i]
	g.mu.Unlock()

	if img.Alt != "" {
		return img.Alt
	}

	return g.svc.TranslateIn(lang, img.CaptionKey)
}
