// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Ehudaviv/Ofra-CV-Site/core/gallery"
	"github.com/Ehudaviv/Ofra-CV-Site/i18n"
	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

// openParam selects which work the lightbox shows, as a zero-based index
// into the exhibit list. Out-of-range values leave the lightbox closed.
const openParam = "open"

// GalleryItem is one exhibit cell in the grid.
type GalleryItem struct {
	Index    int
	Image    gallery.Image
	Caption  string
	Label    string
	ThumbSrc string
	OpenURL  string
}

// LightboxView describes the expanded view of one exhibit.
type LightboxView struct {
	Index   int
	Image   gallery.Image
	Caption string
	Label   string

	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string

	CloseURL string
}

// GalleryData is the data for the gallery page.
type GalleryData struct {
	Items    []GalleryItem
	Lightbox *LightboxView
}

// GalleryPage is the handler for the /gallery page.
//
// The page itself is a static grid; opening a work appends ?open=N, which is
// resolved here through the same state machine the client script drives, so
// the no-script and scripted experiences agree on which work is shown.
func GalleryPage(w http.ResponseWriter, r *http.Request) error {
	rc := request_context.FromRequest(r)

	g := gallery.New(deps.I18n, nil, gallery.ObserverConfig{})
	defer g.SetImages(nil)

	g.SetImages(deps.Catalog.Exhibits)

	pageData := GalleryData{
		Items: galleryItems(rc.Lang, deps.Catalog.Exhibits),
	}

	if raw := utils.GetQueryParam(r, openParam); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && g.Open(i) {
			pageData.Lightbox = lightboxView(g, rc.Lang)
		}
	}

	return deps.Renderer.Render(w, r, "gallery", template.TemplateData{
		Title: "gallery.title",
		Data:  pageData,
	})
}

// galleryItems builds the grid cells for a set of exhibits.
func galleryItems(lang i18n.Language, exhibits []gallery.Image) []GalleryItem {
	items := make([]GalleryItem, 0, len(exhibits))

	for i, img := range exhibits {
		items = append(items, GalleryItem{
			Index:    i,
			Image:    img,
			Caption:  deps.I18n.TranslateIn(lang, img.CaptionKey),
			Label:    ariaLabel(lang, img),
			ThumbSrc: img.ThumbURL,
			OpenURL:  fmt.Sprintf("/gallery?%s=%d", openParam, i),
		})
	}

	return items
}

// lightboxView captures the gallery's lightbox state for rendering.
func lightboxView(g *gallery.Gallery, lang i18n.Language) *LightboxView {
	idx, ok := g.Selected()
	if !ok {
		return nil
	}

	images := g.Images()

	view := &LightboxView{
		Index:    idx,
		Image:    images[idx],
		Caption:  g.Caption(lang, idx),
		Label:    g.AriaLabel(lang, idx),
		HasPrev:  g.CanPrev(),
		HasNext:  g.CanNext(),
		CloseURL: "/gallery",
	}

	if view.HasPrev {
		view.PrevURL = fmt.Sprintf("/gallery?%s=%d", openParam, idx-1)
	}

	if view.HasNext {
		view.NextURL = fmt.Sprintf("/gallery?%s=%d", openParam, idx+1)
	}

	return view
}

// ariaLabel mirrors gallery.AriaLabel for plain images outside a Gallery.
func ariaLabel(lang i18n.Language, img gallery.Image) string {
	if img.Alt != "" {
		return img.Alt
	}

	return deps.I18n.TranslateIn(lang, img.CaptionKey)
}
