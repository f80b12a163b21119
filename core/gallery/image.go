// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package gallery

// Image identifies one gallery entry. Values are immutable once constructed;
// the gallery never mutates the descriptor lists it receives.
type Image struct {
	// ID is unique within one gallery instance.
	ID string `yaml:"id" json:"id"`

	// ThumbURL is the grid thumbnail resource.
	ThumbURL string `yaml:"thumb" json:"thumb"`

	// FullURL is the full-resolution resource shown in the lightbox.
	FullURL string `yaml:"full" json:"full"`

	// CaptionKey is the dotted translation key for the caption.
	CaptionKey string `yaml:"captionKey" json:"captionKey"`

	// Alt is the fallback accessible text, preferred for the
	// assistive-technology label when present.
	Alt string `yaml:"alt" json:"alt"`
}
