// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package gallery implements the image grid and its overlay viewer.

Each image in a gallery owns an independent loading state machine: it stays
idle until its slot first nears the viewport, then loads exactly once and
ends up loaded or errored, with no automatic retry. The gallery itself owns
the lightbox state: either closed, or open at a valid index with sequential,
non-wrapping navigation.

The package is rendering-agnostic. It exposes the current visual state,
accessible roles and labels, and key bindings; the HTTP layer and the
progressive-enhancement scripts translate those into markup and DOM events.
*/
package gallery
