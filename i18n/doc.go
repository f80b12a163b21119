// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n implements the bilingual language service for the site.

The site supports exactly two languages, Hebrew and English. Text direction
is derived from the language and is never configurable on its own. Each
language has one translation document, a nested JSON object addressed by
dotted keys such as "navigation.about". Lookups that miss the active
language's document fall back to the English document once, using the full
original key; a key absent from both documents is returned verbatim so that
missing content is visible in the rendered page instead of crashing it.

The Service is constructed explicitly and passed to the composition root
rather than living as package state, so tests can run several independent
instances side by side.
*/
package i18n
