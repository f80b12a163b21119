// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the application's embedded static assets.
*/
package assets

import (
	"embed"
)

// FS provides access to the embedded file system.
var FS embed.FS
