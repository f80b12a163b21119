// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/core/thumb"
	"github.com/Ehudaviv/Ofra-CV-Site/server/utils"
)

// maxThumbWidth bounds the requested width so a crafted query can't make
// the resizer allocate absurd output.
const maxThumbWidth = 1600

// Thumbnail serves a resized rendition of a gallery original.
//
// The original's name is the remaining request path; an optional w query
// parameter overrides the configured width.
func Thumbnail(w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Path

	width := config.Global.Thumbnail.Width

	if raw := utils.GetQueryParam(r, "w"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxThumbWidth {
			http.Error(w, "invalid width", http.StatusBadRequest)

			return nil
		}

		width = parsed
	}

	data, err := deps.Thumbs.Render(name, width)
	if errors.Is(err, thumb.ErrNotFound) {
		http.NotFound(w, r)

		return nil
	}

	if err != nil {
		return fmt.Errorf("rendering thumbnail %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("ETag", config.Global.Instance.FileServerCacheID)

	_, err = bytes.NewReader(data).WriteTo(w)

	return err
}

// FullImage serves an original from the configured image directory for the
// lightbox view. The original's name is the remaining request path.
func FullImage(w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Path

	imagesFS := os.DirFS(config.Global.Site.ImageDir)

	if !fs.ValidPath(name) || name == "." {
		http.NotFound(w, r)

		return nil
	}

	if _, err := fs.Stat(imagesFS, name); err != nil {
		http.NotFound(w, r)

		return nil
	}

	http.ServeFileFS(w, r, imagesFS, name)

	return nil
}
