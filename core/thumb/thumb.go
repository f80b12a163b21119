// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package thumb renders gallery thumbnails from on-disk originals and serves
them through a fixed-capacity LRU cache.
*/
package thumb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	jpegQuality = 85

	// prewarmConcurrency bounds parallel decodes during startup pre-warming.
	prewarmConcurrency = 4
)

var (
	// ErrNotFound is returned when no original exists under the given name.
	ErrNotFound = errors.New("image not found")

	errUnsafeName = errors.New("unsafe image name")
)

// Service turns original images into width-bounded JPEG thumbnails.
type Service struct {
	fsys  fs.FS
	cache *byteCache
}

// New creates a Service reading originals from fsys and caching up to
// cacheEntries encoded thumbnails.
func New(fsys fs.FS, cacheEntries int) (*Service, error) {
	cache, err := newByteCache(cacheEntries)
	if err != nil {
		return nil, err
	}

	return &Service{fsys: fsys, cache: cache}, nil
}

// Render returns the encoded thumbnail for name scaled to width pixels,
// preserving aspect ratio. Results are cached per (name, width).
func (s *Service) Render(name string, width int) ([]byte, error) {
	cleaned, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	if width <= 0 {
		return nil, fmt.Errorf("thumbnail width must be positive, got %d", width)
	}

	key := fmt.Sprintf("%s@%d", cleaned, width)
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}

	data, err := fs.ReadFile(s.fsys, cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cleaned)
		}

		return nil, fmt.Errorf("failed to read original %s: %w", cleaned, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", cleaned, err)
	}

	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail for %s: %w", cleaned, err)
	}

	s.cache.Add(key, buf.Bytes())

	return buf.Bytes(), nil
}

// Prewarm renders thumbnails for the given originals ahead of the first
// request. Failures are logged per image and never abort startup; missing
// originals simply stay cold.
func (s *Service) Prewarm(ctx context.Context, names []string, width int) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(prewarmConcurrency)

	for _, name := range names {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if _, err := s.Render(name, width); err != nil {
				log.Warn().Err(err).Str("image", name).Msg("Failed to pre-warm thumbnail")
			}

			return nil
		})
	}

	_ = group.Wait()
}

// cleanName normalizes name and rejects anything that could escape the
// originals root.
func cleanName(name string) (string, error) {
	cleaned := path.Clean(strings.TrimPrefix(name, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", errUnsafeName, name)
	}

	return cleaned, nil
}
