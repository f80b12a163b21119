// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

package thumb

import (
	"bytes"
	"container/list"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var errInvalidSize = errors.New("must provide a positive size")

// byteCache is a fixed-capacity, least-recently-used cache for encoded
// thumbnails, safe for concurrent use. Entries are stored zstd-compressed
// when that actually saves space and are transparently decompressed on Get.
type byteCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	lock      sync.Mutex
	enc       *zstd.Encoder
	dec       *zstd.Decoder
}

type cacheEntry struct {
	key        string
	value      []byte
	compressed bool
}

func newByteCache(size int) (*byteCache, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}

	// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}

	return &byteCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
		enc:       enc,
		dec:       dec,
	}, nil
}

// Add stores value under key, marking it most recently used, and reports
// whether an older entry was evicted to make room.
func (c *byteCache) Add(key string, value []byte) bool {
	stored, compressed := c.prepare(value)

	c.lock.Lock()
	defer c.lock.Unlock()

	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)

		if cacheEnt, ok := ent.Value.(*cacheEntry); ok {
			cacheEnt.value = stored
			cacheEnt.compressed = compressed
		}

		return false
	}

	c.items[key] = c.evictList.PushFront(&cacheEntry{
		key:        key,
		value:      stored,
		compressed: compressed,
	})

	evicted := c.evictList.Len() > c.size
	if evicted {
		c.removeOldest()
	}

	return evicted
}

// Get returns a copy of the value stored under key, marking it most
// recently used.
func (c *byteCache) Get(key string) ([]byte, bool) {
	c.lock.Lock()

	ent, ok := c.items[key]
	if !ok {
		c.lock.Unlock()

		return nil, false
	}

	c.evictList.MoveToFront(ent)
	cacheEnt := ent.Value.(*cacheEntry)
	stored, compressed := cacheEnt.value, cacheEnt.compressed
	c.lock.Unlock()

	if compressed {
		out, err := c.dec.DecodeAll(stored, nil)
		if err != nil {
			return nil, false
		}

		return out, true
	}

	return bytes.Clone(stored), true
}

// Len returns the number of cached entries.
func (c *byteCache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.evictList.Len()
}

// prepare compresses value when that shrinks it.
func (c *byteCache) prepare(value []byte) ([]byte, bool) {
	compressed := c.enc.EncodeAll(value, nil)
	if len(compressed) < len(value) {
		return compressed, true
	}

	return bytes.Clone(value), false
}

func (c *byteCache) removeOldest() {
	if ent := c.evictList.Back(); ent != nil {
		c.evictList.Remove(ent)
		delete(c.items, ent.Value.(*cacheEntry).key)
	}
}
