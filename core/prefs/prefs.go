// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package prefs provides durable key-value stores for user preferences.

The stores implement the i18n.PrefStore contract: reads of absent keys are
not errors, and callers treat every failure as best-effort.
*/
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileStorePermissions = 0o600

// FileStore persists preferences as a flat JSON object in a single file.
//
// Writes are atomic: the file is replaced via a temporary sibling and
// rename, so a crash mid-write never leaves a torn document behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore backed by path. The file is created on
// the first Set; a missing file reads as an empty store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the stored value for key. A missing file or key yields the
// empty string with no error.
func (fs *FileStore) Get(key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return "", err
	}

	return values[key], nil
}

// Set stores value under key, creating the file if needed.
func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}

	values[key] = value

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, fileStorePermissions); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}

	return nil
}

func (fs *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", fs.path, err)
	}

	return values, nil
}

// MemStore is an in-memory store for tests and ephemeral deployments.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (ms *MemStore) Get(key string) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.values[key], nil
}

func (ms *MemStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.values[key] = value

	return nil
}
