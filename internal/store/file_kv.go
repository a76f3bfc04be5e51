// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-form-builder/internal/logger"
)

// MemoryDSN selects the in-memory key-value backend.
const MemoryDSN = ":memory:"

const corruptSuffix = ".corrupt"

// fileKeyValueStore implements [KeyValueStore] as a map that is mirrored to
// a JSON object file after every change. With an empty path or [MemoryDSN]
// nothing is written and the data lives only as long as the process.
type fileKeyValueStore struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	items  map[string]string
	logger *logger.Logger
}

// NewFileKeyValueStore opens the JSON file at path, or an in-memory map when
// path is empty or [MemoryDSN]. A missing file is an empty store. A file that
// cannot be decoded is renamed to path + [corruptSuffix] and the store starts
// empty.
func NewFileKeyValueStore(path string, log *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		path = MemoryDSN
	}

	s := &fileKeyValueStore{
		path:     path,
		inMemory: path == MemoryDSN,
		items:    make(map[string]string),
		logger:   log,
	}
	if err := s.load(); err != nil {
		log.Err(err).Str("func", "NewFileKeyValueStore").Str("path", path).Msg("failed to load storage file")
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value

	if err := s.persist(); err != nil {
		// keep memory and file in step
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		logger.FromContext(ctx).Err(err).Str("func", "fileKeyValueStore.Set").Str("key", key).Msg("failed to persist storage file")
		return err
	}
	return nil
}

func (s *fileKeyValueStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *fileKeyValueStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if len(data) == 0 {
		return nil
	}

	items := make(map[string]string)
	if err = json.Unmarshal(data, &items); err != nil {
		return s.setAside(err)
	}
	s.items = items

	return nil
}

// setAside moves an undecodable file out of the way so the next write does
// not overwrite it.
func (s *fileKeyValueStore) setAside(decodeErr error) error {
	aside := s.path + corruptSuffix
	if err := os.Rename(s.path, aside); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrReadingFile, s.path, errors.Join(decodeErr, err))
	}

	s.logger.Warn().Err(decodeErr).
		Str("func", "fileKeyValueStore.load").
		Str("path", s.path).
		Str("moved_to", aside).
		Msg("storage file is not valid JSON, starting empty")
	return nil
}

// persist writes the map to a temporary file next to path and renames it
// over path, so a crash never leaves a half-written file behind.
func (s *fileKeyValueStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrWritingFile, err)
		}
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", ErrWritingFile, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod temp file: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace file: %w", ErrWritingFile, err)
	}

	return nil
}
