// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/models"
	"github.com/google/uuid"
)

// sessionFileExt is the extension of every session file in the store
// directory. The reaper only ever touches files with this extension.
const sessionFileExt = ".json"

// FileStore persists [models.SessionData] as one JSON file per session id.
//
// Writes are atomic (temp file + rename) so a concurrently running reaper
// or a crashed process can never leave a half-written session behind.
type FileStore struct {
	dir string
	ttl time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewFileStore creates the session directory if needed and returns a store
// whose sessions expire after cfg.TTL.
func NewFileStore(cfg config.Session) (*FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &FileStore{
		dir: cfg.Dir,
		ttl: cfg.TTL,
		now: time.Now,
	}, nil
}

// Save writes data for sessionID, replacing any previous state.
func (s *FileStore) Save(sessionID string, data models.SessionData) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "session-*")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close session temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename session file: %w", err)
	}

	return nil
}

// Load returns the session state for sessionID. A session past its TTL is
// removed on sight and reported as [ErrSessionNotFound].
func (s *FileStore) Load(sessionID string) (models.SessionData, error) {
	var data models.SessionData

	path, err := s.path(sessionID)
	if err != nil {
		return data, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, ErrSessionNotFound
		}
		return data, fmt.Errorf("read session file: %w", err)
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupted session file is unusable; drop it so the caller does
		// not keep tripping over it.
		os.Remove(path)
		return models.SessionData{}, ErrSessionNotFound
	}

	if s.expired(data) {
		os.Remove(path)
		return models.SessionData{}, ErrSessionNotFound
	}

	return data, nil
}

// Delete removes the session file for sessionID. Deleting a session that
// does not exist is not an error.
func (s *FileStore) Delete(sessionID string) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

// Reap scans the session directory and removes every expired or unreadable
// session file. Returns how many files were removed.
func (s *FileStore) Reap() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read session dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sessionFileExt) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var data models.SessionData
		if err := json.Unmarshal(raw, &data); err != nil || s.expired(data) {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}

	return removed, nil
}

func (s *FileStore) expired(data models.SessionData) bool {
	return s.now().Sub(data.CreatedAt) > s.ttl
}

// path maps a session id to its file path. Only UUIDs are accepted so a
// forged id can never name a file outside the session directory.
func (s *FileStore) path(sessionID string) (string, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", ErrInvalidSessionID
	}

	return filepath.Join(s.dir, sessionID+sessionFileExt), nil
}
