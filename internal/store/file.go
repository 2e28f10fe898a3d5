package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// fileStore keeps every record in one JSON object:
//
//	{"devWordle_stats": {...}, "devWordle_hasSeenHelp": true}
//
// The whole document is read at open and rewritten on every Put through a
// temp file and rename, so a crash never leaves a half-written file.
type fileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	log  zerolog.Logger
}

// NewFileStore opens (or lazily creates) the JSON document at path.
// An unreadable or corrupt document is logged and treated as empty.
func NewFileStore(path string, log zerolog.Logger) (Store, error) {
	if path == "" {
		return nil, errors.New("store: file path is empty")
	}
	s := &fileStore{
		path: path,
		data: make(map[string]json.RawMessage),
		log:  log.With().Str("store", "file").Str("path", path).Logger(),
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.log.Warn().Err(err).Msg("state file is corrupt; starting empty")
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put requires value to be valid JSON.
func (s *fileStore) Put(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("store: value for %q is not valid JSON", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = append(json.RawMessage(nil), value...)
	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	buf, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	s.log.Debug().Int("records", len(s.data)).Msg("state flushed")
	return nil
}

func (s *fileStore) Close() error { return nil }
