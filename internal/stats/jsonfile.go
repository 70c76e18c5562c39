// internal/stats/jsonfile.go
//
// JSON file store: one object keyed by owner, each value a flat set of
// counters, e.g.
//
//	{"anon-123": {"wordleWins": 2, "hangmanWins": 0, "crosswordWins": 1, "totalWins": 3}}
//
// Writes go to a temp file that is renamed over the original. There is no
// cross-process locking; concurrent writers are last-write-wins.

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type JSONFileStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileStore(path string) *JSONFileStore { return &JSONFileStore{path: path} }

func (s *JSONFileStore) Load(_ context.Context, owner string) (WinStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.readAll()
	if err != nil {
		return WinStats{}, err
	}
	return all[owner].Normalize(), nil
}

func (s *JSONFileStore) Save(_ context.Context, owner string, ws WinStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		// Corrupt contents are overwritten.
		all = make(map[string]WinStats)
	}
	all[owner] = ws.Normalize()

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".stats-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *JSONFileStore) readAll() (map[string]WinStats, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]WinStats), nil
	}
	if err != nil {
		return nil, err
	}
	all := make(map[string]WinStats)
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return all, nil
}
