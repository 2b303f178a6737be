// Package jsonfile persists the ledger as a single JSON array on disk, the
// default backend. The whole file is read and rewritten on every operation.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dejobratic/ledger/internal/ledger/domain"
)

type Store struct {
	path string
}

// NewStore persists the collection at the given file path. The file is
// created on the first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the full collection. A missing file or one that does not parse
// as JSON yields an empty collection rather than an error; the ledger treats
// both as "no data yet".
func (s *Store) Load(_ context.Context) (domain.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Collection{}, nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var col domain.Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return domain.Collection{}, nil
	}
	if col == nil {
		col = domain.Collection{}
	}
	return col, nil
}

// Save rewrites the collection atomically: it writes a temp file in the same
// directory and renames it over the target, so a concurrent Load never sees
// a partially written file.
func (s *Store) Save(_ context.Context, col domain.Collection) error {
	if col == nil {
		col = domain.Collection{}
	}

	data, err := json.MarshalIndent(col, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger file: %w", err)
	}

	return nil
}
