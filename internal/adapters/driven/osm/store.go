package osm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.DocumentStore = (*Store)(nil)

// Store loads and saves model documents on the local filesystem.
type Store struct{}

// NewStore creates a document store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the model at path.
func (s *Store) Load(ctx context.Context, path string) (driven.ModelDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Save writes doc to path through a temporary file in the same directory,
// so a failed save never leaves a truncated model behind.
func (s *Store) Save(ctx context.Context, doc driven.ModelDocument, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, ok := doc.(*Document)
	if !ok {
		return fmt.Errorf("%w: unsupported document type %T", domain.ErrInvalidInput, doc)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".osmswap-*.osm")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := d.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename model: %w", err)
	}
	return nil
}
