package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// swapMarker is inserted before the extension of every output file.
const swapMarker = "_swap"

// realPath returns the absolute, symlink-free form of an existing path.
// A missing path yields domain.ErrPathNotFound.
func realPath(path string, wantDir bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrPathNotFound)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", domain.ErrPathNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrPathNotFound, path)
	}
	if info.IsDir() != wantDir {
		kind := "file"
		if wantDir {
			kind = "directory"
		}
		return "", fmt.Errorf("%w: %s is not a %s", domain.ErrPathNotFound, path, kind)
	}
	return resolved, nil
}

// swapPath inserts the swap marker before the extension of path:
// "in.osm" becomes "in_swap.osm".
func swapPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + swapMarker + ext
}
