// Package vault resolves image embed filenames against a directory tree,
// the way wiki-style ![[name]] references resolve inside a notes vault.
package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/gomdview/pkg/widget"
)

// Resolver implements widget.AssetResolver over a directory tree.
// Resolution is deterministic: the walk order is sorted, and the first
// file whose base name matches wins.
type Resolver struct {
	root string
}

// New creates a Resolver rooted at the given directory.
func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve finds the first file under the root whose base name equals
// filename (case-insensitive). Returns widget.ErrNotFound when nothing
// matches.
func (r *Resolver) Resolve(ctx context.Context, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", widget.ErrNotFound
	}

	// A direct hit relative to the root needs no walk.
	direct := filepath.Join(r.root, filepath.FromSlash(filename))
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	want := strings.ToLower(filepath.Base(filename))
	var found string

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			// Deterministic order: WalkDir visits entries lexically, but
			// hidden directories are noise worth skipping.
			if strings.HasPrefix(d.Name(), ".") && path != r.root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.ToLower(d.Name()) == want {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", filename, err)
	}
	if found == "" {
		return "", widget.ErrNotFound
	}
	return found, nil
}

// List returns every file under the root, sorted. Useful for diagnostics.
func (r *Resolver) List() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list vault: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
