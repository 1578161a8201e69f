// Package assets feeds the optimizer with post-bundle style-sheet text and
// writes the results back. The engine itself never touches the filesystem.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"csstokens/internal/tokens"
)

// Load collects every .css file under dir into (identifier, text) pairs. The
// identifier is the path relative to dir with forward slashes, and the result
// is sorted by identifier so downstream processing is deterministic.
func Load(dir string) ([]tokens.Asset, error) {
	var list []tokens.Asset
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".css") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		list = append(list, tokens.Asset{
			ID:   filepath.ToSlash(rel),
			Text: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: scanning %s: %w", dir, err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Write replaces the asset identified by id under dir with text.
func Write(dir, id, text string) error {
	path := filepath.Join(dir, filepath.FromSlash(id))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("assets: writing %s: %w", id, err)
	}
	return nil
}
