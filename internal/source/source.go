// Package source discovers gallery images on disk.
package source

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/shardgallery/internal/engine/texture"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Directory serves decoded images from a filesystem directory. It
// implements the gallery loader contract.
type Directory struct {
	paths []string
}

// Open scans dir for supported image files, non-recursively, in
// lexical order. A non-nil rng shuffles the result for shuffle mode.
func Open(dir string, rng *rand.Rand) (*Directory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExts[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if rng != nil {
		rng.Shuffle(len(paths), func(i, j int) {
			paths[i], paths[j] = paths[j], paths[i]
		})
	}

	return &Directory{paths: paths}, nil
}

// Len returns the number of discovered images.
func (d *Directory) Len() int {
	return len(d.paths)
}

// Path returns the file path for the given index.
func (d *Directory) Path(index int) string {
	return d.paths[index]
}

// Load decodes the image at index. The context is consulted before the
// decode starts, which is where preload cancellation takes effect.
func (d *Directory) Load(ctx context.Context, index int) (*texture.Image, error) {
	if index < 0 || index >= len(d.paths) {
		return nil, fmt.Errorf("image index %d out of range [0, %d)", index, len(d.paths))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return texture.Decode(d.paths[index])
}
