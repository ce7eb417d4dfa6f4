// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package biceplab

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ScaffoldOptions control how Scaffold treats existing files.
type ScaffoldOptions struct {
	// Force overwrites files whose content differs from the library's.
	// Without it such files are left alone and reported as skipped.
	Force bool
}

// ScaffoldResult reports what Scaffold did per file, with paths relative to
// the destination root.
type ScaffoldResult struct {
	Written   []string
	Unchanged []string
	Skipped   []string
}

// Scaffold writes the library src into root on dest. It never deletes, and
// re-running it over its own output is a no-op: files that are already
// byte-identical are counted as unchanged and not rewritten.
func Scaffold(dest afero.Fs, root string, src fs.FS, opts ScaffoldOptions) (*ScaffoldResult, error) {
	result := &ScaffoldResult{}

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("reading library file %s: %w", p, err)
		}

		target := filepath.Join(root, filepath.FromSlash(p))
		existing, readErr := afero.ReadFile(dest, target)
		switch {
		case readErr == nil && bytes.Equal(existing, data):
			result.Unchanged = append(result.Unchanged, p)
			return nil
		case readErr == nil && !opts.Force:
			result.Skipped = append(result.Skipped, p)
			return nil
		}

		if err := dest.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", p, err)
		}
		if err := afero.WriteFile(dest, target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
		result.Written = append(result.Written, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
