// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ListFiles returns the paths of the regular files directly inside dir whose
// extension matches ext, ignoring case. ext may be given with or without the
// leading dot. The result is sorted.
func ListFiles(fs afero.Fs, dir, ext string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	want := "." + strings.TrimPrefix(strings.ToLower(ext), ".")

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != want {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// Select picks the inputs of a batch. With all set every file is converted;
// otherwise only files[current]. An out of range index selects nothing.
func Select(files []string, current int, all bool) []string {
	if all {
		return append([]string(nil), files...)
	}
	if current < 0 || current >= len(files) {
		return nil
	}
	return []string{files[current]}
}

// SelectByName is Select with the current file given by base name, as it
// is on the command line.
func SelectByName(files []string, name string, all bool) ([]string, error) {
	if all {
		return Select(files, 0, true), nil
	}

	for i, f := range files {
		if filepath.Base(f) == name || f == name {
			return Select(files, i, false), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNoSelection, name)
}
