// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	for _, name := range []string{"/in/b.ogg", "/in/a.OGG", "/in/c.wav", "/in/notes.txt", "/in/sub/d.ogg"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}
	require.NoError(t, fs.MkdirAll("/in/folder.ogg", 0o755))

	files, err := ListFiles(fs, "/in", "ogg")
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/a.OGG", "/in/b.ogg"}, files)

	files, err = ListFiles(fs, "/in", ".WAV")
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/c.wav"}, files)

	files, err = ListFiles(fs, "/in", "flac")
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = ListFiles(fs, "/missing", "ogg")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	files := []string{"a.ogg", "b.ogg", "c.ogg"}

	tests := []struct {
		name    string
		current int
		all     bool
		want    []string
	}{
		{"all ignores current", 1, true, files},
		{"current only", 1, false, []string{"b.ogg"}},
		{"first", 0, false, []string{"a.ogg"}},
		{"out of range", 3, false, nil},
		{"negative", -1, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Select(files, tt.current, tt.all))
		})
	}

	// the selection is a copy
	got := Select(files, 0, true)
	got[0] = "changed"
	assert.Equal(t, "a.ogg", files[0])
}

func TestSelectByName(t *testing.T) {
	t.Parallel()

	files := []string{"/in/a.ogg", "/in/b.ogg"}

	got, err := SelectByName(files, "b.ogg", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/b.ogg"}, got)

	got, err = SelectByName(files, "/in/a.ogg", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/a.ogg"}, got)

	got, err = SelectByName(files, "", true)
	require.NoError(t, err)
	assert.Equal(t, files, got)

	_, err = SelectByName(files, "z.ogg", false)
	assert.ErrorIs(t, err, ErrNoSelection)
}
