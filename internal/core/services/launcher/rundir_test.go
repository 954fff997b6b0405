package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRunDir(t *testing.T) {
	tests := []struct {
		name  string
		dirs  []string
		files []string
		want  string
	}{
		{name: "empty base starts at r1", want: "r1"},
		{name: "gaps use the highest number", dirs: []string{"r1", "r3", "foo"}, want: "r4"},
		{name: "files named like runs are ignored", dirs: []string{"r2"}, files: []string{"r9"}, want: "r3"},
		{name: "non-digit suffixes are ignored", dirs: []string{"r", "r1a", "run5", "R7"}, want: "r1"},
		{name: "leading zeros parse as numbers", dirs: []string{"r010"}, want: "r11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(base, d), 0755))
			}
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(base, f), nil, 0644))
			}

			got, err := NextRunDir(base)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(base, tt.want), got)
			assert.DirExists(t, got)
		})
	}
}

func TestNextRunDir_IsSequential(t *testing.T) {
	base := t.TempDir()

	first, err := NextRunDir(base)
	require.NoError(t, err)
	second, err := NextRunDir(base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "r1"), first)
	assert.Equal(t, filepath.Join(base, "r2"), second)
}

func TestNextRunDir_MissingBase(t *testing.T) {
	_, err := NextRunDir(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
