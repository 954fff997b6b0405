package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		content       *string
		required      bool
		want          Config
		wantErr       bool
		wantErrSubstr string
	}{
		{
			name:     "missing optional file gives defaults",
			filename: "config.yaml",
			want:     Default(),
		},
		{
			name:          "missing required file",
			filename:      "config.yaml",
			required:      true,
			wantErr:       true,
			wantErrSubstr: "failed to read config file",
		},
		{
			name:     "yaml overrides",
			filename: "config.yaml",
			content: strPtr(`
state_file: /tmp/state.json
header_extensions: [".h", ".hxx"]
log:
  file: /tmp/pathpick.log
  level: debug
`),
			want: Config{
				StateFile:        "/tmp/state.json",
				HeaderExtensions: []string{".h", ".hxx"},
				Log:              LogConfig{File: "/tmp/pathpick.log", Level: "debug"},
			},
		},
		{
			name:     "toml overrides",
			filename: "config.toml",
			content: strPtr(`
start_path = "/srv"

[log]
level = "warn"
`),
			want: Config{
				StartPath:        "/srv",
				HeaderExtensions: DefaultHeaderExtensions,
				Log:              LogConfig{Level: "warn"},
			},
		},
		{
			name:     "empty yaml keeps defaults",
			filename: "config.yml",
			content:  strPtr("   \n"),
			want:     Default(),
		},
		{
			name:          "unknown yaml field",
			filename:      "config.yaml",
			content:       strPtr("colour: blue\n"),
			wantErr:       true,
			wantErrSubstr: "failed to parse config file",
		},
		{
			name:          "unknown toml field",
			filename:      "config.toml",
			content:       strPtr("colour = \"blue\"\n"),
			wantErr:       true,
			wantErrSubstr: "failed to parse config file",
		},
		{
			name:          "unsupported extension",
			filename:      "config.ini",
			content:       strPtr("a=b\n"),
			wantErr:       true,
			wantErrSubstr: "unsupported config format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			got, err := Load(path, tt.required)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
