package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "tql.db", cfg.Database.Path)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `format = "json"

[database]
path = "/var/lib/tql/filters.db"

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "/var/lib/tql/filters.db", cfg.Database.Path)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Verbose, "unset keys keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tql.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npath = \"file.db\"\n"), 0o644))
	t.Setenv("TQL_DATABASE_PATH", "env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Database.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_NoFileInWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tql.db", cfg.Database.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"valid", Config{Format: "json", Database: DatabaseConfig{Path: "x.db"}}, ""},
		{"bad format", Config{Format: "yaml", Database: DatabaseConfig{Path: "x.db"}}, `invalid format "yaml"`},
		{"empty db", Config{Format: "text"}, "database.path must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
