package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `token: ghp_realtoken
owner: browserwasp
repo: browserclaw
description: test repo
private: true
branch: deploy
ignore:
  - "dist/**"
`

const hclConfig = `github {
  token       = "ghp_realtoken"
  owner       = "browserwasp"
  repo        = "browserclaw"
  description = "test repo"
  private     = true
  branch      = "deploy"
}
ignore = ["dist/**"]
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	want := &Config{
		Token:       "ghp_realtoken",
		Owner:       "browserwasp",
		Repo:        "browserclaw",
		Description: "test repo",
		Private:     true,
		Branch:      "deploy",
		Ignore:      []string{"dist/**"},
	}

	t.Run("yaml", func(t *testing.T) {
		cfg, err := Load(ctx, writeConfig(t, ".zipdeploy.yaml", yamlConfig))
		require.NoError(t, err, "loading yaml config should not error")
		assert.Equal(t, want, cfg)
	})

	t.Run("hcl", func(t *testing.T) {
		cfg, err := Load(ctx, writeConfig(t, ".zipdeploy.hcl", hclConfig))
		require.NoError(t, err, "loading hcl config should not error")
		assert.Equal(t, want, cfg)
	})

	t.Run("yaml_and_hcl_agree", func(t *testing.T) {
		fromYAML, err := Load(ctx, writeConfig(t, "a.yaml", yamlConfig))
		require.NoError(t, err)
		fromHCL, err := Load(ctx, writeConfig(t, "a.hcl", hclConfig))
		require.NoError(t, err)
		assert.Equal(t, fromYAML, fromHCL, "both formats should produce the same config")
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		_, err := Load(ctx, writeConfig(t, "config.toml", "token = 1"))
		require.Error(t, err, "unsupported format should error")
		assert.Contains(t, err.Error(), "unsupported config format")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err, "missing file should error")
	})

	t.Run("unknown_yaml_field", func(t *testing.T) {
		_, err := Load(ctx, writeConfig(t, "bad.yaml", "tokn: oops\n"))
		require.Error(t, err, "unknown fields should be rejected")
	})
}
