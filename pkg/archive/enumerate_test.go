package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree builds a directory tree from relative paths
func makeTree(t *testing.T, paths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range paths {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(rel), 0644))
	}
	return root
}

func relPaths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestListFiles(t *testing.T) {
	t.Run("skips_dependency_and_vcs_dirs", func(t *testing.T) {
		root := makeTree(t,
			"README.md",
			"src/app.js",
			"node_modules/react/index.js",
			"src/node_modules/left-pad/index.js",
			".git/HEAD",
			".git/objects/ab/cdef",
		)

		files, err := ListFiles(root, nil)
		require.NoError(t, err, "listing should not error")
		assert.ElementsMatch(t, []string{"README.md", "src/app.js"}, relPaths(files))
	})

	t.Run("applies_ignore_globs", func(t *testing.T) {
		root := makeTree(t,
			"README.md",
			"dist/bundle.js",
			"dist/assets/logo.png",
			"src/app.js",
		)

		files, err := ListFiles(root, []string{"dist/**"})
		require.NoError(t, err, "listing should not error")
		assert.ElementsMatch(t, []string{"README.md", "src/app.js"}, relPaths(files))
	})

	t.Run("empty_tree_is_valid", func(t *testing.T) {
		files, err := ListFiles(t.TempDir(), nil)
		require.NoError(t, err, "empty tree should not error")
		assert.Empty(t, files, "no files to push is a valid result")
	})

	t.Run("bad_ignore_pattern", func(t *testing.T) {
		root := makeTree(t, "README.md")
		_, err := ListFiles(root, []string{"[invalid"})
		require.Error(t, err, "malformed glob should error")
	})

	t.Run("rel_paths_use_slashes", func(t *testing.T) {
		root := makeTree(t, "a/b/c.txt")
		files, err := ListFiles(root, nil)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "a/b/c.txt", files[0].RelPath)
		assert.Equal(t, filepath.Join(root, "a", "b", "c.txt"), files[0].AbsPath)
	})
}
