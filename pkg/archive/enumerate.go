// Copyright 2025 browserwasp
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package archive

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📄 File is one enumerated project file
type File struct {
	AbsPath string // On-disk location inside the extraction dir
	RelPath string // Slash-separated path within the repository
}

// 🗺️ skipDirs are never pushed regardless of config
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// 📂 ListFiles returns every regular file under root, excluding dependency
// and version-control directories plus any config-supplied ignore globs.
// An empty result is valid (nothing to push).
func ListFiles(root string, ignores []string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range ignores {
			matched, err := doublestar.Match(pattern, rel)
			if err != nil {
				return errors.Errorf("matching ignore pattern %q: %w", pattern, err)
			}
			if matched {
				return nil
			}
		}

		files = append(files, File{AbsPath: path, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking project root: %w", err)
	}

	return files, nil
}
