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
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ❌ ErrInvalidArchive is returned when the input is not a well-formed zip file
var ErrInvalidArchive = errors.New("invalid zip archive")

// 📦 Extraction is an unpacked archive backed by a temporary directory.
// Callers must Close it on every exit path; Close is idempotent.
type Extraction struct {
	dir  string // temporary extraction directory
	root string // effective project root (see resolveRoot)
}

// 📥 Extract unpacks the zip at zipPath into a fresh temporary directory
func Extract(ctx context.Context, zipPath string) (*Extraction, error) {
	logger := zerolog.Ctx(ctx)

	dir, err := os.MkdirTemp("", "zipdeploy_")
	if err != nil {
		return nil, errors.Errorf("creating extraction dir: %w", err)
	}

	// ErrInsecurePath still yields a usable reader; the per-entry guard
	// below rejects anything that would land outside dir.
	reader, err := zip.OpenReader(zipPath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		os.RemoveAll(dir)
		if errors.Is(err, zip.ErrFormat) {
			return nil, errors.Errorf("%w: %s", ErrInvalidArchive, zipPath)
		}
		return nil, errors.Errorf("opening archive: %w", err)
	}
	defer reader.Close()

	for _, f := range reader.File {
		if err := extractEntry(dir, f); err != nil {
			os.RemoveAll(dir)
			return nil, errors.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	root, err := resolveRoot(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	logger.Debug().Str("archive", zipPath).Str("root", root).Msg("extracted archive")
	return &Extraction{dir: dir, root: root}, nil
}

// 📂 Dir returns the temporary extraction directory
func (e *Extraction) Dir() string {
	return e.dir
}

// 📂 Root returns the effective project root
func (e *Extraction) Root() string {
	return e.root
}

// 🗑️ Close removes the temporary extraction directory
func (e *Extraction) Close() error {
	if e.dir == "" {
		return nil
	}
	dir := e.dir
	e.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return errors.Errorf("removing extraction dir: %w", err)
	}
	return nil
}

// 🔍 resolveRoot unwraps a single top-level directory. Archives built from a
// named project folder contain exactly one entry; pushing that wrapper dir
// verbatim would nest everything one level too deep.
func resolveRoot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Errorf("reading extraction dir: %w", err)
	}
	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(dir, entries[0].Name()), nil
	}
	return dir, nil
}

// 📄 extractEntry writes a single archive entry under dir
func extractEntry(dir string, f *zip.File) error {
	dest := filepath.Join(dir, filepath.FromSlash(f.Name))

	// Reject entries that would escape the extraction dir
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return errors.Errorf("entry escapes extraction dir: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(dest, 0755); err != nil {
			return errors.Errorf("creating directory: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	src, err := f.Open()
	if err != nil {
		return errors.Errorf("opening entry: %w", err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Errorf("creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return errors.Errorf("writing file content: %w", err)
	}

	return nil
}
