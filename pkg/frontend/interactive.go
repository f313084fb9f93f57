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

package frontend

import (
	"context"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 🖱️ Interactive is the terminal trigger: an interactive input styled as
// the "Select ZIP File" control.
type Interactive struct {
	input pterm.InteractiveTextInputPrinter
}

// 🏭 NewInteractive creates the interactive trigger
func NewInteractive() *Interactive {
	return &Interactive{
		input: *pterm.DefaultInteractiveTextInput.WithDefaultText("📁 Path to project ZIP"),
	}
}

// 📂 Archive prompts for and validates an archive path
func (t *Interactive) Archive(ctx context.Context) (string, error) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📂"}).Println("Select the project ZIP to publish")

	path, err := t.input.Show()
	if err != nil {
		return "", errors.Errorf("reading archive path: %w", err)
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.Errorf("no archive selected")
	}
	if _, err := os.Stat(path); err != nil {
		return "", errors.Errorf("archive not found: %w", err)
	}

	return path, nil
}
