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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ⌨️ Prompt is the non-interactive trigger: one line of input naming a
// local archive path. Prompt text goes to out so stdout stays clean.
type Prompt struct {
	in  io.Reader
	out io.Writer
}

// 🏭 NewPrompt creates the prompt trigger
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

// 📂 Archive reads and validates an archive path from the input
func (t *Prompt) Archive(ctx context.Context) (string, error) {
	fmt.Fprint(t.out, "Enter path to ZIP file: ")

	scanner := bufio.NewScanner(t.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Errorf("reading archive path: %w", err)
		}
		return "", errors.Errorf("no archive path given")
	}

	path := strings.TrimSpace(scanner.Text())
	if path == "" {
		return "", errors.Errorf("no archive path given")
	}
	if _, err := os.Stat(path); err != nil {
		return "", errors.Errorf("archive not found: %w", err)
	}

	return path, nil
}
