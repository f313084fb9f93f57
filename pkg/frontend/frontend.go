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

	"golang.org/x/term"
)

// 🎯 Trigger obtains a project archive from the user and hands control to
// the publish flow. Implementations perform no business logic.
type Trigger interface {
	// Archive blocks until the user supplies a path to a local zip file
	Archive(ctx context.Context) (string, error)
}

// 🔍 Select picks the trigger for the current environment, once at startup.
// A terminal gets the interactive variant; everything else falls back to a
// plain line prompt.
func Select() Trigger {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return NewInteractive()
	}
	return NewPrompt(os.Stdin, os.Stderr)
}
