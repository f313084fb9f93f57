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

package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the publish run,
// mirroring each console line into zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📦 Step logs a run-level step (extraction done, repository created, ...)
func (u *UserLogger) Step(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(description)
	u.log.Info().Msg(description)
}

// 📝 FileResult logs one per-file push outcome
func (u *UserLogger) FileResult(index, total int, path string, err error) {
	line := FormatFileResult(index, total, path, err)
	fmt.Println(line)

	if err != nil {
		u.log.Warn().Err(err).Str("path", path).Msg("push failed")
		return
	}
	u.log.Debug().Str("path", path).Msg("pushed")
}

// 📊 Summary logs the final tally and the repository URL
func (u *UserLogger) Summary(succeeded, total int, failed []string, repoURL string) {
	fmt.Println(FormatSummary(succeeded, total, failed))

	if len(failed) == 0 {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "🌐"}).Println("Repository: " + repoURL)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "🌐"}).Println("Repository: " + repoURL)
	}

	u.log.Info().
		Int("succeeded", succeeded).
		Int("total", total).
		Strs("failed", failed).
		Msg("push complete")
}
