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

package publish

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes the publish flow. Sync mode calls it inline; async
// mode runs it as a background task for event-driven front ends (the flow
// itself stays sequential either way).
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes the flow
func (r *Runner) Run(ctx context.Context, flow func(context.Context) error) error {
	if !r.async {
		return flow(ctx)
	}

	r.logger.Debug().Msg("running publish flow asynchronously")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return flow(gctx)
	})
	return g.Wait()
}
