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
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/browserwasp/zipdeploy/pkg/archive"
	"github.com/browserwasp/zipdeploy/pkg/config"
)

// ⏱️ Rate limiting: GitHub allows roughly 5000 requests/hour, so the push
// loop pauses briefly every few files. Fixed, not adaptive.
const (
	pauseEvery = 10
	pauseFor   = 500 * time.Millisecond
)

// 🏅 priorityFiles are pushed first so the repository is legible as early
// as possible. Order here is push order.
var priorityFiles = []string{"README.md", "package.json", "index.html", "vite.config.ts"}

// 🎯 HostingClient is the remote repository surface the publisher needs
type HostingClient interface {
	// RepositoryExists reports whether the target repository can be looked up
	RepositoryExists(ctx context.Context) bool
	// CreateRepository creates the target repository and returns its HTML URL
	CreateRepository(ctx context.Context) (string, error)
	// GetFileSHA returns the version token of an existing file, or ""
	GetFileSHA(ctx context.Context, path string) string
	// PushFile creates or updates a single file
	PushFile(ctx context.Context, path string, content []byte, message, sha string) error
	// RepoURL returns the browsable URL of the target repository
	RepoURL() string
}

// 📈 Reporter receives per-file results and the final tally
type Reporter interface {
	Step(description string)
	FileResult(index, total int, path string, err error)
	Summary(succeeded, total int, failed []string, repoURL string)
}

// 📊 Summary is the terminal state of a push run
type Summary struct {
	Total     int      // Files attempted
	Succeeded int      // Files pushed
	Failed    []string // Repository-relative paths that failed
}

// 🔧 Options contains configuration for the publisher
type Options struct {
	// Config is the validated publish configuration
	Config *config.Config
	// Client is the remote repository client
	Client HostingClient
	// Reporter receives progress and summary output
	Reporter Reporter
}

// 🎮 Publisher pushes an enumerated file set to the remote repository
type Publisher struct {
	cfg      *config.Config
	client   HostingClient
	reporter Reporter
	sleep    func(time.Duration)
}

// 🏭 New creates a new publisher with the given options
func New(opts Options) (*Publisher, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Client == nil {
		return nil, errors.Errorf("client is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &Publisher{
		cfg:      opts.Config,
		client:   opts.Client,
		reporter: opts.Reporter,
		sleep:    time.Sleep,
	}, nil
}

// 🚀 Publish runs the full flow: validate config, ensure the repository
// exists, push every file in order, and report a summary. Individual file
// failures are recorded and the run continues; config and repository
// failures abort before any file is pushed.
func (p *Publisher) Publish(ctx context.Context, files []archive.File) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	if err := p.cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	if err := p.ensureRepository(ctx); err != nil {
		return nil, err
	}

	ordered := Order(files)
	sum := &Summary{Total: len(ordered)}

	logger.Info().Int("files", len(ordered)).Str("target", p.cfg.String()).Msg("pushing files")

	for i, f := range ordered {
		err := p.pushOne(ctx, i, f)
		if err != nil {
			sum.Failed = append(sum.Failed, f.RelPath)
		} else {
			sum.Succeeded++
		}
		p.reporter.FileResult(i+1, sum.Total, f.RelPath, err)

		if (i+1)%pauseEvery == 0 {
			p.sleep(pauseFor)
		}
	}

	p.reporter.Summary(sum.Succeeded, sum.Total, sum.Failed, p.client.RepoURL())
	return sum, nil
}

// 📦 ensureRepository creates the target repository unless it already exists
func (p *Publisher) ensureRepository(ctx context.Context) error {
	if p.client.RepositoryExists(ctx) {
		p.reporter.Step(fmt.Sprintf("repository %s already exists, pushing to it", p.cfg.Repo))
		return nil
	}

	url, err := p.client.CreateRepository(ctx)
	if err != nil {
		return errors.Errorf("creating repository: %w", err)
	}

	p.reporter.Step("created repository " + url)
	return nil
}

// 📝 pushOne reads a file and issues the create-or-update write. The version
// token is looked up immediately before the write, never cached.
func (p *Publisher) pushOne(ctx context.Context, index int, f archive.File) error {
	content, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return errors.Errorf("reading %s: %w", f.AbsPath, err)
	}

	sha := p.client.GetFileSHA(ctx, f.RelPath)
	return p.client.PushFile(ctx, f.RelPath, content, commitMessage(index, f.RelPath), sha)
}

// 📋 Order returns the files with priority names first, preserving
// enumeration order for everything else and for ties.
func Order(files []archive.File) []archive.File {
	ordered := make([]archive.File, len(files))
	copy(ordered, files)

	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityRank(ordered[i].RelPath) < priorityRank(ordered[j].RelPath)
	})

	return ordered
}

// 🔍 priorityRank maps a path to its position in the priority list
func priorityRank(rel string) int {
	for i, name := range priorityFiles {
		if rel == name || strings.HasSuffix(rel, "/"+name) {
			return i
		}
	}
	return len(priorityFiles)
}

// 📝 commitMessage names the commit for the i-th pushed file
func commitMessage(index int, rel string) string {
	if index == 0 {
		return "Initial commit"
	}
	return "feat: add " + rel
}
