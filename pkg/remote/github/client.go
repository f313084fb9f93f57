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

package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"

	"github.com/browserwasp/zipdeploy/pkg/config"
)

// ❌ ErrRepositoryCreate is returned when the create call fails. The run
// cannot proceed without a target repository, so callers treat it as fatal.
var ErrRepositoryCreate = errors.New("repository creation failed")

// GitHub needs a moment after repo creation before the contents API
// accepts writes against it.
const initializeWait = 2 * time.Second

// 🎯 Client is a thin wrapper over the GitHub API for a single repository
// target. All operations authenticate with the configured bearer token.
type Client struct {
	gh    *github.Client
	cfg   *config.Config
	sleep func(time.Duration)
}

// 🔧 Option customizes client construction
type Option func(*Client)

// WithHTTPClient uses the given http.Client for API calls (e.g. in tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.gh = github.NewClient(hc)
	}
}

// WithSleep replaces the post-creation wait (e.g. in tests)
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

// 🏭 New creates a new GitHub client for the configured target
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}

	c := &Client{cfg: cfg, sleep: time.Sleep}
	for _, opt := range opts {
		opt(c)
	}

	if c.gh == nil {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		c.gh = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	return c, nil
}

// 🔗 RepoURL returns the browsable URL of the target repository
func (c *Client) RepoURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", c.cfg.Owner, c.cfg.Repo)
}

// 🔍 RepositoryExists reports whether the target repository can be looked up.
// Any lookup failure, including transient server errors, reads as "absent"
// so that creation can proceed.
func (c *Client) RepositoryExists(ctx context.Context) bool {
	_, _, err := c.gh.Repositories.Get(ctx, c.cfg.Owner, c.cfg.Repo)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("repository lookup failed, treating as absent")
		return false
	}
	return true
}

// 📦 CreateRepository creates the target repository and returns its HTML URL
func (c *Client) CreateRepository(ctx context.Context) (string, error) {
	repo := &github.Repository{
		Name:        github.String(c.cfg.Repo),
		Description: github.String(c.cfg.Description),
		Private:     github.Bool(c.cfg.Private),
		AutoInit:    github.Bool(false),
		HasIssues:   github.Bool(true),
		HasProjects: github.Bool(false),
		HasWiki:     github.Bool(false),
	}

	created, _, err := c.gh.Repositories.Create(ctx, "", repo)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			return "", errors.Errorf("%w: status %d: %s", ErrRepositoryCreate, ghErr.Response.StatusCode, ghErr.Message)
		}
		return "", errors.Errorf("%w: %s", ErrRepositoryCreate, err.Error())
	}

	c.sleep(initializeWait)
	return created.GetHTMLURL(), nil
}

// 🔍 GetFileSHA returns the version token of an existing file, or "" when
// the path does not exist yet (or the lookup fails). The token is fetched
// immediately before each write because remote state can change between
// enumeration and push.
func (c *Client) GetFileSHA(ctx context.Context, path string) string {
	content, _, _, err := c.gh.Repositories.GetContents(ctx, c.cfg.Owner, c.cfg.Repo, path, &github.RepositoryContentGetOptions{
		Ref: c.cfg.Branch,
	})
	if err != nil || content == nil {
		return ""
	}
	return content.GetSHA()
}

// 📝 PushFile creates or updates a single file through the contents API.
// A non-empty sha selects the update variant; the API requires the current
// sha to overwrite an existing file.
func (c *Client) PushFile(ctx context.Context, path string, content []byte, message, sha string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(c.cfg.Branch),
	}

	if sha != "" {
		opts.SHA = github.String(sha)
		_, _, err := c.gh.Repositories.UpdateFile(ctx, c.cfg.Owner, c.cfg.Repo, path, opts)
		if err != nil {
			return errors.Errorf("updating %s: %w", path, err)
		}
		return nil
	}

	_, _, err := c.gh.Repositories.CreateFile(ctx, c.cfg.Owner, c.cfg.Repo, path, opts)
	if err != nil {
		return errors.Errorf("creating %s: %w", path, err)
	}
	return nil
}
