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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/browserwasp/zipdeploy/pkg/archive"
	"github.com/browserwasp/zipdeploy/pkg/config"
	"github.com/browserwasp/zipdeploy/pkg/frontend"
	"github.com/browserwasp/zipdeploy/pkg/publish"
	"github.com/browserwasp/zipdeploy/pkg/remote/github"
	"github.com/browserwasp/zipdeploy/pkg/status"
)

var (
	// Flags
	configFile  string
	archivePath string
	debug       bool
	async       bool
)

// newRootCmd creates the root command; running it with no arguments starts
// the one-shot publish flow.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipdeploy",
		Short: "Publish a zipped project to a GitHub repository",
		Long: `zipdeploy extracts a project ZIP and pushes every file to GitHub,
creating the repository first when it does not exist yet. Priority files
(README, package manifest, entry HTML, build config) are pushed first so
the repository is readable as early as possible.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".zipdeploy.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVarP(&archivePath, "archive", "a", "", "path to the project zip (skips the prompt)")
	cmd.Flags().BoolVar(&async, "async", false, "run the publish flow as a background task")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// run wires config, client, front end, and publisher together
func run(ctx context.Context) error {
	// Set up logger
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	// Load and validate config before anything touches the network
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	client, err := github.New(ctx, cfg)
	if err != nil {
		return errors.Errorf("creating github client: %w", err)
	}

	// Obtain the archive, from the flag or from the selected front end
	path := archivePath
	if path == "" {
		trigger := frontend.Select()
		path, err = trigger.Archive(ctx)
		if err != nil {
			return errors.Errorf("obtaining archive: %w", err)
		}
	}

	runner := publish.NewRunner(&logger, async)
	return runner.Run(ctx, func(ctx context.Context) error {
		return deploy(ctx, cfg, client, path)
	})
}

// deploy extracts the archive and publishes its files. The extraction dir
// is removed on every exit path.
func deploy(ctx context.Context, cfg *config.Config, client *github.Client, path string) error {
	userLog := status.NewUserLogger(ctx)

	ext, err := archive.Extract(ctx, path)
	if err != nil {
		return errors.Errorf("extracting archive: %w", err)
	}
	defer ext.Close()

	files, err := archive.ListFiles(ext.Root(), cfg.Ignore)
	if err != nil {
		return errors.Errorf("listing project files: %w", err)
	}
	userLog.Step(fmt.Sprintf("found %d files in %s", len(files), filepath.Base(path)))

	pub, err := publish.New(publish.Options{
		Config:   cfg,
		Client:   client,
		Reporter: userLog,
	})
	if err != nil {
		return errors.Errorf("creating publisher: %w", err)
	}

	if _, err := pub.Publish(ctx, files); err != nil {
		return errors.Errorf("publishing: %w", err)
	}
	return nil
}
