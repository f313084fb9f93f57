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

package config

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🔑 Placeholder values shipped in the sample config. Validation refuses to
// run against them so nobody pushes with someone else's template credentials.
const (
	PlaceholderToken = "YOUR_GITHUB_TOKEN_HERE"
	PlaceholderOwner = "YOUR_GITHUB_USERNAME_HERE"
)

// ❌ ErrPlaceholder is returned when the config still holds template values
var ErrPlaceholder = errors.New("configuration still holds placeholder values")

// 📚 Config holds everything needed for one publish run. It is constructed
// once, validated, and passed by value into the client and publisher — never
// read from ambient state.
type Config struct {
	Token       string   `yaml:"token" json:"token"`             // GitHub credential (bearer token)
	Owner       string   `yaml:"owner" json:"owner"`             // Account that will own the repository
	Repo        string   `yaml:"repo" json:"repo"`               // Repository name
	Description string   `yaml:"description" json:"description"` // Repository description
	Private     bool     `yaml:"private" json:"private"`         // Whether the repository is private
	Branch      string   `yaml:"branch" json:"branch"`           // Target branch for pushed files
	Ignore      []string `yaml:"ignore" json:"ignore"`           // Extra doublestar globs excluded from the push
}

// 🏭 Default returns a config populated with the placeholder template values
func Default() *Config {
	return &Config{
		Token:  PlaceholderToken,
		Owner:  PlaceholderOwner,
		Branch: "main",
	}
}

// 🔍 Validate checks that the config is complete enough to talk to GitHub.
// This is a local precondition check and must pass before any network call.
func (cfg *Config) Validate() error {
	if cfg.Token == "" || cfg.Token == PlaceholderToken {
		return errors.Errorf("token not set: %w", ErrPlaceholder)
	}
	if cfg.Owner == "" || cfg.Owner == PlaceholderOwner {
		return errors.Errorf("owner not set: %w", ErrPlaceholder)
	}
	if cfg.Repo == "" {
		return errors.Errorf("repo is required")
	}

	// Set defaults
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}

	return nil
}

// 📝 String returns a short description of the publish target
func (cfg *Config) String() string {
	return cfg.Owner + "/" + cfg.Repo + "@" + cfg.Branch
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}
