package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Load reads a configuration file from the given path. The format is
// determined by the file extension:
// - .yaml or .yml for YAML
// - .hcl for HCL
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	parser := GetParser(filepath.Base(path))
	if parser == nil {
		return nil, errors.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Str("target", cfg.String()).Msg("loaded config")
	return cfg, nil
}
