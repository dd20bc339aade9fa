package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/archetype/log"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML configuration
// file mapping flag names to values.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Keys may spell flag names with hyphens or underscores. Sequences become
// repeated flag values. Command-line flags and environment variables
// override configuration values.
//
// Example configuration file:
//
//	log-level: debug
//	log_format: json
//	log-pretty: true
//
// A file that fails to parse is reported and ignored, so "init --force" can
// always replace it.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn("ignoring invalid configuration file", slog.Any("error", err))

		return config{}, nil
	}

	cfg := make(config, len(doc))

	for key, val := range doc {
		cfg[key] = flagValue(val)
	}

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - unknown keys are ignored
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[strings.ReplaceAll(name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value into the form kong decodes flags
// from. Kong parses scalars other than booleans from their text.
func flagValue(val any) any {
	switch v := val.(type) {
	case nil, bool, string:
		return v

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = flagValue(e)
		}

		return out

	default:
		return fmt.Sprint(v)
	}
}
