//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the archetype module embedded at build
// time. It is printed by the CLI when users pass --version.
//
//go:embed VERSION
var version string

// Version returns the embedded version with surrounding whitespace removed.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "archetype"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Archetype condition expressions and descriptor reader"
)

// EnvPrefix returns the prefix of environment variables that override
// command-line flags. Flag --log-level is read from ARCHETYPE_LOG_LEVEL.
func EnvPrefix() string { return strings.ToUpper(Name) }

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
