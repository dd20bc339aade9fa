package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the program name used as the last element of the
// configuration and cache directories.
//
// Prefix is the base name of the executable after the substitutions of
// [prefixOf], without extension. Running archetype under a different name
// therefore keeps a separate configuration.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}

		return prefixOf(exe)
	},
)

//nolint:gochecknoglobals
var prefixRules = []struct {
	rex *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`^__debug_bin\d*$`), Name}, // default output from dlv
	{regexp.MustCompile(`^.*\.test$`), Name},       // go test binaries
	{regexp.MustCompile(`^\.+`), ""},               // leading dot(s)
}

// prefixOf derives the program name from the executable path exe.
// An empty result falls back to [Name].
func prefixOf(exe string) string {
	id := filepath.Base(exe)

	for _, rule := range prefixRules {
		id = rule.rex.ReplaceAllString(id, rule.rep)
	}

	id = strings.TrimSuffix(id, filepath.Ext(id))

	if id == "" || id == "." || id == string(filepath.Separator) {
		return Name
	}

	return id
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// CacheDir returns the cache directory path used for transient files such as
// the REPL history.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// userDir joins [Prefix] to the platform directory returned by base. When
// base fails, the hidden directory named by fallback under the home
// directory is used, and failing that, the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
