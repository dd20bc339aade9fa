package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/ardnew/archetype/lang"
	"github.com/ardnew/archetype/log"
)

// Vars declares the variable flags shared by the eval and repl commands.
//
// Files are loaded in order, each overriding earlier definitions, and --var
// flags override every file.
type Vars struct {
	Var      []string `help:"Bind variable NAME to VALUE (repeatable)."              placeholder:"NAME=VALUE" sep:"none" short:"v"`
	VarsFile []string `help:"Load variables from a .env or YAML file (repeatable)." placeholder:"FILE"       sep:"none"`
}

// Table maps variable names to their values.
type Table map[string]lang.Value

// Load builds the variable table from the files and flags of v.
func (v Vars) Load(ctx context.Context) (Table, error) {
	files, err := uniqueFiles(v.VarsFile)
	if err != nil {
		return nil, err
	}

	t := make(Table)

	for _, file := range files {
		if err := t.loadFile(ctx, file); err != nil {
			return nil, err
		}
	}

	for _, def := range v.Var {
		if err := t.Set(def); err != nil {
			return nil, err
		}
	}

	log.DebugContext(ctx, "variables loaded",
		slog.Int("files", len(files)),
		slog.Int("count", len(t)),
	)

	return t, nil
}

// Set binds a variable from a NAME=VALUE definition. The value is kept
// verbatim; surrounding whitespace is trimmed from the name only.
func (t Table) Set(def string) error {
	name, value, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)

	if !ok || name == "" {
		return ErrInvalidVariable.With(slog.String("var", def))
	}

	t[name] = lang.StringValue(value)

	return nil
}

// Resolve implements [lang.Resolver].
func (t Table) Resolve(name string) (lang.Value, bool) {
	v, ok := t[name]

	return v, ok
}

// Names returns the sorted variable names.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Missing returns the variables read by e that t does not bind, in order of
// first appearance.
func (t Table) Missing(e lang.Expression) []string {
	return slices.DeleteFunc(lang.Variables(e), func(name string) bool {
		_, ok := t[name]

		return ok
	})
}

// Strings returns a string resolver over t for compiled programs, which
// accept only string variables. It reports the first non-string variable
// the program reads.
func (t Table) Strings(names []string) (func(string) (string, bool), error) {
	for _, name := range names {
		v, ok := t[name]
		if !ok {
			continue
		}

		if _, ok := v.AsString(); !ok {
			return nil, ErrCompile.
				With(slog.String("var", name)).
				Wrap(fmt.Errorf("variable %q is a %s, not a string", name, v.Kind()))
		}
	}

	return func(name string) (string, bool) {
		v, ok := t[name]
		if !ok {
			return "", false
		}

		return v.AsString()
	}, nil
}

func (t Table) loadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ErrVarsFile.With(slog.String("file", path)).Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = t.loadYAML(ctx, data)
	default:
		err = t.loadEnv(data)
	}

	if err != nil {
		return ErrVarsFile.With(slog.String("file", path)).Wrap(err)
	}

	log.TraceContext(ctx, "variables file loaded", slog.String("file", path))

	return nil
}

func (t Table) loadEnv(data []byte) error {
	env, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	for name, value := range env {
		t[name] = lang.StringValue(value)
	}

	return nil
}

// loadYAML binds the scalar and sequence leaves of a YAML mapping. Nested
// mappings contribute dotted names, so {build: {os: linux}} binds $build.os.
func (t Table) loadYAML(ctx context.Context, data []byte) error {
	var doc map[string]any
	if err := yaml.UnmarshalContext(ctx, data, &doc); err != nil {
		return err
	}

	return t.bindYAML("", doc)
}

func (t Table) bindYAML(prefix string, doc map[string]any) error {
	for key, val := range doc {
		name := prefix + key

		switch v := val.(type) {
		case map[string]any:
			if err := t.bindYAML(name+".", v); err != nil {
				return err
			}

		case []any:
			elems := make([]string, 0, len(v))

			for _, e := range v {
				s, err := yamlScalar(name, e)
				if err != nil {
					return err
				}

				elems = append(elems, s)
			}

			t[name] = lang.ArrayValue(elems...)

		default:
			s, err := yamlScalar(name, v)
			if err != nil {
				return err
			}

			t[name] = lang.StringValue(s)
		}
	}

	return nil
}

func yamlScalar(name string, v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any, []any:
		return "", fmt.Errorf("variable %q: nested collections are not supported in sequences", name)
	default:
		return fmt.Sprint(v), nil
	}
}
