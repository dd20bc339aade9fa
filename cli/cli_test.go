package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/archetype/cli/cmd"
	"github.com/ardnew/archetype/pkg"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "archetype-cli-*")
	if err != nil {
		panic(err)
	}

	// Keep configuration and cache files out of the user's directories.
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

func runArgs(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	stdio := cmd.Stdio{In: strings.NewReader(stdin), Out: &out, Err: &errOut}
	err := run(t.Context(), func(int) {}, stdio, args...)

	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "eval",
			args: []string{"eval", `$a == "x" && $b != "y"`, "-v", "a=x", "--var", "b=z"},
			want: "true\n",
		},
		{
			name: "eval compiled",
			args: []string{"eval", "--compile", `$a == "x" ^ $b == "y"`, "-v", "a=x", "-v", "b=y"},
			want: "false\n",
		},
		{
			name:  "eval from stdin",
			stdin: "  $a == \"x\"\n",
			args:  []string{"eval", "-", "-v", "a=y"},
			want:  "false\n",
		},
		{
			name: "fmt default native",
			args: []string{"fmt", `$a=="x"&&($b=="y"||$c=="z")`},
			want: `$a == "x" && ($b == "y" || $c == "z")` + "\n",
		},
		{
			name:  "fmt native from stdin",
			stdin: `!($a=="x")`,
			args:  []string{"fmt", "native", "-"},
			want:  `!($a == "x")` + "\n",
		},
		{
			name: "fmt json compact",
			args: []string{"fmt", "json", "-i", "0", `$a == "x"`},
			want: `{"left":{"variable":"a"},"op":"EQUAL","right":{"literal":"x"}}` + "\n",
		},
		{
			name:  "read tree from stdin",
			stdin: `<archetype-script><help>hi</help></archetype-script>`,
			args:  []string{"read"},
			want:  "archetype-script\n  help \"hi\"\n",
		},
		{
			name:  "repl piped lines",
			stdin: ":set b y\n$a == \"x\" && $b == \"y\"\n:quit\n",
			args:  []string{"repl", "--no-history", "-v", "a=x"},
			want:  "true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runArgs(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("run(%q) error = %v", tt.args, err)
			}

			if got != tt.want {
				t.Errorf("run(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"parse", "", []string{"eval", `$a ==`}, cmd.ErrParse},
		{"unresolved", "", []string{"eval", `$a == "x"`}, cmd.ErrUnresolved},
		{"bad var", "", []string{"eval", `$a == "x"`, "-v", "a"}, cmd.ErrInvalidVariable},
		{"missing vars file", "", []string{"eval", `$a == "x"`, "--vars-file", "/does/not/exist.env"}, cmd.ErrVarsFile},
		{"descriptor", "<step/>", []string{"read", "-"}, cmd.ErrReadDescriptor},
		{"missing source", "", []string{"read", "/does/not/exist.xml"}, cmd.ErrReadSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runArgs(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("run(%q) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunVarsFile(t *testing.T) {
	dir := t.TempDir()

	env := filepath.Join(dir, "build.env")
	if err := os.WriteFile(env, []byte("os=linux\narch=amd64\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	yml := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(yml, []byte("arch: arm64\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := runArgs(t, "",
		"eval", `$os == "linux" && $arch == "arm64"`,
		"--vars-file", env, "--vars-file", yml)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got != "true\n" {
		t.Errorf("run() = %q, want %q", got, "true\n")
	}
}

func TestRunVersion(t *testing.T) {
	var (
		out  bytes.Buffer
		code = -1
	)

	stdio := cmd.Stdio{In: strings.NewReader(""), Out: &out, Err: &out}

	// The exit function does not stop parsing, so the missing command error
	// that follows is ignored.
	_ = run(t.Context(), func(c int) { code = c }, stdio, "--version")

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if want := pkg.Name + " " + pkg.Version(); !strings.Contains(out.String(), want) {
		t.Errorf("output = %q, want it to contain %q", out.String(), want)
	}
}

func TestRunInit(t *testing.T) {
	path := configPath(baseConfig)
	t.Cleanup(func() { os.Remove(path) })

	if _, err := runArgs(t, "", "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}

	for _, want := range []string{"log-level: info", "log-format: text", "log-caller: false"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config missing %q:\n%s", want, data)
		}
	}

	if strings.Contains(string(data), "help") || strings.Contains(string(data), "version") {
		t.Errorf("config contains ignored flags:\n%s", data)
	}

	// A second run must not clobber the file.
	_, err = runArgs(t, "", "init")
	if !errors.Is(err, cmd.ErrWriteConfig) || !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second init error = %v, want %v wrapping %v",
			err, cmd.ErrWriteConfig, cmd.ErrFileExists)
	}

	if _, err := runArgs(t, "", "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}

	// The written file is read back as configuration.
	got, err := runArgs(t, "", "eval", `$a == "b"`, "-v", "a=b")
	if err != nil || got != "true\n" {
		t.Errorf("eval with config = %q, %v", got, err)
	}
}
