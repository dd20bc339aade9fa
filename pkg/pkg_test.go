package pkg

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "archetype"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if strings.TrimSpace(Description) == "" {
		t.Error("Expected Description to be non-empty")
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix(); got != "ARCHETYPE" {
		t.Errorf("Expected EnvPrefix to be %q, got %q", "ARCHETYPE", got)
	}
}

func TestVersion(t *testing.T) {
	// Tests run in the package directory, next to the embedded file.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version() != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version())
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}

	expectedName := "ardnew"
	expectedEmail := "andrew@ardnew.com"

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == expectedName && a.Email == expectedEmail
	}) {
		t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
	}
}

func TestAuthorStruct(t *testing.T) {
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestDirs(t *testing.T) {
	for name, dir := range map[string]func() string{
		"ConfigDir": ConfigDir,
		"CacheDir":  CacheDir,
	} {
		got := dir()
		if got == "" {
			t.Errorf("%s() is empty", name)

			continue
		}

		if filepath.Base(got) != Prefix() {
			t.Errorf("%s() = %q, want base %q", name, got, Prefix())
		}
	}
}

func TestPrefix(t *testing.T) {
	p := Prefix()
	if p == "" || strings.HasPrefix(p, ".") {
		t.Errorf("Prefix() = %q, want non-empty name without leading dot", p)
	}

	// The test binary is named after the package.
	if p != Name {
		t.Errorf("Prefix() = %q in test binary, want %q", p, Name)
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		exe  string
		want string
	}{
		{"/usr/local/bin/archetype", "archetype"},
		{"/opt/tools/skel", "skel"},
		{"archetype.exe", "archetype"},
		{"/home/me/.archetype", "archetype"},
		{"/tmp/__debug_bin3301", Name},
		{"/tmp/go-build/pkg.test", Name},
		{"/", Name},
		{"...", Name},
	}

	for _, tt := range tests {
		if got := prefixOf(tt.exe); got != tt.want {
			t.Errorf("prefixOf(%q) = %q, want %q", tt.exe, got, tt.want)
		}
	}
}
