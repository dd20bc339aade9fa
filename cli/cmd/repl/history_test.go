package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistoryMemory(t *testing.T) {
	h := NewHistory("")

	for _, line := range []string{"a", "b", "  ", "a", "a"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) error = %v", line, err)
		}
	}

	if diff := cmp.Diff([]string{"b", "a"}, h.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	if err := h.Load(); err != nil {
		t.Errorf("Load() error = %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d after Load without a file, want 2", h.Len())
	}
}

func TestHistoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() of missing file error = %v", err)
	}

	for _, line := range []string{`$a == "x"`, ":vars", `$a == "x"`, ":q"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) error = %v", line, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := ":vars\n$a == \"x\"\n:q\n"; string(data) != want {
		t.Errorf("history file = %q, want %q", data, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff(h.Entries(), reloaded.Entries()); diff != "" {
		t.Errorf("reloaded entries mismatch (-written +loaded):\n%s", diff)
	}

	line, err := reloaded.GetLine(0)
	if err != nil || line != ":vars" {
		t.Errorf("GetLine(0) = %q, %v, want :vars", line, err)
	}

	for _, i := range []int{-1, reloaded.Len()} {
		if _, err := reloaded.GetLine(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetLine(%d) error = %v, want %v", i, err, ErrOutOfBounds)
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	h.limit = 3

	for _, line := range []string{"1", "2", "3", "4", "5"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) error = %v", line, err)
		}
	}

	if diff := cmp.Diff([]string{"3", "4", "5"}, h.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "3\n4\n5\n" {
		t.Errorf("history file = %q, want trimmed entries", data)
	}
}
