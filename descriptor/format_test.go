package descriptor

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func demoScript(t *testing.T) *Script {
	t.Helper()

	s, err := read(t,
		OpenEvent("archetype-script", "name", "demo"),
		OpenEvent("help"),
		TextEvent("Demo"),
		CloseEvent("help"),
		OpenEvent("context"),
		OpenEvent("text", "path", "app.name"),
		TextEvent("hello"),
		CloseEvent("text"),
		CloseEvent("context"),
		OpenEvent("step", "label", "Basics"),
		OpenEvent("input"),
		OpenEvent("boolean", "name", "docker", "label", "Docker?"),
		OpenEvent("output"),
		OpenEvent("file", "source", "Dockerfile", "target", "Dockerfile"),
		CloseEvent("file"),
		CloseEvent("output"),
		CloseEvent("boolean"),
		CloseEvent("input"),
		CloseEvent("step"),
		OpenEvent("output", "if", `$docker == "true"`),
		OpenEvent("model"),
		OpenEvent("value", "key", "name", "order", "1"),
		TextEvent("x"),
		CloseEvent("value"),
		OpenEvent("list", "key", "deps"),
		OpenEvent("value"),
		TextEvent("a"),
		CloseEvent("value"),
		CloseEvent("list"),
		CloseEvent("model"),
		CloseEvent("output"),
		CloseEvent("archetype-script"),
	)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	return s
}

func TestFormatTree(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTree(t.Context(), &buf, demoScript(t), 2); err != nil {
		t.Fatalf("FormatTree() error = %v", err)
	}

	want := strings.Join([]string{
		`archetype-script`,
		`  help "Demo"`,
		`  context`,
		`    text app.name = "hello"`,
		`  step "Basics"`,
		`    input`,
		`      boolean docker "Docker?"`,
		`        output`,
		`          file Dockerfile -> Dockerfile`,
		`  output if $docker == "true"`,
		`    model`,
		`      value name = "x" (order 1)`,
		`      list deps (order 100)`,
		`        value "a" (order 100)`,
		``,
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("FormatTree() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, demoScript(t), 2); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	var doc struct {
		Steps []struct {
			Inputs []struct {
				Entries []map[string]struct {
					Name   string `json:"name"`
					Output struct {
						Files []File `json:"files"`
					} `json:"output"`
				} `json:"entries"`
			} `json:"inputs"`
		} `json:"steps"`
		Contexts []struct {
			Nodes []map[string]ContextText `json:"nodes"`
		} `json:"contexts"`
	}

	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	entry := doc.Steps[0].Inputs[0].Entries[0]["boolean"]
	if entry.Name != "docker" {
		t.Errorf("boolean entry name = %q, want docker", entry.Name)
	}

	if len(entry.Output.Files) != 1 || entry.Output.Files[0].Target != "Dockerfile" {
		t.Errorf("boolean entry output = %+v", entry.Output)
	}

	if got := doc.Contexts[0].Nodes[0]["text"]; got.Value != "hello" {
		t.Errorf("context text = %+v, want value hello", got)
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatYAML(t.Context(), &buf, demoScript(t), 2); err != nil {
		t.Fatalf("FormatYAML() error = %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}

	steps, ok := doc["steps"].([]any)
	if !ok || len(steps) != 1 {
		t.Fatalf("steps = %#v, want one step", doc["steps"])
	}

	if label := steps[0].(map[string]any)["label"]; label != "Basics" {
		t.Errorf("step label = %v, want Basics", label)
	}

	output, ok := doc["output"].(map[string]any)
	if !ok {
		t.Fatalf("output = %#v", doc["output"])
	}

	if output["if"] != `$docker == "true"` {
		t.Errorf("output if = %v", output["if"])
	}
}
