package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const demoDescriptor = `<?xml version="1.0"?>
<archetype-script>
  <help>Demo</help>
  <step label="Basics">
    <input>
      <boolean name="docker" label="Docker?"/>
    </input>
  </step>
</archetype-script>
`

func TestReadTree(t *testing.T) {
	var out bytes.Buffer

	r := Read{Format: "tree", Indent: 2, Source: "-"}
	if err := r.Run(t.Context(), Stdio{In: strings.NewReader(demoDescriptor), Out: &out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		`archetype-script`,
		`  help "Demo"`,
		`  step "Basics"`,
		`    input`,
		`      boolean docker "Docker?"`,
		``,
	}, "\n")

	if out.String() != want {
		t.Errorf("Run() =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "archetype.xml", demoDescriptor)

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer

			r := Read{Format: format, Indent: 2, Source: path}
			if err := r.Run(t.Context(), Stdio{Out: &out}); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			var doc struct {
				Help  string `json:"help"`
				Steps []struct {
					Label string `json:"label"`
				} `json:"steps"`
			}

			var err error
			if format == "json" {
				err = json.Unmarshal(out.Bytes(), &doc)
			} else {
				err = yaml.Unmarshal(out.Bytes(), &doc)
			}

			if err != nil {
				t.Fatalf("output is not %s: %v\n%s", format, err, out.String())
			}

			if doc.Help != "Demo" || len(doc.Steps) != 1 || doc.Steps[0].Label != "Basics" {
				t.Errorf("Run() decoded = %+v", doc)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdin  string
		want   error
	}{
		{"missing file", "/does/not/exist.xml", "", ErrReadSource},
		{"wrong root", "-", "<script/>", ErrReadDescriptor},
		{"malformed", "-", "<archetype-script>", ErrReadDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Read{Format: "tree", Indent: 2, Source: tt.source}

			err := r.Run(t.Context(), Stdio{In: strings.NewReader(tt.stdin)})
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
