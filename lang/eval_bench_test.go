package lang

import "testing"

var benchExprs = []struct {
	name string
	expr string
}{
	{"single_compare", `$os == "linux"`},
	{"xor", `$flavor == "se" ^ $docker == "true"`},
	{"nested", `!($os == "darwin") && ($arch == "amd64" || $arch == "arm64") && $docker != "false"`},
}

var benchVars = map[string]string{
	"os":     "linux",
	"arch":   "arm64",
	"flavor": "se",
	"docker": "true",
}

// BenchmarkEvaluate benchmarks tree-walking evaluation of parsed expressions.
func BenchmarkEvaluate(b *testing.B) {
	for _, tt := range benchExprs {
		b.Run(tt.name, func(b *testing.B) {
			expr, err := Parse(b.Context(), tt.expr)
			if err != nil {
				b.Fatalf("parse error: %v", err)
			}

			b.ReportAllocs()

			for b.Loop() {
				if _, err := EvaluateMap(expr, benchVars); err != nil {
					b.Fatalf("eval error: %v", err)
				}
			}
		})
	}
}

// BenchmarkProgramRun benchmarks compiled programs against the same inputs.
func BenchmarkProgramRun(b *testing.B) {
	resolve := func(name string) (string, bool) {
		v, ok := benchVars[name]

		return v, ok
	}

	for _, tt := range benchExprs {
		b.Run(tt.name, func(b *testing.B) {
			program, err := Compile(MustParse(tt.expr))
			if err != nil {
				b.Fatalf("compile error: %v", err)
			}

			b.ReportAllocs()

			for b.Loop() {
				if _, err := program.Run(resolve); err != nil {
					b.Fatalf("run error: %v", err)
				}
			}
		})
	}
}

// BenchmarkParse benchmarks parsing alone.
func BenchmarkParse(b *testing.B) {
	for _, tt := range benchExprs {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if _, err := Parse(b.Context(), tt.expr); err != nil {
					b.Fatalf("parse error: %v", err)
				}
			}
		})
	}
}
