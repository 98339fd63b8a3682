package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func BenchmarkRunnerRun_EndToEnd(b *testing.B) {
	out := filepath.Join(b.TempDir(), "shape_gen.go")
	runner := newIntegrationRunner(&bytes.Buffer{})

	cfg := &Config{
		Path:     "github.com/seitarof/gen-shape/testdata/shapes",
		Filename: out,
		Jobs:     4,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runner.Run(context.Background(), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
