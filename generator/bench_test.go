package generator_test

import (
	"testing"

	"github.com/katalvlaran/mecalloc/generator"
)

// BenchmarkRandom measures generating a 200-unit hypergraph with δ = 4.
func BenchmarkRandom(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Random(200, 4, generator.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
