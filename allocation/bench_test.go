package allocation_test

import (
	"testing"

	"github.com/katalvlaran/mecalloc/allocation"
	"github.com/katalvlaran/mecalloc/generator"
)

func benchStrategy(b *testing.B, s allocation.Strategy, n, delta int) {
	hg, err := generator.Random(n, delta, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Allocate(hg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSequentialSearch_100 measures the greedy pass on 50 placements.
func BenchmarkSequentialSearch_100(b *testing.B) {
	benchStrategy(b, allocation.NewSequentialSearch(), 100, 3)
}

// BenchmarkLocalSearch_100 measures greedy plus claw refinement, δ = 3.
func BenchmarkLocalSearch_100(b *testing.B) {
	l, err := allocation.NewLocalSearch()
	if err != nil {
		b.Fatal(err)
	}
	benchStrategy(b, l, 100, 3)
}
