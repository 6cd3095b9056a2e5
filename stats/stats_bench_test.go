package stats

import (
	"fmt"
	"testing"
)

// BenchmarkMean compares the sequential and parallel mean reductions.
func BenchmarkMean(b *testing.B) {
	sizes := []int{1_000, 100_000, 1_000_000}

	for _, size := range sizes {
		data := randomData(size, 42)

		b.Run(fmt.Sprintf("Sequential_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Mean(data)
			}
		})

		b.Run(fmt.Sprintf("Parallel_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Mean(data, WithParallel(), WithParallelThreshold(1))
			}
		})
	}
}

// BenchmarkDotProduct compares the sequential and parallel dot products.
func BenchmarkDotProduct(b *testing.B) {
	sizes := []int{1_000, 100_000, 1_000_000}

	for _, size := range sizes {
		x := randomData(size, 42)
		y := randomData(size, 43)

		b.Run(fmt.Sprintf("Sequential_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = DotProduct(x, y)
			}
		})

		b.Run(fmt.Sprintf("Parallel_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = DotProduct(x, y, WithParallel(), WithParallelThreshold(1))
			}
		})
	}
}
