package cleave_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cleave-go/cleave"
)

// BenchmarkReduceSum measures the parallel sum of a mapped slice across
// input sizes, compared to a plain sequential loop.
func BenchmarkReduceSum(b *testing.B) {
	for _, n := range []int{1_000, 100_000, 1_000_000} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		b.Run(sizeName(n), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				it := cleave.Map(cleave.Slice(items), func(v int) int { return v * 2 })
				_, _ = cleave.Reduce(ctx, it, 0,
					func(acc, v int) int { return acc + v },
					func(a, b int) int { return a + b },
					cleave.WithThreshold(4096),
				)
			}
		})
	}
}

// BenchmarkSequentialSum is the baseline: a plain loop over the slice.
func BenchmarkSequentialSum(b *testing.B) {
	for _, n := range []int{1_000, 100_000, 1_000_000} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		b.Run(sizeName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sum := 0
				for _, v := range items {
					sum += v * 2
				}
				_ = sum
			}
		})
	}
}

// BenchmarkReduceThresholds shows the cost of over-splitting: the same
// input reduced with progressively smaller sequential cutoffs.
func BenchmarkReduceThresholds(b *testing.B) {
	items := make([]int, 100_000)
	for i := range items {
		items[i] = i
	}
	for _, threshold := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("threshold-%d", threshold), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_, _ = cleave.Reduce(ctx, cleave.Slice(items), 0,
					func(acc, v int) int { return acc + v },
					func(a, b int) int { return a + b },
					cleave.WithThreshold(threshold),
				)
			}
		})
	}
}

func sizeName(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%dm", n/1_000_000)
	}
	return fmt.Sprintf("%dk", n/1_000)
}
