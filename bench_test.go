package spandex_test

import (
	"testing"

	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/rtree"
	"github.com/jimisaacs/spandex/zorder"
)

// BenchmarkAdversarialPatterns measures insertion throughput under the
// three fragmentation-bound stress patterns (concentric, diagonal,
// checkerboard), for both backend implementations, as sub-benchmarks.
func BenchmarkAdversarialPatterns(b *testing.B) {
	patterns := []struct {
		name string
		ins  []adversarialInsert
	}{
		{"Concentric", concentricPattern(50)},
		{"Diagonal", diagonalPattern(100)},
		{"Checkerboard", checkerboardPattern(60)},
	}
	backends := []struct {
		name    string
		factory func() backend.Backend
	}{
		{"Zorder", func() backend.Backend { return zorder.New() }},
		{"Rtree", func() backend.Backend { return rtree.New() }},
	}

	for _, p := range patterns {
		p := p
		b.Run(p.name, func(b *testing.B) {
			for _, bk := range backends {
				bk := bk
				b.Run(bk.name, func(b *testing.B) {
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						store := bk.factory()
						_ = applyPattern(store, p.ins)
					}
				})
			}
		})
	}
}
