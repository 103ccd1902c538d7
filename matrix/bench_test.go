package matrix_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/rskperm/matrix"
)

// BenchmarkFromPermutationRender builds and renders a 300×300 permutation matrix.
func BenchmarkFromPermutationRender(b *testing.B) {
	const n = 300
	sigma := make([]int, n)
	for i := range sigma {
		sigma[i] = n - i
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, err := matrix.FromPermutation(sigma)
		if err != nil {
			b.Fatal(err)
		}
		if err = matrix.Render(io.Discard, m, 'X', '.'); err != nil {
			b.Fatal(err)
		}
	}
}
