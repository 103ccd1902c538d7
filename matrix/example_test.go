// File: matrix/example_test.go
package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rskperm/matrix"
)

// ExampleFromPermutation renders σ = [2,4,1,3] as a text grid.
func ExampleFromPermutation() {
	m, err := matrix.FromPermutation([]int{2, 4, 1, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = matrix.Render(os.Stdout, m, 'X', '.')
	// Output:
	// .X..
	// ...X
	// X...
	// ..X.
}
