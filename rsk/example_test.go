package rsk_test

import (
	"fmt"

	"github.com/katalvlaran/rskperm/rsk"
	"github.com/katalvlaran/rskperm/tableau"
)

// ExampleInverse contrasts the shortcut with canonical inverse RSK on a 2×2 pair.
func ExampleInverse() {
	P, _ := tableau.FromRows([][]int{{1, 2}, {3, 4}})
	Q, _ := tableau.FromRows([][]int{{1, 3}, {2, 4}})

	short, _ := rsk.Inverse(P.Clone(), Q.Clone())
	bumped, _ := rsk.InverseBumping(P.Clone(), Q.Clone())
	fmt.Println("shortcut:", short)
	fmt.Println("bumping: ", bumped)
	// Output:
	// shortcut: [1 3 2 4]
	// bumping:  [3 1 4 2]
}
