package shape_test

import (
	"fmt"

	"github.com/katalvlaran/rskperm/shape"
)

// ExampleParse shows the repetition syntax.
func ExampleParse() {
	p, err := shape.Parse("4, 3^2, 1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, p.Size(), p.Conjugate())
	// Output:
	// 4,3^2,1 11 4,3^2,1
}
