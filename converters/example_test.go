package converters_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/converters"
	"github.com/katalvlaran/lvgrid/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleGonum hands a matrix to gonum's formatter without copying it.
func ExampleGonum() {
	m, _ := matrix.New(2, 2, func(r, c int) float64 { return float64(r + c) })
	fmt.Printf("%v\n", mat.Formatted(converters.Gonum(m)))
	// Output:
	// ⎡0  1⎤
	// ⎣1  2⎦
}
