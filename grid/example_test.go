// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/jpbougie/aoc2024/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Cells
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Cells builds a grid row by row and walks it in row-major order.
func ExampleGrid_Cells() {
	g := grid.New[rune](2)
	g.AddRow([]rune("ab"))
	g.AddRow([]rune("cd"))

	for c := range g.Cells() {
		fmt.Printf("(%d,%d)=%c ", c.Row, c.Col, c.Value)
	}
	fmt.Println()

	// Output:
	// (0,0)=a (0,1)=b (1,0)=c (1,1)=d
}

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleRegions groups plots of the same plant.
func ExampleRegions() {
	g := grid.New[rune](2)
	g.AddRow([]rune("AAB"))
	g.AddRow([]rune("ABB"))

	for i, r := range grid.Regions(g, grid.Equal[rune]) {
		fmt.Println("region", i, "size", len(r))
	}

	// Output:
	// region 0 size 3
	// region 1 size 3
}
