package linprog_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/linprog"
)

// ExampleSimplex_Solve maximizes x + y over the unit box [-1,1]².
//
// Infeasible and unbounded outcomes arrive through Result.Status, not
// through the error return; only numeric breakdown is an error.
func ExampleSimplex_Solve() {
	a := mat.NewDense(4, 2, []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	})
	res, _ := linprog.NewSimplex().Solve(linprog.Problem{
		C:        []float64{1, 1},
		A:        a,
		B:        []float64{1, 1, 1, 1},
		Maximize: true,
	})

	fmt.Printf("status=%s value=%.0f x=(%.0f, %.0f)\n", res.Status, res.Value, res.X[0], res.X[1])
	// Output:
	// status=optimal value=2 x=(1, 1)
}
