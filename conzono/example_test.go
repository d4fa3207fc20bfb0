package conzono_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/conzono"
	"github.com/katalvlaran/lvlset/set"
)

// ExampleConZonotope_SupportFunc shows how a coefficient constraint cuts
// the set below its zonotope enclosure.
//
// Scenario:
//
//	Two unit generators along the axes, coupled by β1 + β2 = 0: along the
//	diagonal direction the coupling cancels everything, while the
//	constraint-dropping enclosure still spans the full diagonal.
func ExampleConZonotope_SupportFunc() {
	g := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	cz, _ := conzono.New(
		mat.NewVecDense(2, []float64{0, 0}), g,
		mat.NewDense(1, 2, []float64{1, 1}), mat.NewVecDense(1, []float64{0}),
	)

	tied, _, _ := cz.SupportFunc(mat.NewVecDense(2, []float64{1, 1}), set.Upper)
	z, _ := cz.ToZonotope()
	free, _, _ := z.SupportFunc(mat.NewVecDense(2, []float64{1, 1}), set.Upper)
	fmt.Printf("constrained=%d enclosure=%d\n", int(math.Round(tied)), int(math.Round(free)))
	// Output:
	// constrained=0 enclosure=2
}
