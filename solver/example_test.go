package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/solver"
	"github.com/katalvlaran/itersolve/vector"
)

// ExampleLookup solves a small SPD system with the top-ranked setup.
func ExampleLookup() {
	setup := solver.Setups()[0]
	a, _ := matrix.NewFromRows([][]float64{{4, 1}, {1, 3}})
	b := vector.FromSlice([]float64{1, 2})
	x, _ := vector.New[float64](2)

	ctl := iterate.DefaultController[float64]()
	status, err := setup.NewSolver().Solve(context.Background(), a, b, x, ctl, setup.NewPreconditioner())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s %s x=[%.4f, %.4f]\n", setup.Name, status, x.Raw()[0], x.Raw()[1])
	// Output: cg Converged x=[0.0909, 0.6364]
}
