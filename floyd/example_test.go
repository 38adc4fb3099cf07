package floyd_test

import (
	"fmt"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/network"
)

// ExampleSolve computes routes under two regimes on the same network.
func ExampleSolve() {
	g := network.New()
	_ = g.AddEdge("Lima", "Quito", network.Weights{Normal: 10, Rain: 12, Snow: 15, Storm: 20})
	_ = g.AddEdge("Quito", "Bogota", network.Weights{Normal: 5, Rain: 8, Snow: 10, Storm: 15})
	_ = g.AddEdge("Lima", "Bogota", network.Weights{Normal: 12, Rain: 15, Snow: 18, Storm: 40})

	for _, r := range []network.Regime{network.Normal, network.Storm} {
		sol, err := floyd.Solve(g, r)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(r, sol.Distance("Lima", "Bogota"), sol.Path("Lima", "Bogota"))
	}

	// Output:
	// normal 12 [Lima Bogota]
	// storm 35 [Lima Quito Bogota]
}
