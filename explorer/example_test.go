package explorer_test

import (
	"fmt"

	"github.com/katalvlaran/pathscope/animation"
	"github.com/katalvlaran/pathscope/explorer"
)

// ExampleGraph_FindShortestPath shows a query followed by a full reveal.
func ExampleGraph_FindShortestPath() {
	g, err := explorer.NewGraph([][]int64{
		{0, 2, 3, 0},
		{2, 0, 0, 3},
		{3, 0, 0, 4},
		{0, 3, 4, 0},
	}, explorer.WithLabels([]string{"A", "B", "C", "D"}))
	if err != nil {
		fmt.Println(err)
		return
	}

	d, err := g.FindShortestPath(0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range g.PathNodes() {
		fmt.Print(n.Label, " ")
	}
	fmt.Println("=", d)

	g.StartAnimation()
	ticks := 0
	for g.Tick() != animation.Completed {
		ticks++
	}
	fmt.Println("ticks:", ticks)

	// Output:
	// A B D = 5
	// ticks: 39
}
