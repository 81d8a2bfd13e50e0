package dag_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/dagsvg/pkg/dag"
)

func ExampleNew() {
	g, err := dag.New(
		[]string{"app", "lib", "core"},
		[]dag.Edge{{From: "app", To: "lib"}, {From: "lib", To: "core"}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.Edges())
	// Output:
	// Nodes: 3
	// Edges: [app->lib lib->core]
}

func ExampleNew_unknownTarget() {
	_, err := dag.New([]string{"app"}, []dag.Edge{{From: "app", To: "missing"}})
	fmt.Println(errors.Is(err, dag.ErrUnknownTargetNode))
	// Output: true
}
