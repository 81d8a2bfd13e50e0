package svg_test

import (
	"fmt"

	"github.com/matzehuels/dagsvg/pkg/layout"
	"github.com/matzehuels/dagsvg/pkg/render/svg"
)

func ExampleConfig_ToCanvas() {
	cfg := svg.DefaultConfig()
	x, y := cfg.ToCanvas(layout.Point{X: -1, Y: 1})
	fmt.Println(x, y)
	fmt.Println(cfg.FromCanvas(x, y))
	// Output:
	// 100 60
	// {-1 1}
}

func ExampleShorten() {
	s := svg.Shorten(svg.Segment{X1: 0, Y1: 0, X2: 30, Y2: 40}, 5, 10)
	fmt.Printf("%.0f %.0f %.0f %.0f (length %.0f)\n", s.X1, s.Y1, s.X2, s.Y2, s.Length())
	// Output: 3 4 24 32 (length 35)
}
