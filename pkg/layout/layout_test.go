package layout

import (
	"testing"

	"github.com/matzehuels/dagsvg/pkg/dag"
	"github.com/matzehuels/dagsvg/pkg/errors"
)

func TestValidate(t *testing.T) {
	g := dag.Must([]string{"A", "B", "C"}, []dag.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})

	tests := []struct {
		name    string
		pos     Positions
		wantErr string
	}{
		{"all present", Positions{"A": {}, "B": {}, "C": {}}, ""},
		{"extra positions ignored", Positions{"A": {}, "B": {}, "C": {}, "Z": {}}, ""},
		{"one missing", Positions{"A": {}, "C": {}}, `no position for node "B"`},
		{"several missing", Positions{"B": {}}, `no position for nodes ["A" "C"]`},
		{"nil map", nil, `no position for nodes ["A" "B" "C"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate(g)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeMissingPosition) {
				t.Fatalf("Validate() error = %v, want MISSING_POSITION", err)
			}
			if got := errors.UserMessage(err); got != tt.wantErr {
				t.Errorf("message = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestExampleCoversExampleGraph(t *testing.T) {
	if err := Example().Validate(dag.Example()); err != nil {
		t.Fatalf("example positions incomplete: %v", err)
	}
	if p, ok := Example()["C"]; !ok || p != (Point{}) {
		t.Errorf("Example()[C] = %v, %v; want origin", p, ok)
	}
}
