package svg

import (
	"io"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dagsvg/pkg/errors"
)

// Default rendering values.
const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400
	DefaultScaleX       = 200
	DefaultScaleY       = 140
	DefaultNodeRadius   = 28
	DefaultNodeColor    = "#CCE5FF"
	DefaultEdgeColor    = "#333333"
	DefaultArrowOffset  = 6
)

// Config holds the canvas geometry and styling for a render. Each render
// takes its own Config, so renders with different styles can coexist.
type Config struct {
	CanvasWidth  int     `toml:"canvas_width"`  // pixels
	CanvasHeight int     `toml:"canvas_height"` // pixels
	ScaleX       float64 `toml:"scale_x"`       // pixels per layout unit, horizontal
	ScaleY       float64 `toml:"scale_y"`       // pixels per layout unit, vertical
	NodeRadius   float64 `toml:"node_radius"`
	NodeColor    string  `toml:"node_color"`   // circle fill
	EdgeColor    string  `toml:"edge_color"`   // lines, circle strokes, arrowhead
	ArrowOffset  float64 `toml:"arrow_offset"` // extra clearance at the target end for the arrowhead
}

// DefaultConfig returns the configuration used by the dagsvg command.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		ScaleX:       DefaultScaleX,
		ScaleY:       DefaultScaleY,
		NodeRadius:   DefaultNodeRadius,
		NodeColor:    DefaultNodeColor,
		EdgeColor:    DefaultEdgeColor,
		ArrowOffset:  DefaultArrowOffset,
	}
}

// Validate reports the first out-of-range field as an
// [errors.ErrCodeInvalidConfig] error.
func (c Config) Validate() error {
	switch {
	case !finite(c.ScaleX, c.ScaleY, c.NodeRadius, c.ArrowOffset):
		return errors.New(errors.ErrCodeInvalidConfig, "scale, radius and arrow offset must be finite numbers")
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	case c.ScaleX <= 0 || c.ScaleY <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %gx%g", c.ScaleX, c.ScaleY)
	case c.NodeRadius <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "node radius must be positive, got %g", c.NodeRadius)
	case c.ArrowOffset < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "arrow offset must not be negative, got %g", c.ArrowOffset)
	case c.NodeColor == "" || c.EdgeColor == "":
		return errors.New(errors.ErrCodeInvalidConfig, "node and edge colors must be set")
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LoadConfig reads a TOML file on top of [DefaultConfig]. Keys missing
// from the file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// WriteTOML encodes c as TOML to w, in the format read by [LoadConfig].
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
