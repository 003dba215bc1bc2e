package sweep

// Config holds the acquisition parameters for a single evaluation.
// All fields are plain survey-planning inputs; vessel speed stays in knots
// at this boundary and is converted to m/s inside the evaluator.
type Config struct {
	// Depth is the water depth in meters used for swath and ping rate calculations.
	Depth float64 `json:"depth" yaml:"depth" validate:"gte=0,lte=400"`
	// CellSize is the side length of the target grid cell in meters.
	CellSize float64 `json:"cell_size" yaml:"cell_size" validate:"gt=0"`
	// OverlapPercent is the swath overlap between adjacent lines, in percent.
	OverlapPercent float64 `json:"overlap_percent" yaml:"overlap_percent" validate:"gte=0,lt=100"`
	// MinHitCount is the minimum number of soundings required per grid cell.
	MinHitCount int `json:"min_hit_count" yaml:"min_hit_count" validate:"gte=1"`
	// BeamCount is the number of beams emitted per ping (typically 512 or 1024).
	BeamCount int `json:"beam_count" yaml:"beam_count" validate:"beams"`
	// SpeedKnots is the vessel speed during acquisition, in knots.
	SpeedKnots float64 `json:"speed_knots" yaml:"speed_knots" validate:"gt=0"`
}

// Option lists enforced by the input layers (CLI flags and TUI widgets).
// The core itself only requires the validate-tag domains above.
//
//nolint:gochecknoglobals // Shared immutable option lists.
var (
	HitCountOptions = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	BeamOptions     = []int{512, 1024}
	SpeedOptions    = []float64{2, 3, 4, 5, 6, 7, 8}
)

// MaxOverlapPercent caps the overlap widgets. The formula tolerates any
// overlap below 100, but spacing below 20% of the swath is not a plan
// anyone runs, so the input layers stop at 80.
const MaxOverlapPercent = 80

// DefaultConfig returns the recommended starting parameters: 20 m depth,
// 1 m cells, 20% overlap, 3 hits per cell, 1024 beams, 4 knots.
func DefaultConfig() Config {
	return Config{
		Depth:          20,
		CellSize:       1.0,
		OverlapPercent: 20,
		MinHitCount:    3,
		BeamCount:      1024,
		SpeedKnots:     4,
	}
}
