package sweep

import "math"

// Angle sweep bounds. Ranges run from a depth-dependent start angle down to
// 5 degrees inclusive, in 5 degree steps, widest first.
const (
	angleStep = 5
	angleStop = 4 // iterate while angle > angleStop

	startShallow  = 140 // depth < 7 m: shallow water supports a broad sweep
	startDefault  = 120
	startDeepFine = 100 // deep water + fine grid: wide swaths leave sparse edge cells

	shallowDepthMax = 7.0
	deepDepthMin    = 40.0
	fineCellMax     = 0.25
)

// AngleResult is one row of the sweep table, immutable once computed.
// Spacing and coverage are rounded to 2 decimals and hits to 1 decimal for
// presentation; Meets is decided on the unrounded hit count.
type AngleResult struct {
	OpeningAngleDeg int     `json:"opening_angle_deg"`
	LineSpacingM    float64 `json:"line_spacing_m"`
	TotalCoverageM  float64 `json:"total_coverage_m"`
	HitsPerCell     float64 `json:"hits_per_cell"`
	Meets           bool    `json:"meets_requirement"`
}

// Result is the outcome of one evaluation: the full table in descending
// angle order plus the widest angle that met the requirement, if any.
type Result struct {
	Config  Config        `json:"config"`
	Results []AngleResult `json:"results"`
	Optimal *AngleResult  `json:"optimal,omitempty"`
}

// Evaluator runs angle sweeps against a fixed set of model constants.
// Evaluations are pure and independent; a single Evaluator is safe to share.
type Evaluator struct {
	model Model
}

// NewEvaluator returns an Evaluator using the given model constants.
func NewEvaluator(m Model) *Evaluator {
	return &Evaluator{model: m}
}

// PingRate estimates the ping repetition rate in Hz for a given depth in
// meters, from the acoustic round-trip time to the seafloor and back.
// Non-positive depths fall back to 1 Hz instead of dividing by zero.
func (e *Evaluator) PingRate(depth float64) float64 {
	if depth <= 0 {
		return 1
	}
	return e.model.SoundSpeed / (2 * depth)
}

// HitsPerCell returns the expected sounding count per grid cell for the
// given swath geometry. Degenerate swath or speed zero out the matching
// density term, so impossible geometries fail the threshold instead of
// raising.
func (e *Evaluator) HitsPerCell(swathM, pingRateHz float64, beamCount int, speedMS, cellSizeM float64) float64 {
	var densityAcross float64 // beams per meter, cross-track
	if swathM > 0 {
		densityAcross = float64(beamCount) / swathM
	}
	var densityAlong float64 // pings per meter, along-track
	if speedMS > 0 {
		densityAlong = pingRateHz / speedMS
	}
	return e.model.CorrectionFactor * densityAcross * cellSizeM * densityAlong * cellSizeM
}

// AngleRange returns the candidate opening angles for the given depth and
// cell size, widest first. The thresholds are field-calibrated; keep the
// three-way branch as-is.
func AngleRange(depth, cellSize float64) []int {
	start := startDefault
	switch {
	case depth < shallowDepthMax:
		start = startShallow
	case depth > deepDepthMin && cellSize <= fineCellMax:
		start = startDeepFine
	}
	angles := make([]int, 0, start/angleStep)
	for a := start; a > angleStop; a -= angleStep {
		angles = append(angles, a)
	}
	return angles
}

// Evaluate runs the full angle sweep for cfg and selects the widest opening
// angle whose expected hit count meets the minimum. A nil Optimal means no
// candidate angle satisfied the requirement.
func (e *Evaluator) Evaluate(cfg Config) Result {
	speedMS := cfg.SpeedKnots * e.model.KnotToMS
	pingRate := e.PingRate(cfg.Depth)

	angles := AngleRange(cfg.Depth, cfg.CellSize)
	res := Result{
		Config:  cfg,
		Results: make([]AngleResult, 0, len(angles)),
	}

	for _, angle := range angles {
		theta := float64(angle) * math.Pi / 180
		swath := 2 * cfg.Depth * math.Tan(theta/2) // total coverage for a single pass

		hits := e.HitsPerCell(swath, pingRate, cfg.BeamCount, speedMS, cfg.CellSize)
		spacing := swath * (1 - cfg.OverlapPercent/100)

		res.Results = append(res.Results, AngleResult{
			OpeningAngleDeg: angle,
			LineSpacingM:    round2(spacing),
			TotalCoverageM:  round2(swath),
			HitsPerCell:     round1(hits),
			Meets:           hits >= float64(cfg.MinHitCount),
		})
	}

	// Widest valid angle wins: wider swath means fewer survey lines.
	for i := range res.Results {
		if res.Results[i].Meets {
			res.Optimal = &res.Results[i]
			break
		}
	}
	return res
}

// Evaluate runs a sweep with the default model constants.
func Evaluate(cfg Config) Result {
	return NewEvaluator(DefaultModel()).Evaluate(cfg)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
