package sweep

// Model holds the acoustic-model constants the evaluator runs on. They are
// injected rather than hardcoded so they can be tuned and tested independently.
type Model struct {
	// SoundSpeed is the assumed speed of sound in seawater, in m/s.
	SoundSpeed float64
	// KnotToMS converts vessel speed from knots to m/s.
	KnotToMS float64
	// CorrectionFactor reconciles the idealized beam/ping density model with
	// field-observed sounding counts (beams overlap, outer beams are
	// wider-spaced). Empirically calibrated; not independently derived.
	CorrectionFactor float64
}

// DefaultModel returns the calibrated constants used for planning.
func DefaultModel() Model {
	return Model{
		SoundSpeed:       1500.0,
		KnotToMS:         0.514444,
		CorrectionFactor: 0.325,
	}
}
