package preset

import "github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"

// Builtins returns the shipped presets. These mirror the three survey
// profiles the tool grew out of: shallow coastal work, the standard
// profile, and deep water gridded at fine resolution. They are
// configuration data, not separate code paths; all three run through the
// same evaluator.
func Builtins() map[string]sweep.Config {
	return map[string]sweep.Config{
		"shallow": {
			Depth:          5,
			CellSize:       0.25,
			OverlapPercent: 20,
			MinHitCount:    3,
			BeamCount:      512,
			SpeedKnots:     3,
		},
		"standard": sweep.DefaultConfig(),
		"deep-fine": {
			Depth:          60,
			CellSize:       0.25,
			OverlapPercent: 30,
			MinHitCount:    5,
			BeamCount:      1024,
			SpeedKnots:     4,
		},
	}
}
