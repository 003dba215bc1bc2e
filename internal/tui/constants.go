package tui

// Package-level constants to avoid magic numbers and improve readability.
// Widget steps and bounds mirror the planning inputs: depth and cell size
// are free numeric fields with fine/coarse increments, overlap is a
// percentage slider, and the remaining inputs cycle fixed option lists.
const (
	depthStep   = 0.1
	depthCoarse = 1.0
	depthMin    = 0.0
	depthMax    = 400.0

	cellStep   = 0.01
	cellCoarse = 0.1
	cellMin    = 0.01
	cellMax    = 10.0

	overlapStep   = 1.0
	overlapCoarse = 5.0
	overlapMin    = 0.0

	// tableMaxRows caps the visible sweep rows so the optimal banner and
	// help line stay on screen in short terminals.
	tableMaxRows = 28
)
