package validate

// This package adds struct and field validation as a thin wrapper around the
// go-playground/validator package.
//
// e.g. internal/sweep/config.go
//   type Config struct {
//       ...
//       OverlapPercent float64 `json:"overlap_percent" validate:"gte=0,lt=100"`
//       BeamCount      int     `json:"beam_count" validate:"beams"`
//   }
//
// The custom `beams` tag restricts beam counts to the sonar head
// configurations the planner supports (512 or 1024 beams per ping).

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// `beams`: enumerated beam counts of supported MBES heads.
		_ = validatorInst.RegisterValidation("beams", func(fl validator.FieldLevel) bool {
			switch fl.Field().Int() {
			case 512, 1024:
				return true
			}
			return false
		})
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
