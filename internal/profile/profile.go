// Package profile defines the cryptographic architecture profiles under
// comparison and the registry that owns them.
//
// A Profile is a plain record of named attributes — no behavior. All
// validation happens at registration time; a profile that made it into a
// Registry is immutable and safe to evaluate without further checks.
package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Bounds shared by the four numeric dimensions.
const (
	DimensionMin = 0.0
	DimensionMax = 10.0
)

// Profile describes one cryptographic architecture's abstract quality
// dimensions. The four numerics live in [0,10] inclusive; out-of-range
// values are a validation error, never silently clamped.
type Profile struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Family      string `json:"family" yaml:"family" validate:"required"`
	Description string `json:"description" yaml:"description"`

	// Benefit dimensions — higher is better.
	PrivacyStrength    float64 `json:"privacy_strength" yaml:"privacy_strength" validate:"gte=0,lte=10"`
	SoundnessGuarantee float64 `json:"soundness_guarantee" yaml:"soundness_guarantee" validate:"gte=0,lte=10"`

	// Cost dimensions — higher is worse.
	ProvingCost      float64 `json:"proving_cost" yaml:"proving_cost" validate:"gte=0,lte=10"`
	VerificationCost float64 `json:"verification_cost" yaml:"verification_cost" validate:"gte=0,lte=10"`
}

// ValidationError reports a profile whose fields violate the declared
// invariants: empty name, duplicate name, or a numeric dimension outside
// [0,10]. It is raised at registration time, never at evaluation time.
type ValidationError struct {
	Profile string // offending profile's name; "<unnamed>" rendering when empty
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	name := e.Profile
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("profile %q: field %s: %s", name, e.Field, e.Reason)
}

// validate is shared by every Validate call; validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks p against the declared invariants and returns a
// *ValidationError naming the first offending field. Duplicate-name
// detection is the Registry's job — the record alone cannot see the
// collection.
func (p Profile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate profile %q: %w", p.Name, err)
	}
	fe := fieldErrs[0]
	return &ValidationError{
		Profile: p.Name,
		Field:   fe.Field(),
		Reason:  reasonFor(fe),
	}
}

// reasonFor turns a validator field error into a human-readable reason.
func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return fmt.Sprintf("must be >= %s (got %v)", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s (got %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("violates %q constraint", fe.Tag())
	}
}
