package prediction

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/diapredict/diapredict/pkg/domain"
)

// Validator checks raw request payloads against the canonical feature
// set before anything is sent upstream.
type Validator struct{}

// NewValidator creates a new input validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate confirms every canonical feature is present and carries a
// finite numeric value, and returns the values in canonical order.
// Unknown extra fields are ignored. Range checking of the normalized
// values is intentionally not performed here; it is an extension point.
func (v *Validator) Validate(input map[string]any) (domain.FeatureVector, error) {
	var vec domain.FeatureVector

	for i, name := range domain.FeatureNames {
		raw, ok := input[name]
		if !ok {
			return vec, &domain.MissingFieldError{Field: name}
		}

		value, err := coerceFloat(raw)
		if err != nil {
			return vec, &domain.ValidationError{Field: name, Reason: "must be a number"}
		}

		if math.IsNaN(value) || math.IsInf(value, 0) {
			return vec, &domain.ValidationError{Field: name, Reason: "must be finite"}
		}

		vec[i] = value
	}

	return vec, nil
}

// coerceFloat converts the JSON-decoded value to a float64. Numeric
// strings are accepted to match the original form-submission behavior.
func coerceFloat(raw any) (float64, error) {
	switch val := raw.(type) {
	case float64:
		return val, nil
	case json.Number:
		return val.Float64()
	case string:
		return strconv.ParseFloat(val, 64)
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, strconv.ErrSyntax
	}
}
