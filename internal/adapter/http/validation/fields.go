// Package validation turns raw HTTP input into typed domain intents. Rules
// run in a fixed order and the first failure is returned as a
// *domain.ValidationError naming the offending field.
package validation

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/go-playground/validator/v10"

	"shoplist/internal/core/domain"
)

var validate = validator.New()

// IsID reports whether value is a canonical UUID.
func IsID(value string) bool {
	return validate.Var(value, "required,uuid") == nil
}

// DecodeObject parses a request body that must be a JSON object.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, domain.NewValidationError("body", domain.ReasonMalformedBody)
	}
	return raw, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func decodeString(raw json.RawMessage, field string) (string, error) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", domain.NewValidationError(field, domain.ReasonWrongType)
	}
	return value, nil
}

func decodeBool(raw json.RawMessage, field string) (bool, error) {
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, domain.NewValidationError(field, domain.ReasonNotBoolean)
	}
	return value, nil
}

// decodeInteger accepts any JSON number with no fractional part.
func decodeInteger(raw json.RawMessage, field string) (int, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, domain.NewValidationError(field, domain.ReasonWrongType)
	}

	number, ok := value.(float64)
	if !ok {
		return 0, domain.NewValidationError(field, domain.ReasonWrongType)
	}
	if number != math.Trunc(number) || number > math.MaxInt32 || number < math.MinInt32 {
		return 0, domain.NewValidationError(field, domain.ReasonNotInteger)
	}

	return int(number), nil
}
