package validation

import (
	"encoding/json"

	"shoplist/internal/core/domain"
)

// BuildCategoryName validates the body of a category create or rename.
func BuildCategoryName(raw map[string]json.RawMessage) (string, error) {
	if !hasJSONField(raw, "name") || isJSONNull(raw["name"]) {
		return "", domain.NewValidationError("name", domain.ReasonRequired)
	}
	return parseName(raw["name"], domain.CategoryNameMaxLength)
}
