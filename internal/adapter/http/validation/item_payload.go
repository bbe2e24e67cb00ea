package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"shoplist/internal/core/domain"
)

var itemUpdateFields = []string{"name", "quantity", "done", "categoryId"}

// BuildCreateItemInput checks name, quantity, done and categoryId in that
// order. Missing quantity and done take their defaults.
func BuildCreateItemInput(raw map[string]json.RawMessage) (domain.CreateItemInput, error) {
	input := domain.CreateItemInput{Quantity: domain.DefaultQuantity}

	if !hasJSONField(raw, "name") || isJSONNull(raw["name"]) {
		return domain.CreateItemInput{}, domain.NewValidationError("name", domain.ReasonRequired)
	}
	name, err := parseName(raw["name"], domain.ItemNameMaxLength)
	if err != nil {
		return domain.CreateItemInput{}, err
	}
	input.Name = name

	if hasJSONField(raw, "quantity") {
		quantity, err := parseQuantity(raw["quantity"])
		if err != nil {
			return domain.CreateItemInput{}, err
		}
		input.Quantity = quantity
	}

	if hasJSONField(raw, "done") {
		if isJSONNull(raw["done"]) {
			return domain.CreateItemInput{}, domain.NewValidationError("done", domain.ReasonNotNullable)
		}
		done, err := decodeBool(raw["done"], "done")
		if err != nil {
			return domain.CreateItemInput{}, err
		}
		input.Done = done
	}

	if hasJSONField(raw, "categoryId") {
		categoryID, err := parseCategoryID(raw["categoryId"])
		if err != nil {
			return domain.CreateItemInput{}, err
		}
		input.CategoryID = categoryID
	}

	return input, nil
}

// BuildUpdateItemInput requires at least one known field. null is only
// accepted for categoryId, where it unassigns the category.
func BuildUpdateItemInput(raw map[string]json.RawMessage) (domain.UpdateItemInput, error) {
	if !hasAnyField(raw, itemUpdateFields) {
		return domain.UpdateItemInput{}, domain.NewValidationError("body", domain.ReasonEmptyUpdate)
	}

	var input domain.UpdateItemInput

	if hasJSONField(raw, "name") {
		if isJSONNull(raw["name"]) {
			return domain.UpdateItemInput{}, domain.NewValidationError("name", domain.ReasonNotNullable)
		}
		name, err := parseName(raw["name"], domain.ItemNameMaxLength)
		if err != nil {
			return domain.UpdateItemInput{}, err
		}
		input.Name = &name
	}

	if hasJSONField(raw, "quantity") {
		quantity, err := parseQuantity(raw["quantity"])
		if err != nil {
			return domain.UpdateItemInput{}, err
		}
		input.Quantity = &quantity
	}

	if hasJSONField(raw, "done") {
		if isJSONNull(raw["done"]) {
			return domain.UpdateItemInput{}, domain.NewValidationError("done", domain.ReasonNotNullable)
		}
		done, err := decodeBool(raw["done"], "done")
		if err != nil {
			return domain.UpdateItemInput{}, err
		}
		input.Done = &done
	}

	if hasJSONField(raw, "categoryId") {
		categoryID, err := parseCategoryID(raw["categoryId"])
		if err != nil {
			return domain.UpdateItemInput{}, err
		}
		input.CategoryID = categoryID
		input.CategoryIDSet = true
	}

	return input, nil
}

func parseName(raw json.RawMessage, maxLength int) (string, error) {
	value, err := decodeString(raw, "name")
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(value)
	if validate.Var(name, "required") != nil {
		return "", domain.NewValidationError("name", domain.ReasonRequired)
	}
	if validate.Var(name, "max="+strconv.Itoa(maxLength)) != nil {
		return "", domain.NewValidationError("name", domain.ReasonTooLong).With("Max", maxLength)
	}

	return name, nil
}

func parseQuantity(raw json.RawMessage) (int, error) {
	if isJSONNull(raw) {
		return 0, domain.NewValidationError("quantity", domain.ReasonNotNullable)
	}

	quantity, err := decodeInteger(raw, "quantity")
	if err != nil {
		return 0, err
	}
	if validate.Var(quantity, "min=1") != nil {
		return 0, domain.NewValidationError("quantity", domain.ReasonTooSmall).With("Min", 1)
	}

	return quantity, nil
}

func parseCategoryID(raw json.RawMessage) (*string, error) {
	if isJSONNull(raw) {
		return nil, nil
	}

	value, err := decodeString(raw, "categoryId")
	if err != nil {
		return nil, err
	}

	categoryID := strings.TrimSpace(value)
	if !IsID(categoryID) {
		return nil, domain.NewValidationError("categoryId", domain.ReasonNotUUID)
	}

	return &categoryID, nil
}

func hasAnyField(raw map[string]json.RawMessage, fields []string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}
