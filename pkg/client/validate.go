package client

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxNameLength = 60

var (
	ErrNameRequired   = errors.New("name is required")
	ErrNameTooLong    = errors.New("name must be at most 60 characters")
	ErrQuantityTooLow = errors.New("quantity must be >= 1")
	ErrInvalidID      = errors.New("categoryId must be a valid id")
	ErrEmptyUpdate    = errors.New("nothing to update")
)

// ValidateItemCreate mirrors the server rules so obvious mistakes never
// leave the client.
func ValidateItemCreate(req ItemCreate) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.Quantity < 0 {
		return ErrQuantityTooLow
	}
	if req.CategoryID != nil && !isUUID(*req.CategoryID) {
		return ErrInvalidID
	}
	return nil
}

func ValidateItemUpdate(req ItemUpdate) error {
	if req.Name == nil && req.Quantity == nil && req.Done == nil && req.CategoryID == nil && !req.ClearCategory {
		return ErrEmptyUpdate
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return ErrQuantityTooLow
	}
	if req.CategoryID != nil && !req.ClearCategory && !isUUID(*req.CategoryID) {
		return ErrInvalidID
	}
	return nil
}

func ValidateCategoryName(name string) error {
	return validateName(name)
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func isUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
