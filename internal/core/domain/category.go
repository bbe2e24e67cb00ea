package domain

import "time"

const CategoryNameMaxLength = 60

// DefaultCategories are the categories a fresh installation starts with.
var DefaultCategories = []string{"Mercearia", "Hortifruti", "Açougue", "Padaria", "Bebidas"}

type Category struct {
	ID         string
	Name       string
	ItemsCount *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
