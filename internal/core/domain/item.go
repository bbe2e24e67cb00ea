package domain

import "time"

const (
	ItemNameMaxLength = 60
	DefaultQuantity   = 1
)

type Item struct {
	ID         string
	Name       string
	Quantity   int
	Done       bool
	CategoryID *string
	Category   *Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateItemInput struct {
	Name       string
	Quantity   int
	Done       bool
	CategoryID *string
}

// UpdateItemInput carries a partial update. Nil fields are left untouched;
// CategoryIDSet distinguishes "unassign" (set, nil) from "not supplied".
type UpdateItemInput struct {
	Name          *string
	Quantity      *int
	Done          *bool
	CategoryID    *string
	CategoryIDSet bool
}

func (in UpdateItemInput) IsEmpty() bool {
	return in.Name == nil && in.Quantity == nil && in.Done == nil && !in.CategoryIDSet
}
