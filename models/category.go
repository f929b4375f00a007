package models

import "time"

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#FFD700"

// Category is a user-owned grouping for activities.
// Names are unique per owner.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryRequest is the payload accepted when creating a category.
type CategoryRequest struct {
	UserID int64  `json:"-"`
	Name   string `json:"name" validate:"notblank,max=100"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
}

// CategoryPatch carries a partial category update. Absent fields are kept.
type CategoryPatch struct {
	ID     int64            `json:"-"`
	UserID int64            `json:"-"`
	Name   Optional[string] `json:"name"`
	Color  Optional[string] `json:"color"`
}
