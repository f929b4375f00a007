package models

import "time"

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#C0C0C0"

// Tag is a user-owned label. An activity may carry any number of tags.
// Names are unique per owner.
type Tag struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}

// TagRequest is the payload accepted when creating a tag.
type TagRequest struct {
	UserID int64  `json:"-"`
	Name   string `json:"name" validate:"notblank,max=100"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
}

// TagPatch carries a partial tag update. Absent fields are kept.
type TagPatch struct {
	ID     int64            `json:"-"`
	UserID int64            `json:"-"`
	Name   Optional[string] `json:"name"`
	Color  Optional[string] `json:"color"`
}
