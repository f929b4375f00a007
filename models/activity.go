package models

import "time"

// Activity is a user-owned record optionally assigned to one category and
// labeled with any number of tags.
type Activity struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CategoryID  *int64 `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// CategoryName is a display field joined from categories.
	CategoryName *string `json:"category_name"`

	// TagIDs and Tags are display fields loaded from activity_tags.
	// Both are always serialized as arrays.
	TagIDs []int64  `json:"tag_ids"`
	Tags   []TagRef `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "activities"
}

// TagRef is the compact tag view embedded into an activity.
type TagRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActivityRequest is the payload accepted when creating an activity.
// A null, zero or empty category_id means "no category".
type ActivityRequest struct {
	UserID      int64           `json:"-"`
	Title       string          `json:"title" validate:"notblank,max=255"`
	Description string          `json:"description"`
	CategoryID  Optional[int64] `json:"category_id"`
	TagIDs      []int64         `json:"tag_ids"`
}

// ActivityPatch carries a partial activity update.
//
// Absent fields are kept. A present null (or zero) CategoryID clears the
// category. A present TagIDs replaces the whole tag set, an empty list
// removes every tag.
type ActivityPatch struct {
	ID          int64             `json:"-"`
	UserID      int64             `json:"-"`
	Title       Optional[string]  `json:"title"`
	Description Optional[string]  `json:"description"`
	CategoryID  Optional[int64]   `json:"category_id"`
	TagIDs      Optional[[]int64] `json:"tag_ids"`
}

// ActivityFilter narrows an activity listing.
//
// CategoryIDs match with OR semantics (activity is in any of them).
// TagIDs match with AND semantics (activity carries all of them).
// Both lists combine with AND. Empty lists impose no constraint.
type ActivityFilter struct {
	UserID      int64
	CategoryIDs []int64
	TagIDs      []int64
}

// IsEmpty reports whether the filter imposes no constraint besides ownership.
func (f ActivityFilter) IsEmpty() bool {
	return len(f.CategoryIDs) == 0 && len(f.TagIDs) == 0
}
