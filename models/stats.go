package models

// UncategorizedName and UncategorizedColor describe the synthetic bucket that
// groups activities without a category in the category breakdown.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#CCCCCC"
)

// Timeline window bounds, in days.
const (
	DefaultTimelineDays = 30
	MinTimelineDays     = 1
	MaxTimelineDays     = 365
)

// StatsOverview holds the user's entity totals.
type StatsOverview struct {
	TotalActivities int64 `json:"total_activities"`
	TotalCategories int64 `json:"total_categories"`
	TotalTags       int64 `json:"total_tags"`
}

// CategoryStat is one row of the per-category breakdown.
// CategoryID is nil for the Uncategorized bucket.
type CategoryStat struct {
	CategoryID    *int64 `json:"category_id"`
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	ActivityCount int64  `json:"activity_count"`
}

// TagStat is one row of the per-tag distribution.
type TagStat struct {
	TagID         int64  `json:"tag_id"`
	TagName       string `json:"tag_name"`
	TagColor      string `json:"tag_color"`
	ActivityCount int64  `json:"activity_count"`
}

// TimelinePoint is the number of activities created on one calendar day.
// Date is formatted as YYYY-MM-DD.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TimelineRequest selects the timeline window.
type TimelineRequest struct {
	UserID int64 `json:"-"`
	Days   int   `json:"days" validate:"min=1,max=365"`
}
