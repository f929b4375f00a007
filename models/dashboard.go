package models

// Dashboard is everything the terminal client renders after login.
type Dashboard struct {
	ServerVersion string
	Overview      StatsOverview
	ByCategory    []CategoryStat
	ByTag         []TagStat
	Timeline      []TimelinePoint
	TimelineDays  int
}
