package domain

import "time"

// BoardStatistics is one snapshot computed by the statistics worker.
// NextRun is informational only, it never drives the actual schedule.
type BoardStatistics struct {
	At       time.Time
	Total    int
	Active   int
	Inactive int
	Recent   int
	NextRun  time.Time
}
