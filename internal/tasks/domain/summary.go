package domain

// Summary is the dashboard view of a user's tasks.
type Summary struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // rounded percent, 0 when there are no tasks
	Weekly         []DayActivity
	Monthly        []DayCount
}

// DayActivity counts tasks created and completed on one calendar day (UTC).
type DayActivity struct {
	Date      string // YYYY-MM-DD
	Created   int
	Completed int
}

type DayCount struct {
	Date  string // YYYY-MM-DD
	Tasks int
}
