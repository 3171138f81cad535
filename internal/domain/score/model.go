package score

// Record is one team's result for one week. Two records are produced per
// matchup (one for a bye week).
type Record struct {
	Team         string
	Score        float64
	Week         int
	OwnerDisplay string
	OwnerFull    string
}

// WeekGroup maps a week number to its records in the order they were received.
type WeekGroup map[int][]Record

// Ranked is a record with its 1-based position inside its week.
type Ranked struct {
	Rank int
	Record
}

// MaxWeek is the highest matchup period a season can have.
const MaxWeek = 25
