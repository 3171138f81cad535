package score

import "sort"

// GroupByWeek buckets records by week, preserving input order within a week.
func GroupByWeek(records []Record) WeekGroup {
	out := make(WeekGroup)
	for _, record := range records {
		out[record.Week] = append(out[record.Week], record)
	}
	return out
}

// Weeks returns the week numbers present in ascending order.
func (g WeekGroup) Weeks() []int {
	weeks := make([]int, 0, len(g))
	for week := range g {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

// Rank orders one week's records by score descending. Ties keep their input
// order. The input slice is not modified.
func Rank(records []Record) []Ranked {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]Ranked, 0, len(sorted))
	for idx, record := range sorted {
		out = append(out, Ranked{Rank: idx + 1, Record: record})
	}
	return out
}

// Highest returns the first record holding the maximum score.
func Highest(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}

	best := records[0]
	for _, record := range records[1:] {
		if record.Score > best.Score {
			best = record
		}
	}
	return best, true
}

// WeeklyHigh is the top record of one week.
type WeeklyHigh struct {
	Week   int
	Record Record
}

// HighestByWeek selects the top record of every week, ascending by week.
func HighestByWeek(records []Record) []WeeklyHigh {
	groups := GroupByWeek(records)
	out := make([]WeeklyHigh, 0, len(groups))
	for _, week := range groups.Weeks() {
		best, ok := Highest(groups[week])
		if !ok {
			continue
		}
		out = append(out, WeeklyHigh{Week: week, Record: best})
	}
	return out
}
