package payout

import (
	"sort"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
)

// Entry is one person's accumulated weekly-pot winnings.
type Entry struct {
	Wins  int
	Total float64
}

// Ledger maps a normalized owner name to its winnings.
type Ledger map[string]Entry

// Line is a ledger entry with its key, used for ordered output.
type Line struct {
	Name string
	Entry
}

// Calculate awards amount to the top scorer of every week present, in
// ascending week order. The first maximum in a week's input order wins ties.
func Calculate(records []score.Record, amount float64) Ledger {
	ledger := make(Ledger)
	for _, high := range score.HighestByWeek(records) {
		name := owner.Normalize(high.Record.OwnerFull)
		entry := ledger[name]
		entry.Wins++
		entry.Total = float64(entry.Wins) * amount
		ledger[name] = entry
	}
	return ledger
}

// TotalWins sums wins across all entries.
func (l Ledger) TotalWins() int {
	total := 0
	for _, entry := range l {
		total += entry.Wins
	}
	return total
}

// Lines orders entries by total descending, then name descending.
func (l Ledger) Lines() []Line {
	out := make([]Line, 0, len(l))
	for name, entry := range l {
		out = append(out, Line{Name: name, Entry: entry})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name > out[j].Name
	})
	return out
}
