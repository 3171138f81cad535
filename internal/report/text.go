package report

import (
	"io"
	"strconv"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/payout"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/valyala/bytebufferpool"
)

// WriteScoresText prints every week's ranked scores, identifying owners by
// display name.
func WriteScoresText(w io.Writer, records []score.Record, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	groups := score.GroupByWeek(records)
	for _, week := range groups.Weeks() {
		_, _ = buf.WriteString("\n=== Week " + strconv.Itoa(week) + " ===\n")
		for _, item := range score.Rank(groups[week]) {
			_, _ = buf.WriteString("  " + strconv.Itoa(item.Rank) + ". ")
			_, _ = buf.WriteString(owner.Display(item.OwnerDisplay, opts.Safe))
			_, _ = buf.WriteString(": " + FormatFixed(item.Score, 1) + " points\n")
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

// WriteHighScoresText prints the top scorer of every week by full name.
func WriteHighScoresText(w io.Writer, records []score.Record, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("\n=== Weekly High Scores ===\n")
	for _, high := range score.HighestByWeek(records) {
		_, _ = buf.WriteString("Week " + strconv.Itoa(high.Week) + ": ")
		_, _ = buf.WriteString(owner.Display(high.Record.OwnerFull, opts.Safe))
		_, _ = buf.WriteString(" - " + FormatFixed(high.Record.Score, 1) + " points\n")
	}

	_, err := buf.WriteTo(w)
	return err
}

// WritePayoutsText prints the payout summary, or an explicit no-winners line
// for an empty ledger.
func WritePayoutsText(w io.Writer, ledger payout.Ledger, amount float64, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	symbol := opts.symbol()
	_, _ = buf.WriteString("\n=== Payout Summary (" + FormatCurrency(amount, symbol) + " per win) ===\n")
	if len(ledger) == 0 {
		_, _ = buf.WriteString("No winners found.\n")
	}
	for _, line := range ledger.Lines() {
		_, _ = buf.WriteString(owner.Display(line.Name, opts.Safe) + ": ")
		_, _ = buf.WriteString(strconv.Itoa(line.Wins) + " " + Pluralize(line.Wins, "win", "wins"))
		_, _ = buf.WriteString(" = " + FormatCurrency(line.Total, symbol) + "\n")
	}

	_, err := buf.WriteTo(w)
	return err
}
