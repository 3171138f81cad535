package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/payout"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/valyala/bytebufferpool"
)

// CSV headers per report kind. Fields are comma-joined without quoting, so
// names containing commas produce malformed rows.
const (
	ScoresCSVHeader     = "owner,score,week,index"
	HighScoresCSVHeader = "week,owner,score"
	PayoutsCSVHeader    = "owner,wins,total_payout"
)

func writeRow(buf *bytebufferpool.ByteBuffer, fields ...string) {
	_, _ = buf.WriteString(strings.Join(fields, ","))
	_ = buf.WriteByte('\n')
}

func WriteScoresCSV(w io.Writer, records []score.Record, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow(buf, ScoresCSVHeader)
	groups := score.GroupByWeek(records)
	for _, week := range groups.Weeks() {
		for _, item := range score.Rank(groups[week]) {
			writeRow(buf,
				owner.Display(item.OwnerDisplay, opts.Safe),
				FormatExact(item.Score),
				strconv.Itoa(week),
				strconv.Itoa(item.Rank),
			)
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

func WriteHighScoresCSV(w io.Writer, records []score.Record, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow(buf, HighScoresCSVHeader)
	for _, high := range score.HighestByWeek(records) {
		writeRow(buf,
			strconv.Itoa(high.Week),
			owner.Display(high.Record.OwnerFull, opts.Safe),
			FormatFixed(high.Record.Score, 1),
		)
	}

	_, err := buf.WriteTo(w)
	return err
}

func WritePayoutsCSV(w io.Writer, ledger payout.Ledger, opts Options) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow(buf, PayoutsCSVHeader)
	for _, line := range ledger.Lines() {
		writeRow(buf,
			owner.Display(line.Name, opts.Safe),
			strconv.Itoa(line.Wins),
			FormatFixed(line.Total, 2),
		)
	}

	_, err := buf.WriteTo(w)
	return err
}
