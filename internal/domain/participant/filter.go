package participant

import (
	"strings"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
)

// AllowList is a normalized, de-duplicated list of participant names in
// configured order.
type AllowList []string

func NewAllowList(names []string) AllowList {
	out := make(AllowList, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := owner.Normalize(name)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// Match returns the first participant matching either owner name. League
// names are formatted inconsistently, so a participant matches when it equals
// or is contained in the full or display name. Short participant names can
// therefore match unrelated owners.
func (l AllowList) Match(ownerFull, ownerDisplay string) (string, bool) {
	full := owner.Normalize(ownerFull)
	display := owner.Normalize(ownerDisplay)
	for _, participant := range l {
		if participant == full ||
			participant == display ||
			strings.Contains(full, participant) ||
			strings.Contains(display, participant) {
			return participant, true
		}
	}
	return "", false
}

// Filter keeps the records whose owner matches at least one participant.
// Input order is preserved.
func (l AllowList) Filter(records []score.Record) []score.Record {
	out := make([]score.Record, 0, len(records))
	for _, record := range records {
		if _, ok := l.Match(record.OwnerFull, record.OwnerDisplay); ok {
			out = append(out, record)
		}
	}
	return out
}
