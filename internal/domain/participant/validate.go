package participant

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
)

// UnmatchedError lists configured participants with no owner in the league.
type UnmatchedError struct {
	Names []string
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("participants not found in league: %s", strings.Join(e.Names, ", "))
}

// Validate cross-checks every participant against the league owners using the
// same matching rule as Filter. Unmatched names are reported in allow-list
// order.
func (l AllowList) Validate(owners []owner.Names) error {
	var unmatched []string
	for _, participant := range l {
		single := AllowList{participant}
		found := false
		for _, item := range owners {
			if _, ok := single.Match(item.Full, item.Display); ok {
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, participant)
		}
	}

	if len(unmatched) > 0 {
		return &UnmatchedError{Names: unmatched}
	}
	return nil
}
