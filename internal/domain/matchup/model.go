package matchup

import "strings"

// Winner values reported by the league for a matchup.
const (
	WinnerHome      = "HOME"
	WinnerAway      = "AWAY"
	WinnerTie       = "TIE"
	WinnerUndecided = "UNDECIDED"
)

// Info is the normalized subset of a matchup used to decide completion.
// Pointer flags are nil when the source did not report them.
type Info struct {
	CompleteFlag *bool
	Winner       string
	PlayedFlag   *bool
	HomeScore    float64
	AwayScore    float64
}

func (i Info) winnerAssigned() bool {
	switch strings.ToUpper(strings.TrimSpace(i.Winner)) {
	case WinnerHome, WinnerAway, WinnerTie:
		return true
	default:
		return false
	}
}
