package matchup

// Probe identifies which completion signal decided a matchup.
type Probe string

const (
	ProbeCompleteFlag   Probe = "complete_flag"
	ProbeWinnerAssigned Probe = "winner_assigned"
	ProbePlayedFlag     Probe = "played_flag"
	ProbeNonZeroScore   Probe = "nonzero_score"
)

type probeFunc func(Info) (complete bool, available bool)

type probe struct {
	kind Probe
	fn   probeFunc
}

// probes are evaluated in priority order; the first available signal wins.
var probes = []probe{
	{kind: ProbeCompleteFlag, fn: func(i Info) (bool, bool) {
		if i.CompleteFlag == nil {
			return false, false
		}
		return *i.CompleteFlag, true
	}},
	{kind: ProbeWinnerAssigned, fn: func(i Info) (bool, bool) {
		if !i.winnerAssigned() {
			return false, false
		}
		return true, true
	}},
	{kind: ProbePlayedFlag, fn: func(i Info) (bool, bool) {
		if i.PlayedFlag == nil {
			return false, false
		}
		return *i.PlayedFlag, true
	}},
	{kind: ProbeNonZeroScore, fn: func(i Info) (bool, bool) {
		return i.HomeScore+i.AwayScore > 0, true
	}},
}

// Resolve reports whether a matchup is complete and which probe decided it.
func Resolve(info Info) (bool, Probe) {
	for _, p := range probes {
		if complete, ok := p.fn(info); ok {
			return complete, p.kind
		}
	}
	return false, ProbeNonZeroScore
}

// IsComplete is Resolve without the deciding probe.
func IsComplete(info Info) bool {
	complete, _ := Resolve(info)
	return complete
}
