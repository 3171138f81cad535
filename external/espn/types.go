package espn

type leagueEnvelope struct {
	ID       int64          `json:"id"`
	SeasonID int            `json:"seasonId"`
	Settings leagueSettings `json:"settings"`
	Status   leagueStatus   `json:"status"`
	Members  []memberItem   `json:"members"`
	Teams    []teamItem     `json:"teams"`
}

type leagueSettings struct {
	Name string `json:"name"`
}

type leagueStatus struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int `json:"finalScoringPeriod"`
}

type memberItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type teamItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Nickname string   `json:"nickname"`
	Abbrev   string   `json:"abbrev"`
	Owners   []string `json:"owners"`
}

type scoreboardEnvelope struct {
	Schedule []scheduleItem `json:"schedule"`
}

type scheduleItem struct {
	ID              int           `json:"id"`
	MatchupPeriodID int           `json:"matchupPeriodId"`
	Winner          string        `json:"winner"`
	PlayoffTierType string        `json:"playoffTierType"`
	Home            *scheduleSide `json:"home"`
	Away            *scheduleSide `json:"away"`
}

type scheduleSide struct {
	TeamID          int      `json:"teamId"`
	TotalPoints     float64  `json:"totalPoints"`
	TotalPointsLive *float64 `json:"totalPointsLive"`
}

// points prefers the settled total and falls back to the live total while a
// matchup is still being played.
func (s scheduleSide) points() float64 {
	if s.TotalPoints == 0 && s.TotalPointsLive != nil {
		return *s.TotalPointsLive
	}
	return s.TotalPoints
}
