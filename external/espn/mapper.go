package espn

import (
	"strings"

	"github.com/riskibarqy/weekly-pot/internal/domain/matchup"
	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
)

type roster struct {
	teams   map[int]teamItem
	members map[string]memberItem
}

func newRoster(env leagueEnvelope) roster {
	r := roster{
		teams:   make(map[int]teamItem, len(env.Teams)),
		members: make(map[string]memberItem, len(env.Members)),
	}
	for _, team := range env.Teams {
		r.teams[team.ID] = team
	}
	for _, member := range env.Members {
		r.members[member.ID] = member
	}
	return r
}

// firstOwner returns the profile of a team's first listed owner, or nil when
// the team has none or the owner is not among the league members.
func (r roster) firstOwner(team teamItem) *owner.Profile {
	if len(team.Owners) == 0 {
		return nil
	}
	member, ok := r.members[team.Owners[0]]
	if !ok {
		return nil
	}
	return &owner.Profile{
		DisplayName: member.DisplayName,
		FirstName:   member.FirstName,
		LastName:    member.LastName,
	}
}

func (r roster) teamScore(side scheduleSide) usecase.ExternalTeamScore {
	team, ok := r.teams[side.TeamID]
	if !ok {
		team = teamItem{ID: side.TeamID}
	}
	return usecase.ExternalTeamScore{
		TeamName: teamName(team),
		Score:    side.points(),
		Owner:    r.firstOwner(team),
	}
}

func teamName(team teamItem) string {
	if name := strings.TrimSpace(team.Name); name != "" {
		return name
	}
	name := strings.TrimSpace(strings.TrimSpace(team.Location) + " " + strings.TrimSpace(team.Nickname))
	if name != "" {
		return name
	}
	return strings.TrimSpace(team.Abbrev)
}

func mapLeague(env leagueEnvelope) usecase.ExternalLeague {
	r := newRoster(env)
	owners := make([]usecase.ExternalOwner, 0, len(env.Teams))
	for _, team := range env.Teams {
		owners = append(owners, usecase.ExternalOwner{
			TeamName: teamName(team),
			Profile:  r.firstOwner(team),
		})
	}

	return usecase.ExternalLeague{
		Name:        strings.TrimSpace(env.Settings.Name),
		SeasonID:    env.SeasonID,
		CurrentWeek: env.Status.CurrentMatchupPeriod,
		FinalWeek:   env.Status.FinalScoringPeriod,
		Owners:      owners,
	}
}

// playedFlag reports whether week lies before the league's current matchup
// period. It is nil when the league does not report one.
func playedFlag(status leagueStatus, week int) *bool {
	if status.CurrentMatchupPeriod < 1 {
		return nil
	}
	played := week < status.CurrentMatchupPeriod
	return &played
}

// mapWeek keeps the schedule items of one matchup period. A missing away side
// is a bye and yields a matchup with only the home team.
func mapWeek(env leagueEnvelope, board scoreboardEnvelope, week int) []usecase.ExternalMatchup {
	r := newRoster(env)
	played := playedFlag(env.Status, week)
	out := make([]usecase.ExternalMatchup, 0, len(env.Teams)/2+1)
	for _, item := range board.Schedule {
		if item.MatchupPeriodID != week || item.Home == nil {
			continue
		}

		m := usecase.ExternalMatchup{
			Week: week,
			Home: r.teamScore(*item.Home),
			Info: matchup.Info{
				Winner:     item.Winner,
				PlayedFlag: played,
				HomeScore:  item.Home.points(),
			},
		}
		if item.Away != nil {
			away := r.teamScore(*item.Away)
			m.Away = &away
			m.Info.AwayScore = item.Away.points()
		}
		out = append(out, m)
	}
	return out
}
