package usecase

import (
	"context"

	"github.com/riskibarqy/weekly-pot/internal/domain/matchup"
	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
)

// LeagueProvider is the upstream league-data source. Implementations surface
// ErrUnauthorized for private leagues fetched without valid credentials.
type LeagueProvider interface {
	FetchLeague(ctx context.Context) (ExternalLeague, error)
	FetchWeek(ctx context.Context, week int) ([]ExternalMatchup, error)
}

type ExternalLeague struct {
	Name        string
	SeasonID    int
	CurrentWeek int
	FinalWeek   int
	Owners      []ExternalOwner
}

// ExternalOwner is the first listed owner of a team. Profile is nil when the
// team has no owner.
type ExternalOwner struct {
	TeamName string
	Profile  *owner.Profile
}

type ExternalTeamScore struct {
	TeamName string
	Score    float64
	Owner    *owner.Profile
}

// ExternalMatchup is one pairing in a week. Away is nil for a bye.
type ExternalMatchup struct {
	Week int
	Home ExternalTeamScore
	Away *ExternalTeamScore
	Info matchup.Info
}
