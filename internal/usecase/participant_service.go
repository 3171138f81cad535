package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/participant"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
)

type ParticipantService struct {
	provider LeagueProvider
	allow    participant.AllowList
	logger   *logging.Logger
}

func NewParticipantService(provider LeagueProvider, participants []string, logger *logging.Logger) *ParticipantService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ParticipantService{
		provider: provider,
		allow:    participant.NewAllowList(participants),
		logger:   logger,
	}
}

// Validate checks every configured participant against the league owners
// before any week is fetched.
func (s *ParticipantService) Validate(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ParticipantService.Validate")
	defer span.End()

	if len(s.allow) == 0 {
		return fmt.Errorf("%w: no participants configured", ErrInvalidInput)
	}
	if s.provider == nil {
		return fmt.Errorf("%w: league provider is not configured", ErrDependencyUnavailable)
	}

	lg, err := s.provider.FetchLeague(ctx)
	if err != nil {
		return fmt.Errorf("fetch league owners: %w", err)
	}

	owners := make([]owner.Names, 0, len(lg.Owners))
	for _, item := range lg.Owners {
		owners = append(owners, owner.ResolveOwnerName(item.Profile, item.TeamName))
	}

	if err := s.allow.Validate(owners); err != nil {
		return fmt.Errorf("%w: %w", ErrParticipantsUnmatched, err)
	}

	s.logger.DebugContext(ctx, "participants validated", "participants", len(s.allow), "owners", len(owners))
	return nil
}

// Filter keeps only records owned by configured participants.
func (s *ParticipantService) Filter(ctx context.Context, records []score.Record) []score.Record {
	out := s.allow.Filter(records)
	s.logger.DebugContext(ctx, "filtered records to participants", "before", len(records), "after", len(out))
	return out
}
