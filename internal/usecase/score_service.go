package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/weekly-pot/internal/domain/matchup"
	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type FetchRangeInput struct {
	StartWeek     int
	EndWeek       int
	CompletedOnly bool
}

type ScoreService struct {
	provider LeagueProvider
	logger   *logging.Logger
}

func NewScoreService(provider LeagueProvider, logger *logging.Logger) *ScoreService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoreService{
		provider: provider,
		logger:   logger,
	}
}

// FetchRange loads the league once, then every week from StartWeek to EndWeek
// in order, one request at a time. A failed week is logged and skipped; the
// run fails only when credentials are rejected, the league cannot be loaded,
// or every week failed.
func (s *ScoreService) FetchRange(ctx context.Context, input FetchRangeInput) ([]score.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.FetchRange",
		attribute.Int("weeks.start", input.StartWeek),
		attribute.Int("weeks.end", input.EndWeek),
	)
	defer span.End()

	if input.StartWeek < 1 {
		return nil, fmt.Errorf("%w: start week must be >= 1, got %d", ErrInvalidInput, input.StartWeek)
	}
	if input.EndWeek < input.StartWeek {
		return nil, fmt.Errorf("%w: end week %d is before start week %d", ErrInvalidInput, input.EndWeek, input.StartWeek)
	}
	if input.EndWeek > score.MaxWeek {
		return nil, fmt.Errorf("%w: end week must be <= %d, got %d", ErrInvalidInput, score.MaxWeek, input.EndWeek)
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: league provider is not configured", ErrDependencyUnavailable)
	}

	lg, err := s.provider.FetchLeague(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize league: %w", err)
	}
	s.logger.DebugContext(ctx, "league loaded",
		"league_name", lg.Name,
		"season_id", lg.SeasonID,
		"current_week", lg.CurrentWeek,
		"final_week", lg.FinalWeek,
	)

	endWeek := input.EndWeek
	if lg.FinalWeek > 0 && endWeek > lg.FinalWeek {
		s.logger.WarnContext(ctx, "end week is past the league's final week, clamping",
			"end_week", endWeek,
			"final_week", lg.FinalWeek,
		)
		endWeek = lg.FinalWeek
	}
	if input.StartWeek > endWeek {
		return nil, fmt.Errorf("%w: start week %d is after the league's final week %d", ErrInvalidInput, input.StartWeek, endWeek)
	}

	var records []score.Record
	fetched := 0
	var lastErr error
	for week := input.StartWeek; week <= endWeek; week++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "fetching week", "week", week)
		matchups, err := s.provider.FetchWeek(ctx, week)
		if err == nil && len(matchups) == 0 {
			err = fmt.Errorf("%w: no matchups for week %d", ErrNotFound, week)
		}
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return nil, fmt.Errorf("fetch week %d: %w", week, err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = err
			s.logger.WarnContext(ctx, "failed to fetch week", "week", week, "error", err)
			continue
		}

		weekRecords, incomplete := recordsFromMatchups(week, matchups, input.CompletedOnly)
		if incomplete > 0 {
			s.logger.WarnContext(ctx, "week has incomplete matchups",
				"week", week,
				"incomplete", incomplete,
				"dropped", input.CompletedOnly,
			)
		}
		records = append(records, weekRecords...)
		fetched++
	}

	if fetched == 0 {
		return nil, fmt.Errorf("%w: all %d requested weeks failed: %w", ErrNoData, endWeek-input.StartWeek+1, lastErr)
	}

	span.SetAttributes(attribute.Int("weeks.fetched", fetched), attribute.Int("records", len(records)))
	return records, nil
}

func recordsFromMatchups(week int, matchups []ExternalMatchup, completedOnly bool) ([]score.Record, int) {
	out := make([]score.Record, 0, len(matchups)*2)
	incomplete := 0
	for _, item := range matchups {
		if !matchup.IsComplete(item.Info) {
			incomplete++
			if completedOnly {
				continue
			}
		}
		out = append(out, recordFromTeam(week, item.Home))
		if item.Away != nil {
			out = append(out, recordFromTeam(week, *item.Away))
		}
	}
	return out, incomplete
}

func recordFromTeam(week int, team ExternalTeamScore) score.Record {
	names := owner.ResolveOwnerName(team.Owner, team.TeamName)
	return score.Record{
		Team:         team.TeamName,
		Score:        team.Score,
		Week:         week,
		OwnerDisplay: names.Display,
		OwnerFull:    names.Full,
	}
}
