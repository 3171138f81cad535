package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/riskibarqy/weekly-pot/internal/domain/matchup"
	"github.com/riskibarqy/weekly-pot/internal/domain/owner"
	usecasemock "github.com/riskibarqy/weekly-pot/internal/mocks/usecase"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func weekMatchups(week int, home, away float64) []usecase.ExternalMatchup {
	return []usecase.ExternalMatchup{
		{
			Week: week,
			Home: usecase.ExternalTeamScore{TeamName: "Team A", Score: home, Owner: &owner.Profile{DisplayName: "a1", FirstName: "Amy", LastName: "Adams"}},
			Away: &usecase.ExternalTeamScore{TeamName: "Team B", Score: away, Owner: &owner.Profile{DisplayName: "b1"}},
			Info: matchup.Info{Winner: matchup.WinnerHome, HomeScore: home, AwayScore: away},
		},
	}
}

func TestScoreService_FetchRange_SequentialAndSkipsFailedWeeks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	var order []int
	track := func(args mock.Arguments) { order = append(order, args.Int(1)) }

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{Name: "Sunday Funday"}, nil).Once()
	provider.On("FetchWeek", ctx, 1).Run(track).Return(weekMatchups(1, 100, 90), nil).Once()
	provider.On("FetchWeek", ctx, 2).Run(track).Return(nil, errors.New("gateway timeout")).Once()
	provider.On("FetchWeek", ctx, 3).Run(track).Return(weekMatchups(3, 80, 95), nil).Once()

	records, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 1, EndWeek: 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, order)
	require.Len(t, records, 4)

	require.Equal(t, "Team A", records[0].Team)
	require.Equal(t, "a1", records[0].OwnerDisplay)
	require.Equal(t, "Amy Adams", records[0].OwnerFull)
	require.Equal(t, "b1", records[1].OwnerFull)
	require.Equal(t, 3, records[2].Week)
	require.Equal(t, 95.0, records[3].Score)
}

func TestScoreService_FetchRange_AllWeeksFailed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{}, nil).Once()
	provider.On("FetchWeek", ctx, 1).Return(nil, errors.New("boom")).Once()
	provider.On("FetchWeek", ctx, 2).Return([]usecase.ExternalMatchup{}, nil).Once()

	_, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 1, EndWeek: 2})
	require.ErrorIs(t, err, usecase.ErrNoData)
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestScoreService_FetchRange_UnauthorizedAbortsRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{}, nil).Once()
	provider.On("FetchWeek", ctx, 1).Return(weekMatchups(1, 10, 20), nil).Once()
	provider.On("FetchWeek", ctx, 2).Return(nil, usecase.ErrUnauthorized).Once()

	_, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 1, EndWeek: 5})
	require.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestScoreService_FetchRange_LeagueInitFailureIsFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{}, usecase.ErrNotFound).Once()

	_, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 1, EndWeek: 2})
	require.ErrorIs(t, err, usecase.ErrNotFound)
	provider.AssertNotCalled(t, "FetchWeek", mock.Anything, mock.Anything)
}

func TestScoreService_FetchRange_InvalidRange(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	for _, input := range []usecase.FetchRangeInput{
		{StartWeek: 0, EndWeek: 3},
		{StartWeek: 4, EndWeek: 3},
		{StartWeek: 1, EndWeek: 26},
		{StartWeek: 1, EndWeek: math.MaxInt},
	} {
		_, err := service.FetchRange(context.Background(), input)
		require.ErrorIs(t, err, usecase.ErrInvalidInput)
	}
}

func TestScoreService_FetchRange_ClampsToFinalWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{FinalWeek: 2}, nil).Once()
	provider.On("FetchWeek", ctx, 1).Return(weekMatchups(1, 100, 90), nil).Once()
	provider.On("FetchWeek", ctx, 2).Return(weekMatchups(2, 80, 95), nil).Once()

	records, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 1, EndWeek: 18})
	require.NoError(t, err)
	require.Len(t, records, 4)
	provider.AssertNotCalled(t, "FetchWeek", mock.Anything, 3)
}

func TestScoreService_FetchRange_StartAfterFinalWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewScoreService(provider, nil)

	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{FinalWeek: 17}, nil).Once()

	_, err := service.FetchRange(ctx, usecase.FetchRangeInput{StartWeek: 18, EndWeek: 18})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
	provider.AssertNotCalled(t, "FetchWeek", mock.Anything, mock.Anything)
}

func TestParticipantService_Validate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLeagueProvider(t)
	provider.On("FetchLeague", ctx).Return(usecase.ExternalLeague{
		Owners: []usecase.ExternalOwner{
			{TeamName: "Team A", Profile: &owner.Profile{DisplayName: "a1", FirstName: "Amy", LastName: "Adams"}},
			{TeamName: "Ownerless"},
		},
	}, nil).Twice()

	ok := usecase.NewParticipantService(provider, []string{"Amy Adams", "ownerless"}, nil)
	require.NoError(t, ok.Validate(ctx))

	bad := usecase.NewParticipantService(provider, []string{"amy", "Zed Zulu", "Quinn"}, nil)
	err := bad.Validate(ctx)
	require.ErrorIs(t, err, usecase.ErrParticipantsUnmatched)
	require.Contains(t, err.Error(), "zed zulu, quinn")
}

func TestParticipantService_ValidateRequiresParticipants(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLeagueProvider(t)
	service := usecase.NewParticipantService(provider, []string{"  "}, nil)
	require.ErrorIs(t, service.Validate(context.Background()), usecase.ErrInvalidInput)
}
