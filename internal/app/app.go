package app

import (
	"github.com/riskibarqy/weekly-pot/external/espn"
	"github.com/riskibarqy/weekly-pot/internal/config"
	"github.com/riskibarqy/weekly-pot/internal/platform/cache"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
)

// App holds the services of one CLI run.
type App struct {
	Config       config.Config
	Logger       *logging.Logger
	Scores       *usecase.ScoreService
	Participants *usecase.ParticipantService
	Payouts      *usecase.PayoutService
}

func New(cfg config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	client := espn.NewClient(espn.ClientConfig{
		BaseURL:        cfg.ESPN.BaseURL,
		LeagueID:       cfg.LeagueID,
		SeasonID:       cfg.SeasonID,
		EspnS2:         cfg.ESPN.EspnS2,
		SWID:           cfg.ESPN.SWID,
		Timeout:        cfg.ESPN.Timeout,
		MaxRetries:     cfg.ESPN.MaxRetries,
		Logger:         logger.With("component", "espn"),
		CircuitBreaker: cfg.ESPN.CircuitBreaker,
		Cache:          cache.NewStore[[]byte](),
	})

	return NewWithProvider(cfg, client, logger)
}

// NewWithProvider wires the services around an arbitrary league provider.
func NewWithProvider(cfg config.Config, provider usecase.LeagueProvider, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	return &App{
		Config:       cfg,
		Logger:       logger,
		Scores:       usecase.NewScoreService(provider, logger),
		Participants: usecase.NewParticipantService(provider, cfg.Participants, logger),
		Payouts:      usecase.NewPayoutService(cfg.Payout, logger),
	}
}
