package cli

import (
	"errors"

	"github.com/riskibarqy/weekly-pot/internal/config"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ReportError logs a failed run, adding the credentials hint when the league
// rejected the request.
func ReportError(logger *logging.Logger, err error) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = logging.Default()
	}

	logger.Error("run failed", "error", err)
	if errors.Is(err, usecase.ErrUnauthorized) {
		logger.Error("this appears to be a private league, credentials are required",
			"hint", "Set ESPN_S2 and SWID environment variables.",
		)
	}
}
