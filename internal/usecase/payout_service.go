package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/weekly-pot/internal/domain/payout"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type PayoutService struct {
	amount float64
	logger *logging.Logger
}

func NewPayoutService(amount float64, logger *logging.Logger) *PayoutService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PayoutService{amount: amount, logger: logger}
}

func (s *PayoutService) Amount() float64 {
	return s.amount
}

// Calculate builds the ledger for the given records. An empty input yields
// an empty ledger, not an error.
func (s *PayoutService) Calculate(ctx context.Context, records []score.Record) (payout.Ledger, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PayoutService.Calculate", attribute.Int("records", len(records)))
	defer span.End()

	if s.amount < 0 {
		return nil, fmt.Errorf("%w: payout amount must be >= 0", ErrInvalidInput)
	}

	ledger := payout.Calculate(records, s.amount)
	if len(ledger) == 0 {
		s.logger.InfoContext(ctx, "no weekly winners found", "records", len(records))
	}
	return ledger, nil
}
