package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/riskibarqy/weekly-pot/internal/app"
	"github.com/riskibarqy/weekly-pot/internal/domain/score"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/riskibarqy/weekly-pot/internal/report"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
)

// Runner executes parsed invocations against the wired services. Reports go
// to stdout; logs go through the logger.
type Runner struct {
	app    *app.App
	stdout io.Writer
	logger *logging.Logger
}

func NewRunner(a *app.App, stdout io.Writer) *Runner {
	logger := a.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{app: a, stdout: stdout, logger: logger}
}

func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	switch inv.Command {
	case CommandListScores, "":
		return r.listScores(ctx, inv)
	case CommandListHighScores:
		return r.listHighScores(ctx, inv)
	case CommandListPayouts:
		return r.listPayouts(ctx, inv)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, inv.Command)
	}
}

func (r *Runner) reportOptions(inv Invocation) report.Options {
	return report.Options{Safe: inv.Safe, CurrencySymbol: r.app.Config.CurrencySymbol}
}

func (r *Runner) listScores(ctx context.Context, inv Invocation) error {
	records, err := r.fetch(ctx, inv)
	if err != nil {
		return err
	}

	opts := r.reportOptions(inv)
	if err := report.WriteScoresText(r.stdout, records, opts); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if !inv.CSV {
		return nil
	}
	return r.writeCSV(ctx, inv, report.KindScores, func(w io.Writer) error {
		return report.WriteScoresCSV(w, records, opts)
	})
}

func (r *Runner) listHighScores(ctx context.Context, inv Invocation) error {
	records, err := r.participantRecords(ctx, inv)
	if err != nil {
		return err
	}

	opts := r.reportOptions(inv)
	if err := report.WriteHighScoresText(r.stdout, records, opts); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	if !inv.CSV {
		return nil
	}
	return r.writeCSV(ctx, inv, report.KindHighScores, func(w io.Writer) error {
		return report.WriteHighScoresCSV(w, records, opts)
	})
}

func (r *Runner) listPayouts(ctx context.Context, inv Invocation) error {
	records, err := r.participantRecords(ctx, inv)
	if err != nil {
		return err
	}

	ledger, err := r.app.Payouts.Calculate(ctx, records)
	if err != nil {
		return err
	}

	opts := r.reportOptions(inv)
	if err := report.WritePayoutsText(r.stdout, ledger, r.app.Payouts.Amount(), opts); err != nil {
		return fmt.Errorf("write payouts: %w", err)
	}
	if !inv.CSV {
		return nil
	}
	return r.writeCSV(ctx, inv, report.KindPayouts, func(w io.Writer) error {
		return report.WritePayoutsCSV(w, ledger, opts)
	})
}

// participantRecords fetches the range and narrows it to the configured
// participants unless --include-all is set. Validation runs first so a bad
// roster fails before any week is fetched.
func (r *Runner) participantRecords(ctx context.Context, inv Invocation) ([]score.Record, error) {
	if !inv.IncludeAll && (inv.ValidateParticipants || r.app.Config.ValidateParticipants) {
		if err := r.app.Participants.Validate(ctx); err != nil {
			return nil, err
		}
	}

	records, err := r.fetch(ctx, inv)
	if err != nil {
		return nil, err
	}
	if inv.IncludeAll {
		return records, nil
	}
	return r.app.Participants.Filter(ctx, records), nil
}

func (r *Runner) fetch(ctx context.Context, inv Invocation) ([]score.Record, error) {
	records, err := r.app.Scores.FetchRange(ctx, usecase.FetchRangeInput{
		StartWeek:     inv.StartWeek,
		EndWeek:       inv.EndWeek,
		CompletedOnly: inv.CompletedOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch any data: %w", err)
	}
	return records, nil
}

func (r *Runner) writeCSV(ctx context.Context, inv Invocation, kind report.Kind, render func(io.Writer) error) error {
	path := filepath.Join(inv.OutDir, report.CSVFileName(kind, inv.StartWeek, inv.EndWeek))
	if err := report.WriteFile(path, render); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "csv file written", "path", path)
	return nil
}
