package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/weekly-pot/internal/app"
	"github.com/riskibarqy/weekly-pot/internal/config"
	"github.com/riskibarqy/weekly-pot/internal/interfaces/cli"
	"github.com/riskibarqy/weekly-pot/internal/observability"
	"github.com/riskibarqy/weekly-pot/internal/platform/id"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	base := logging.New(config.LogOptions())
	defer func() { _ = base.Sync() }()

	logger := base
	if runID, err := id.NewRunID(); err == nil {
		logger = base.With("run_id", runID)
	}
	logging.SetDefault(logger)

	inv, err := cli.Parse(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return cli.ExitOK
	}
	if err != nil {
		cli.ReportError(logger, err)
		return cli.ExitCode(err)
	}

	cfg, err := config.Load(config.ResolvePath(inv.ConfigPath))
	if err != nil {
		cli.ReportError(logger, err)
		return cli.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := observability.InitUptrace(cfg, version, logger)
	if err != nil {
		logger.Warn("uptrace init failed", "error", err)
		shutdown = func(context.Context) error { return nil }
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	ctx, span := observability.StartCommandSpan(ctx, string(inv.Command),
		attribute.Int64("league.id", cfg.LeagueID),
		attribute.Int("season.id", cfg.SeasonID),
		attribute.Int("weeks.start", inv.StartWeek),
		attribute.Int("weeks.end", inv.EndWeek),
	)
	err = cli.NewRunner(app.New(cfg, logger), os.Stdout).Run(ctx, inv)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		cli.ReportError(logger, err)
	}
	span.End()

	return cli.ExitCode(err)
}
