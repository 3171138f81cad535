package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/riskibarqy/weekly-pot/internal/domain/score"
)

type Command string

const (
	CommandListScores     Command = "list-scores"
	CommandListHighScores Command = "list-high-scores"
	CommandListPayouts    Command = "list-payouts"
)

const (
	DefaultStartWeek = 1
	DefaultEndWeek   = 18
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("usage error")

// Invocation is one parsed command line.
type Invocation struct {
	Command              Command
	StartWeek            int
	EndWeek              int
	CSV                  bool
	IncludeAll           bool
	Safe                 bool
	CompletedOnly        bool
	ValidateParticipants bool
	ConfigPath           string
	OutDir               string
}

func commandFromArg(arg string) (Command, bool) {
	switch Command(arg) {
	case CommandListScores, CommandListHighScores, CommandListPayouts:
		return Command(arg), true
	default:
		return "", false
	}
}

// Parse reads `[command] [start_week] [end_week] [flags]`. Flags may appear
// anywhere. Without a command, list-scores runs. flag.ErrHelp is returned
// as is after usage has been written to output.
func Parse(args []string, output io.Writer) (Invocation, error) {
	inv := Invocation{
		Command:   CommandListScores,
		StartWeek: DefaultStartWeek,
		EndWeek:   DefaultEndWeek,
	}

	fs := flag.NewFlagSet("weeklypot", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	} else {
		fs.SetOutput(io.Discard)
	}
	fs.BoolVar(&inv.CSV, "csv", false, "additionally write results to a CSV file")
	fs.BoolVar(&inv.IncludeAll, "include-all", false, "include all league members, not just weekly pot participants (list-high-scores, list-payouts)")
	fs.BoolVar(&inv.Safe, "safe", false, "mask surnames to an initial")
	fs.BoolVar(&inv.CompletedOnly, "completed-only", false, "drop matchups that are not complete yet")
	fs.BoolVar(&inv.ValidateParticipants, "validate-participants", false, "check participants against the league roster before fetching weeks")
	fs.StringVar(&inv.ConfigPath, "config", "", "config file path (default $WEEKLYPOT_CONFIG or config.yaml)")
	fs.StringVar(&inv.OutDir, "out-dir", ".", "directory for CSV files")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "usage: weeklypot [list-scores|list-high-scores|list-payouts] [start_week] [end_week] [flags]\n")
		fs.PrintDefaults()
	}

	positionals := make([]string, 0, 3)
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return Invocation{}, err
			}
			return Invocation{}, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positionals = append(positionals, rest[0])
		rest = rest[1:]
	}

	if len(positionals) > 0 {
		if cmd, ok := commandFromArg(positionals[0]); ok {
			inv.Command = cmd
			positionals = positionals[1:]
		}
	}
	if len(positionals) > 2 {
		return Invocation{}, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, positionals[2:])
	}

	weeks := []*int{&inv.StartWeek, &inv.EndWeek}
	for i, raw := range positionals {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Invocation{}, fmt.Errorf("%w: invalid week %q", ErrUsage, raw)
		}
		*weeks[i] = value
	}

	if inv.StartWeek < 1 {
		return Invocation{}, fmt.Errorf("%w: start_week must be >= 1, got %d", ErrUsage, inv.StartWeek)
	}
	if inv.EndWeek < inv.StartWeek {
		return Invocation{}, fmt.Errorf("%w: end_week %d is before start_week %d", ErrUsage, inv.EndWeek, inv.StartWeek)
	}
	if inv.EndWeek > score.MaxWeek {
		return Invocation{}, fmt.Errorf("%w: end_week must be <= %d, got %d", ErrUsage, score.MaxWeek, inv.EndWeek)
	}
	if inv.OutDir == "" {
		inv.OutDir = "."
	}

	return inv, nil
}
