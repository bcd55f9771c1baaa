// Command manasim is the CLI front-end for the mana-probability Monte
// Carlo engine: it wires a decklist, a mulligan policy, and a card
// database into pkg/simulation.Run and renders the result.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mtgsim/manasim/internal/logger"
	"github.com/mtgsim/manasim/internal/progress"
	"github.com/mtgsim/manasim/pkg/carddb"
	"github.com/mtgsim/manasim/pkg/charts"
	"github.com/mtgsim/manasim/pkg/config"
	"github.com/mtgsim/manasim/pkg/simulation"
)

func main() {
	cmd := &cli.Command{
		Name:  "manasim",
		Usage: "estimate per-card on-curve casting probabilities for a Magic: the Gathering decklist",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "manasim:", err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the Monte Carlo simulation for a decklist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "deck",
				Aliases:  []string{"d"},
				Usage:    "path to a newline-separated decklist file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "cards",
				Usage: "path to the sqlite card database artifact",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a manasim config.toml",
			},
			&cli.Uint64Flag{
				Name:  "runs",
				Usage: "number of Monte Carlo trials (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "on-the-play",
				Usage: "simulate going first (no turn-1 draw)",
				Value: true,
			},
			&cli.IntFlag{
				Name:  "mulligan-down-to",
				Usage: "minimum hand size the London mulligan may reach (overrides config)",
				Value: -1,
			},
			&cli.StringSliceFlag{
				Name:  "acceptable-hand",
				Usage: "a comma-separated bag of card names that counts as a keepable hand; may be repeated",
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "write a P(mana|cmc) bar chart to this HTML path",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "META, SIM, DECK, or CARD (overrides config)",
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Log.Level
	if l := cmd.String("log-level"); l != "" {
		level = l
	}
	logger.SetLogLevel(logger.ParseLogLevel(level))

	db, err := openDatabase(cmd.String("cards"))
	if err != nil {
		return err
	}

	deckText, err := os.ReadFile(cmd.String("deck"))
	if err != nil {
		return fmt.Errorf("read deck file: %w", err)
	}

	runs := uint32(cfg.Run.Runs)
	if v := cmd.Uint64("runs"); v > 0 {
		runs = uint32(v)
	}

	onThePlay := cfg.Run.OnThePlay
	if cmd.IsSet("on-the-play") {
		onThePlay = cmd.Bool("on-the-play")
	}

	mulliganDownTo := cfg.Mulligan.MulliganDownTo
	if v := cmd.Int("mulligan-down-to"); v >= 0 {
		mulliganDownTo = v
	}

	var acceptableHandList [][]string
	for _, bag := range cmd.StringSlice("acceptable-hand") {
		acceptableHandList = append(acceptableHandList, splitNames(bag))
	}

	input := simulation.Input{
		Code:               string(deckText),
		Runs:               runs,
		OnThePlay:          onThePlay,
		MulliganDownTo:     uint8(mulliganDownTo),
		MulliganOnLands:    cfg.Mulligan.MulliganOnLandsSet(),
		AcceptableHandList: acceptableHandList,
		Seed:               time.Now().UnixNano(),
	}

	reporter := progress.NewReporter(500 * time.Millisecond)
	out, err := simulation.Run(ctx, db, input, reporter.Func())
	if err != nil {
		return err
	}

	printReport(out)

	if path := cmd.String("chart"); path != "" {
		if err := charts.RenderManaGivenCMCChart(out, charts.DefaultChartConfig(), path); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		logger.LogMeta("chart written to %s", path)
	}

	return nil
}

func openDatabase(path string) (carddb.Database, error) {
	if path == "" {
		return nil, fmt.Errorf("--cards is required: a sqlite card database artifact path")
	}
	sq, err := carddb.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open card database: %w", err)
	}
	return sq, nil
}

func splitNames(bag string) []string {
	parts := strings.Split(bag, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printReport(out simulation.Output) {
	fmt.Printf("run %s: %d trials, deck size %d, average nonland cmc %.2f\n",
		out.RunID, out.Runs, out.DeckSize, out.DeckAverageCMC)
	fmt.Printf("%-28s %4s %6s %8s %8s %8s %8s\n", "card", "cmc", "count", "cmc%", "mana%", "play%", "tapped%")
	for _, row := range out.CardObservations {
		fmt.Printf("%-28s %4d %6d %7.1f%% %7.1f%% %7.1f%% %7.1f%%\n",
			row.Name, row.CMC, row.CardCount,
			100*ratio(row.Observations.CMC, row.TotalRuns),
			100*row.ManaGivenCMCRate(),
			100*ratio(row.Play, row.TotalRuns),
			100*row.TappedGivenCMCRate(),
		)
	}
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
