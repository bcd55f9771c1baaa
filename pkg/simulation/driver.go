// Package simulation implements the Monte Carlo simulation driver and
// observation aggregator: the top-level run(Input) -> Output entry point
// the rest of the engine is built to serve.
package simulation

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mtgsim/manasim/internal/logger"
	"github.com/mtgsim/manasim/pkg/autotap"
	"github.com/mtgsim/manasim/pkg/carddb"
	"github.com/mtgsim/manasim/pkg/deck"
	"github.com/mtgsim/manasim/pkg/mulligan"
)

// Input is the structured record the run entry point accepts.
type Input struct {
	Code               string
	Runs               uint32
	OnThePlay          bool
	MulliganDownTo     uint8
	MulliganOnLands    map[int]bool
	AcceptableHandList [][]string
	DrawCount          int // 0 means "use deck.MaxNonlandTurn()"
	Seed               int64
}

// Output is the aggregated result record.
type Output struct {
	RunID            uuid.UUID
	Deck             *deck.Deck
	Runs             uint32
	CardObservations []CardRow
	LandCounts       []CardRow

	DeckSize                        int
	DeckAverageCMC                  float64
	AccumulatedOpeningHandSize      int
	AccumulatedOpeningHandLandCount int

	TotalLandColors ManaColorCount
	BasicLandColors ManaColorCount
	TapLandColors   ManaColorCount
	CheckLandColors ManaColorCount
	ShockLandColors ManaColorCount
	OtherLandColors ManaColorCount
	NonlandColors   ManaColorCount
}

// ProgressFunc is invoked periodically during a run with the number of
// completed trials, for rate-limited progress reporting (see
// internal/progress).
type ProgressFunc func(completed, total int)

// Run compiles input's decklist via db, then executes runs trials of the
// London mulligan + auto-tap pipeline, returning the aggregated Output.
func Run(ctx context.Context, db carddb.Database, input Input, onProgress ProgressFunc) (Output, error) {
	d, err := deck.Parse(input.Code, db)
	if err != nil {
		return Output{}, err
	}

	acceptableHashes, err := resolveAcceptableHandList(db, input.AcceptableHandList)
	if err != nil {
		return Output{}, err
	}

	drawCount := input.DrawCount
	if drawCount <= 0 {
		drawCount = d.MaxNonlandTurn()
	}

	policy := mulligan.NewPolicy(7, int(input.MulliganDownTo), input.MulliganOnLands, acceptableHashes)

	seed := input.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	deckCards := d.Expand()
	agg := NewAggregator(d)
	solver := autotap.NewSolver()

	runs := int(input.Runs)
	nonlandEntries := d.NonlandEntries()

	runID := uuid.New()
	logger.LogMeta("starting run %s: %d trials, on_the_play=%v", runID, runs, input.OnThePlay)

	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return Output{}, err
		}

		hand := policy.Simulate(rng, deckCards, drawCount)
		agg.RecordHand(hand)

		for _, entry := range nonlandEntries {
			sim := entry.Card.ToSimCard()
			r := solver.Solve(hand, sim, entry.Card.Turn, input.OnThePlay)
			agg.RecordCard(entry.Card.Hash, r.InOpeningHand, r.CMC, r.Paid, r.InOpeningHand || r.InDrawHand)
		}

		if onProgress != nil {
			onProgress(i+1, runs)
		}
	}

	logger.LogMeta("completed run %s", runID)

	return Output{
		RunID:                           runID,
		Deck:                            d,
		Runs:                            input.Runs,
		CardObservations:                agg.NonlandRows(),
		LandCounts:                      agg.LandRows(),
		DeckSize:                        d.Size(),
		DeckAverageCMC:                  d.AverageNonlandCMC(),
		AccumulatedOpeningHandSize:      agg.AccumulatedOpeningHandSize(),
		AccumulatedOpeningHandLandCount: agg.AccumulatedOpeningHandLandCount(),
		TotalLandColors:                 agg.LandColors().Total,
		BasicLandColors:                 agg.LandColors().Basic,
		TapLandColors:                   agg.LandColors().Tap,
		CheckLandColors:                 agg.LandColors().Check,
		ShockLandColors:                 agg.LandColors().Shock,
		OtherLandColors:                 agg.LandColors().Other,
		NonlandColors:                   agg.NonlandColors(),
	}, nil

}

// resolveAcceptableHandList resolves each row's card names via db, dropping
// empty rows and failing-with BadCardNameInRowError on the first unknown
// name.
func resolveAcceptableHandList(db carddb.Database, rows [][]string) ([][]uint64, error) {
	var out [][]uint64
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		hashes := make([]uint64, 0, len(row))
		for _, name := range row {
			c, ok := db.CardFromName(name)
			if !ok {
				return nil, &BadCardNameInRowError{Row: i, Name: name}
			}
			hashes = append(hashes, c.Hash)
		}
		out = append(out, hashes)
	}
	return out, nil
}
