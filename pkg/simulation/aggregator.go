package simulation

import (
	"math/bits"
	"sort"

	"github.com/mtgsim/manasim/pkg/card"
	"github.com/mtgsim/manasim/pkg/deck"
	"github.com/mtgsim/manasim/pkg/mana"
)

// ManaColorCount records per-color totals plus the ten two-color guild
// pairs, incremented only when a card's color identity is exactly that
// pair.
type ManaColorCount struct {
	R, G, B, U, W, C int

	Azorius  int // W/U
	Dimir    int // U/B
	Rakdos   int // B/R
	Gruul    int // R/G
	Selesnya int // G/W
	Orzhov   int // W/B
	Izzet    int // U/R
	Golgari  int // B/G
	Boros    int // R/W
	Simic    int // G/U
}

// colorSignature strips the colorless bit (bit 5) from a cost's signature,
// leaving only the colored-identity bits used for guild classification.
func colorSignature(c mana.Cost) uint8 {
	return c.Signature &^ (1 << 5)
}

const (
	bitR = 1 << 0
	bitG = 1 << 1
	bitB = 1 << 2
	bitU = 1 << 3
	bitW = 1 << 4
)

// Add folds count copies of cost's channels and color identity into the
// running totals.
func (m *ManaColorCount) Add(cost mana.Cost, count int) {
	m.R += cost.R * count
	m.G += cost.G * count
	m.B += cost.B * count
	m.U += cost.U * count
	m.W += cost.W * count
	m.C += cost.C * count

	sig := colorSignature(cost)
	if bits.OnesCount8(sig) != 2 {
		return
	}
	switch sig {
	case bitW | bitU:
		m.Azorius += count
	case bitU | bitB:
		m.Dimir += count
	case bitB | bitR:
		m.Rakdos += count
	case bitR | bitG:
		m.Gruul += count
	case bitG | bitW:
		m.Selesnya += count
	case bitW | bitB:
		m.Orzhov += count
	case bitU | bitR:
		m.Izzet += count
	case bitB | bitG:
		m.Golgari += count
	case bitR | bitW:
		m.Boros += count
	case bitG | bitU:
		m.Simic += count
	}
}

// CardRow is one output row: a card descriptor, its CMC, how many copies
// are in the deck, and its accumulated Observations.
type CardRow struct {
	Name       string
	Kind       card.Kind
	CMC        int
	CardCount  int
	Observations
}

// LandColorCounts groups ManaColorCount blocks by land sub-class plus a
// deck-wide total.
type LandColorCounts struct {
	Total  ManaColorCount
	Basic  ManaColorCount
	Tap    ManaColorCount
	Check  ManaColorCount
	Shock  ManaColorCount
	Other  ManaColorCount
	Forced ManaColorCount
}

func (l *LandColorCounts) add(c card.Card) {
	l.Total.Add(c.ManaCost, 1)
	switch c.Kind {
	case card.BasicLand:
		l.Basic.Add(c.ManaCost, 1)
	case card.TapLand:
		l.Tap.Add(c.ManaCost, 1)
	case card.CheckLand:
		l.Check.Add(c.ManaCost, 1)
	case card.ShockLand:
		l.Shock.Add(c.ManaCost, 1)
	case card.OtherLand:
		l.Other.Add(c.ManaCost, 1)
	case card.ForcedLand:
		l.Forced.Add(c.ManaCost, 1)
	}
}

// Aggregator accumulates per-card Observations plus the deck-level tallies
// that make up the final Output.
type Aggregator struct {
	Deck *deck.Deck

	rows          map[uint64]*CardRow
	nonlandColors ManaColorCount
	landColors    LandColorCounts

	accumulatedOpeningHandSize    int
	accumulatedOpeningHandLandCnt int
}

// NewAggregator prepares an Aggregator seeded with one row per nonland
// entry and the deck's land-color breakdown.
func NewAggregator(d *deck.Deck) *Aggregator {
	a := &Aggregator{Deck: d, rows: make(map[uint64]*CardRow)}
	for _, e := range d.NonlandEntries() {
		a.rows[e.Card.Hash] = &CardRow{
			Name:      e.Card.Name,
			Kind:      e.Card.Kind,
			CMC:       e.Card.ManaCost.CMC(),
			CardCount: e.Count,
		}
		a.nonlandColors.Add(e.Card.ManaCost, e.Count)
	}
	for _, e := range d.LandEntries() {
		for i := 0; i < e.Count; i++ {
			a.landColors.add(e.Card)
		}
	}
	return a
}

// RecordHand folds one trial's opening-hand statistics into the
// deck-level accumulators.
func (a *Aggregator) RecordHand(h card.Hand) {
	a.accumulatedOpeningHandSize += h.OpeningHandSize()
	a.accumulatedOpeningHandLandCnt += len(card.Lands(h.Opening))
}

// RecordCard folds one trial's solver outcome for a single nonland card.
func (a *Aggregator) RecordCard(hash uint64, inOpeningHand, cmcOK, paid, inHand bool) {
	row, ok := a.rows[hash]
	if !ok {
		return
	}
	row.Observations.Add(inOpeningHand, cmcOK, paid, inHand)
}

// NonlandRows returns per-card rows sorted by (cmc asc, name asc).
func (a *Aggregator) NonlandRows() []CardRow {
	out := make([]CardRow, 0, len(a.rows))
	for _, r := range a.rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CMC != out[j].CMC {
			return out[i].CMC < out[j].CMC
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LandRows returns per-land-entry rows sorted by (kind, name), with
// zeroed Observations.
func (a *Aggregator) LandRows() []CardRow {
	entries := a.Deck.LandEntries()
	out := make([]CardRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, CardRow{
			Name:      e.Card.Name,
			Kind:      e.Card.Kind,
			CMC:       e.Card.ManaCost.CMC(),
			CardCount: e.Count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// NonlandColors returns the deck-wide nonland ManaColorCount block.
func (a *Aggregator) NonlandColors() ManaColorCount {
	return a.nonlandColors
}

// LandColors returns the deck-wide land ManaColorCount blocks.
func (a *Aggregator) LandColors() LandColorCounts {
	return a.landColors
}

// AccumulatedOpeningHandSize returns the running sum over all trials.
func (a *Aggregator) AccumulatedOpeningHandSize() int {
	return a.accumulatedOpeningHandSize
}

// AccumulatedOpeningHandLandCount returns the running sum over all trials.
func (a *Aggregator) AccumulatedOpeningHandLandCount() int {
	return a.accumulatedOpeningHandLandCnt
}
