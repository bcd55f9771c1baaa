package autotap

import (
	"testing"

	"github.com/mtgsim/manasim/pkg/card"
	"github.com/mtgsim/manasim/pkg/mana"
)

func land(color mana.Color) card.SimCard {
	var cost mana.Cost
	switch color {
	case mana.Red:
		cost = mana.FromChannels(1, 0, 0, 0, 0, 0)
	case mana.Green:
		cost = mana.FromChannels(0, 1, 0, 0, 0, 0)
	case mana.Black:
		cost = mana.FromChannels(0, 0, 1, 0, 0, 0)
	case mana.Blue:
		cost = mana.FromChannels(0, 0, 0, 1, 0, 0)
	case mana.White:
		cost = mana.FromChannels(0, 0, 0, 0, 1, 0)
	}
	return card.SimCard{Kind: card.BasicLand, ManaCost: cost, AllManaCosts: []mana.Cost{cost}}
}

// broadLand models a card like Mana Confluence: every color channel set,
// so it can contribute any single pip.
func broadLand() card.SimCard {
	cost := mana.FromChannels(1, 1, 1, 1, 1, 0)
	return card.SimCard{Kind: card.OtherLand, ManaCost: cost, AllManaCosts: []mana.Cost{cost}}
}

func spellCard(hash uint64, cost mana.Cost, alts ...mana.Cost) card.SimCard {
	if len(alts) == 0 {
		alts = []mana.Cost{cost}
	}
	return card.SimCard{Hash: hash, Kind: card.Nonland, ManaCost: cost, AllManaCosts: alts}
}

func handWithLands(opening []card.SimCard) card.Hand {
	return card.Hand{Opening: opening, StartingHandSize: len(opening)}
}

func TestSolveZeroCostAlwaysPays(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(0, 0, 0, 0, 0, 0))
	hand := handWithLands(nil)
	r := s.Solve(hand, goal, 1, true)
	if !r.Paid || !r.CMC {
		t.Errorf("zero-cost spell should always pay: %+v", r)
	}
}

func TestSolveZeroLandsFailsColoredCost(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(1, 0, 0, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal})
	r := s.Solve(hand, goal, 1, true)
	if r.Paid {
		t.Errorf("no lands should never pay a colored cost")
	}
}

func TestSolveZeroLandsPaysZeroCost(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(0, 0, 0, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal})
	r := s.Solve(hand, goal, 1, true)
	if !r.Paid {
		t.Errorf("zero-cost spell should pay even with no lands")
	}
}

func TestSolveSingleLandPaysMatchingColor(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(1, 0, 0, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal, land(mana.Red)})
	r := s.Solve(hand, goal, 2, true)
	if !r.Paid {
		t.Errorf("red land should pay red cost: %+v", r)
	}
}

func TestSolveSingleLandFailsWrongColor(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(1, 0, 0, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal, land(mana.Blue)})
	r := s.Solve(hand, goal, 2, true)
	if r.Paid {
		t.Errorf("blue land should not pay red cost: %+v", r)
	}
}

func TestSolveBroadIdentityLandCreditsAnyColor(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(0, 0, 1, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal, broadLand()})
	r := s.Solve(hand, goal, 2, true)
	if !r.Paid {
		t.Errorf("broad-identity land should pay any single color: %+v", r)
	}
}

func TestSolveMonotonicAddingLandNeverHurts(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(1, 0, 0, 0, 0, 1))
	without := handWithLands([]card.SimCard{goal, land(mana.Red)})
	rWithout := s.Solve(without, goal, 2, true)

	with := handWithLands([]card.SimCard{goal, land(mana.Red), land(mana.Green)})
	rWith := s.Solve(with, goal, 3, true)

	if rWithout.Paid && !rWith.Paid {
		t.Errorf("adding a land decreased Paid: without=%+v with=%+v", rWithout, rWith)
	}
	if rWithout.CMC && !rWith.CMC {
		t.Errorf("adding a land decreased CMC: without=%+v with=%+v", rWithout, rWith)
	}
}

func TestSolvePaidImpliesCMC(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(1, 1, 0, 0, 0, 0))
	hand := handWithLands([]card.SimCard{goal, land(mana.Red), land(mana.Green)})
	r := s.Solve(hand, goal, 3, true)
	if r.Paid && !r.CMC {
		t.Errorf("Paid implies CMC: %+v", r)
	}
}

func TestSolveHybridCostTieBreak(t *testing.T) {
	s := NewSolver()
	bg := mana.FromChannels(0, 1, 0, 0, 0, 0)
	bb := mana.FromChannels(0, 0, 1, 0, 0, 0)
	goal := spellCard(1, bg, bg, bb)

	forestOnly := handWithLands([]card.SimCard{goal, land(mana.Green)})
	if r := s.Solve(forestOnly, goal, 2, true); !r.Paid {
		t.Errorf("Forest-only hand should pay {B/G} via the green alternative: %+v", r)
	}

	swampOnly := handWithLands([]card.SimCard{goal, land(mana.Black)})
	if r := s.Solve(swampOnly, goal, 2, true); !r.Paid {
		t.Errorf("Swamp-only hand should pay {B/G} via the black alternative: %+v", r)
	}

	mountainOnly := handWithLands([]card.SimCard{goal, land(mana.Red)})
	if r := s.Solve(mountainOnly, goal, 2, true); r.Paid {
		t.Errorf("Mountain-only hand should fail {B/G}: %+v", r)
	}
}

// TestSolveSingleLandEnableOnThePlay models a hand with the spell in the
// opening hand and its only land drawn turn 1, checked on the play
// (available by turn 1 on the play excludes the turn-1 draw), so the
// single land is not yet available.
func TestSolveSingleLandEnableOnThePlay(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(0, 0, 0, 1, 0, 0))
	hand := card.Hand{
		Opening:          []card.SimCard{goal},
		Draws:            []card.SimCard{land(mana.Blue)},
		StartingHandSize: 1,
	}
	r := s.Solve(hand, goal, 1, true)
	if r.Paid {
		t.Errorf("on the play, turn 1 draw is not yet available: %+v", r)
	}
}

// TestSolveSingleLandEnableOnTheDraw models the same hand, but checked on
// the draw, where the turn-1 draw IS available.
func TestSolveSingleLandEnableOnTheDraw(t *testing.T) {
	s := NewSolver()
	goal := spellCard(1, mana.FromChannels(0, 0, 0, 1, 0, 0))
	hand := card.Hand{
		Opening:          []card.SimCard{goal},
		Draws:            []card.SimCard{land(mana.Blue)},
		StartingHandSize: 1,
	}
	r := s.Solve(hand, goal, 1, false)
	if !r.Paid {
		t.Errorf("on the draw, turn 1 draw is available: %+v", r)
	}
}

func TestSolveReusableAcrossCalls(t *testing.T) {
	s := NewSolver()
	small := spellCard(1, mana.FromChannels(1, 0, 0, 0, 0, 0))
	smallHand := handWithLands([]card.SimCard{small, land(mana.Red)})
	s.Solve(smallHand, small, 2, true)

	big := spellCard(2, mana.FromChannels(1, 1, 1, 0, 0, 0))
	bigHand := handWithLands([]card.SimCard{big, land(mana.Red), land(mana.Green), land(mana.Black)})
	r := s.Solve(bigHand, big, 4, true)
	if !r.Paid {
		t.Errorf("solver should grow scratch buffers across calls: %+v", r)
	}
}
