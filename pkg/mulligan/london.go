// Package mulligan implements the London mulligan policy: a
// shuffle/keep/discard procedure that produces one card.Hand per trial.
package mulligan

import (
	"math/rand"

	"github.com/mtgsim/manasim/pkg/card"
)

// Policy holds the London mulligan parameters.
type Policy struct {
	StartingHandSize int
	MulliganDownTo   int
	MulliganOnLands  map[int]bool
	AcceptableHands  [][]uint64 // list of card-hash bags; a hand is acceptable if any bag is fully covered
}

// NewPolicy clamps MulliganDownTo into [0, StartingHandSize] and returns a
// ready-to-use Policy.
func NewPolicy(startingHandSize, mulliganDownTo int, mulliganOnLands map[int]bool, acceptableHands [][]uint64) Policy {
	if mulliganDownTo > startingHandSize {
		mulliganDownTo = startingHandSize
	}
	if mulliganDownTo < 0 {
		mulliganDownTo = 0
	}
	if mulliganOnLands == nil {
		mulliganOnLands = map[int]bool{}
	}
	return Policy{
		StartingHandSize: startingHandSize,
		MulliganDownTo:   mulliganDownTo,
		MulliganOnLands:  mulliganOnLands,
		AcceptableHands:  acceptableHands,
	}
}

// Simulate runs one trial: shuffle-and-deal, keep/mulligan/discard, and
// returns the resulting Hand.
func (p Policy) Simulate(rng *rand.Rand, deckCards []card.SimCard, draws int) card.Hand {
	start := p.StartingHandSize
	if start > len(deckCards) {
		start = len(deckCards)
	}
	rMax := p.StartingHandSize - p.MulliganDownTo + 1
	if rMax < 1 {
		rMax = 1
	}

	total := p.StartingHandSize + draws + rMax
	if total > len(deckCards) {
		total = len(deckCards)
	}
	idx := partialShuffle(rng, len(deckCards), total)

	for r := 0; r < rMax; r++ {
		lastRound := r == rMax-1

		windowEnd := r + start
		if windowEnd > len(idx) {
			windowEnd = len(idx)
		}
		windowStart := r
		if windowStart > windowEnd {
			windowStart = windowEnd
		}
		window := make([]card.SimCard, 0, windowEnd-windowStart)
		for _, i := range idx[windowStart:windowEnd] {
			window = append(window, deckCards[i])
		}

		landCount := len(card.Lands(window))
		if p.MulliganOnLands[landCount] && !lastRound {
			continue
		}

		matched := matchAcceptableHand(window, p.AcceptableHands)
		if len(p.AcceptableHands) > 0 && matched == nil && !lastRound {
			continue
		}

		openingSize := p.StartingHandSize - r
		if openingSize > len(window) {
			openingSize = len(window)
		}
		if openingSize < 0 {
			openingSize = 0
		}

		opening := selectKeepers(window, matched, landCount, p.MulliganOnLands, openingSize)

		drawStart := windowEnd
		drawEnd := drawStart + draws
		if drawEnd > len(idx) {
			drawEnd = len(idx)
		}
		if drawStart > drawEnd {
			drawStart = drawEnd
		}
		drawn := make([]card.SimCard, 0, drawEnd-drawStart)
		for _, i := range idx[drawStart:drawEnd] {
			drawn = append(drawn, deckCards[i])
		}

		return card.Hand{
			Opening:          opening,
			Draws:            drawn,
			StartingHandSize: p.StartingHandSize,
		}
	}

	// unreachable: the last round always commits.
	return card.Hand{StartingHandSize: p.StartingHandSize}
}

// partialShuffle performs a partial Fisher-Yates over [0,n), shuffling only
// the first `need` positions, and returns the resulting index slice
// truncated to need entries.
func partialShuffle(rng *rand.Rand, n, need int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if need > n {
		need = n
	}
	for i := 0; i < need && i < n-1; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:need]
}

// matchAcceptableHand returns the first acceptable bag fully covered by the
// window's card hashes (multiset containment collapsed to set containment:
// hash-duplicates within the hand count once), or nil if none match.
func matchAcceptableHand(window []card.SimCard, bags [][]uint64) []uint64 {
	if len(bags) == 0 {
		return nil
	}
	present := make(map[uint64]bool, len(window))
	for _, c := range window {
		present[c.Hash] = true
	}
	for _, bag := range bags {
		if len(bag) == 0 {
			continue
		}
		covered := true
		for _, h := range bag {
			if !present[h] {
				covered = false
				break
			}
		}
		if covered {
			return bag
		}
	}
	return nil
}

// selectKeepers picks which openingSize cards out of window to keep,
// preferring (in order) cards covered by the matched acceptable bag, then
// lands up to the filtered-out land count, then whatever remains.
func selectKeepers(window []card.SimCard, matched []uint64, landCount int, mulliganOnLands map[int]bool, openingSize int) []card.SimCard {
	if openingSize >= len(window) {
		return append([]card.SimCard(nil), window...)
	}

	matchedSet := make(map[uint64]bool, len(matched))
	for _, h := range matched {
		matchedSet[h] = true
	}

	keep := make([]bool, len(window))
	kept := 0

	for i, c := range window {
		if kept >= openingSize {
			break
		}
		if matchedSet[c.Hash] {
			keep[i] = true
			kept++
		}
	}

	landsWanted := desiredLandCount(landCount, mulliganOnLands, openingSize)
	keptLands := 0
	for i, c := range window {
		if keep[i] && c.Kind.IsLand() {
			keptLands++
		}
	}
	for i, c := range window {
		if kept >= openingSize || keptLands >= landsWanted {
			break
		}
		if !keep[i] && c.Kind.IsLand() {
			keep[i] = true
			kept++
			keptLands++
		}
	}

	for i := range window {
		if kept >= openingSize {
			break
		}
		if !keep[i] {
			keep[i] = true
			kept++
		}
	}

	out := make([]card.SimCard, 0, openingSize)
	for i, c := range window {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}

// desiredLandCount picks a target number of lands to preserve out of the
// window, avoiding counts in mulliganOnLands where the window has enough
// lands to do so, capped at openingSize.
func desiredLandCount(windowLandCount int, mulliganOnLands map[int]bool, openingSize int) int {
	want := windowLandCount
	if want > openingSize {
		want = openingSize
	}
	for want > 0 && mulliganOnLands[want] {
		want--
	}
	return want
}
