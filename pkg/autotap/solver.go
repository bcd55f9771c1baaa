// Package autotap implements the auto-tap solver: deciding whether the
// lands available to a Hand by a given turn can be assigned to pay a
// goal card's mana cost, via maximum bipartite matching between mana
// pips and lands.
package autotap

import (
	"github.com/mtgsim/manasim/pkg/card"
	"github.com/mtgsim/manasim/pkg/mana"
)

// Result is the outcome of one Solve call.
type Result struct {
	Paid          bool
	CMC           bool
	InOpeningHand bool
	InDrawHand    bool
}

// Solver holds preallocated scratch buffers, reused across millions of
// Solve calls: edges, seen, and matches never shrink below their
// high-water mark.
type Solver struct {
	edges   []bool // M x N, row-major
	seen    []bool // N
	matches []int  // N
	mCap    int
	nCap    int
}

// NewSolver constructs a Solver with buffers pre-sized for 8 pips and 30
// lands; a larger goal or hand grows them on first use.
func NewSolver() *Solver {
	s := &Solver{}
	s.ensureCapacity(8, 30)
	return s
}

func (s *Solver) ensureCapacity(m, n int) {
	if m > s.mCap {
		s.mCap = m
	}
	if n > s.nCap {
		s.nCap = n
	}
	if len(s.edges) < s.mCap*s.nCap {
		s.edges = make([]bool, s.mCap*s.nCap)
	}
	if len(s.seen) < s.nCap {
		s.seen = make([]bool, s.nCap)
	}
	if len(s.matches) < s.nCap {
		s.matches = make([]int, s.nCap)
	}
}

// Solve decides, for the given hand, whether the lands available by
// turn (under the play-order flag) can pay goal's mana cost. It tries
// each of goal's AllManaCosts alternatives in order and returns the
// first that pays; if none pays, the last attempt's result is returned.
func (s *Solver) Solve(hand card.Hand, goal card.SimCard, turn int, onThePlay bool) Result {
	available := hand.AvailableByTurn(turn, onThePlay)
	lands := card.Lands(available)

	inOpening := card.ContainsHash(hand.Opening, goal.Hash)
	inDraw := card.ContainsHash(available[len(hand.Opening):], goal.Hash)

	alts := goal.AllManaCosts
	if len(alts) == 0 {
		alts = []mana.Cost{goal.ManaCost}
	}

	var last Result
	for _, alt := range alts {
		r := s.solveOne(alt, lands)
		r.InOpeningHand = inOpening
		r.InDrawHand = inDraw
		if r.Paid {
			return r
		}
		last = r
	}
	return last
}

func (s *Solver) solveOne(cost mana.Cost, lands []card.SimCard) Result {
	pips := cost.Pips()
	m := len(pips)
	n := len(lands)

	if m == 0 {
		return Result{Paid: true, CMC: true}
	}
	if m > n {
		return Result{Paid: false, CMC: false}
	}

	s.ensureCapacity(m, n)

	for i := 0; i < m*n; i++ {
		s.edges[i] = false
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			s.edges[i*s.nCap+j] = edgeExists(pips[i], lands[j])
		}
	}
	for j := 0; j < n; j++ {
		s.matches[j] = -1
	}

	matched := 0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			s.seen[j] = false
		}
		if s.augment(i, n) {
			matched++
		}
	}

	return Result{Paid: matched == m, CMC: n >= m}
}

func (s *Solver) augment(pip, n int) bool {
	for j := 0; j < n; j++ {
		if s.seen[j] || !s.edges[pip*s.nCap+j] {
			continue
		}
		s.seen[j] = true
		if s.matches[j] == -1 || s.augment(s.matches[j], n) {
			s.matches[j] = pip
			return true
		}
	}
	return false
}

// edgeExists reports whether a land can pay a pip of the given color: a
// Colorless pip matches every land; any other pip matches a land whose
// own mana cost has a nonzero channel for that color.
func edgeExists(pip mana.Color, land card.SimCard) bool {
	if pip == mana.Colorless {
		return true
	}
	return land.ManaCost.Channel(pip) > 0
}
