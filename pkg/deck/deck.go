// Package deck provides the Deck data model and the decklist text parser.
package deck

import (
	"sort"

	"github.com/mtgsim/manasim/pkg/card"
)

// Entry is one distinct card in a Deck together with how many copies are
// in the deck.
type Entry struct {
	Card  card.Card
	Count int
}

// Deck is an ordered multiset of cards with counts. Counts are summed
// when duplicates are inserted; entries are kept sorted by card name for
// binary search.
type Deck struct {
	Entries []Entry
	Title   string
	URL     string
	Format  string
}

// New builds an empty Deck.
func New(title string) *Deck {
	return &Deck{Title: title}
}

// Insert adds count copies of c to the deck, merging into an existing
// entry for the same card if one is present.
func (d *Deck) Insert(c card.Card, count int) {
	if count == 0 {
		return
	}
	for i := range d.Entries {
		if d.Entries[i].Card.Hash == c.Hash {
			d.Entries[i].Count += count
			return
		}
	}
	d.Entries = append(d.Entries, Entry{Card: c, Count: count})
	sort.Slice(d.Entries, func(i, j int) bool { return d.Entries[i].Card.Name < d.Entries[j].Card.Name })
}

// Size returns the total number of cards (counting duplicates) in the deck.
func (d *Deck) Size() int {
	total := 0
	for _, e := range d.Entries {
		total += e.Count
	}
	return total
}

// NonlandEntries returns entries whose card is not a land.
func (d *Deck) NonlandEntries() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if !e.Card.Kind.IsLand() {
			out = append(out, e)
		}
	}
	return out
}

// LandEntries returns entries whose card is a land.
func (d *Deck) LandEntries() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Card.Kind.IsLand() {
			out = append(out, e)
		}
	}
	return out
}

// MaxNonlandTurn returns the highest Turn among nonland cards, used as the
// default draw_count for a simulation run.
func (d *Deck) MaxNonlandTurn() int {
	max := 0
	for _, e := range d.NonlandEntries() {
		if e.Card.Turn > max {
			max = e.Card.Turn
		}
	}
	return max
}

// AverageNonlandCMC returns the card-count-weighted average CMC of
// nonland cards.
func (d *Deck) AverageNonlandCMC() float64 {
	total := 0
	count := 0
	for _, e := range d.NonlandEntries() {
		total += e.Card.ManaCost.CMC() * e.Count
		count += e.Count
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// Expand flattens the deck into one SimCard per physical card, in entry
// order, suitable for shuffling by the mulligan policy.
func (d *Deck) Expand() []card.SimCard {
	out := make([]card.SimCard, 0, d.Size())
	for _, e := range d.Entries {
		sc := e.Card.ToSimCard()
		for i := 0; i < e.Count; i++ {
			out = append(out, sc)
		}
	}
	return out
}
