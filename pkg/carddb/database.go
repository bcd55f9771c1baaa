// Package carddb provides the CardDatabase contract and an in-memory
// implementation backed by a name-sorted slice.
package carddb

import (
	"sort"
	"strings"

	"github.com/mtgsim/manasim/pkg/card"
)

// Database is the read-only lookup service the decklist parser and
// mulligan policy consume. Implementations are constructed once and held
// for the process lifetime.
type Database interface {
	// CardFromName resolves a card by case-insensitive exact name match.
	CardFromName(name string) (card.Card, bool)
	// GroupByName returns every stored card sharing a name (normally one).
	GroupByName(name string) []card.Card
	// GroupBySet returns every card printed in the given set code.
	GroupBySet(set string) []card.Card
	// All returns every card in the database, in storage order.
	All() []card.Card
	// Size returns the number of distinct cards.
	Size() int
}

// InMemory is a Database backed by a name-sorted slice, resolved via
// case-insensitive exact-match binary search.
type InMemory struct {
	cards  []card.Card // sorted by Name
	byName map[string][]card.Card
	bySet  map[string][]card.Card
}

// NewInMemory builds an InMemory database from a slice of cards.
func NewInMemory(cards []card.Card) *InMemory {
	sorted := make([]card.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	byName := make(map[string][]card.Card, len(sorted))
	bySet := make(map[string][]card.Card, len(sorted))
	for _, c := range sorted {
		byName[c.Name] = append(byName[c.Name], c)
		bySet[c.Set] = append(bySet[c.Set], c)
	}

	return &InMemory{cards: sorted, byName: byName, bySet: bySet}
}

// CardFromName resolves a card by case-insensitive exact name match via
// binary search over the name-sorted slice.
func (db *InMemory) CardFromName(name string) (card.Card, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	i := sort.Search(len(db.cards), func(i int) bool { return db.cards[i].Name >= key })
	if i < len(db.cards) && db.cards[i].Name == key {
		return db.cards[i], true
	}
	return card.Card{}, false
}

// GroupByName returns every stored record for a name.
func (db *InMemory) GroupByName(name string) []card.Card {
	return db.byName[strings.ToLower(strings.TrimSpace(name))]
}

// GroupBySet returns every card printed in the given set code.
func (db *InMemory) GroupBySet(set string) []card.Card {
	return db.bySet[set]
}

// All returns every card, name-sorted.
func (db *InMemory) All() []card.Card {
	return db.cards
}

// Size returns the number of distinct cards.
func (db *InMemory) Size() int {
	return len(db.cards)
}
