// Package card provides the card data model used by the simulation core:
// Card, Kind, and the SimCard hot-loop projection.
package card

import (
	"hash/fnv"
	"strings"

	"github.com/mtgsim/manasim/pkg/mana"
)

// Kind tags a card's land sub-kind, or Nonland for everything else.
// Only the land/nonland distinction matters to the simulation; the other
// sub-tags are informational.
type Kind int

const (
	Nonland Kind = iota
	BasicLand
	TapLand
	CheckLand
	ShockLand
	OtherLand
	ForcedLand
)

// IsLand reports whether the kind represents any land sub-kind.
func (k Kind) IsLand() bool {
	return k != Nonland
}

func (k Kind) String() string {
	switch k {
	case Nonland:
		return "nonland"
	case BasicLand:
		return "basic"
	case TapLand:
		return "tap"
	case CheckLand:
		return "check"
	case ShockLand:
		return "shock"
	case OtherLand:
		return "other"
	case ForcedLand:
		return "forced"
	default:
		return "unknown"
	}
}

// Card is a single card record resolved from a CardDatabase.
type Card struct {
	Name         string
	Hash         uint64
	Kind         Kind
	RawManaCost  string
	ManaCost     mana.Cost
	AllManaCosts []mana.Cost
	Turn         int
	Rarity       string
	Set          string
	CollectorURI string
}

// NameHash lowercases and hashes a card name into a u64 identity.
func NameHash(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return h.Sum64()
}

// New builds a Card from a resolved name and primary mana-cost string,
// applying the default turn rule: max(1, cmc).
func New(name string, kind Kind, costString string, rarity, set, uri string) Card {
	alts := mana.ParseAll(costString)
	primary := alts[0]
	turn := primary.CMC()
	if turn < 1 {
		turn = 1
	}
	return Card{
		Name:         strings.ToLower(strings.TrimSpace(name)),
		Hash:         NameHash(name),
		Kind:         kind,
		RawManaCost:  costString,
		ManaCost:     primary,
		AllManaCosts: alts,
		Turn:         turn,
		Rarity:       rarity,
		Set:          set,
		CollectorURI: uri,
	}
}

// Equal reports whether two cards represent the same named card.
func (c Card) Equal(other Card) bool {
	return c.Hash == other.Hash
}

// WithTurnBonus adds n to the card's turn (decklist "T=n" modifier).
func (c Card) WithTurnBonus(n int) Card {
	c.Turn += n
	return c
}

// WithXValue resolves an "X=" decklist modifier: if the card's raw mana
// cost string contains an X symbol, sets the colorless channel to n on
// every alternative and recomputes turn; otherwise the card is returned
// unchanged. Negative n is ignored.
func (c Card) WithXValue(n int) Card {
	if n < 0 || !strings.Contains(c.RawManaCost, "X") {
		return c
	}
	updated := make([]mana.Cost, len(c.AllManaCosts))
	for i, alt := range c.AllManaCosts {
		// X contributes 1 colorless unit per occurrence in ParseAll; replace
		// that unit contribution with n by reconstructing from the X count.
		xCount := strings.Count(c.RawManaCost, "{X}")
		base := alt.C - xCount
		if base < 0 {
			base = 0
		}
		updated[i] = mana.FromChannels(alt.R, alt.G, alt.B, alt.U, alt.W, base+n*xCount)
	}
	c.AllManaCosts = updated
	c.ManaCost = updated[0]
	turn := c.ManaCost.CMC()
	if turn < 1 {
		turn = 1
	}
	c.Turn = turn
	return c
}

// WithForcedManaCost overrides a card's mana cost by re-parsing costString
// and marks it as a forced land (decklist "M=" modifier).
func (c Card) WithForcedManaCost(costString string) Card {
	alts := mana.ParseAll(costString)
	c.RawManaCost = costString
	c.AllManaCosts = alts
	c.ManaCost = alts[0]
	c.Kind = ForcedLand
	return c
}

// SimCard is the cache-friendly projection of a Card used inside the hot
// simulation loop: hands are built from these rather than full Card
// records, so the bulk of a Card's descriptive fields never touch the
// per-trial allocation path.
type SimCard struct {
	Hash         uint64
	Kind         Kind
	ManaCost     mana.Cost
	AllManaCosts []mana.Cost
}

// ToSimCard projects a Card down to its hot-loop representation.
func (c Card) ToSimCard() SimCard {
	return SimCard{
		Hash:         c.Hash,
		Kind:         c.Kind,
		ManaCost:     c.ManaCost,
		AllManaCosts: c.AllManaCosts,
	}
}
