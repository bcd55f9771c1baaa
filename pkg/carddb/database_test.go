package carddb

import (
	"testing"

	"github.com/mtgsim/manasim/pkg/card"
)

func sampleCards() []card.Card {
	return []card.Card{
		card.New("Lightning Bolt", card.Nonland, "{R}", "common", "LEA", "https://example/bolt"),
		card.New("Island", card.BasicLand, "", "common", "LEA", "https://example/island"),
		card.New("Counterspell", card.Nonland, "{U}{U}", "common", "LEA", "https://example/counter"),
	}
}

func TestInMemoryCardFromNameCaseInsensitive(t *testing.T) {
	db := NewInMemory(sampleCards())

	c, ok := db.CardFromName("lightning bolt")
	if !ok {
		t.Fatal("expected Lightning Bolt to resolve")
	}
	if c.Name != "lightning bolt" {
		t.Errorf("Name = %q; want lowercase normalized form", c.Name)
	}

	c2, ok2 := db.CardFromName("LIGHTNING BOLT")
	if !ok2 || c2.Hash != c.Hash {
		t.Errorf("case-insensitive lookup failed")
	}

	_, missing := db.CardFromName("Nonexistent Card")
	if missing {
		t.Error("expected lookup miss for nonexistent card")
	}
}

func TestInMemorySize(t *testing.T) {
	db := NewInMemory(sampleCards())
	if db.Size() != 3 {
		t.Errorf("Size() = %d; want 3", db.Size())
	}
}

func TestInMemoryGroupBySet(t *testing.T) {
	db := NewInMemory(sampleCards())
	group := db.GroupBySet("LEA")
	if len(group) != 3 {
		t.Errorf("GroupBySet(LEA) = %d cards; want 3", len(group))
	}
}
