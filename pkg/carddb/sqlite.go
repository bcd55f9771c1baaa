package carddb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver, registers "sqlite"

	"github.com/mtgsim/manasim/pkg/card"
)

// SQLite is an alternate Database backing for hosts that keep their card
// corpus in a sqlite file rather than building an InMemory database from
// a card slice themselves. It satisfies the same Database contract as InMemory; nothing
// downstream needs to know which one it's talking to. Expects a single
// table:
//
//	CREATE TABLE cards (
//	  name TEXT NOT NULL,
//	  kind INTEGER NOT NULL,
//	  mana_cost TEXT NOT NULL,
//	  turn INTEGER NOT NULL,
//	  rarity TEXT,
//	  set_code TEXT,
//	  uri TEXT
//	);
type SQLite struct {
	inner *InMemory
}

// OpenSQLite loads every row from the cards table at path and builds an
// in-memory index over it. Production of the sqlite file itself (from
// vendor feeds) is out of scope.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite card database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, kind, mana_cost, turn, rarity, set_code, uri FROM cards`)
	if err != nil {
		return nil, fmt.Errorf("query cards table: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var name, manaCost, rarity, set, uri string
		var kind, turn int
		if err := rows.Scan(&name, &kind, &manaCost, &turn, &rarity, &set, &uri); err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		c := card.New(name, card.Kind(kind), manaCost, rarity, set, uri)
		if turn > c.Turn {
			c = c.WithTurnBonus(turn - c.Turn)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards table: %w", err)
	}

	return &SQLite{inner: NewInMemory(cards)}, nil
}

func (s *SQLite) CardFromName(name string) (card.Card, bool) { return s.inner.CardFromName(name) }
func (s *SQLite) GroupByName(name string) []card.Card         { return s.inner.GroupByName(name) }
func (s *SQLite) GroupBySet(set string) []card.Card           { return s.inner.GroupBySet(set) }
func (s *SQLite) All() []card.Card                            { return s.inner.All() }
func (s *SQLite) Size() int                                   { return s.inner.Size() }
