package deck

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mtgsim/manasim/internal/logger"
	"github.com/mtgsim/manasim/pkg/card"
)

// CardDatabase is the lookup dependency the decklist parser needs from
// C8. It mirrors the teacher's local-interface pattern so this package
// doesn't import the concrete carddb implementation.
type CardDatabase interface {
	CardFromName(name string) (card.Card, bool)
}

var reservedKeywords = map[string]bool{
	"deck":      true,
	"commander": true,
}

var sectionEnders = map[string]bool{
	"sideboard":  true,
	"maybeboard": true,
}

// cardLineRe matches "<amount> <name> [(set) <collector>]" after any
// trailing "# ..." comment/modifier block has been stripped.
var cardLineRe = regexp.MustCompile(`^(\d+)\s+(.+?)(?:\s+\(([A-Za-z0-9]+)\)\s+(\S+))?$`)

// Parse compiles a newline-separated decklist into a Deck, resolving
// names via db.
func Parse(text string, db CardDatabase) (*Deck, error) {
	d := New("")

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if reservedKeywords[strings.ToLower(line)] {
			continue
		}
		if sectionEnders[strings.ToLower(line)] {
			break
		}

		cardPart := line
		var xVal, turnBonus int
		var hasX, hasTurn bool
		var forcedCost string
		var hasForced bool

		if idx := strings.Index(line, "#"); idx != -1 {
			cardPart = strings.TrimSpace(line[:idx])
			modifiers := line[idx+1:]
			xVal, hasX, turnBonus, hasTurn, forcedCost, hasForced = parseModifiers(modifiers)
		}

		m := cardLineRe.FindStringSubmatch(cardPart)
		if m == nil {
			return nil, &BadDeckcodeError{Line: raw}
		}

		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &BadDeckcodeError{Line: raw, Err: err}
		}
		name := m[2]
		if idx := strings.Index(name, "//"); idx != -1 {
			name = strings.TrimSpace(name[:idx])
		}

		if count == 0 {
			continue
		}

		resolved, ok := db.CardFromName(name)
		if !ok {
			logger.LogDeck("unresolved card name on line: %q", raw)
			return nil, &BadDeckcodeError{Line: raw}
		}

		if hasForced {
			resolved = resolved.WithForcedManaCost(forcedCost)
		}
		if hasX {
			resolved = resolved.WithXValue(xVal)
		}
		if hasTurn {
			resolved = resolved.WithTurnBonus(turnBonus)
		}

		d.Insert(resolved, count)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan decklist: %w", err)
	}

	if d.Size() == 0 {
		return nil, ErrEmptyDeckcode
	}

	return d, nil
}

var modifierTokenRe = regexp.MustCompile(`(X|T)=(-?\d+)|M=(\{[^#]*\})`)

func parseModifiers(s string) (xVal int, hasX bool, turnBonus int, hasTurn bool, forcedCost string, hasForced bool) {
	for _, m := range modifierTokenRe.FindAllStringSubmatch(s, -1) {
		switch {
		case m[1] == "X":
			n, err := strconv.Atoi(m[2])
			if err == nil && n >= 0 {
				xVal, hasX = n, true
			}
		case m[1] == "T":
			n, err := strconv.Atoi(m[2])
			if err == nil {
				turnBonus, hasTurn = n, true
			}
		case m[3] != "":
			forcedCost, hasForced = m[3], true
		}
	}
	return
}
