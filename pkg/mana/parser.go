package mana

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mtgsim/manasim/internal/logger"
)

var symbolRe = regexp.MustCompile(`\{([^{}]+)\}`)

// position is one token position in a cost string: either a single concrete
// alternative (right == nil) or a hybrid choice between left and right,
// e.g. {B/G} yields left=B, right=G.
type position struct {
	left  Cost
	right *Cost
}

// ParseAll tokenizes a cost string like "{2}{R}{B/G}" and returns the set
// of concrete alternative Costs it expands to (deduplicated, sorted into a
// stable order). A split-card face separator "//" truncates the string to
// its left face only (a known limitation, not a bug).
func ParseAll(raw string) []Cost {
	s := raw
	if idx := strings.Index(s, "//"); idx != -1 {
		s = s[:idx]
	}

	var positions []position
	base := FromChannels(0, 0, 0, 0, 0, 0)

	for _, m := range symbolRe.FindAllStringSubmatch(s, -1) {
		sym := m[1]
		switch {
		case sym == "X":
			base = base.Add(FromChannels(0, 0, 0, 0, 0, 1))
		case isAllDigits(sym):
			n, _ := strconv.Atoi(sym)
			base = base.Add(FromChannels(0, 0, 0, 0, 0, n))
		case strings.Contains(sym, "/"):
			parts := strings.SplitN(sym, "/", 2)
			left := symbolCost(parts[0])
			right := symbolCost(parts[1])
			positions = append(positions, position{left: left, right: &right})
		default:
			positions = append(positions, position{left: symbolCost(sym)})
		}
	}

	results := expand(positions, base)

	seen := make(map[Cost]bool, len(results))
	unique := results[:0]
	for _, c := range results {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i].Less(unique[j]) })

	if len(unique) == 0 {
		unique = []Cost{base}
	}

	return unique
}

// expand performs a depth-first walk: at each position, branch into the
// left alternative and (if present) the right alternative, accumulating
// onto acc.
func expand(positions []position, acc Cost) []Cost {
	if len(positions) == 0 {
		return []Cost{acc}
	}

	head, rest := positions[0], positions[1:]
	results := expand(rest, acc.Add(head.left))
	if head.right != nil {
		results = append(results, expand(rest, acc.Add(*head.right))...)
	}
	return results
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// symbolCost converts a single-letter color symbol (or a digit run, for
// generic hybrids like {2/W}) into a unit Cost. Unrecognized symbols
// default to colorless and are logged, never surfaced.
func symbolCost(sym string) Cost {
	sym = strings.TrimSpace(sym)
	if isAllDigits(sym) {
		n, _ := strconv.Atoi(sym)
		return FromChannels(0, 0, 0, 0, 0, n)
	}
	switch strings.ToUpper(sym) {
	case "R":
		return FromChannels(1, 0, 0, 0, 0, 0)
	case "G":
		return FromChannels(0, 1, 0, 0, 0, 0)
	case "B":
		return FromChannels(0, 0, 1, 0, 0, 0)
	case "U":
		return FromChannels(0, 0, 0, 1, 0, 0)
	case "W":
		return FromChannels(0, 0, 0, 0, 1, 0)
	case "C":
		return FromChannels(0, 0, 0, 0, 0, 1)
	default:
		logger.LogManaParseFallback(sym, "unrecognized mana symbol defaulted to colorless")
		return FromChannels(0, 0, 0, 0, 0, 1)
	}
}

// Render produces a normalized "{...}" form of a Cost, used by the
// idempotence property test and for diagnostics. The colorless count
// comes first as a single number, then the colored symbols in the fixed
// signature bit order R,G,B,U,W.
func Render(c Cost) string {
	var b strings.Builder
	if c.C > 0 {
		b.WriteString("{")
		b.WriteString(strconv.Itoa(c.C))
		b.WriteString("}")
	}
	writeSymbol(&b, "R", c.R)
	writeSymbol(&b, "G", c.G)
	writeSymbol(&b, "B", c.B)
	writeSymbol(&b, "U", c.U)
	writeSymbol(&b, "W", c.W)
	if b.Len() == 0 {
		return "{0}"
	}
	return b.String()
}

func writeSymbol(b *strings.Builder, sym string, n int) {
	for i := 0; i < n; i++ {
		b.WriteString("{")
		b.WriteString(sym)
		b.WriteString("}")
	}
}
