package mana

import "testing"

func TestParseAllSimple(t *testing.T) {
	tests := []struct {
		cost string
		want Cost
	}{
		{"{R}", FromChannels(1, 0, 0, 0, 0, 0)},
		{"{2}{R}{G}", FromChannels(1, 1, 0, 0, 0, 2)},
		{"{X}{X}{W}{W}{W}", FromChannels(0, 0, 0, 0, 3, 2)},
		{"{C}", FromChannels(0, 0, 0, 0, 0, 1)},
		{"{5}{C}{C}", FromChannels(0, 0, 0, 0, 0, 7)},
		{"", FromChannels(0, 0, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		got := ParseAll(tt.cost)
		if len(got) != 1 {
			t.Fatalf("ParseAll(%q) = %v; want exactly one alternative", tt.cost, got)
		}
		if !got[0].Equal(tt.want) {
			t.Errorf("ParseAll(%q) = %+v; want %+v", tt.cost, got[0], tt.want)
		}
	}
}

func TestParseAllHybridSinglePosition(t *testing.T) {
	got := ParseAll("{B/G}")
	if len(got) != 2 {
		t.Fatalf("ParseAll({B/G}) = %v; want 2 alternatives", got)
	}
	wantB := FromChannels(0, 0, 1, 0, 0, 0)
	wantG := FromChannels(0, 1, 0, 0, 0, 0)
	if !(got[0].Equal(wantB) || got[0].Equal(wantG)) {
		t.Errorf("unexpected alternative %+v", got[0])
	}
	found := map[Cost]bool{}
	for _, c := range got {
		found[c] = true
	}
	if !found[wantB] || !found[wantG] {
		t.Errorf("ParseAll({B/G}) missing an alternative: got %+v", got)
	}
}

func TestParseAllHybridTwoPositionsDedups(t *testing.T) {
	// {B/G}{B/G} must yield 3 combinations (BB, BG==GB collapsed, GG), not 4.
	got := ParseAll("{B/G}{B/G}")
	if len(got) != 3 {
		t.Fatalf("ParseAll({B/G}{B/G}) = %v (len %d); want 3", got, len(got))
	}
}

func TestParseAllSplitCardLeftFaceOnly(t *testing.T) {
	got := ParseAll("{B} // {2}{B}{R}")
	want := FromChannels(0, 0, 1, 0, 0, 0)
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("ParseAll(split) = %+v; want only left face %+v", got, want)
	}
}

func TestParseAllUnknownSymbolDefaultsColorless(t *testing.T) {
	got := ParseAll("{Q}")
	want := FromChannels(0, 0, 0, 0, 0, 1)
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("ParseAll({Q}) = %+v; want colorless fallback %+v", got, want)
	}
}

func TestParseAllIdempotenceViaRender(t *testing.T) {
	// Property: rendering each alternative back to normalized form and
	// re-expanding it reproduces the same multiset of alternatives.
	inputs := []string{"{2}{R}{G}", "{B/G}", "{W}{U}{B}{R}{G}{C}"}
	for _, in := range inputs {
		alts := ParseAll(in)
		for _, alt := range alts {
			rendered := Render(alt)
			reExpanded := ParseAll(rendered)
			if len(reExpanded) != 1 || !reExpanded[0].Equal(alt) {
				t.Errorf("Render/ParseAll round-trip failed for %q alt %+v: got %+v",
					in, alt, reExpanded)
			}
		}
	}
}
