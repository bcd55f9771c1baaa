package mana

import "testing"

func TestFromChannelsSignature(t *testing.T) {
	tests := []struct {
		r, g, b, u, w, c int
		wantSig          uint8
	}{
		{0, 0, 0, 0, 0, 0, 0b000000},
		{1, 0, 0, 0, 0, 0, 0b000001},
		{0, 1, 0, 0, 0, 0, 0b000010},
		{0, 0, 1, 0, 0, 0, 0b000100},
		{0, 0, 0, 1, 0, 0, 0b001000},
		{0, 0, 0, 0, 1, 0, 0b010000},
		{0, 0, 0, 0, 0, 1, 0b100000},
		{1, 1, 1, 1, 1, 1, 0b111111},
		{2, 0, 3, 0, 0, 0, 0b000101},
	}

	for _, tt := range tests {
		got := FromChannels(tt.r, tt.g, tt.b, tt.u, tt.w, tt.c)
		if got.Signature != tt.wantSig {
			t.Errorf("FromChannels(%d,%d,%d,%d,%d,%d).Signature = %06b; want %06b",
				tt.r, tt.g, tt.b, tt.u, tt.w, tt.c, got.Signature, tt.wantSig)
		}
	}
}

func TestCMC(t *testing.T) {
	c := FromChannels(1, 2, 0, 0, 3, 1)
	if got := c.CMC(); got != 7 {
		t.Errorf("CMC() = %d; want 7", got)
	}
}

func TestColorContribution(t *testing.T) {
	a := FromChannels(1, 1, 0, 0, 0, 0) // RG
	b := FromChannels(1, 0, 1, 0, 0, 0) // RB
	if got := a.ColorContribution(b); got != 1 {
		t.Errorf("ColorContribution = %d; want 1 (shared R)", got)
	}

	c := FromChannels(0, 0, 0, 1, 1, 0) // UW
	if got := a.ColorContribution(c); got != 0 {
		t.Errorf("ColorContribution = %d; want 0 (no overlap)", got)
	}
}

func TestPipsOrderingAndCount(t *testing.T) {
	c := FromChannels(2, 0, 1, 0, 0, 3)
	pips := c.Pips()
	if len(pips) != 6 {
		t.Fatalf("len(Pips()) = %d; want 6", len(pips))
	}
	want := []Color{Red, Red, Black, Colorless, Colorless, Colorless}
	for i, w := range want {
		if pips[i] != w {
			t.Errorf("pip[%d] = %v; want %v", i, pips[i], w)
		}
	}
}

func TestSignatureIsPureFunctionOfChannels(t *testing.T) {
	// Property: bit i of signature equals (channel_i > 0), for every channel.
	for r := 0; r <= 1; r++ {
		for g := 0; g <= 1; g++ {
			for b := 0; b <= 1; b++ {
				c := FromChannels(r, g, b, 0, 0, 0)
				wantR := r > 0
				wantG := g > 0
				wantB := b > 0
				if (c.Signature&1 != 0) != wantR {
					t.Errorf("bit0 mismatch for r=%d", r)
				}
				if (c.Signature&2 != 0) != wantG {
					t.Errorf("bit1 mismatch for g=%d", g)
				}
				if (c.Signature&4 != 0) != wantB {
					t.Errorf("bit2 mismatch for b=%d", b)
				}
			}
		}
	}
}
