package wide

import "testing"

func TestDiv255(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint16
	}{
		{0, 0},
		{255, 1},
		{254, 1},
		{256, 1},
		{255 * 255, 255},
		{255 * 128, 128},
		{3900, 16},
		{128 * 128, 64},
	}
	for _, tt := range tests {
		got := SplatU16(tt.in).Div255()
		if got[0] != tt.want {
			t.Errorf("Div255(%d) = %d, want %d", tt.in, got[0], tt.want)
		}
		for i := 1; i < 16; i++ {
			if got[i] != got[0] {
				t.Fatalf("Div255 lane %d = %d, lane 0 = %d", i, got[i], got[0])
			}
		}
	}
}

func TestInv(t *testing.T) {
	v := U16x16{0, 1, 128, 254, 255}
	got := v.Inv()
	want := []uint16{255, 254, 127, 1, 0}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Inv lane %d = %d, want %d", i, got[i], w)
		}
	}
}

// Subtraction wraps like uint16; a later Select is expected to discard
// wrapped lanes.
func TestSubWraps(t *testing.T) {
	got := SplatU16(1).Sub(SplatU16(2))
	if got[0] != 65535 {
		t.Fatalf("1 - 2 = %d, want 65535", got[0])
	}
}

func TestMinMax(t *testing.T) {
	a := U16x16{1, 200, 30}
	b := U16x16{2, 100, 30}
	if got := a.Min(b); got[0] != 1 || got[1] != 100 || got[2] != 30 {
		t.Errorf("Min = %v", got[:3])
	}
	if got := a.Max(b); got[0] != 2 || got[1] != 200 || got[2] != 30 {
		t.Errorf("Max = %v", got[:3])
	}
}

func TestLeSelect(t *testing.T) {
	a := U16x16{1, 5, 5}
	b := U16x16{5, 5, 1}
	m := a.Le(b)
	if !m[0] || !m[1] || m[2] {
		t.Fatalf("Le = %v", m[:3])
	}
	got := m.Select(SplatU16(10), SplatU16(20))
	if got[0] != 10 || got[1] != 10 || got[2] != 20 {
		t.Fatalf("Select = %v", got[:3])
	}
}
