package bitmap

import (
	"bytes"
	"testing"
)

func mustDense(t *testing.T, s string) Dense {
	t.Helper()
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("bugged test setup: %v", err)
	}
	return d
}

func TestSelect(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		mask Dense
		eout Dense
	}{
		{
			name: "all",
			data: mustDense(t, "101"),
			mask: mustDense(t, "111"),
			eout: mustDense(t, "101"),
		}, {
			name: "some",
			data: mustDense(t, "10100011"),
			mask: mustDense(t, "11111100"),
			eout: mustDense(t, "101000"),
		}, {
			name: "none",
			data: mustDense(t, "10100011 111"),
			mask: mustDense(t, "00000000 000"),
			eout: mustDense(t, ""),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := Select(tc.data, tc.mask)
			if out.Size() != tc.eout.Size() {
				t.Errorf("got bitmap of len %d, want %d", out.Size(), tc.eout.Size())
			}
			if !bytes.Equal(out.Data(), tc.eout.Data()) {
				t.Errorf("Select(%v, %v) == %v, want %v", tc.data.bits, tc.mask.bits, out.bits, tc.eout.bits)
			}
		})
	}
}

func TestParity(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		eout bool
	}{
		{"short even", mustDense(t, "101"), false},
		{"short odd", mustDense(t, "111"), true},
		{"empty", mustDense(t, ""), false},
		{"multibyte even", mustDense(t, "1111 1111 11"), false},
		{"multibyte odd", mustDense(t, "1111 1111 10"), true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if out := Parity(tc.data); out != tc.eout {
				t.Errorf("Parity(%v) == %v, want %v", tc.data.bits, out, tc.eout)
			}
		})
	}
}

func TestCountOnes(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		eout int
	}{
		{"short", mustDense(t, "101"), 2},
		{"empty", mustDense(t, ""), 0},
		{"multibyte one", mustDense(t, "1111 1111 11"), 10},
		{"multibyte two", mustDense(t, "1011 1011 10"), 7},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if out := CountOnes(tc.data); out != tc.eout {
				t.Errorf("CountOnes(%v) == %v, want %v", tc.data.bits, out, tc.eout)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tcs := []struct {
		name string
		a, b Dense
		eout bool
	}{
		{"both empty", mustDense(t, ""), mustDense(t, ""), true},
		{"same", mustDense(t, "1011 0110 1"), mustDense(t, "1011 0110 1"), true},
		{"bit differs", mustDense(t, "1011"), mustDense(t, "1010"), false},
		{"length differs", mustDense(t, "1011"), mustDense(t, "10110"), false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if out := Equal(tc.a, tc.b); out != tc.eout {
				t.Errorf("Equal(%v, %v) == %v, want %v", tc.a.bits, tc.b.bits, out, tc.eout)
			}
		})
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	if _, err := FromString("10x1"); err == nil {
		t.Error("FromString accepted a non-binary rune")
	}
}
