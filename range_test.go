package chartkit

import (
	"math"
	"testing"
)

func TestValidRange(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper float64
		want         bool
	}{
		{"ordered", 0, 1, true},
		{"inverted", 1, 0, false},
		{"equal", 1, 1, false},
		{"nan lower", math.NaN(), 1, false},
		{"nan upper", 0, math.NaN(), false},
		{"too large", 0, 1e281, false},
		{"too small span", 0, 1e-290, false},
		{"negative ok", -5, -1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidRange(c.lower, c.upper); got != c.want {
				t.Errorf("ValidRange(%v, %v) = %v, want %v", c.lower, c.upper, got, c.want)
			}
		})
	}
}

func TestSanitizedForLinScale(t *testing.T) {
	t.Run("inverted bounds swap", func(t *testing.T) {
		r := Range{Lower: 5, Upper: 2}.SanitizedForLinScale()
		if r.Lower != 2 || r.Upper != 5 {
			t.Fatalf("got %+v", r)
		}
	})
	t.Run("degenerate span widens around center", func(t *testing.T) {
		r := Range{Lower: 3, Upper: 3}.SanitizedForLinScale()
		if r.Size() < minRangeSpan {
			t.Fatalf("span %v still below minimum", r.Size())
		}
		if math.Abs(r.Center()-3) > 1e-9 {
			t.Fatalf("center moved to %v", r.Center())
		}
	})
	t.Run("nan bounds replaced", func(t *testing.T) {
		r := Range{Lower: math.NaN(), Upper: math.NaN()}.SanitizedForLinScale()
		if math.IsNaN(r.Lower) || math.IsNaN(r.Upper) || r.Size() <= 0 {
			t.Fatalf("got %+v", r)
		}
		r = Range{Lower: math.NaN(), Upper: 7}.SanitizedForLinScale()
		if math.IsNaN(r.Lower) || r.Upper != 7 {
			t.Fatalf("got %+v", r)
		}
	})
}

func TestSanitizedForLogScale(t *testing.T) {
	t.Run("mixed sign pulled positive", func(t *testing.T) {
		r := Range{Lower: -1, Upper: 1000}.SanitizedForLogScale()
		if r.Lower <= 0 {
			t.Fatalf("lower bound %v not positive", r.Lower)
		}
		if r.Lower != 1 {
			t.Errorf("lower = %v, want upper*1e-3 = 1", r.Lower)
		}
	})
	t.Run("mixed sign pulled negative", func(t *testing.T) {
		r := Range{Lower: -1000, Upper: 1}.SanitizedForLogScale()
		if r.Upper >= 0 {
			t.Fatalf("upper bound %v not negative", r.Upper)
		}
	})
	t.Run("already valid untouched", func(t *testing.T) {
		r := Range{Lower: 1, Upper: 100}.SanitizedForLogScale()
		if r.Lower != 1 || r.Upper != 100 {
			t.Fatalf("got %+v", r)
		}
	})
}

func TestRangeExpanded(t *testing.T) {
	r := Range{Lower: 2, Upper: 5}.Expanded(Range{Lower: 0, Upper: 4})
	if r.Lower != 0 || r.Upper != 5 {
		t.Fatalf("got %+v", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Lower: -1, Upper: 1}
	for v, want := range map[float64]bool{-1: true, 0: true, 1: true, 1.01: false, -2: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%v) = %v, want %v", v, got, want)
		}
	}
}
