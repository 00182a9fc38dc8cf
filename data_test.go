package chartkit

import (
	"math"
	"testing"
)

func graphKeys(d *GraphData) []float64 {
	keys := make([]float64, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		keys = append(keys, d.At(i).Key)
	}
	return keys
}

func TestGraphDataInsertKeepsOrder(t *testing.T) {
	d := NewGraphData()
	for _, k := range []float64{5, 1, 8, 3, 2} {
		d.AddKV(k, k*10)
	}
	want := []float64{1, 2, 3, 5, 8}
	got := graphKeys(d)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}

func TestGraphDataOverwriteOnDuplicateKey(t *testing.T) {
	d := NewGraphData()
	d.AddKV(2, 10)
	d.AddKV(2, 99)
	if d.Len() != 1 {
		t.Fatalf("len = %d, want 1", d.Len())
	}
	if v := d.At(0).Value; v != 99 {
		t.Fatalf("value = %v, want 99", v)
	}
}

func TestGraphDataEachWithin(t *testing.T) {
	d := NewGraphData()
	for _, k := range []float64{1, 2, 3, 5, 8} {
		d.AddKV(k, 0)
	}
	var visited []float64
	d.EachWithin(2, 5, func(p GraphPoint) bool {
		visited = append(visited, p.Key)
		return true
	})
	want := []float64{2, 3, 5}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestGraphDataEachInRangeWidens(t *testing.T) {
	d := NewGraphData()
	for _, k := range []float64{1, 2, 3, 5, 8} {
		d.AddKV(k, 0)
	}
	var visited []float64
	d.EachInRange(2.5, 4, func(p GraphPoint) bool {
		visited = append(visited, p.Key)
		return true
	})
	// one point beyond each bound so edge segments can clip
	want := []float64{2, 3, 5}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestGraphDataRemoveRange(t *testing.T) {
	d := NewGraphData()
	for _, k := range []float64{1, 2, 3, 5, 8} {
		d.AddKV(k, 0)
	}
	d.RemoveRange(2, 5)
	want := []float64{1, 8}
	got := graphKeys(d)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestGraphDataValueRangeIncludesErrorBars(t *testing.T) {
	d := NewGraphData()
	d.Add(GraphPoint{Key: 1, Value: 10, ValueErrMinus: 3, ValueErrPlus: 5})
	d.Add(GraphPoint{Key: 2, Value: 20})
	r, ok := d.ValueRange(SignBoth)
	if !ok {
		t.Fatal("no range found")
	}
	if r.Lower != 7 || r.Upper != 25 {
		t.Fatalf("range = %+v, want [7, 25]", r)
	}
}

func TestSignDomainFiltering(t *testing.T) {
	d := NewGraphData()
	d.AddKV(-2, -4)
	d.AddKV(1, 3)
	d.AddKV(5, 7)

	r, ok := d.KeyRange(SignPositive)
	if !ok || r.Lower != 1 || r.Upper != 5 {
		t.Fatalf("positive key range = %+v ok=%v", r, ok)
	}
	r, ok = d.KeyRange(SignNegative)
	if !ok || r.Lower != -2 || r.Upper != -2 {
		t.Fatalf("negative key range = %+v ok=%v", r, ok)
	}
	if _, ok := NewGraphData().KeyRange(SignBoth); ok {
		t.Fatal("empty container reported a range")
	}
}

func TestBarDataValueAt(t *testing.T) {
	d := NewBarData()
	d.AddKV(1, 3)
	d.AddKV(2, 5)
	if v, ok := d.ValueAt(2); !ok || v != 5 {
		t.Fatalf("ValueAt(2) = %v, %v", v, ok)
	}
	// exact key match only
	if _, ok := d.ValueAt(2.0000001); ok {
		t.Fatal("near-miss key matched")
	}
}

func TestCurveDataOrderedByParameter(t *testing.T) {
	d := NewCurveData()
	d.Add(CurvePoint{T: 2, Key: 0, Value: 1})
	d.Add(CurvePoint{T: 0, Key: 1, Value: 0})
	d.Add(CurvePoint{T: 1, Key: 0.5, Value: math.Pi})
	var ts []float64
	d.Each(func(p CurvePoint) bool {
		ts = append(ts, p.T)
		return true
	})
	if len(ts) != 3 || ts[0] != 0 || ts[1] != 1 || ts[2] != 2 {
		t.Fatalf("parameter order = %v", ts)
	}
}
