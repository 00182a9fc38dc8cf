package chartkit

import "slices"

// SignDomain restricts extent queries to one side of zero. Logarithmic axes
// cannot auto-fit a range that includes non-positive values, so they query
// only the sign domain their current range lives in.
type SignDomain int

const (
	SignBoth SignDomain = iota
	SignNegative
	SignPositive
)

func (d SignDomain) admits(v float64) bool {
	switch d {
	case SignNegative:
		return v < 0
	case SignPositive:
		return v > 0
	default:
		return true
	}
}

// sortedSeries is the storage shared by the plottable data containers: two
// parallel slices kept in ascending key order. The sort order is load-bearing,
// both for range-bounded iteration and for rendering order.
type sortedSeries[R any] struct {
	keys []float64
	recs []R
}

// insert adds rec at key, overwriting any existing record with the same key.
func (s *sortedSeries[R]) insert(key float64, rec R) {
	index, found := slices.BinarySearch(s.keys, key)
	if found {
		s.recs[index] = rec
		return
	}
	s.keys = slices.Insert(s.keys, index, key)
	s.recs = slices.Insert(s.recs, index, rec)
}

// removeRange deletes every record whose key lies in [from, to].
func (s *sortedSeries[R]) removeRange(from, to float64) {
	if to < from {
		from, to = to, from
	}
	first, _ := slices.BinarySearch(s.keys, from)
	last, found := slices.BinarySearch(s.keys, to)
	if found {
		last++
	}
	s.keys = slices.Delete(s.keys, first, last)
	s.recs = slices.Delete(s.recs, first, last)
}

func (s *sortedSeries[R]) remove(key float64) bool {
	index, found := slices.BinarySearch(s.keys, key)
	if !found {
		return false
	}
	s.keys = slices.Delete(s.keys, index, index+1)
	s.recs = slices.Delete(s.recs, index, index+1)
	return true
}

func (s *sortedSeries[R]) clear() {
	s.keys = s.keys[:0]
	s.recs = s.recs[:0]
}

func (s *sortedSeries[R]) len() int {
	return len(s.keys)
}

// visibleIndices returns the half-open index interval [first, last) of
// records to visit when drawing the key range [lower, upper]. The interval is
// widened by one record on each side so that line segments leaving the
// viewport still clip correctly at its edge.
func (s *sortedSeries[R]) visibleIndices(lower, upper float64) (first, last int) {
	first, _ = slices.BinarySearch(s.keys, lower)
	if first > 0 {
		first--
	}
	last, found := slices.BinarySearch(s.keys, upper)
	if found {
		last++
	}
	if last < len(s.keys) {
		last++
	}
	return first, last
}

// inRangeIndices returns the half-open index interval of records whose keys
// fall strictly within [lower, upper], with no widening.
func (s *sortedSeries[R]) inRangeIndices(lower, upper float64) (first, last int) {
	first, _ = slices.BinarySearch(s.keys, lower)
	last, found := slices.BinarySearch(s.keys, upper)
	if found {
		last++
	}
	return first, last
}

// GraphPoint is one record of a GraphData container. The error fields are
// half-widths of the error bars; zero means no error bar in that direction.
type GraphPoint struct {
	Key, Value    float64
	KeyErrMinus   float64
	KeyErrPlus    float64
	ValueErrMinus float64
	ValueErrPlus  float64
}

// GraphData is the sorted container backing Graph plottables.
type GraphData struct {
	s sortedSeries[GraphPoint]
}

func NewGraphData() *GraphData {
	return &GraphData{}
}

// Add inserts points, overwriting records that share a key.
func (d *GraphData) Add(pts ...GraphPoint) {
	for _, pt := range pts {
		d.s.insert(pt.Key, pt)
	}
}

// AddKV inserts a plain key/value point without error bars.
func (d *GraphData) AddKV(key, value float64) {
	d.s.insert(key, GraphPoint{Key: key, Value: value})
}

func (d *GraphData) Remove(key float64) bool   { return d.s.remove(key) }
func (d *GraphData) RemoveRange(from, to float64) { d.s.removeRange(from, to) }
func (d *GraphData) Clear()                    { d.s.clear() }
func (d *GraphData) Len() int                  { return d.s.len() }

// At returns the i-th point in ascending key order.
func (d *GraphData) At(i int) GraphPoint { return d.s.recs[i] }

// EachInRange visits, in ascending key order, every point whose key falls in
// [lower, upper] plus the single point adjacent to each bound, stopping early
// if fn returns false.
func (d *GraphData) EachInRange(lower, upper float64, fn func(GraphPoint) bool) {
	first, last := d.s.visibleIndices(lower, upper)
	for i := first; i < last; i++ {
		if !fn(d.s.recs[i]) {
			return
		}
	}
}

// EachWithin is like EachInRange but visits only points strictly inside the
// bounds, with no adjacency widening.
func (d *GraphData) EachWithin(lower, upper float64, fn func(GraphPoint) bool) {
	first, last := d.s.inRangeIndices(lower, upper)
	for i := first; i < last; i++ {
		if !fn(d.s.recs[i]) {
			return
		}
	}
}

// KeyRange scans all points for the key extent, restricted to sign.
func (d *GraphData) KeyRange(sign SignDomain) (Range, bool) {
	return scanRange(d.s.recs, sign, func(p GraphPoint) (float64, float64) {
		return p.Key, p.Key
	})
}

// ValueRange scans all points for the value extent including error bars,
// restricted to sign.
func (d *GraphData) ValueRange(sign SignDomain) (Range, bool) {
	return scanRange(d.s.recs, sign, func(p GraphPoint) (float64, float64) {
		return p.Value - p.ValueErrMinus, p.Value + p.ValueErrPlus
	})
}

// BarPoint is one record of a BarData container.
type BarPoint struct {
	Key, Value float64
}

// BarData is the sorted container backing Bars plottables.
type BarData struct {
	s sortedSeries[BarPoint]
}

func NewBarData() *BarData {
	return &BarData{}
}

func (d *BarData) Add(pts ...BarPoint) {
	for _, pt := range pts {
		d.s.insert(pt.Key, pt)
	}
}

func (d *BarData) AddKV(key, value float64) {
	d.s.insert(key, BarPoint{Key: key, Value: value})
}

func (d *BarData) Remove(key float64) bool   { return d.s.remove(key) }
func (d *BarData) RemoveRange(from, to float64) { d.s.removeRange(from, to) }
func (d *BarData) Clear()                    { d.s.clear() }
func (d *BarData) Len() int                  { return d.s.len() }
func (d *BarData) At(i int) BarPoint         { return d.s.recs[i] }

// ValueAt returns the stored value at exactly key.
func (d *BarData) ValueAt(key float64) (float64, bool) {
	index, found := slices.BinarySearch(d.s.keys, key)
	if !found {
		return 0, false
	}
	return d.s.recs[index].Value, true
}

func (d *BarData) EachInRange(lower, upper float64, fn func(BarPoint) bool) {
	first, last := d.s.visibleIndices(lower, upper)
	for i := first; i < last; i++ {
		if !fn(d.s.recs[i]) {
			return
		}
	}
}

func (d *BarData) KeyRange(sign SignDomain) (Range, bool) {
	return scanRange(d.s.recs, sign, func(p BarPoint) (float64, float64) {
		return p.Key, p.Key
	})
}

// CurvePoint is one record of a CurveData container: a point on a parametric
// curve at parameter T.
type CurvePoint struct {
	T, Key, Value float64
}

// CurveData is sorted by the independent parameter T, not by key, so curves
// may loop and backtrack in key direction.
type CurveData struct {
	s sortedSeries[CurvePoint]
}

func NewCurveData() *CurveData {
	return &CurveData{}
}

func (d *CurveData) Add(pts ...CurvePoint) {
	for _, pt := range pts {
		d.s.insert(pt.T, pt)
	}
}

func (d *CurveData) Remove(t float64) bool   { return d.s.remove(t) }
func (d *CurveData) RemoveRange(from, to float64) { d.s.removeRange(from, to) }
func (d *CurveData) Clear()                  { d.s.clear() }
func (d *CurveData) Len() int                { return d.s.len() }
func (d *CurveData) At(i int) CurvePoint     { return d.s.recs[i] }

func (d *CurveData) Each(fn func(CurvePoint) bool) {
	for i := range d.s.recs {
		if !fn(d.s.recs[i]) {
			return
		}
	}
}

func (d *CurveData) KeyRange(sign SignDomain) (Range, bool) {
	return scanRange(d.s.recs, sign, func(p CurvePoint) (float64, float64) {
		return p.Key, p.Key
	})
}

func (d *CurveData) ValueRange(sign SignDomain) (Range, bool) {
	return scanRange(d.s.recs, sign, func(p CurvePoint) (float64, float64) {
		return p.Value, p.Value
	})
}

// scanRange aggregates the [lo, hi] extents of every record admitted by the
// sign domain. It reports false when no record qualifies.
func scanRange[R any](recs []R, sign SignDomain, extent func(R) (float64, float64)) (Range, bool) {
	var r Range
	found := false
	for i := range recs {
		lo, hi := extent(recs[i])
		if !sign.admits(lo) && !sign.admits(hi) {
			continue
		}
		if sign.admits(lo) {
			if !found || lo < r.Lower {
				r.Lower = lo
			}
			if !found || lo > r.Upper {
				r.Upper = lo
			}
			found = true
		}
		if sign.admits(hi) {
			if !found || hi < r.Lower {
				r.Lower = hi
			}
			if !found || hi > r.Upper {
				r.Upper = hi
			}
			found = true
		}
	}
	return r, found
}
