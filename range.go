package magicstring

// Range selects a byte range of a view. Construct with Between, Through,
// To, From, or All. The zero value selects the whole view.
type Range struct {
	start     int
	end       int
	hasStart  bool
	hasEnd    bool
	inclusive bool
}

// Between selects [start, end).
func Between(start, end int) Range {
	return Range{start: start, end: end, hasStart: true, hasEnd: true}
}

// Through selects [start, end] (end inclusive).
func Through(start, end int) Range {
	return Range{start: start, end: end, hasStart: true, hasEnd: true, inclusive: true}
}

// To selects [0, end).
func To(end int) Range {
	return Range{end: end, hasEnd: true}
}

// From selects [start, Len()).
func From(start int) Range {
	return Range{start: start, hasStart: true}
}

// All selects the whole view.
func All() Range {
	return Range{}
}

// bounds resolves the range against a view of n bytes into concrete
// half-open endpoints.
func (r Range) bounds(n int) (int, int, error) {
	start, end := 0, n
	if r.hasStart {
		start = r.start
	}
	if r.hasEnd {
		end = r.end
		if r.inclusive {
			end++
		}
	}
	if start < 0 {
		return 0, 0, outOfRange(start, n, "negative index")
	}
	if start > end {
		return 0, 0, outOfRange(start, n, "range start past range end")
	}
	if end > n {
		return 0, 0, outOfRange(end, n, "")
	}
	return start, end, nil
}

// getText slices t via two splits: at the range end, then at the range
// start inside the left half.
func getText(t Text, r Range) (Text, error) {
	start, end, err := r.bounds(t.Len())
	if err != nil {
		return nil, err
	}
	left, _, err := t.SplitAt(end)
	if err != nil {
		return nil, err
	}
	_, sub, err := left.SplitAt(start)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
