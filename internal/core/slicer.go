package core

// slice performs the linear byte scan of spec §4.1: walk raw, opening a
// new slice whenever the class bits change from the previous byte, and
// always terminate with a zero-length EOL slice. It also fills in the
// leftSpace, rightSpace and eol spans — the only three spans the slicer
// itself is responsible for; everything else is populated later by the
// analyzer.
func slice(raw string, sl *sliceArray, sp *spans) {
	sl.reset()

	n := len(raw)
	if n == 0 {
		sl.push(0, 0, 0) // EOL sentinel on an empty line
		sp.set(EOL, Span{Index: 0, Length: cellsPerSlice})
		return
	}

	start := 0
	cur := classOf(raw[0])
	for i := 1; i < n; i++ {
		b := classOf(raw[i])
		if b != cur {
			sl.push(cur, start, i-start)
			start = i
			cur = b
		}
	}
	sl.push(cur, start, n-start)
	sl.push(0, n, 0) // EOL sentinel

	last := sl.count() - 1 // index of EOL sentinel
	sp.set(EOL, Span{Index: last * cellsPerSlice, Length: cellsPerSlice})

	if sl.bits(0)&Space != 0 {
		sp.set(LeftSpace, Span{Index: 0, Length: cellsPerSlice})
	}
	// rightSpace: the slice immediately before EOL, if whitespace and the
	// line isn't a single all-whitespace slice (that one slice is
	// leftSpace, not rightSpace, on a pure-whitespace line).
	if last >= 1 {
		prev := last - 1
		if sl.bits(prev)&Space != 0 && prev != 0 {
			sp.set(RightSpace, Span{Index: prev * cellsPerSlice, Length: cellsPerSlice})
		}
	}
}

// isBlank reports whether the line carries no content slices at all: just
// optional leading whitespace followed immediately by EOL.
func isBlank(sl *sliceArray) bool {
	n := sl.count()
	if n == 1 {
		return true // only the EOL sentinel: empty line
	}
	if n == 2 && sl.bits(0)&Space != 0 {
		return true // one whitespace slice then EOL
	}
	return false
}
