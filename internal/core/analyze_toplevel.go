package core

// firstContentSlice returns the index of the first slice after leftSpace
// (or 0 if there is no leading whitespace).
func firstContentSlice(a *Analyzer) int {
	if !a.sp.get(LeftSpace).empty() {
		return 1
	}
	return 0
}

// analyzeTopLevel implements spec §4.2's dispatch.
func analyzeTopLevel(a *Analyzer) {
	first := firstContentSlice(a)
	eolIdx := a.sl.count() - 1 // EOL sentinel is always last

	if first >= eolIdx {
		a.category = None
		return
	}

	firstBits := a.sl.bits(first)
	if firstBits&LineComment != 0 {
		if firstBits&Hash != 0 && tryExtAnalysis(a, first) {
			return
		}
		a.category = CommentCategory
		return
	}

	hashIdx := -1
	for i := first; i < eolIdx; i++ {
		if a.sl.bits(i)&Hash != 0 {
			hashIdx = i
			break
		}
	}
	if hashIdx != -1 {
		if tryExtAnalysis(a, hashIdx) {
			return
		}
		if a.sl.allBits&Space != 0 {
			for i := first + 1; i < a.sl.count()-1; i++ {
				if a.sl.bits(i)&Hash != 0 && a.sl.bits(i-1)&Space != 0 {
					markInlineComment(a, i-1)
					break
				}
			}
		}
	}

	analyzeNetwork(a, first)
}

// markInlineComment records a trailing " # ..." comment (spec §4.2 step 2)
// and, if it reaches all the way to EOL (or rightSpace), leaves the
// network analysis to run only over the bytes before it.
func markInlineComment(a *Analyzer, spaceIdx int) {
	eolIdx := a.sl.count() - 1
	a.sp.set(Comment, Span{
		Index:  spaceIdx * cellsPerSlice,
		Length: (eolIdx - spaceIdx) * cellsPerSlice,
	})
}

// commentBoundary returns the slice index marking the exclusive end of the
// region network analysis may examine: either the start of an inline
// comment, or the start of rightSpace, or EOL.
func commentBoundary(a *Analyzer) int {
	if c := a.sp.get(Comment); !c.empty() {
		return c.sliceIndex()
	}
	if rs := a.sp.get(RightSpace); !rs.empty() {
		return rs.sliceIndex()
	}
	return a.sl.count() - 1
}
