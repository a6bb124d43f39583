package core

// tryExtAnalysis attempts spec §4.3's extended-filter anchor recognition
// starting at slice hashFrom (a slice known to carry the Hash bit). It
// returns false without mutating category/flavor/spans beyond slice splits
// already performed when the anchor does not match (the caller then falls
// back to comment or network-filter analysis).
func tryExtAnalysis(a *Analyzer, hashFrom int) bool {
	sl := &a.sl
	runLen := sl.length(hashFrom)
	if runLen == 0 || runLen > 3 {
		return false
	}

	var (
		exception, style, strong, unsupported bool
		anchorEnd                              int
	)

	switch runLen {
	case 2:
		if n := hashFrom + 1; n < sl.count() {
			if sl.bits(n)&Space != 0 || n == sl.count()-1 {
				return false
			}
		}
		anchorEnd = hashFrom

	case 3:
		offset := sl.splitSlot(hashFrom, 2)
		a.sp.shiftFrom(offset, cellsPerSlice)
		anchorEnd = hashFrom

	case 1:
		pos := hashFrom + 1
		if pos < sl.count() && sl.bits(pos)&At != 0 {
			if sl.length(pos) != 1 {
				return false
			}
			exception = true
			pos++
		}
		switch {
		case pos < sl.count() && sl.bits(pos)&Dollar != 0 && sl.length(pos) == 1:
			style = true
			pos++
			if pos < sl.count() && sl.bits(pos)&Question != 0 && sl.length(pos) == 1 {
				strong = true
				pos++
			}
		case pos < sl.count() && sl.bits(pos)&Percent != 0 && sl.length(pos) == 1:
			unsupported = true
			pos++
		case pos < sl.count() && sl.bits(pos)&Question != 0 && sl.length(pos) == 1:
			strong = true
			pos++
		}
		if pos >= sl.count() || sl.bits(pos)&Hash == 0 {
			return false
		}
		if sl.length(pos) > 1 {
			offset := sl.splitSlot(pos, 1)
			a.sp.shiftFrom(offset, cellsPerSlice)
		}
		anchorEnd = pos
	}

	eolIdx := sl.count() - 1
	patternStart := anchorEnd + 1
	patternEnd := eolIdx
	if rs := a.sp.get(RightSpace); !rs.empty() {
		patternEnd = rs.sliceIndex()
	}
	if patternStart >= patternEnd {
		return false // no selector text: not a valid extended filter
	}

	optStart := firstContentSlice(a)
	optionsLen := hashFrom - optStart
	if optionsLen > 0 {
		a.sp.set(Options, Span{Index: optStart * cellsPerSlice, Length: optionsLen * cellsPerSlice})
	}

	a.sp.set(OptionsAnchor, Span{
		Index:  hashFrom * cellsPerSlice,
		Length: (anchorEnd - hashFrom + 1) * cellsPerSlice,
	})
	a.sp.set(Pattern, Span{
		Index:  patternStart * cellsPerSlice,
		Length: (patternEnd - patternStart) * cellsPerSlice,
	})

	a.category = StaticExtFilter
	if exception {
		a.flavor |= FlavorException
	}
	if style {
		a.flavor |= FlavorExtStyle
	}
	if strong {
		a.flavor |= FlavorExtStrong
	}
	if unsupported {
		a.flavor |= FlavorUnsupported
	}
	return true
}

// analyzeExtExtra refines the extended-filter pattern flavor (spec §4.3's
// "Pattern flavor refinement") and invokes the procedural selector
// compiler for cosmetic/HTML patterns.
func analyzeExtExtra(a *Analyzer) {
	validateExtOptions(a)

	pat := a.patternString()
	if pat == "" {
		a.flavor |= FlavorError
		return
	}

	switch {
	case pat[0] == '+' && isScriptletCall(pat):
		a.flavor |= FlavorExtScriptlet
		return
	case pat[0] == '^':
		a.flavor |= FlavorExtHTML
		pat = pat[1:]
	default:
		a.flavor |= FlavorExtCosmetic
	}

	if a.opts.Compiler == nil {
		a.flavor |= FlavorUnsupported
		return
	}
	compiled, ok := a.opts.Compiler.Compile(pat)
	if !ok {
		a.flavor |= FlavorUnsupported
		return
	}
	a.compiled = compiled
}

// isScriptletCall recognizes the +js(...) scriptlet-injection surface
// syntax (spec §4.3 pattern-flavor refinement, first bullet).
func isScriptletCall(pat string) bool {
	return len(pat) > 5 && pat[:4] == "+js(" && pat[len(pat)-1] == ')'
}

// scriptletArgument returns the interior of +js(...), the "compiled value"
// spec §4.3 names for the scriptlet flavor.
func scriptletArgument(pat string) string {
	return pat[4 : len(pat)-1]
}
