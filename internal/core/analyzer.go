package core

import "github.com/coregx/filterlex/procedural"

// defaultMaxTokenLength is effectively "no limit": with it, no run
// bordering a right-hand wildcard is ever long enough to be accepted.
// Callers that want the pattern-token iterator to accept such runs once
// they reach a given byte length call SetMaxTokenLength with a smaller
// value (see spec §4.6).
const defaultMaxTokenLength = 1 << 30

// Options configures an Analyzer. The zero value is usable: every field
// degrades to a safe, permissive default so package core is self-testable
// without wiring the oracle package. Neither this package nor the facade
// imports package oracle; its implementations come only from the caller.
type Options struct {
	// Interactive, when true, overlays Error/Ignore bits onto individual
	// slices so an editor can highlight the offending bytes (spec §6).
	Interactive bool

	// RegexValidator checks /.../ pattern bodies for validity (spec §4.4
	// stage 2, "external: isValidRegex"). Defaults to always-valid.
	RegexValidator RegexValidator

	// Compiler compiles extended-filter cosmetic/HTML patterns (spec
	// §4.3). A nil Compiler marks every cosmetic/HTML filter Unsupported
	// rather than panicking.
	Compiler *procedural.Compiler
}

// Analyzer is the single-threaded, reusable parser object spec §5
// describes: one instance per thread, Reset/Analyze called strictly
// sequentially, iterators valid only between one Analyze and the next.
type Analyzer struct {
	opts Options

	raw string
	sl  sliceArray
	sp  spans

	analyzed bool
	category Category
	flavor   Flavor

	maxTokenLength int

	// Populated by analyzeNetExtra.
	netOpts   []netOptionRecord
	netRegexOK bool

	// Populated by analyzeExtExtra.
	compiled *procedural.Compiled
}

// New constructs an Analyzer. Pass a zero Options{} for a permissive,
// dependency-free instance (regexes always "valid", cosmetic/HTML patterns
// marked Unsupported).
func New(opts Options) *Analyzer {
	if opts.RegexValidator == nil {
		opts.RegexValidator = alwaysValidRegex{}
	}
	return &Analyzer{opts: opts, maxTokenLength: defaultMaxTokenLength}
}

// SetMaxTokenLength bounds the pattern-token iterator's wildcard-adjacency
// rule (spec §4.6).
func (a *Analyzer) SetMaxTokenLength(n int) {
	if n > 0 {
		a.maxTokenLength = n
	}
}

func (a *Analyzer) reset() {
	a.category = None
	a.flavor = 0
	a.netOpts = a.netOpts[:0]
	a.netRegexOK = false
	a.compiled = nil
	a.sp.reset()
}

// Analyze is the mandatory entry point (spec §6): reset, slice, classify,
// dispatch into network- or extended-filter structural analysis, and prime
// whichever iterator the category calls for. A second call overwrites all
// prior state; no exception escapes this method (spec §4.9).
func (a *Analyzer) Analyze(raw string) {
	a.reset()
	a.analyzed = true
	a.raw = raw
	slice(raw, &a.sl, &a.sp)

	if isBlank(&a.sl) {
		a.category = None
		return
	}
	analyzeTopLevel(a)
	a.AnalyzeExtra()
}

// AnalyzeExtra re-runs the deeper, category-specific validation pass
// (regex validity, dubious-pattern detection, option/selector priming)
// without re-slicing. Analyze already calls this once; exposed separately
// per spec §6 for callers that mutate MaxTokenLength or swap oracles
// between inspecting the cheap structural result and needing iterators.
func (a *Analyzer) AnalyzeExtra() {
	switch a.category {
	case StaticNetFilter:
		analyzeNetExtra(a)
	case StaticExtFilter:
		analyzeExtExtra(a)
	}
}

// Analyzed reports whether Analyze has been called at least once.
func (a *Analyzer) Analyzed() bool { return a.analyzed }

func (a *Analyzer) Category() Category { return a.category }

func (a *Analyzer) IsException() bool   { return a.flavor.Has(FlavorException) }
func (a *Analyzer) ShouldIgnore() bool  { return a.flavor.Has(FlavorIgnore) }
func (a *Analyzer) HasError() bool      { return a.flavor.Has(FlavorError) }
func (a *Analyzer) IsUnsupported() bool { return a.flavor.Has(FlavorUnsupported) }

// ShouldDiscard reports whether any of Error, Unsupported or Ignore is set
// (spec §7 propagation policy).
func (a *Analyzer) ShouldDiscard() bool {
	return a.flavor.Has(FlavorError | FlavorUnsupported | FlavorIgnore)
}

func (a *Analyzer) IsBlank() bool { return a.category == None && isBlank(&a.sl) }

func (a *Analyzer) Flavor() Flavor { return a.flavor }

// Compiled returns the procedural compiler's result for a cosmetic/HTML
// extended filter, or nil if the category isn't StaticExtFilter or
// compilation didn't run: scriptlet patterns (which carry
// FlavorExtScriptlet, not FlavorUnsupported), or no Compiler configured
// or a compile failure (both of which set FlavorUnsupported).
func (a *Analyzer) Compiled() *procedural.Compiled { return a.compiled }

// spanString exposes a named span's raw substring, used by the facade and by
// option/token iterators in sibling files of this package.
func (a *Analyzer) spanString(name SpanName) string {
	return strFromSpan(a.raw, &a.sl, a.sp.get(name))
}

func (a *Analyzer) patternString() string { return a.spanString(Pattern) }

func (a *Analyzer) patternIsRegex() bool { return a.flavor.Has(FlavorNetRegex) }

// GetNetPattern returns the regex body without enclosing slashes when
// NetRegex is set, else the verbatim pattern text (spec §6).
func (a *Analyzer) GetNetPattern() string {
	p := a.patternString()
	if a.patternIsRegex() && len(p) >= 2 {
		return p[1 : len(p)-1]
	}
	return p
}
