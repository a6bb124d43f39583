// Package filterlex parses one line of ad-block filter syntax (uBlock
// Origin / AdGuard / Adblock Plus's static-filter dialect) into a compact,
// byte-level structural description: category, flavor bits, named syntax
// spans, and — for network and extended filters — validated option and
// token iterators.
//
// Basic usage:
//
//	p := filterlex.New(filterlex.Options{})
//	p.Analyze("||ads.example.com^$image,third-party")
//	fmt.Println(p.Category())       // StaticNetFilter
//	fmt.Println(p.LeftHnAnchored()) // true
//
// Parser is a single-threaded, reusable object (see §5 of SPEC_FULL.md):
// one instance per goroutine, Analyze calls made strictly sequentially. Iterators are valid only between one Analyze
// call and the next.
package filterlex

import (
	"strings"

	"github.com/coregx/filterlex/internal/core"
	"github.com/coregx/filterlex/procedural"
)

// RegexValidator checks whether a candidate /regex/ pattern body is
// syntactically valid. oracle.Regex compiles it with the published
// coregex engine; when Options.RegexValidator is nil, every regex body is
// treated as valid.
type RegexValidator interface {
	IsValid(pattern string) bool
}

// Punycoder converts a Unicode hostname to its ASCII (punycode) form.
// oracle.IDNA wraps golang.org/x/net/idna; when Options.Punycoder is nil,
// ToPunycode always returns false.
type Punycoder interface {
	ToASCII(hostname string) (string, bool)
}

// Category mirrors internal/core.Category for external consumers.
type Category = core.Category

const (
	None            = core.None
	Comment         = core.CommentCategory
	StaticNetFilter = core.StaticNetFilter
	StaticExtFilter = core.StaticExtFilter
)

// NetOption mirrors internal/core.NetOption.
type NetOption = core.NetOption

// PatternToken mirrors internal/core.PatternToken.
type PatternToken = core.PatternToken

// Compiled mirrors procedural.Compiled, the result of compiling a
// cosmetic/HTML extended-filter pattern.
type Compiled = procedural.Compiled

// Options configures a Parser (spec §6's single constructor option, plus
// oracle injection). The zero value is usable, but a nil oracle field is
// not filled in from package oracle: a nil RegexValidator accepts every
// regex body, a nil CSSValidator leaves the procedural compiler out so
// every cosmetic/HTML extended filter is marked Unsupported, and a nil
// Punycoder makes ToPunycode return false.
type Options struct {
	// Interactive, when true, overlays Error/Ignore bits on individual
	// slices for editor-style highlighting.
	Interactive bool

	// MaxTokenLength bounds PatternTokens' wildcard-adjacency rule.
	// Zero means "no limit".
	MaxTokenLength int

	RegexValidator       RegexValidator
	CSSValidator         procedural.CSSValidator
	XPathValidator       procedural.XPathValidator
	DeclarationValidator procedural.DeclarationValidator
	Punycoder            Punycoder
}

// Parser is the public entry point spec §2 names: the only exported type
// wrapping the unexported core.Analyzer, exactly as coregex.Regex is the
// only exported type wrapping meta.Engine.
//
// Not safe for concurrent use: Analyze mutates owned buffers in place.
type Parser struct {
	a    *core.Analyzer
	puny Punycoder
}

// New constructs a Parser. Oracles left nil in opts stay nil (see Options
// for what each nil field means): filterlex does not import package
// oracle, so callers that want its implementations pass oracle types in
// directly.
func New(opts Options) *Parser {
	var compiler *procedural.Compiler
	if opts.CSSValidator != nil {
		compiler = procedural.NewCompiler(opts.CSSValidator, opts.XPathValidator, opts.DeclarationValidator)
	}

	a := core.New(core.Options{
		Interactive:    opts.Interactive,
		RegexValidator: opts.RegexValidator,
		Compiler:       compiler,
	})
	if opts.MaxTokenLength > 0 {
		a.SetMaxTokenLength(opts.MaxTokenLength)
	}
	return &Parser{a: a, puny: opts.Punycoder}
}

// Analyze is the mandatory entry point: reset, slice, classify, and
// dispatch into structural analysis. No error escapes this method (spec
// §4.9); inspect HasError/IsUnsupported/ShouldIgnore afterward.
func (p *Parser) Analyze(raw string) { p.a.Analyze(raw) }

// AnalyzeExtra re-runs the deeper validation pass without re-slicing; see
// core.Analyzer.AnalyzeExtra.
func (p *Parser) AnalyzeExtra() { p.a.AnalyzeExtra() }

func (p *Parser) SetMaxTokenLength(n int) { p.a.SetMaxTokenLength(n) }

// Analyzed reports whether Analyze has run at least once.
func (p *Parser) Analyzed() bool { return p.a.Analyzed() }

// Err returns ErrNotAnalyzed if no Analyze call has happened yet, else nil.
// Every other accessor on Parser is safe to call regardless (it reads back
// zero values from a freshly-constructed Analyzer) — Err exists only to
// catch the programmer-misuse case spec §4.9 reserves real errors for.
func (p *Parser) Err() error {
	if !p.a.Analyzed() {
		return ErrNotAnalyzed
	}
	return nil
}

func (p *Parser) Category() Category    { return p.a.Category() }
func (p *Parser) IsException() bool     { return p.a.IsException() }
func (p *Parser) ShouldIgnore() bool    { return p.a.ShouldIgnore() }
func (p *Parser) HasError() bool        { return p.a.HasError() }
func (p *Parser) IsUnsupported() bool   { return p.a.IsUnsupported() }
func (p *Parser) ShouldDiscard() bool   { return p.a.ShouldDiscard() }
func (p *Parser) IsBlank() bool         { return p.a.IsBlank() }

// GetNetPattern returns the regex body without enclosing slashes when the
// pattern is a regex literal, else the verbatim pattern text.
func (p *Parser) GetNetPattern() string { return p.a.GetNetPattern() }

func (p *Parser) PatternIsRegex() bool        { return p.a.Flavor().Has(core.FlavorNetRegex) }
func (p *Parser) PatternMatchAll() bool       { return p.a.GetNetPattern() == "*" }
func (p *Parser) PatternHasWildcard() bool    { return strings.ContainsRune(p.a.GetNetPattern(), '*') }
func (p *Parser) PatternHasCaret() bool       { return strings.ContainsRune(p.a.GetNetPattern(), '^') }
func (p *Parser) LeftHnAnchored() bool        { return p.a.Flavor().Has(core.FlavorNetLeftHnAnchor) }
func (p *Parser) RightHnAnchored() bool       { return p.a.Flavor().Has(core.FlavorNetRightHnAnchor) }
func (p *Parser) LeftAnchored() bool {
	return p.a.Flavor().Has(core.FlavorNetLeftHnAnchor | core.FlavorNetLeftURLAnchor)
}
func (p *Parser) RightAnchored() bool {
	return p.a.Flavor().Has(core.FlavorNetRightHnAnchor | core.FlavorNetRightURLAnchor)
}

func (p *Parser) PatternIsPlainHostname() bool {
	pat := p.a.GetNetPattern()
	return p.LeftHnAnchored() && p.RightHnAnchored() && !strings.ContainsAny(pat, "*^|")
}

func (p *Parser) PatternHasUnicode() bool {
	for _, r := range p.a.GetNetPattern() {
		if r >= 0x80 {
			return true
		}
	}
	return false
}

func (p *Parser) PatternHasUppercase() bool {
	for _, r := range p.a.GetNetPattern() {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// PatternToLowercase lowercases the pattern text in place and re-analyzes
// it (spec §6: "mutates raw and slices").
func (p *Parser) PatternToLowercase() string {
	lower := strings.ToLower(p.a.GetNetPattern())
	// Lowercasing never changes byte length for the ASCII hostname/path
	// bytes this pattern is made of, so a full re-Analyze of the
	// lowercased pattern text reproduces the same category/spans with
	// the new bytes, matching spec §6's "mutates raw and slices".
	p.a.Analyze(lower)
	return lower
}

// ToPunycode re-analyzes the pattern with its hostname prefix converted
// to punycode (spec §6, §9 open question (a)): both the "hostname regex
// didn't match" and "explicit IDNA error" failure modes collapse to a
// single false return.
func (p *Parser) ToPunycode() bool {
	if p.puny == nil {
		return false
	}
	pat := p.a.GetNetPattern()
	host := pat
	rest := ""
	for i, r := range pat {
		if r == '/' || r == '^' || r == '*' {
			host, rest = pat[:i], pat[i:]
			break
		}
	}
	if host == "" {
		return false
	}
	ascii, ok := p.puny.ToASCII(host)
	if !ok {
		return false
	}
	p.a.Analyze(ascii + rest)
	return true
}

func (p *Parser) NetOptions() []NetOption       { return p.a.NetOptions() }
func (p *Parser) ExtOptions() []string          { return p.a.ExtOptions() }
func (p *Parser) PatternTokens() []PatternToken { return p.a.PatternTokens() }

// Compiled returns the procedural compiler's result for a cosmetic/HTML
// extended filter (nil for every other category, for scriptlet patterns,
// or if compilation failed / wasn't configured).
func (p *Parser) Compiled() *Compiled { return p.a.Compiled() }
