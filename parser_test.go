package filterlex_test

import (
	"testing"

	"github.com/coregx/filterlex"
	"github.com/coregx/filterlex/oracle"
)

func newTestParser() *filterlex.Parser {
	return filterlex.New(filterlex.Options{
		RegexValidator:       oracle.Regex{},
		CSSValidator:         oracle.CSS{},
		XPathValidator:       oracle.XPath{},
		DeclarationValidator: oracle.Declaration{},
		Punycoder:            oracle.IDNA{},
	})
}

func TestAnalyzeScenarios(t *testing.T) {
	cases := []struct {
		name string
		line string
		want func(t *testing.T, p *filterlex.Parser)
	}{
		{
			name: "plain hostname anchor",
			line: "||example.com^",
			want: func(t *testing.T, p *filterlex.Parser) {
				if p.Category() != filterlex.StaticNetFilter {
					t.Fatalf("category = %v, want StaticNetFilter", p.Category())
				}
				if !p.LeftHnAnchored() || !p.RightHnAnchored() {
					t.Fatalf("expected both hostname anchors")
				}
				if got := p.GetNetPattern(); got != "example.com" {
					t.Fatalf("pattern = %q", got)
				}
				if p.IsException() {
					t.Fatalf("unexpected exception")
				}
			},
		},
		{
			name: "exception with options",
			line: "@@||ads.example.com/banner$image,~third-party",
			want: func(t *testing.T, p *filterlex.Parser) {
				if !p.IsException() {
					t.Fatalf("expected exception")
				}
				if !p.LeftHnAnchored() {
					t.Fatalf("expected left hostname anchor")
				}
				if got := p.GetNetPattern(); got != "ads.example.com/banner" {
					t.Fatalf("pattern = %q", got)
				}
				opts := p.NetOptions()
				if len(opts) != 2 {
					t.Fatalf("len(options) = %d, want 2", len(opts))
				}
				if opts[0].Name != "image" || opts[0].Negated {
					t.Fatalf("option[0] = %+v", opts[0])
				}
				if opts[1].Name != "third-party" || !opts[1].Negated {
					t.Fatalf("option[1] = %+v", opts[1])
				}
			},
		},
		{
			name: "comment",
			line: "! this is a comment",
			want: func(t *testing.T, p *filterlex.Parser) {
				if p.Category() != filterlex.Comment {
					t.Fatalf("category = %v, want Comment", p.Category())
				}
			},
		},
		{
			name: "cosmetic filter",
			line: "example.com##.ad-banner",
			want: func(t *testing.T, p *filterlex.Parser) {
				if p.Category() != filterlex.StaticExtFilter {
					t.Fatalf("category = %v, want StaticExtFilter", p.Category())
				}
				if len(p.ExtOptions()) != 1 || p.ExtOptions()[0] != "example.com" {
					t.Fatalf("extOptions = %v", p.ExtOptions())
				}
				c := p.Compiled()
				if c == nil || c.Selector != ".ad-banner" {
					t.Fatalf("compiled = %+v", c)
				}
			},
		},
		{
			name: "exception scriptlet",
			line: "example.com#@#+js(nowebrtc)",
			want: func(t *testing.T, p *filterlex.Parser) {
				if p.Category() != filterlex.StaticExtFilter {
					t.Fatalf("category = %v, want StaticExtFilter", p.Category())
				}
				if !p.IsException() {
					t.Fatalf("expected exception")
				}
			},
		},
		{
			name: "regex literal",
			line: `/^https?:\/\/ads\./`,
			want: func(t *testing.T, p *filterlex.Parser) {
				if p.Category() != filterlex.StaticNetFilter {
					t.Fatalf("category = %v, want StaticNetFilter", p.Category())
				}
				if !p.PatternIsRegex() {
					t.Fatalf("expected a regex pattern")
				}
			},
		},
		{
			name: "entity domain option",
			line: "*$image,redirect=1x1.gif,domain=foo.com|~bar.*",
			want: func(t *testing.T, p *filterlex.Parser) {
				if !p.PatternMatchAll() {
					t.Fatalf("expected match-all pattern")
				}
				opts := p.NetOptions()
				if len(opts) != 3 {
					t.Fatalf("len(options) = %d, want 3", len(opts))
				}
				if opts[2].Name != "domain" || opts[2].Value != "foo.com|~bar.*" {
					t.Fatalf("domain option = %+v", opts[2])
				}
				if p.HasError() {
					t.Fatalf("unexpected error flavor")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestParser()
			p.Analyze(tc.line)
			tc.want(t, p)
		})
	}
}

func TestBlankLine(t *testing.T) {
	p := newTestParser()
	p.Analyze("   ")
	if !p.IsBlank() {
		t.Fatal("expected blank")
	}
	if p.Category() != filterlex.None {
		t.Fatalf("category = %v, want None", p.Category())
	}
}

func TestIdempotence(t *testing.T) {
	p := newTestParser()
	const line = "||example.com^$script,domain=a.com|b.com"
	p.Analyze(line)
	s1 := p.Category()
	opts1 := append([]filterlex.NetOption(nil), p.NetOptions()...)

	p.Analyze(line)
	s2 := p.Category()
	opts2 := p.NetOptions()

	if s1 != s2 {
		t.Fatalf("category changed across re-analysis: %v vs %v", s1, s2)
	}
	if len(opts1) != len(opts2) {
		t.Fatalf("option count changed across re-analysis")
	}
	for i := range opts1 {
		if opts1[i] != opts2[i] {
			t.Fatalf("option[%d] changed: %+v vs %+v", i, opts1[i], opts2[i])
		}
	}
}

func TestShouldDiscard(t *testing.T) {
	p := newTestParser()
	p.Analyze("example.com$$stuff")
	if !p.HasError() {
		t.Fatal("expected the AdGuard $$ idiom to set Error")
	}
	if !p.ShouldDiscard() {
		t.Fatal("ShouldDiscard should follow HasError")
	}
}
