package core

// RegexValidator is the injected oracle spec §1 calls "external: regex
// validity check". oracle.Regex, which wraps the published
// github.com/coregx/coregex engine, is one implementation; when none is
// injected, New uses alwaysValidRegex below.
type RegexValidator interface {
	IsValid(pattern string) bool
}

// alwaysValidRegex is used when no validator is injected, so a bare
// *Analyzer constructed with a zero Options is still usable in tests.
type alwaysValidRegex struct{}

func (alwaysValidRegex) IsValid(string) bool { return true }
