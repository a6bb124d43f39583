package oracle

import "github.com/coregx/coregex"

// ident is a CSS identifier: type/class/id name.
const ident = `-?[A-Za-z_][A-Za-z0-9_-]*`

// pseudoName is the closed vocabulary of real CSS pseudo-classes/elements,
// not an arbitrary identifier: unlike type/class/id names, a pseudo-class
// is a fixed, spec-defined set, and several of the procedural-selector
// operator names (has-text, matches-css, min-text-length, upward, style,
// xpath, watch-attr, remove, if, if-not, -abp-contains, -abp-has) are
// deliberately NOT in it, so the compiler's operator scan (procedural
// package) is the thing that recognizes them, not this oracle. "has" and
// "not" are both real CSS4 pseudo-classes and procedural-operator aliases
// at once; a selector using either validates here and is left as plain
// CSS, which mirrors a modern engine's native support for both.
const pseudoName = `link|visited|hover|active|focus|focus-within|focus-visible|` +
	`target|target-within|root|empty|` +
	`first-child|last-child|only-child|first-of-type|last-of-type|only-of-type|` +
	`nth-child|nth-last-child|nth-of-type|nth-last-of-type|` +
	`enabled|disabled|checked|indeterminate|default|valid|invalid|` +
	`in-range|out-of-range|required|optional|read-only|read-write|` +
	`placeholder-shown|fullscreen|not|is|where|has|lang|dir|scope|` +
	`any-link|host|host-context|defined|` +
	`before|after|first-line|first-letter|selection|placeholder|marker|backdrop`

// simpleSelector covers one compound selector: an optional type or
// universal selector followed by any number of class/id/attribute/
// pseudo-class/pseudo-element qualifiers.
var simpleSelector = `(?:\*|` + ident + `)?(?:\.` + ident + `|#` + ident + `|\[[^\[\]]*\]|::?(?:` + pseudoName + `)(?:\([^()]*\))?)*`

var fullSelectorRe = coregex.MustCompile(
	`^` + simpleSelector + `(?:\s*[ >+~]\s*` + simpleSelector + `)*$`,
)

var pseudoElementRe = coregex.MustCompile(
	`(?:::` + ident + `|:(?:before|after|first-line|first-letter))$`,
)

// CSS is the default plain-CSS-selector oracle spec §9's design note
// calls for: "a regex-based CSS validator", not a full parser. It is
// necessarily permissive (it accepts some strings a real CSS parser
// would reject) and conservative in the other direction only where the
// spec's own grammar subset requires it.
type CSS struct{}

// IsValidSelector satisfies procedural.CSSValidator structurally.
func (CSS) IsValidSelector(sel string) (ok, hasPseudoElement bool) {
	if sel == "" {
		return false, false
	}
	if !fullSelectorRe.MatchString(sel) {
		return false, false
	}
	return true, pseudoElementRe.MatchString(sel)
}
