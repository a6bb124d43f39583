package procedural

import "strings"

// extBracketOps maps the extended-bracket attribute name (after the
// `-abp-` or `-ext-` prefix) to the procedural operator it expands into
// (spec §4.8 step 1, second bullet).
var extBracketOps = map[string]string{
	"contains":           "has-text",
	"has":                "has",
	"properties":         "matches-css",
	"properties-before":  "matches-css-before",
	"properties-after":   "matches-css-after",
}

// rewriteSurfaceSyntax applies spec §4.8 step 1 in full: style-injection
// first, then extended-bracket expansion repeated until none remain. A
// false return means an extended bracket with an unknown name, or one
// lacking its '=' or closing ']', was found and the whole selector must
// be rejected.
func rewriteSurfaceSyntax(raw string) (string, bool) {
	s := rewriteStyleInjection(raw)
	for {
		next, found, ok := rewriteOneExtBracket(s)
		if !ok {
			return "", false
		}
		if !found {
			return s, true
		}
		s = next
	}
}

// rewriteStyleInjection recognizes the AdGuard/ABP `sel { decl }` form
// and expands it to the corresponding plain selector, `:remove()`, or
// `:style(decl)` form. Selectors without a trailing brace block pass
// through unchanged.
func rewriteStyleInjection(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasSuffix(s, "}") {
		return raw
	}
	open := strings.LastIndex(s, "{")
	if open == -1 {
		return raw
	}
	selector := strings.TrimSpace(s[:open])
	decl := strings.TrimSpace(s[open+1 : len(s)-1])
	decl = strings.TrimSuffix(strings.TrimSpace(decl), ";")
	decl = strings.TrimSpace(decl)
	if selector == "" {
		return raw
	}

	switch strings.ToLower(strings.ReplaceAll(decl, " ", "")) {
	case "display:none!important":
		return selector
	case "remove:true":
		return selector + ":remove()"
	default:
		return selector + ":style(" + decl + ")"
	}
}

// rewriteOneExtBracket finds and expands the first `[-abp-NAME=VALUE]` or
// `[-ext-NAME=VALUE]` attribute-selector fragment. It does not handle
// nested brackets inside VALUE; none of the five names in extBracketOps
// ever carry one.
func rewriteOneExtBracket(s string) (rewritten string, found bool, ok bool) {
	for _, prefix := range []string{"[-abp-", "[-ext-"} {
		i := strings.Index(s, prefix)
		if i == -1 {
			continue
		}
		rest := s[i+len(prefix):]
		eq := strings.IndexByte(rest, '=')
		close := strings.IndexByte(rest, ']')
		if eq == -1 || close == -1 || eq > close {
			return "", false, false
		}
		name := rest[:eq]
		value := rest[eq+1 : close]
		value = strings.Trim(value, `"'`)

		op, known := extBracketOps[name]
		if !known {
			return "", false, false
		}
		replacement := ":" + op + "(" + value + ")"
		result := s[:i] + replacement + rest[close+1:]
		return result, true, true
	}
	return "", false, true
}
