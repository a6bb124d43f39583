package procedural

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// CSSValidator answers whether a fragment is a valid plain CSS selector,
// and whether it ends in a pseudo-element (spec §4.8 step 2's
// "oracle==plain-with-pseudo-element"). Defined here, not in the
// validating package, because a compiler is the consumer: this package
// follows the teacher's own dependency direction (an engine depending on
// an injected capability, not the other way around).
type CSSValidator interface {
	IsValidSelector(sel string) (ok, hasPseudoElement bool)
}

// XPathValidator answers whether a string is a well-formed XPath
// expression (spec §4.8 step 5, `:xpath`).
type XPathValidator interface {
	IsValid(expr string) bool
}

// DeclarationValidator answers whether a string is a non-empty,
// syntactically plausible CSS declaration list (spec §4.8 step 5,
// `:style`).
type DeclarationValidator interface {
	IsValid(decl string) bool
}

// Compiler holds the injected oracles plus the Aho-Corasick automaton
// that accelerates operator-token detection, and the per-line
// regex-literal reverse map spec §5's "Shared-resource policy" requires
// to be cleared by a reset hook between lines.
//
// Not safe for concurrent use, for the same reason core.Analyzer isn't:
// Compile mutates reverseMap in place.
type Compiler struct {
	css   CSSValidator
	xpath XPathValidator
	decl  DeclarationValidator

	tokenScanner *ahocorasick.Automaton

	// reverseMap records, per compiled regex literal, the original
	// plain-text argument it was escaped from — spec §4.8 step 9's
	// "reversing regex-literal escapes via the reverse-map".
	reverseMap map[string]string
}

// NewCompiler builds a Compiler from its three injected oracles. Grounded
// on the teacher's `meta/compile.go` `ahocorasick.NewBuilder()` usage:
// the closed operator-name set becomes an Aho-Corasick pattern set, built
// once and reused across every Compile call the way the teacher builds
// one automaton per compiled regex and reuses it across every Find.
func NewCompiler(css CSSValidator, xpath XPathValidator, decl DeclarationValidator) *Compiler {
	builder := ahocorasick.NewBuilder()
	for _, name := range operatorNames {
		builder.AddPattern([]byte(":" + name + "("))
	}
	auto, err := builder.Build()
	if err != nil {
		auto = nil // degrade to the manual scan only; never panic on build failure
	}
	return &Compiler{css: css, xpath: xpath, decl: decl, tokenScanner: auto}
}

func (c *Compiler) reset() {
	for k := range c.reverseMap {
		delete(c.reverseMap, k)
	}
}

// Compile implements spec §4.8's full algorithm: Adguard/ABP surface
// rewrites, the plain-CSS fast path, then the operator scan and
// per-operator argument compilation.
func (c *Compiler) Compile(raw string) (*Compiled, bool) {
	c.reset()

	sel, ok := rewriteSurfaceSyntax(raw)
	if !ok {
		return nil, false
	}

	if ok, pseudo := c.css.IsValidSelector(sel); ok {
		return &Compiled{Selector: sel, Tasks: nil, Action: OpNone, Pseudo: pseudo, Raw: raw}, true
	}

	if c.tokenScanner != nil && !c.tokenScanner.IsMatch([]byte(sel)) {
		return nil, false // no known operator token anywhere: not a procedural selector
	}

	tasks, action, err := c.compileTaskList(sel, true)
	if err != nil {
		return nil, false
	}
	return &Compiled{Selector: sel, Tasks: tasks, Action: action, Raw: raw}, true
}

// compileTaskList implements spec §4.8 steps 3, 6, 7 and 8: scan
// left-to-right for operators, compile the plain-CSS fragments between
// them as OpSPath tasks, and enforce the single-action-at-root rule.
func (c *Compiler) compileTaskList(s string, root bool) ([]Task, Op, error) {
	var tasks []Task
	action := OpNone
	pos := 0

	for pos < len(s) {
		if action != OpNone {
			// An action operator must be the last thing in the selector: it
			// discards or rewrites the matched element wholesale, so any
			// selector/operator text after it could never run.
			return nil, 0, ErrActionConflict
		}
		idx, name := findNextOperatorToken(s, pos)
		if idx == -1 {
			if frag := s[pos:]; frag != "" {
				t, err := c.compileFragment(frag, root)
				if err != nil {
					return nil, 0, err
				}
				tasks = append(tasks, t)
			}
			break
		}

		if idx > pos {
			t, err := c.compileFragment(s[pos:idx], root)
			if err != nil {
				return nil, 0, err
			}
			tasks = append(tasks, t)
		}

		parenOpen := idx + 1 + len(name)
		argEnd, ok := findBalancedParen(s, parenOpen+1)
		if !ok {
			return nil, 0, ErrUnbalancedParen
		}

		full := s[idx : argEnd+1]
		if ok, _ := c.css.IsValidSelector(full); ok {
			// spec §4.8 step 3: a fragment that only looks like an
			// operator call but is itself valid plain CSS is left alone.
			t, err := c.compileFragment(full, root)
			if err != nil {
				return nil, 0, err
			}
			tasks = append(tasks, t)
			pos = argEnd + 1
			continue
		}

		op := normalizeOperatorName(name)
		arg := s[parenOpen+1 : argEnd]
		task, err := c.compileArg(op, arg)
		if err != nil {
			return nil, 0, err
		}

		if op.isAction() {
			if !root || action != OpNone {
				return nil, 0, ErrActionConflict
			}
			action = op
		}
		tasks = append(tasks, task)
		pos = argEnd + 1
	}

	return tasks, action, nil
}

// compileFragment validates a plain-CSS fragment found between/after
// operators, applying spec §4.8 step 8's leading-combinator handling.
func (c *Compiler) compileFragment(frag string, root bool) (Task, error) {
	checked := frag
	if strings.HasPrefix(frag, ">") || strings.HasPrefix(frag, "+") || strings.HasPrefix(frag, "~") {
		checked = "*" + frag
	}
	if ok, _ := c.css.IsValidSelector(checked); !ok {
		if root {
			return Task{}, ErrNotCSS
		}
		// Non-root dangling fragments are tolerated only as sibling
		// combinator expressions (spec §4.8 step 8, second clause).
		if !strings.HasPrefix(frag, "+") && !strings.HasPrefix(frag, "~") {
			return Task{}, ErrNotScope
		}
	}
	return Task{Op: OpSPath, Selector: checked}, nil
}

// findNextOperatorToken finds the earliest `:name(` starting at or after
// from, returning its byte index and the bare operator name (without the
// leading ':' or trailing '('), or (-1, "") if none remain.
func findNextOperatorToken(s string, from int) (int, string) {
	best := -1
	var bestName string
	for _, name := range operatorNames {
		token := ":" + name + "("
		if i := strings.Index(s[from:], token); i != -1 {
			abs := from + i
			if best == -1 || abs < best || (abs == best && len(name) > len(bestName)) {
				best, bestName = abs, name
			}
		}
	}
	return best, bestName
}

// findBalancedParen returns the index of the closing ')' matching the
// '(' at index from-1, honoring `\`-escaped parens (spec §4.8
// step 3).
func findBalancedParen(s string, from int) (int, bool) {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip the escaped byte entirely
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}
