package procedural

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coregx/coregex"
)

// compileArg implements spec §4.8 step 5's per-operator argument
// compilation, dispatching on the tagged Op rather than a name lookup —
// the "match over the tag" spec §9 asks for.
func (c *Compiler) compileArg(op Op, arg string) (Task, error) {
	switch {
	case op.takesRegexArg():
		return c.compileRegexArg(op, arg)
	case op.takesSelectorArg():
		return c.compileSelectorArg(op, arg)
	}

	switch op {
	case OpMinTextLength:
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 0 {
			return Task{}, ErrBadArgument
		}
		return Task{Op: op, Int: n}, nil

	case OpUpward:
		if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
			if n < 1 || n >= 256 {
				return Task{}, ErrBadArgument
			}
			return Task{Op: op, Int: n}, nil
		}
		if ok, _ := c.css.IsValidSelector(arg); !ok {
			return Task{}, ErrBadArgument
		}
		return Task{Op: op, Selector: arg}, nil

	case OpStyle:
		if strings.Contains(arg, "url(") || strings.Contains(arg, `\`) {
			return Task{}, ErrBadArgument
		}
		decl := strings.TrimSpace(arg)
		if decl == "" || !c.decl.IsValid(decl) {
			return Task{}, ErrBadArgument
		}
		return Task{Op: op, Decl: decl}, nil

	case OpXPath:
		if !c.xpath.IsValid(arg) {
			return Task{}, ErrBadArgument
		}
		return Task{Op: op, XPath: arg}, nil

	case OpWatchAttr:
		var attrs []string
		for _, a := range strings.Split(arg, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				attrs = append(attrs, a)
			}
		}
		return Task{Op: op, Attrs: attrs}, nil

	case OpRemove:
		return Task{Op: op}, nil
	}

	return Task{}, ErrBadArgument
}

var regexLiteral = coregex.MustCompile(`^/(.*)/([a-zA-Z]*)$`)

// compileRegexArg handles `:has-text`/`:matches-css*` arguments: either a
// literal `/body/flags` regex, or a plain string that gets escaped to an
// anchored regex and recorded in the reverse-map for decompilation (spec
// §4.8 step 5, first bullet; step 9).
func (c *Compiler) compileRegexArg(op Op, arg string) (Task, error) {
	if m := regexLiteral.FindStringSubmatch(arg); m != nil {
		return Task{Op: op, RegexBody: m[1], RegexFlags: m[2]}, nil
	}
	body := "^" + regexp.QuoteMeta(arg) + "$"
	if c.reverseMap == nil {
		c.reverseMap = make(map[string]string)
	}
	c.reverseMap[body] = arg
	return Task{Op: op, RegexBody: body}, nil
}

// compileSelectorArg handles `:has`/`:if`/`:if-not`/`:not` arguments: a
// recursively compiled conditional selector (spec §4.8 step 5, second
// bullet, plus step 8's leading-combinator rule).
func (c *Compiler) compileSelectorArg(op Op, arg string) (Task, error) {
	sel := arg
	if strings.HasPrefix(sel, ">") || strings.HasPrefix(sel, "+") || strings.HasPrefix(sel, "~") {
		sel = ":scope " + sel
	}

	if op == OpNot {
		// CSS4 :not() only accepts a plain selector; a procedural
		// argument there would be redundant with :if-not, so reject.
		if ok, _ := c.css.IsValidSelector(sel); !ok {
			return Task{}, ErrNotScope
		}
		return Task{Op: op, Selector: sel}, nil
	}

	tasks, action, err := c.compileTaskList(sel, false)
	if err != nil {
		return Task{}, err
	}
	return Task{Op: op, Nested: &Compiled{Selector: sel, Tasks: tasks, Action: action, Raw: arg}}, nil
}
