package procedural

import (
	"strconv"
	"strings"
)

// Decompile implements spec §4.8 step 9: walk a Compiled's task list and
// emit the canonical textual form, reversing any regex-literal escape via
// the reverse-map built during the matching Compile call. Must be called
// before the next Compile/reset on the same Compiler — the reverse-map it
// reads is cleared there, per spec §5's shared-resource policy.
func (c *Compiler) Decompile(cp *Compiled) string {
	if cp == nil {
		return ""
	}
	if len(cp.Tasks) == 0 {
		return cp.Selector
	}
	var b strings.Builder
	for _, t := range cp.Tasks {
		b.WriteString(c.decompileTask(t))
	}
	return b.String()
}

func (c *Compiler) decompileTask(t Task) string {
	switch t.Op {
	case OpSPath:
		return t.Selector

	case OpHasText, OpMatchesCSS, OpMatchesCSSAfter, OpMatchesCSSBefore:
		if orig, ok := c.reverseMap[t.RegexBody]; ok {
			return ":" + t.Op.String() + "(" + orig + ")"
		}
		return ":" + t.Op.String() + "(/" + t.RegexBody + "/" + t.RegexFlags + ")"

	case OpHas, OpIf, OpIfNot:
		return ":" + t.Op.String() + "(" + c.Decompile(t.Nested) + ")"

	case OpNot:
		return ":not(" + t.Selector + ")"

	case OpMinTextLength:
		return ":min-text-length(" + strconv.Itoa(t.Int) + ")"

	case OpUpward:
		if t.Selector != "" {
			return ":upward(" + t.Selector + ")"
		}
		return ":upward(" + strconv.Itoa(t.Int) + ")"

	case OpStyle:
		return ":style(" + t.Decl + ")"

	case OpXPath:
		return ":xpath(" + t.XPath + ")"

	case OpWatchAttr:
		return ":watch-attr(" + strings.Join(t.Attrs, ",") + ")"

	case OpRemove:
		return ":remove()"

	default:
		return ""
	}
}
