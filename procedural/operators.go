package procedural

// Op tags the known procedural-selector operators. Spec §9's own design
// note asks for "a tagged sum over the known operator set" in place of a
// source-language operator-name-to-function map; this enum plus the
// switch in args.go is that tagged sum (mirrors the teacher's
// `meta/strategy.go` Strategy-tag-over-dispatch idiom).
type Op int

const (
	OpNone Op = iota
	OpHasText
	OpMatchesCSS
	OpMatchesCSSAfter
	OpMatchesCSSBefore
	OpHas
	OpIf
	OpIfNot
	OpNot
	OpMinTextLength
	OpUpward
	OpStyle
	OpXPath
	OpWatchAttr
	OpRemove
	OpSPath // synthetic: a plain CSS fragment between/after real operators
)

func (o Op) String() string {
	switch o {
	case OpHasText:
		return "has-text"
	case OpMatchesCSS:
		return "matches-css"
	case OpMatchesCSSAfter:
		return "matches-css-after"
	case OpMatchesCSSBefore:
		return "matches-css-before"
	case OpHas:
		return "has"
	case OpIf:
		return "if"
	case OpIfNot:
		return "if-not"
	case OpNot:
		return "not"
	case OpMinTextLength:
		return "min-text-length"
	case OpUpward:
		return "upward"
	case OpStyle:
		return "style"
	case OpXPath:
		return "xpath"
	case OpWatchAttr:
		return "watch-attr"
	case OpRemove:
		return "remove"
	case OpSPath:
		return ""
	default:
		return ""
	}
}

// operatorNames is the fixed vocabulary spec §4.8 step 3 enumerates,
// already carrying every bracketed alternative (`matches-css[-after|-before]`,
// `watch-attr[s]`) as its own literal entry.
var operatorNames = []string{
	"-abp-contains", "-abp-has",
	"contains", "has", "has-text",
	"if", "if-not",
	"matches-css", "matches-css-after", "matches-css-before",
	"min-text-length",
	"not", "nth-ancestor",
	"remove",
	"style",
	"upward",
	"watch-attr", "watch-attrs",
	"xpath",
}

// aliasTable implements spec §4.8 step 4: alias normalization. `-abp-*`
// names fold onto their non-prefixed counterpart by stripping the prefix
// before this lookup, so only the suffix needs an entry here.
var aliasTable = map[string]Op{
	"contains":     OpHasText,
	"has-text":     OpHasText,
	"has":          OpHas,
	"if":           OpIf,
	"if-not":       OpIfNot,
	"not":          OpNot,
	"min-text-length": OpMinTextLength,
	"nth-ancestor": OpUpward,
	"upward":       OpUpward,
	"style":        OpStyle,
	"xpath":        OpXPath,
	"watch-attr":   OpWatchAttr,
	"watch-attrs":  OpWatchAttr,
	"remove":       OpRemove,
	"matches-css":        OpMatchesCSS,
	"matches-css-after":  OpMatchesCSSAfter,
	"matches-css-before": OpMatchesCSSBefore,
}

// normalizeOperatorName strips a leading "-abp-" and resolves the
// resulting name to its canonical Op tag, or OpNone if unknown.
func normalizeOperatorName(name string) Op {
	if len(name) > 5 && name[:5] == "-abp-" {
		name = name[5:]
	}
	op, ok := aliasTable[name]
	if !ok {
		return OpNone
	}
	return op
}

// takesRegexArg reports whether an operator's argument is a
// `/regex/flags?` literal or plain-text shorthand for one (spec §4.8
// step 5, first bullet).
func (o Op) takesRegexArg() bool {
	switch o {
	case OpHasText, OpMatchesCSS, OpMatchesCSSAfter, OpMatchesCSSBefore:
		return true
	default:
		return false
	}
}

// takesSelectorArg reports whether an operator's argument recursively
// compiles as a conditional selector (spec §4.8 step 5, second bullet).
func (o Op) takesSelectorArg() bool {
	switch o {
	case OpHas, OpIf, OpIfNot, OpNot:
		return true
	default:
		return false
	}
}

// isAction reports whether an operator is a terminal action rather than a
// selector-filtering task (spec §4.8 step 6).
func (o Op) isAction() bool {
	return o == OpRemove || o == OpStyle
}
