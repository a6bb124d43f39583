package procedural

// Task is one compiled step of a procedural selector: either a plain CSS
// suffix fragment (OpSPath) or a procedural operator with its compiled
// argument (spec §4.8, "{selector, tasks[], action?, pseudo?}").
type Task struct {
	Op Op

	// Selector holds the plain-CSS argument for OpSPath, OpNot, and the
	// plain-selector form of OpUpward.
	Selector string

	// Nested holds the recursively compiled conditional selector for
	// OpHas, OpIf and OpIfNot.
	Nested *Compiled

	// RegexBody/RegexFlags hold the `/body/flags` literal for OpHasText
	// and the three OpMatchesCSS* variants.
	RegexBody  string
	RegexFlags string

	// Int holds the numeric argument for OpMinTextLength and the
	// ancestor-count form of OpUpward.
	Int int

	// Attrs holds the comma-split list for OpWatchAttr.
	Attrs []string

	// Decl holds the validated declaration text for OpStyle.
	Decl string

	// XPath holds the validated expression text for OpXPath.
	XPath string
}

// Compiled is the result of successfully compiling a selector (spec
// §4.8's output shape). A Compiled with a nil Tasks slice and Action ==
// OpNone is the fast-path "plain CSS selector" case.
type Compiled struct {
	Selector string
	Tasks    []Task
	Action   Op
	Pseudo   bool
	Raw      string
}
