package oracle

import "github.com/coregx/coregex"

// Regex is the default core.RegexValidator: it compiles the candidate
// pattern with the teacher's own engine and reports whether compilation
// succeeded. Satisfies core.RegexValidator structurally (IsValid(string)
// bool) without importing internal/core.
type Regex struct{}

func (Regex) IsValid(pattern string) bool {
	_, err := coregex.Compile(pattern)
	return err == nil
}
