package filterlex

import "errors"

// ErrNotAnalyzed is returned by Parser.Err when Analyze has not been
// called at least once on that Parser. The other accessors return zero
// values in that case rather than an error.
var ErrNotAnalyzed = errors.New("filterlex: Analyze has not been called yet")
