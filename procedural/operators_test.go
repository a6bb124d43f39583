package procedural_test

import (
	"testing"

	"github.com/coregx/filterlex/procedural"
)

func TestOpStringRoundTrip(t *testing.T) {
	cases := map[procedural.Op]string{
		procedural.OpHasText:          "has-text",
		procedural.OpMatchesCSS:       "matches-css",
		procedural.OpMatchesCSSAfter:  "matches-css-after",
		procedural.OpMatchesCSSBefore: "matches-css-before",
		procedural.OpHas:              "has",
		procedural.OpIf:               "if",
		procedural.OpIfNot:            "if-not",
		procedural.OpNot:              "not",
		procedural.OpMinTextLength:    "min-text-length",
		procedural.OpUpward:           "upward",
		procedural.OpStyle:            "style",
		procedural.OpXPath:            "xpath",
		procedural.OpWatchAttr:        "watch-attr",
		procedural.OpRemove:           "remove",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}
