package core

import "testing"

func TestPatternTokensBasic(t *testing.T) {
	a := analyzeLine("||ads.example.com/banner^")
	toks := a.PatternTokens()
	if len(toks) == 0 {
		t.Fatal("expected at least one token")
	}
	for _, tok := range toks {
		if tok.Text == "" {
			t.Error("token with empty text")
		}
	}
}

func TestPatternTokensWildcardAdjacentRejected(t *testing.T) {
	// "-" is not a PatternToken byte, so "ads" and "banner" form two
	// separate runs, each bordering one of the enclosing wildcards and
	// neither long enough to clear the default (effectively unbounded)
	// MaxTokenLength, so both are rejected outright rather than yielded.
	a := analyzeLine("*ads-banner*")
	if toks := a.PatternTokens(); len(toks) != 0 {
		t.Fatalf("tokens = %+v, want none (both runs are wildcard-adjacent)", toks)
	}
}

func TestPatternTokensLeftWildcardNeverAcceptedByLength(t *testing.T) {
	// Unlike the right side, a left-bordering wildcard has no length
	// escape hatch in spec §4.6: "ads" stays rejected even with a tiny
	// MaxTokenLength.
	a := New(Options{})
	a.SetMaxTokenLength(1)
	a.Analyze("*ads-banner*")
	toks := a.PatternTokens()
	for _, tok := range toks {
		if tok.Text == "ads" {
			t.Errorf("token %+v: left-wildcard-adjacent run must never be accepted", tok)
		}
	}
}

func TestPatternTokensRightWildcardRejectedWhenShort(t *testing.T) {
	a := analyzeLine("example.com/abcdefgh*")
	toks := a.PatternTokens()
	want := map[string]int{"example": 0, "com": 8}
	if len(toks) != len(want) {
		t.Fatalf("tokens = %+v, want only %v (abcdefgh is wildcard-adjacent and too short)", toks, want)
	}
	for _, tok := range toks {
		off, ok := want[tok.Text]
		if !ok {
			t.Errorf("unexpected token %+v", tok)
			continue
		}
		if tok.Offset != off {
			t.Errorf("token %q offset = %d, want %d", tok.Text, tok.Offset, off)
		}
	}
}

func TestPatternTokensRightWildcardAcceptedWhenLongEnough(t *testing.T) {
	a := New(Options{})
	a.SetMaxTokenLength(3)
	a.Analyze("example.com/abcdefgh*")

	toks := a.PatternTokens()
	found := false
	for _, tok := range toks {
		if tok.Text == "abcdefgh" {
			found = true
			if tok.Offset != 12 {
				t.Errorf("abcdefgh offset = %d, want 12", tok.Offset)
			}
		}
	}
	if !found {
		t.Fatalf("tokens = %+v, want abcdefgh included (byte length clears MaxTokenLength)", toks)
	}
}

func TestPatternTokensRegexReturnsNil(t *testing.T) {
	a := analyzeLine(`/^https?:\/\/ads\./`)
	if toks := a.PatternTokens(); toks != nil {
		t.Errorf("expected nil tokens for a regex pattern, got %+v", toks)
	}
}

func TestPatternTokensWrongCategory(t *testing.T) {
	a := analyzeLine("! a comment")
	if toks := a.PatternTokens(); toks != nil {
		t.Errorf("expected nil tokens outside StaticNetFilter, got %+v", toks)
	}
}
