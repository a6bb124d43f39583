package procedural_test

import "testing"

func TestCompileMinTextLengthRejectsNegative(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:min-text-length(-1)"); ok {
		t.Fatal("expected a negative min-text-length argument to fail")
	}
}

func TestCompileMinTextLengthRejectsNonInteger(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:min-text-length(abc)"); ok {
		t.Fatal("expected a non-integer min-text-length argument to fail")
	}
}

func TestCompileUpwardRejectsOutOfRange(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:upward(0)"); ok {
		t.Fatal("expected upward(0) to fail (ancestor counts start at 1)")
	}
	if _, ok := c.Compile(".ad:upward(256)"); ok {
		t.Fatal("expected upward(256) to fail (out of range)")
	}
}

func TestCompileStyleRejectsURL(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:style(background: url(javascript:alert(1)))"); ok {
		t.Fatal("expected a url()-bearing declaration to be rejected")
	}
}

func TestCompileStyleRejectsEmptyDeclaration(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:style()"); ok {
		t.Fatal("expected an empty declaration to be rejected")
	}
}

func TestCompileXPathRejectsUnbalanced(t *testing.T) {
	c := newCompiler()
	if _, ok := c.Compile(".ad:xpath(//div[@class)"); ok {
		t.Fatal("expected an unbalanced xpath bracket to be rejected")
	}
}

func TestCompileWatchAttrEmptyArg(t *testing.T) {
	c := newCompiler()
	cp, ok := c.Compile(".ad:watch-attr()")
	if !ok {
		t.Fatal("expected :watch-attr() with no attributes to compile")
	}
	last := cp.Tasks[len(cp.Tasks)-1]
	if len(last.Attrs) != 0 {
		t.Errorf("Attrs = %v, want none", last.Attrs)
	}
}
