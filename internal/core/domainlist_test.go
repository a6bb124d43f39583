package core

import "testing"

func TestValidateDomainListNetworkOption(t *testing.T) {
	cases := []struct {
		name          string
		value         string
		allowEntities bool
		allowNegation bool
		want          bool
	}{
		{"single hostname", "example.com", true, true, true},
		{"negated hostname", "~ads.example.com", true, true, true},
		{"entity wildcard", "foo.*", true, true, true},
		{"entity wildcard disallowed", "foo.*", false, true, false},
		{"bare wildcard entity", "*", true, true, true},
		{"bare wildcard entity disallowed", "*", false, true, false},
		{"negation disallowed", "~example.com", true, false, false},
		{"trailing separator", "example.com|", true, true, false},
		{"empty entry", "example.com||foo.com", true, true, false},
		{"repeated period in one slice", "example..com", true, true, false},
		{"dash without alnum neighbor", "-example.com", true, true, false},
		{"dash with alnum neighbors", "ex-ample.com", true, true, true},
		{"empty value", "", true, true, false},
		{"non hostname byte", "exa mple.com", true, true, false},
		{"multiple entries", "a.com|~b.com|c.*", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateDomainList(tc.value, '|', tc.allowEntities, tc.allowNegation); got != tc.want {
				t.Errorf("validateDomainList(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestValidateDomainListExtOptions(t *testing.T) {
	// Extended-filter hostname options never allow entity wildcards.
	if validateDomainList("foo.*", ',', false, true) {
		t.Error("expected entity wildcard to be rejected for ext options")
	}
	if !validateDomainList("example.com,~ads.net", ',', false, true) {
		t.Error("expected a plain comma-delimited hostname list to validate")
	}
}

func TestNormalizeDomainEntries(t *testing.T) {
	got := normalizeDomainEntries("a.com,b.com,", ',')
	want := []string{"a.com", "b.com"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeDomainEntriesEmpty(t *testing.T) {
	if got := normalizeDomainEntries("", ','); got != nil {
		t.Errorf("normalizeDomainEntries(\"\") = %v, want nil", got)
	}
}
