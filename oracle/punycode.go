package oracle

import (
	"strings"

	"golang.org/x/net/idna"
)

// IDNA is the default filterlex.Punycoder: golang.org/x/net/idna's
// ToASCII, the standard Go-ecosystem punycode implementation (no IDNA
// implementation appears anywhere in the retrieved corpus, so this
// dependency is named rather than grounded on a pack example — see
// DESIGN.md).
type IDNA struct{}

// ToASCII satisfies filterlex.Punycoder structurally. The hostname is
// lowercased before conversion.
func (IDNA) ToASCII(hostname string) (string, bool) {
	out, err := idna.ToASCII(strings.ToLower(hostname))
	if err != nil {
		return "", false
	}
	return out, true
}
