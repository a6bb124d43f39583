package oracle

import "strings"

// Declaration is the default CSS-declaration-validity oracle for
// `:style(...)`: the declaration must not be blank, and every non-blank
// semicolon-separated entry must be a `property: value` pair with both
// sides non-empty (blank entries between semicolons are skipped). Stdlib only — same reasoning as XPath, a
// full CSS declaration-block grammar is out of proportion to the "is
// this non-empty and plausible" predicate spec §4.8 step 5 needs.
type Declaration struct{}

func (Declaration) IsValid(decl string) bool {
	decl = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(decl), ";"))
	if decl == "" {
		return false
	}
	for _, entry := range strings.Split(decl, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return false
		}
	}
	return true
}
