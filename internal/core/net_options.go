package core

import "strings"

// optFlag is the per-option capability bitset spec §4.5 calls a
// "descriptor word combining an 8-bit id with capability flags". Go has no
// need for the 8-bit-id packing trick (that exists in the source language
// to keep a descriptor inside a single number for a switch-dense VM-style
// dispatch); a small struct keyed by name in a map serves the same purpose
// more readably.
type optFlag uint16

const (
	canNegate optFlag = 1 << iota
	blockOnly
	allowOnly
	mustAssign
	allowMayAssign
	domainListOpt
	typeOption
	redirectType
	cspType
	notSupportedOpt
)

// optionTable is the fixed vocabulary of network-filter option tokens.
// Grounded on fed43a9a_bnema-ublock-webkit-filters's mapResourceType
// switch (resource-type vocabulary and aliasing) and on gonids' rule.go
// descriptor-table shape for the capability-flag idea.
var optionTable = map[string]optFlag{
	"script":         typeOption | canNegate,
	"image":          typeOption | canNegate,
	"stylesheet":     typeOption | canNegate,
	"css":            typeOption | canNegate,
	"object":         typeOption | canNegate,
	"xmlhttprequest": typeOption | canNegate,
	"xhr":            typeOption | canNegate,
	"subdocument":    typeOption | canNegate,
	"frame":          typeOption | canNegate,
	"font":           typeOption | canNegate,
	"media":          typeOption | canNegate,
	"websocket":      typeOption | canNegate,
	"other":          typeOption | canNegate,
	"ping":           typeOption | canNegate,
	"beacon":         typeOption | canNegate,
	"popup":          typeOption | canNegate,
	"document":       typeOption | canNegate,
	"doc":            typeOption | canNegate,
	"third-party":    canNegate,
	"3p":             canNegate,
	"match-case":     0,
	"important":      0,
	"domain":         mustAssign | domainListOpt,
	"denyallow":      mustAssign | domainListOpt,
	"redirect":       mustAssign | allowMayAssign | redirectType,
	"redirect-rule":  mustAssign | allowMayAssign | redirectType,
	"csp":            mustAssign | cspType,
	"empty":          blockOnly,
	"generichide":    allowOnly,
	"ghide":          allowOnly,
	"specifichide":   allowOnly,
	"shide":          allowOnly,
	"genericblock":   notSupportedOpt,
	"webrtc":         notSupportedOpt,
	"badfilter":      notSupportedOpt,
}

// NetOption is one parsed, validated entry of a network filter's options
// list (spec §4.5's "(id, value, negated)").
type NetOption struct {
	Name    string
	Value   string
	HasValue bool
	Negated bool
	Known   bool
}

type netOptionRecord = NetOption

// prepareNetOptions implements spec §4.5's prepare phase: a linear scan
// over the options span building one record per comma-delimited entry,
// followed by the cross-option invariant pass.
func prepareNetOptions(a *Analyzer) {
	sl := &a.sl
	sp := a.sp.get(Options)
	start := sp.sliceIndex()
	end := start + sp.sliceCount()

	i := start
	for i < end {
		negated := false
		if sl.bits(i)&Tilde != 0 {
			if sl.length(i) != 1 {
				a.flavor |= FlavorError
			} else {
				negated = true
				i++
			}
		}

		tokenStart := i
		eqIdx := -1
		j := i
		for j < end {
			if sl.bits(j)&Comma != 0 {
				if sl.length(j) != 1 {
					a.flavor |= FlavorError
				}
				break
			}
			if eqIdx == -1 && sl.bits(j)&Equal != 0 && sl.length(j) == 1 {
				eqIdx = j
			}
			j++
		}
		tokenEnd := j
		if eqIdx != -1 {
			tokenEnd = eqIdx
		}

		name := strFromSpan(a.raw, sl, Span{Index: tokenStart * cellsPerSlice, Length: (tokenEnd - tokenStart) * cellsPerSlice})
		name = strings.ToLower(name)

		var value string
		hasValue := eqIdx != -1
		if hasValue {
			valStart := eqIdx + 1
			value = strFromSpan(a.raw, sl, Span{Index: valStart * cellsPerSlice, Length: (j - valStart) * cellsPerSlice})
			if value == "" {
				a.flavor |= FlavorError
			}
		}

		_, known := optionTable[name]
		a.netOpts = append(a.netOpts, netOptionRecord{
			Name: name, Value: value, HasValue: hasValue, Negated: negated, Known: known,
		})

		i = j
		if i < end {
			i++ // skip the unit comma slice
		}
	}

	validateNetOptions(a)
}

// validateNetOptions enforces the cross-option invariants spec §4.5 names:
// negation requires CanNegate, BlockOnly/AllowOnly exclusivity by exception
// status, MustAssign<=>assignment (with the AllowMayAssign-on-exception
// carve-out), and the redirect/csp uniqueness + type-count rules.
func validateNetOptions(a *Analyzer) {
	var redirectCount, cspCount, typeCount int

	for i := range a.netOpts {
		r := &a.netOpts[i]
		if !r.Known {
			a.flavor |= FlavorUnsupported
			continue
		}
		desc := optionTable[r.Name]

		if desc&notSupportedOpt != 0 {
			a.flavor |= FlavorUnsupported
		}
		if r.Negated && desc&canNegate == 0 {
			a.flavor |= FlavorError
		}
		if desc&blockOnly != 0 && a.flavor.Has(FlavorException) {
			a.flavor |= FlavorError
		}
		if desc&allowOnly != 0 && !a.flavor.Has(FlavorException) {
			a.flavor |= FlavorError
		}

		mustHaveValue := desc&mustAssign != 0
		mayBeBare := desc&allowMayAssign != 0 && a.flavor.Has(FlavorException)
		if mustHaveValue && !r.HasValue && !mayBeBare {
			a.flavor |= FlavorError
		}
		if !mustHaveValue && r.HasValue {
			a.flavor |= FlavorError
		}

		switch {
		case desc&redirectType != 0:
			redirectCount++
		case desc&cspType != 0:
			cspCount++
		case desc&typeOption != 0:
			typeCount++
		}

		if desc&domainListOpt != 0 && r.HasValue {
			allowEntities := r.Name == "domain"
			allowNegation := r.Name == "domain"
			if !validateDomainList(r.Value, '|', allowEntities, allowNegation) {
				a.flavor |= FlavorError
			}
		}
	}

	if redirectCount > 1 {
		a.flavor |= FlavorError
	}
	if redirectCount == 1 && typeCount != 1 {
		a.flavor |= FlavorError
	}
	if cspCount > 1 {
		a.flavor |= FlavorError
	}
	if cspCount == 1 && typeCount != 0 {
		a.flavor |= FlavorError
	}
}

// NetOptions returns every parsed option entry. Valid only after Analyze
// has classified the line StaticNetFilter; returns nil otherwise.
func (a *Analyzer) NetOptions() []NetOption {
	if a.category != StaticNetFilter {
		return nil
	}
	return a.netOpts
}
