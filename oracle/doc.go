// Package oracle supplies the pure, dependency-injected default
// implementations for every external capability spec §9's "Global
// document/URL dependencies" design note calls out: CSS-selector
// validity, XPath validity, style-declaration validity, and punycode
// conversion. Each type here satisfies an interface declared by its
// consumer package (internal/core, procedural) structurally — no type in
// this package imports those packages, mirroring the teacher's own
// injected-config idiom (meta.Config fields accept plain data, never a
// concrete engine type from a sibling package).
package oracle
