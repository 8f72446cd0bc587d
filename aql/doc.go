// Package aql holds the query-planning knobs the driver can pass along
// with an AQL query. The driver does not implement AQL; it only names the
// optimizer rules the server may apply and serializes the caller's
// include/exclude directives.
//
// Rules use a signed-inclusion model: each rule can be included ("+rule")
// or excluded ("-rule"), and the pseudo-rule All can be excluded to start
// from a deny-all baseline before re-including specific rules:
//
//	var rules aql.RuleSet
//	rules.Exclude(aql.RuleAll).
//	    Include(aql.RuleUseIndexForSort)
//
// Directive order is preserved and serialized as an ordered list; naming a
// rule again updates its existing directive in place, so the most specific
// (name-matching) directive always wins.
package aql
