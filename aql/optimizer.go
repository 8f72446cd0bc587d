package aql

import "encoding/json"

// Rule names a query-planning transformation of the server's AQL
// optimizer, as spelled in the REST API.
type Rule string

// The optimizer rules of the server, plus the catch-all pseudo-rule. A
// rule unknown to this list can be used directly as Rule("name").
const (
	RuleAll                             Rule = "all"
	RuleMoveCalculationsUp              Rule = "move-calculations-up"
	RuleMoveFiltersUp                   Rule = "move-filters-up"
	RuleSortInValues                    Rule = "sort-in-values"
	RuleRemoveUnnecessaryFilters        Rule = "remove-unnecessary-filters"
	RuleRemoveRedundantCalculations     Rule = "remove-redundant-calculations"
	RuleRemoveUnnecessaryCalculations   Rule = "remove-unnecessary-calculations"
	RuleRemoveRedundantSorts            Rule = "remove-redundant-sorts"
	RuleInterchangeAdjacentEnumerations Rule = "interchange-adjacent-enumerations"
	RuleRemoveCollectVariables          Rule = "remove-collect-variables"
	RulePropagateConstantAttributes     Rule = "propagate-constant-attributes"
	RuleReplaceOrWithIn                 Rule = "replace-or-with-in"
	RuleRemoveRedundantOr               Rule = "remove-redundant-or"
	RuleUseIndexes                      Rule = "use-indexes"
	RuleRemoveFilterCoveredByIndex      Rule = "remove-filter-covered-by-index"
	RuleRemoveFilterCoveredByTraversal  Rule = "remove-filter-covered-by-traversal"
	RuleUseIndexForSort                 Rule = "use-index-for-sort"
	RuleMoveCalculationsDown            Rule = "move-calculations-down"
	RulePatchUpdateStatements           Rule = "patch-update-statements"
	RuleOptimizeTraversals              Rule = "optimize-traversals"
	RuleInlineSubQueries                Rule = "inline-subqueries"
	RuleGeoIndexOptimizer               Rule = "geo-index-optimizer"
	RuleRemoveSortRand                  Rule = "remove-sort-rand"
	RuleReduceExtractionToProjection    Rule = "reduce-extraction-to-projection"
)

// RuleSet is an ordered set of signed rule directives. Directives keep
// their insertion order; including or excluding a rule that is already in
// the set flips its sign in place rather than appending a duplicate.
// The zero value is an empty set ready to use.
type RuleSet struct {
	entries []ruleEntry
}

type ruleEntry struct {
	rule     Rule
	included bool
}

// Include adds (or updates) a directive enabling the rule.
func (s *RuleSet) Include(rule Rule) *RuleSet { return s.set(rule, true) }

// Exclude adds (or updates) a directive disabling the rule.
func (s *RuleSet) Exclude(rule Rule) *RuleSet { return s.set(rule, false) }

func (s *RuleSet) set(rule Rule, included bool) *RuleSet {
	for i, e := range s.entries {
		if e.rule == rule {
			s.entries[i].included = included
			return s
		}
	}
	s.entries = append(s.entries, ruleEntry{rule: rule, included: included})
	return s
}

// Remove drops any directive for the rule.
func (s *RuleSet) Remove(rule Rule) *RuleSet {
	for i, e := range s.entries {
		if e.rule == rule {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return s
}

// Clear drops all directives.
func (s *RuleSet) Clear() *RuleSet {
	s.entries = s.entries[:0]
	return s
}

// Includes reports whether the set holds an enabling directive for the
// rule.
func (s *RuleSet) Includes(rule Rule) bool {
	for _, e := range s.entries {
		if e.rule == rule {
			return e.included
		}
	}
	return false
}

// Excludes reports whether the set holds a disabling directive for the
// rule.
func (s *RuleSet) Excludes(rule Rule) bool {
	for _, e := range s.entries {
		if e.rule == rule {
			return !e.included
		}
	}
	return false
}

// Contains reports whether the set holds any directive for the rule.
func (s *RuleSet) Contains(rule Rule) bool {
	for _, e := range s.entries {
		if e.rule == rule {
			return true
		}
	}
	return false
}

// Len returns the number of directives.
func (s *RuleSet) Len() int { return len(s.entries) }

// IsEmpty reports whether the set holds no directives.
func (s *RuleSet) IsEmpty() bool { return len(s.entries) == 0 }

// Directives returns the signed rule list ("+rule" / "-rule") in insertion
// order, as sent to the server.
func (s *RuleSet) Directives() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		sign := "-"
		if e.included {
			sign = "+"
		}
		out[i] = sign + string(e.rule)
	}
	return out
}

// MarshalJSON serializes the set as its ordered signed rule list.
func (s RuleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Directives())
}

// Optimizer carries per-query optimizer settings for cursor creation.
type Optimizer struct {
	Rules RuleSet `json:"rules"`
}
