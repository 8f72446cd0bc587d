package aql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSet_DirectiveOrder(t *testing.T) {
	var rules RuleSet
	rules.Exclude(RuleAll).
		Exclude(RuleMoveFiltersUp).
		Include(RuleUseIndexForSort).
		Include(RuleInlineSubQueries)

	assert.Equal(t, []string{
		"-all",
		"-move-filters-up",
		"+use-index-for-sort",
		"+inline-subqueries",
	}, rules.Directives())
}

func TestRuleSet_ResetKeepsPosition(t *testing.T) {
	// Flipping the sign of a rule already in the set must not move it.
	var rules RuleSet
	rules.Exclude(RuleAll).Include(RuleUseIndexes).Include(RuleInlineSubQueries)
	rules.Exclude(RuleUseIndexes)

	assert.Equal(t, []string{
		"-all",
		"-use-indexes",
		"+inline-subqueries",
	}, rules.Directives())
}

func TestRuleSet_Membership(t *testing.T) {
	var rules RuleSet
	rules.Include(RuleUseIndexes).Exclude(RuleMoveFiltersUp)

	assert.True(t, rules.Includes(RuleUseIndexes))
	assert.False(t, rules.Excludes(RuleUseIndexes))
	assert.True(t, rules.Excludes(RuleMoveFiltersUp))
	assert.True(t, rules.Contains(RuleMoveFiltersUp))
	assert.False(t, rules.Contains(RuleGeoIndexOptimizer))
}

func TestRuleSet_Remove(t *testing.T) {
	var rules RuleSet
	rules.Include(RuleUseIndexes).Include(RuleInlineSubQueries)
	rules.Remove(RuleUseIndexes)

	assert.Equal(t, []string{"+inline-subqueries"}, rules.Directives())
	assert.Equal(t, 1, rules.Len())

	rules.Clear()
	assert.True(t, rules.IsEmpty())
}

func TestOptimizer_MarshalJSON(t *testing.T) {
	var opt Optimizer
	opt.Rules.Exclude(RuleAll).Include(RuleUseIndexForSort)

	raw, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rules":["-all","+use-index-for-sort"]}`, string(raw))
}
