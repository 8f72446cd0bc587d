package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameters_InsertionOrder(t *testing.T) {
	var params Parameters
	params.Add("waitForSync", Bool(true))
	params.Add("limit", Int(10))
	params.Add("name", String("alpha"))

	pairs := params.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "waitForSync", pairs[0].Name)
	assert.Equal(t, "limit", pairs[1].Name)
	assert.Equal(t, "name", pairs[2].Name)
}

func TestParameters_DuplicatesKept(t *testing.T) {
	var params Parameters
	params.Add("key", String("first"))
	params.Add("key", String("second"))

	assert.Equal(t, 2, params.Len())
	value, ok := params.Get("key")
	require.True(t, ok)
	assert.Equal(t, "first", value.String())
}

func TestParameters_ZeroValue(t *testing.T) {
	var params Parameters
	assert.True(t, params.IsEmpty())
	assert.Empty(t, params.Pairs())
	_, ok := params.Get("missing")
	assert.False(t, ok)
}

func TestParameters_PairsIsCopy(t *testing.T) {
	params := NewParameters(Param{Name: "a", Value: Int(1)})
	pairs := params.Pairs()
	pairs[0].Name = "mutated"
	fresh := params.Pairs()
	assert.Equal(t, "a", fresh[0].Name)
}

func TestQuery_Bind(t *testing.T) {
	q := NewQuery("FOR d IN @@coll FILTER d.age > @min RETURN d").
		Bind("@coll", String("users")).
		Bind("min", Int(21))

	binds := q.BindVars()
	require.Len(t, binds, 2)
	assert.Equal(t, "users", binds["@coll"].String())
	assert.Equal(t, "21", binds["min"].String())
}

func TestQuery_BindReplacesSameName(t *testing.T) {
	q := NewQuery("RETURN @x").Bind("x", Int(1)).Bind("x", Int(2))
	binds := q.BindVars()
	require.Len(t, binds, 1)
	assert.Equal(t, "2", binds["x"].String())
}

func TestQuery_BindVarsIsCopy(t *testing.T) {
	q := NewQuery("RETURN @x").Bind("x", Int(1))
	binds := q.BindVars()
	binds["x"] = Int(99)
	assert.Equal(t, "1", q.BindVars()["x"].String())
}
