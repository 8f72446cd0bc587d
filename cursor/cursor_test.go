package cursor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
	"github.com/forgo/rango/internal/testing/mockdb"
)

type document struct {
	Key   string `json:"_key"`
	Value int    `json:"value"`
}

func testConnection(t *testing.T, srv *mockdb.Server) *connector.Connection {
	t.Helper()
	ds, err := connector.ParseDataSource(srv.URL())
	require.NoError(t, err)
	return connector.NewConnector(ds).SystemConnection()
}

func docs(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = document{Key: string(rune('a' + i)), Value: i}
	}
	return out
}

func TestCreate_SinglePage(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(3)...)
	conn := testConnection(t, srv)

	batch, err := Create[document](context.Background(), conn, &NewCursor{Query: query})
	require.NoError(t, err)
	assert.Len(t, batch.Result, 3)
	assert.False(t, batch.HasMore)
	assert.Empty(t, batch.ID)
	assert.Zero(t, srv.OpenCursors())
}

func TestIterator_SinglePage(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(3)...)
	conn := testConnection(t, srv)

	it, err := Query[document](context.Background(), conn, &NewCursor{Query: query})
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, it.State())

	var values []int
	for it.Next(context.Background()) {
		values = append(values, it.Value().Value)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{0, 1, 2}, values)

	// Exhaustion is terminal, not a hang or an error.
	assert.False(t, it.Next(context.Background()))
	assert.NoError(t, it.Err())
	assert.Zero(t, srv.Continuations(query))
}

func TestCreate_QueryError(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR RETURN"
	srv.FailQuery(query, http.StatusBadRequest, api.ErrCodeQueryParse, "syntax error near RETURN")
	conn := testConnection(t, srv)

	_, err := Create[document](context.Background(), conn, &NewCursor{Query: query})
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeQueryParse, methodErr.ErrorNum)
}

func TestCreate_RequestPayload(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		_, _ = w.Write([]byte(`{"error":false,"code":201,"result":[],"hasMore":false}`))
	}))
	defer srv.Close()

	ds, err := connector.ParseDataSource(srv.URL)
	require.NoError(t, err)
	conn := connector.NewConnector(ds).DefaultConnection()

	q := api.NewQuery("FOR d IN @@coll FILTER d.v > @min RETURN d").
		Bind("@coll", api.String("docs")).
		Bind("min", api.Int(5))
	nc := NewFromQuery(q).WithCount().WithBatchSize(2)

	_, err = Create[document](context.Background(), conn, nc)
	require.NoError(t, err)

	assert.Equal(t, "FOR d IN @@coll FILTER d.v > @min RETURN d", payload["query"])
	assert.Equal(t, map[string]any{"@coll": "docs", "min": float64(5)}, payload["bindVars"])
	assert.Equal(t, true, payload["count"])
	assert.Equal(t, float64(2), payload["batchSize"])
	// Unset options must be omitted entirely.
	assert.NotContains(t, payload, "ttl")
	assert.NotContains(t, payload, "options")
}

func TestReadNextBatch_EscapesCursorID(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"error":false,"code":200,"result":[],"hasMore":false}`))
	}))
	defer srv.Close()

	ds, err := connector.ParseDataSource(srv.URL)
	require.NoError(t, err)
	conn := connector.NewConnector(ds).SystemConnection()

	_, err = ReadNextBatch[document](context.Background(), conn, "157/evil path")
	require.NoError(t, err)
	require.NoError(t, Delete(context.Background(), conn, "157/evil path"))

	require.Len(t, paths, 2)
	assert.Equal(t, "/_db/_system/_api/cursor/157%2Fevil%20path", paths[0])
	assert.Equal(t, paths[0], paths[1])
}

func TestIterator_TwoPages(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(4)...)
	conn := testConnection(t, srv)

	size := uint32(2)
	it, err := Query[document](context.Background(), conn, &NewCursor{Query: query, BatchSize: &size})
	require.NoError(t, err)

	var values []int
	for it.Next(context.Background()) {
		values = append(values, it.Value().Value)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{0, 1, 2, 3}, values)
	assert.Equal(t, StateExhausted, it.State())

	// Four documents in batches of two need exactly one continuation.
	assert.Equal(t, 1, srv.Continuations(query))
	assert.Zero(t, srv.OpenCursors())
	assert.NoError(t, it.Close(context.Background()))
	assert.Empty(t, srv.DeletedCursors())
}

func TestIterator_Count(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(5)...)
	conn := testConnection(t, srv)

	size := uint32(2)
	it, err := Query[document](context.Background(), conn, (&NewCursor{Query: query, BatchSize: &size}).WithCount())
	require.NoError(t, err)
	defer func() { _ = it.Close(context.Background()) }()

	total, ok := it.Count()
	require.True(t, ok)
	assert.Equal(t, int64(5), total)
	assert.False(t, it.IsCached())
}

func TestIterator_MidStreamFailure(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(6)...)
	srv.FailContinuation(query, 2)
	conn := testConnection(t, srv)

	size := uint32(2)
	it, err := Query[document](context.Background(), conn, &NewCursor{Query: query, BatchSize: &size})
	require.NoError(t, err)

	consumed := 0
	for it.Next(context.Background()) {
		consumed++
	}
	// First batch and one continuation succeed, the second continuation
	// fails.
	assert.Equal(t, 4, consumed)
	var methodErr *connector.MethodError
	require.ErrorAs(t, it.Err(), &methodErr)
	assert.Equal(t, api.ErrCodeQueryKilled, methodErr.ErrorNum)

	// Next stays false and keeps the original error.
	assert.False(t, it.Next(context.Background()))
	require.ErrorAs(t, it.Err(), &methodErr)
}

func TestIterator_CloseDeletesOpenCursor(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(6)...)
	conn := testConnection(t, srv)

	size := uint32(2)
	it, err := Query[document](context.Background(), conn, &NewCursor{Query: query, BatchSize: &size})
	require.NoError(t, err)
	require.True(t, it.Next(context.Background()))

	require.NoError(t, it.Close(context.Background()))
	assert.Equal(t, StateDeleted, it.State())
	assert.Len(t, srv.DeletedCursors(), 1)
	assert.Zero(t, srv.OpenCursors())

	assert.False(t, it.Next(context.Background()))
	assert.ErrorIs(t, it.Err(), ErrDeleted)

	// Close is idempotent.
	assert.NoError(t, it.Close(context.Background()))
	assert.Len(t, srv.DeletedCursors(), 1)
}

func TestDelete_UnknownCursor(t *testing.T) {
	srv := mockdb.New(t)
	conn := testConnection(t, srv)

	err := Delete(context.Background(), conn, "nope")
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeCursorNotFound, methodErr.ErrorNum)
}

func TestReadNextBatch_AfterExhaustion(t *testing.T) {
	srv := mockdb.New(t)
	const query = "FOR d IN docs RETURN d"
	srv.RegisterQuery(query, docs(2)...)
	conn := testConnection(t, srv)

	size := uint32(1)
	first, err := Create[document](context.Background(), conn, &NewCursor{Query: query, BatchSize: &size})
	require.NoError(t, err)
	require.True(t, first.HasMore)

	second, err := ReadNextBatch[document](context.Background(), conn, first.ID)
	require.NoError(t, err)
	assert.False(t, second.HasMore)

	// The server dropped the cursor with the final batch.
	_, err = ReadNextBatch[document](context.Background(), conn, first.ID)
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeCursorNotFound, methodErr.ErrorNum)
}

func TestIterator_State(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "has-more", StateHasMore.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "deleted", StateDeleted.String())
}
