package cursor

import (
	"context"
	"net/url"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
)

const apiPath = "/_api/cursor"

// Create submits a query and returns the first batch of results. When the
// returned cursor reports HasMore, the server keeps it open under its ID.
func Create[T any](ctx context.Context, conn *connector.Connection, nc *NewCursor) (*Cursor[T], error) {
	return connector.Execute[Cursor[T]](ctx, conn, api.MethodSpec{
		Op:        api.OperationCreate,
		PathValue: apiPath,
		Body:      nc,
		Return:    api.ReturnType{CodeField: "code"},
	})
}

// ReadNextBatch fetches the next batch of an open cursor. The server
// invalidates the cursor once the last batch has been read, so calling
// this after HasMore turned false fails with a cursor-not-found error.
func ReadNextBatch[T any](ctx context.Context, conn *connector.Connection, cursorID string) (*Cursor[T], error) {
	return connector.Execute[Cursor[T]](ctx, conn, api.MethodSpec{
		Op:        api.OperationReplace,
		PathValue: apiPath + "/" + url.PathEscape(cursorID),
		Return:    api.ReturnType{CodeField: "code"},
	})
}

// Delete disposes an open cursor before it is exhausted, releasing its
// server-side resources.
func Delete(ctx context.Context, conn *connector.Connection, cursorID string) error {
	_, err := connector.Execute[api.Empty](ctx, conn, api.MethodSpec{
		Op:        api.OperationDelete,
		PathValue: apiPath + "/" + url.PathEscape(cursorID),
		Return:    api.ReturnType{CodeField: "code"},
	})
	return err
}
