// Package cursor implements AQL query cursors and batched result
// iteration.
//
// A query is submitted with Create, which returns the first batch of
// results. When the result set is larger than one batch the server keeps
// a cursor open and further batches are fetched with ReadNextBatch until
// hasMore turns false.
//
// # Iterator
//
// Most callers should not drive the batch protocol by hand. Query wraps
// it in a row-style iterator:
//
//	it, err := cursor.Query[Document](ctx, conn, cursor.NewFromQuery(q))
//	if err != nil {
//	    return err
//	}
//	defer it.Close(ctx)
//	for it.Next(ctx) {
//	    doc := it.Value()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Close deletes the server-side cursor when one is still open and is
// safe to call at any point, including after exhaustion.
package cursor
