// Package connector is the execution engine of the rango driver. It turns
// any api.Method into an HTTP request, dispatches it through a pluggable
// Transport, and decodes the server's answer into the caller's result type
// or a typed error.
//
// # Connecting
//
// A Connector is built from a DataSource and hands out cheap Connection
// handles bound to one database:
//
//	ds, err := connector.ParseDataSource("http://localhost:8529")
//	if err != nil { ... }
//	conn := connector.NewConnector(ds).SystemConnection()
//
//	version, err := connector.Execute[client.ServerVersion](ctx, conn, m)
//
// Connections share the underlying transport and the authentication token;
// UseDatabase returns a new handle targeting another database without
// reconnecting. The token is the only mutable shared state and is guarded
// for concurrent use, so Execute calls may be issued concurrently from
// multiple goroutines.
//
// # Error taxonomy
//
// Every failure of Execute is a value from a flat, closed taxonomy:
//
//	ErrCommunication   transport-level failure (connect, I/O, TLS, DNS)
//	ErrTimeout         the configured deadline elapsed
//	ErrSerialization   the request body could not be encoded
//	ErrDeserialization the response could not be decoded
//	ErrNotAuthenticated re-authentication is required
//	*MethodError       the server answered with an error envelope
//
// Check classes with errors.Is and extract server detail with errors.As:
//
//	var me *connector.MethodError
//	if errors.As(err, &me) && me.ErrorNum == api.ErrCodeArangoDocumentNotFound {
//	    ...
//	}
//
// A MethodError with status 401 also matches
// errors.Is(err, connector.ErrNotAuthenticated), so callers can trigger
// re-authentication without inspecting messages. No error class is retried
// by the engine; retry policy belongs to the caller.
package connector
