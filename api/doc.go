// Package api defines the protocol-neutral building blocks of the rango
// driver: typed parameter values, ordered parameter lists, query objects
// with bind variables, the Method contract that every API operation
// implements, and the server-side error model.
//
// # Method Contract
//
// Every REST operation of the ArangoDB API is described by a value
// implementing the Method interface. A Method is a pure, declarative
// description of one request: its intent (Operation), its request target
// (Path), its query parameters and extra headers, an optional body, and a
// ReturnType telling the execution engine where the payload lives inside
// the server's response envelope.
//
// Most operations do not implement Method by hand. MethodSpec is a
// declarative descriptor that already satisfies the interface:
//
//	spec := api.MethodSpec{
//	    Op:        api.OperationRead,
//	    PathValue: "/_api/version",
//	    Return:    api.ReturnType{},
//	}
//
// The engine in the connector package turns any Method into an HTTP request
// and decodes the answer into the caller's result type.
//
// # Values and Parameters
//
// Value is a closed union over the scalar types the ArangoDB API accepts in
// query strings and bind variables, plus homogeneous vectors of each.
// Parameters is an ordered multimap of names to Values; insertion order is
// preserved so that URL construction is deterministic.
//
// # Errors
//
// Error models the error envelope the server returns: an HTTP-equivalent
// status code, a numeric ErrorCode, and a message. The connector package
// wraps it into its own error taxonomy; callers usually match with
// errors.As on *connector.MethodError.
package api
