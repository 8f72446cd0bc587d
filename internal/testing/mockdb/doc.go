// Package mockdb runs an in-process fake ArangoDB server for tests.
//
// The fake speaks the subset of the HTTP API the driver uses: the token
// endpoint, version and database management, and the cursor protocol.
// Query results are canned; tests register a query string together with
// the documents it should yield and the fake serves them in batches.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    srv := mockdb.New(t)
//	    srv.RegisterQuery("FOR d IN docs RETURN d", doc1, doc2, doc3)
//
//	    ds, _ := connector.ParseDataSource(srv.URL())
//	    ...
//	}
//
// The server shuts down automatically via t.Cleanup.
package mockdb
