// Package client provides typed wrappers for the server's administrative
// endpoints: authentication, database management, and version discovery.
//
// Every function takes a connector.Connection and delegates to the
// execution engine, so the full error taxonomy of package connector
// applies. Database management operations must run against the _system
// database:
//
//	sys := conn.UseDatabase(connector.SystemDatabase)
//	names, err := client.ListDatabases(ctx, sys)
//
// # Authentication
//
// Login exchanges credentials for a JWT and installs it on the
// connection's connector in one step:
//
//	if err := client.Login(ctx, sys, "root", password); err != nil {
//	    return err
//	}
package client
