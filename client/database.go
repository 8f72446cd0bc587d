package client

import (
	"context"
	"net/url"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
)

const databasePath = "/_api/database"

// Database describes an existing database.
type Database struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsSystem bool   `json:"isSystem"`
}

// UserInfo names a user to grant access to a database at creation time,
// creating the user when it does not exist yet.
type UserInfo struct {
	Username string         `json:"username"`
	Password string         `json:"passwd"`
	Active   *bool          `json:"active,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// NewDatabase is the request payload that creates a database.
type NewDatabase struct {
	Name  string     `json:"name"`
	Users []UserInfo `json:"users,omitempty"`
}

// CreateDatabase creates a database. Must run against _system.
func CreateDatabase(ctx context.Context, conn *connector.Connection, db *NewDatabase) error {
	_, err := connector.Execute[bool](ctx, conn, api.MethodSpec{
		Op:        api.OperationCreate,
		PathValue: databasePath,
		Body:      db,
		Return:    api.ReturnType{ResultField: "result", CodeField: "code"},
	})
	return err
}

// ListDatabases returns the names of all databases. Must run against
// _system.
func ListDatabases(ctx context.Context, conn *connector.Connection) ([]string, error) {
	names, err := connector.Execute[[]string](ctx, conn, api.MethodSpec{
		Op:        api.OperationRead,
		PathValue: databasePath,
		Return:    api.ReturnType{ResultField: "result", CodeField: "code"},
	})
	if err != nil {
		return nil, err
	}
	return *names, nil
}

// ListAccessibleDatabases returns the names of the databases the current
// user can access. Unlike ListDatabases it works against any database.
func ListAccessibleDatabases(ctx context.Context, conn *connector.Connection) ([]string, error) {
	names, err := connector.Execute[[]string](ctx, conn, api.MethodSpec{
		Op:        api.OperationRead,
		PathValue: databasePath + "/user",
		Return:    api.ReturnType{ResultField: "result", CodeField: "code"},
	})
	if err != nil {
		return nil, err
	}
	return *names, nil
}

// GetCurrentDatabase describes the database the connection addresses.
func GetCurrentDatabase(ctx context.Context, conn *connector.Connection) (*Database, error) {
	return connector.Execute[Database](ctx, conn, api.MethodSpec{
		Op:        api.OperationRead,
		PathValue: databasePath + "/current",
		Return:    api.ReturnType{ResultField: "result", CodeField: "code"},
	})
}

// DropDatabase removes a database and everything in it. Must run against
// _system; _system itself cannot be dropped.
func DropDatabase(ctx context.Context, conn *connector.Connection, name string) error {
	_, err := connector.Execute[bool](ctx, conn, api.MethodSpec{
		Op:        api.OperationDelete,
		PathValue: databasePath + "/" + url.PathEscape(name),
		Return:    api.ReturnType{ResultField: "result", CodeField: "code"},
	})
	return err
}
