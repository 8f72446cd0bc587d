package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
	"github.com/forgo/rango/internal/testing/mockdb"
)

func systemConnection(t *testing.T, srv *mockdb.Server) *connector.Connection {
	t.Helper()
	ds, err := connector.ParseDataSource(srv.URL())
	require.NoError(t, err)
	return connector.NewConnector(ds).SystemConnection()
}

func TestAuthenticate_IssuesToken(t *testing.T) {
	srv := mockdb.New(t)
	srv.SetCredentials("alice", "wonder")
	conn := systemConnection(t, srv)

	token, err := Authenticate(context.Background(), conn, "alice", "wonder")
	require.NoError(t, err)
	assert.NotEmpty(t, token.JWT)
}

func TestAuthenticate_WrongCredentials(t *testing.T) {
	srv := mockdb.New(t)
	conn := systemConnection(t, srv)

	_, err := Authenticate(context.Background(), conn, "root", "wrong")
	assert.ErrorIs(t, err, connector.ErrNotAuthenticated)
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, http.StatusUnauthorized, methodErr.StatusCode)
}

func TestLogin_InstallsToken(t *testing.T) {
	srv := mockdb.New(t)
	ds, err := connector.ParseDataSource(srv.URL())
	require.NoError(t, err)
	ds = ds.WithAuthentication(connector.JWTAuthentication("root", ""))
	conn := connector.NewConnector(ds).SystemConnection()

	// Before login every request fails pre-dispatch.
	_, err = GetServerVersion(context.Background(), conn, false)
	require.ErrorIs(t, err, connector.ErrNotAuthenticated)

	require.NoError(t, Login(context.Background(), conn, "root", ""))

	version, err := GetServerVersion(context.Background(), conn, false)
	require.NoError(t, err)
	assert.Equal(t, mockdb.ServerVersionNumber, version.Version)

	expiry, ok := conn.TokenExpiresAt()
	require.True(t, ok)
	assert.False(t, expiry.IsZero())
}

func TestGetServerVersion_Details(t *testing.T) {
	srv := mockdb.New(t)
	conn := systemConnection(t, srv)

	version, err := GetServerVersion(context.Background(), conn, false)
	require.NoError(t, err)
	assert.Equal(t, "arango", version.Server)
	assert.Empty(t, version.Details)

	detailed, err := GetServerVersion(context.Background(), conn, true)
	require.NoError(t, err)
	assert.NotEmpty(t, detailed.Details)
}

func TestDatabase_Lifecycle(t *testing.T) {
	srv := mockdb.New(t)
	conn := systemConnection(t, srv)
	ctx := context.Background()

	names, err := ListDatabases(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, []string{"_system"}, names)

	err = CreateDatabase(ctx, conn, &NewDatabase{
		Name: "orders",
		Users: []UserInfo{
			{Username: "svc", Password: "pw"},
		},
	})
	require.NoError(t, err)

	names, err = ListDatabases(ctx, conn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"_system", "orders"}, names)

	// The user granted at creation can reach the new database.
	svc := connector.NewConnector(connectorSource(t, srv).WithBasicAuthentication("svc", "pw")).Connection("orders")
	current, err := GetCurrentDatabase(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, "orders", current.Name)
	assert.False(t, current.IsSystem)

	require.NoError(t, DropDatabase(ctx, conn, "orders"))
	names, err = ListDatabases(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, []string{"_system"}, names)
}

func connectorSource(t *testing.T, srv *mockdb.Server) *connector.DataSource {
	t.Helper()
	ds, err := connector.ParseDataSource(srv.URL())
	require.NoError(t, err)
	return ds
}

func TestCreateDatabase_DuplicateName(t *testing.T) {
	srv := mockdb.New(t)
	conn := systemConnection(t, srv)
	ctx := context.Background()

	require.NoError(t, CreateDatabase(ctx, conn, &NewDatabase{Name: "orders"}))
	err := CreateDatabase(ctx, conn, &NewDatabase{Name: "orders"})
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeArangoDuplicateName, methodErr.ErrorNum)
	assert.Equal(t, http.StatusConflict, methodErr.StatusCode)
}

func TestDropDatabase_NotFound(t *testing.T) {
	srv := mockdb.New(t)
	conn := systemConnection(t, srv)

	err := DropDatabase(context.Background(), conn, "missing")
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeArangoDatabaseNotFound, methodErr.ErrorNum)
}

func TestListDatabases_RequiresSystem(t *testing.T) {
	srv := mockdb.New(t)
	ds := connectorSource(t, srv)
	ctx := context.Background()

	require.NoError(t, CreateDatabase(ctx, connector.NewConnector(ds).SystemConnection(), &NewDatabase{Name: "orders"}))

	orders := connector.NewConnector(ds).Connection("orders")
	_, err := ListDatabases(ctx, orders)
	var methodErr *connector.MethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, api.ErrCodeArangoUseSystemDatabase, methodErr.ErrorNum)

	// The per-user listing works from any database.
	accessible, err := ListAccessibleDatabases(ctx, orders)
	require.NoError(t, err)
	assert.Contains(t, accessible, "orders")
}
