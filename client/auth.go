package client

import (
	"context"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
)

const openAuthPath = "/_open/auth"

// AuthToken is the JWT the server issues for valid credentials.
type AuthToken struct {
	JWT string `json:"jwt"`
}

// authRequest is the credential payload of the token endpoint.
type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate exchanges credentials for a JWT without installing it.
// The endpoint is open, so this works on connections that are not yet
// authenticated. Bad credentials surface as a *connector.MethodError
// matching connector.ErrNotAuthenticated.
func Authenticate(ctx context.Context, conn *connector.Connection, username, password string) (*AuthToken, error) {
	return connector.Execute[AuthToken](ctx, conn, api.MethodSpec{
		Op:        api.OperationCreate,
		PathValue: openAuthPath,
		Body:      authRequest{Username: username, Password: password},
	})
}

// Login authenticates and installs the obtained token on the
// connection's connector, so all subsequent requests of all connections
// sharing it send the token.
func Login(ctx context.Context, conn *connector.Connection, username, password string) error {
	token, err := Authenticate(ctx, conn, username, password)
	if err != nil {
		return err
	}
	conn.UseAuthToken(token.JWT)
	return nil
}
