package client

import (
	"context"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/connector"
)

const versionPath = "/_api/version"

// ServerVersion describes the server build.
type ServerVersion struct {
	Server  string `json:"server"`
	License string `json:"license"`
	Version string `json:"version"`
	// Details is only populated when requested and its keys vary between
	// server builds.
	Details map[string]string `json:"details,omitempty"`
}

// GetServerVersion returns the server name and version, with the
// build-detail map when details is true.
func GetServerVersion(ctx context.Context, conn *connector.Connection, details bool) (*ServerVersion, error) {
	var params api.Parameters
	if details {
		params.Add("details", api.Bool(true))
	}
	return connector.Execute[ServerVersion](ctx, conn, api.MethodSpec{
		Op:        api.OperationRead,
		PathValue: versionPath,
		Params:    params,
	})
}
