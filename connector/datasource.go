package connector

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Defaults applied by DefaultDataSource and ParseDataSource.
const (
	DefaultScheme   = "http"
	DefaultHost     = "localhost"
	DefaultPort     = 8529
	DefaultUsername = "root"
	DefaultTimeout  = 30 * time.Second
)

// SystemDatabase is the name of the server's system database.
const SystemDatabase = "_system"

// DataSource describes one server endpoint: scheme, host, port, the
// authentication to use, an optional default database, and the request
// timeout. DataSources are immutable; the With*/Use* methods return
// modified copies.
type DataSource struct {
	scheme         string
	host           string
	port           int
	authentication Authentication
	databaseName   string
	timeout        time.Duration
}

// DefaultDataSource targets http://localhost:8529 with Basic
// authentication as root and an empty password.
func DefaultDataSource() *DataSource {
	return &DataSource{
		scheme:         DefaultScheme,
		host:           DefaultHost,
		port:           DefaultPort,
		authentication: BasicAuthentication(DefaultUsername, ""),
		timeout:        DefaultTimeout,
	}
}

// ParseDataSource builds a DataSource from a URL of the form
// scheme://[user[:password]@]host[:port]. Missing pieces fall back to the
// defaults. The URL path is ignored; select a database with UseDatabase.
func ParseDataSource(rawURL string) (*DataSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		host = DefaultHost
	}
	port := DefaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid port %q", ErrInvalidURL, p)
		}
	}
	username := u.User.Username()
	if username == "" {
		username = DefaultUsername
	}
	password, _ := u.User.Password()
	return &DataSource{
		scheme:         u.Scheme,
		host:           host,
		port:           port,
		authentication: BasicAuthentication(username, password),
		timeout:        DefaultTimeout,
	}, nil
}

func (ds *DataSource) clone() *DataSource {
	copied := *ds
	return &copied
}

// WithAuthentication returns a copy using the given authentication.
func (ds *DataSource) WithAuthentication(auth Authentication) *DataSource {
	out := ds.clone()
	out.authentication = auth
	return out
}

// WithBasicAuthentication returns a copy using HTTP Basic credentials.
func (ds *DataSource) WithBasicAuthentication(username, password string) *DataSource {
	return ds.WithAuthentication(BasicAuthentication(username, password))
}

// WithoutAuthentication returns a copy that sends no credentials.
func (ds *DataSource) WithoutAuthentication() *DataSource {
	return ds.WithAuthentication(NoAuthentication())
}

// WithTimeout returns a copy with the given request timeout. A zero
// timeout disables the driver-imposed deadline.
func (ds *DataSource) WithTimeout(timeout time.Duration) *DataSource {
	out := ds.clone()
	out.timeout = timeout
	return out
}

// UseDatabase returns a copy whose connections target the named database
// by default. An empty name clears the selection.
func (ds *DataSource) UseDatabase(name string) *DataSource {
	out := ds.clone()
	out.databaseName = name
	return out
}

// Scheme returns the URL scheme.
func (ds *DataSource) Scheme() string { return ds.scheme }

// Host returns the host name.
func (ds *DataSource) Host() string { return ds.host }

// Port returns the port.
func (ds *DataSource) Port() int { return ds.port }

// Authentication returns the configured authentication.
func (ds *DataSource) Authentication() Authentication { return ds.authentication }

// DatabaseName returns the default database, or "" when none is selected.
func (ds *DataSource) DatabaseName() string { return ds.databaseName }

// Timeout returns the request timeout.
func (ds *DataSource) Timeout() time.Duration { return ds.timeout }

// BaseURL returns "scheme://host:port" without a trailing slash.
func (ds *DataSource) BaseURL() string {
	return ds.scheme + "://" + ds.host + ":" + strconv.Itoa(ds.port)
}
