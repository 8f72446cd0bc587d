package connector

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/pkg/jwt"
)

// Version is the driver version reported in the User-Agent header.
const Version = "0.1.0"

const defaultUserAgent = "rango/" + Version

const (
	dbPathPrefix   = "/_db/"
	openPathPrefix = "/_open/"
)

// Connector owns the shared pieces of a server connection: the datasource,
// the transport, and the authentication token. It hands out Connection
// handles bound to one database each.
type Connector struct {
	datasource *DataSource
	transport  Transport
	tokens     *tokenStore
	logger     *slog.Logger
	userAgent  string
}

// Option configures a Connector.
type Option func(*Connector)

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Connector) { c.transport = t }
}

// WithLogger enables request/response debug logging. The connector is
// silent without one.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Connector) { c.logger = logger }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Connector) { c.userAgent = ua }
}

// NewConnector builds a Connector for the given datasource.
func NewConnector(ds *DataSource, opts ...Option) *Connector {
	c := &Connector{
		datasource: ds,
		transport:  NewHTTPTransport(),
		tokens:     &tokenStore{},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connection returns a handle bound to the named database. Handles are
// cheap and share the transport and token store.
func (c *Connector) Connection(database string) *Connection {
	return &Connection{connector: c, database: database}
}

// SystemConnection returns a handle bound to the _system database.
func (c *Connector) SystemConnection() *Connection {
	return c.Connection(SystemDatabase)
}

// DefaultConnection returns a handle bound to the datasource's default
// database, or to no database when none is configured (requests then omit
// the /_db prefix and the server applies its own default).
func (c *Connector) DefaultConnection() *Connection {
	return c.Connection(c.datasource.DatabaseName())
}

// UseAuthToken installs a JWT to be attached to subsequent requests of
// all connections of this connector. Safe for concurrent use.
func (c *Connector) UseAuthToken(token string) {
	c.tokens.replace(token)
}

// InvalidateAuthToken discards the current JWT. Subsequent requests under
// JWT authentication fail with ErrNotAuthenticated until a new token is
// installed.
func (c *Connector) InvalidateAuthToken() {
	c.tokens.clear()
}

// DataSource returns the datasource this connector was built from.
func (c *Connector) DataSource() *DataSource { return c.datasource }

// Connection is a handle to one database on one server. The zero database
// name addresses the server default. Connections are immutable; switching
// databases returns a new handle sharing transport and token state.
type Connection struct {
	connector *Connector
	database  string
}

// Database returns the database this connection addresses, or "".
func (conn *Connection) Database() string { return conn.database }

// UseDatabase returns a connection handle for the named database sharing
// this connection's transport and authentication token.
func (conn *Connection) UseDatabase(name string) *Connection {
	return conn.connector.Connection(name)
}

// UseAuthToken installs a JWT on the shared token store.
func (conn *Connection) UseAuthToken(token string) {
	conn.connector.UseAuthToken(token)
}

// InvalidateAuthToken discards the shared JWT.
func (conn *Connection) InvalidateAuthToken() {
	conn.connector.InvalidateAuthToken()
}

// TokenExpiresAt reports the expiry of the currently held JWT, when one is
// held and carries an exp claim. Callers can use this to re-authenticate
// ahead of expiry instead of reacting to ErrNotAuthenticated.
func (conn *Connection) TokenExpiresAt() (time.Time, bool) {
	token := conn.connector.tokens.current()
	if token == "" {
		return time.Time{}, false
	}
	claims, err := jwt.Decode(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return claims.ExpiresAt, true
}

// Execute runs a single method against the connection and decodes the
// server's payload into T. It is the single choke point every operation
// passes through; see the package documentation for the error taxonomy.
func Execute[T any](ctx context.Context, conn *Connection, m api.Method) (*T, error) {
	c := conn.connector

	req, err := conn.prepareRequest(m)
	if err != nil {
		return nil, err
	}

	if timeout := c.datasource.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "sending request",
			slog.String("operation", m.Operation().String()),
			slog.String("url", req.URL))
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "received response",
			slog.Int("status", resp.StatusCode),
			slog.Int("bytes", len(resp.Body)))
	}

	return decodeResponse[T](m.ReturnType(), resp)
}

// prepareRequest builds the transport request for a method: URL, query
// string, auth and extra headers, serialized body.
func (conn *Connection) prepareRequest(m api.Method) (*Request, error) {
	c := conn.connector

	var body []byte
	if content := m.Content(); content != nil {
		encoded, err := json.Marshal(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		body = encoded
	}

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	auth := c.datasource.Authentication()
	if strings.HasPrefix(m.Path(), openPathPrefix) {
		// Routes under /_open/ are served without authentication; the
		// token endpoint lives there, so requiring a token first would
		// make the initial login impossible.
		auth = NoAuthentication()
	}
	switch auth.Method() {
	case AuthBasic:
		creds := auth.Credentials()
		raw := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
		header.Set("Authorization", "Basic "+raw)
	case AuthJWT:
		token := c.tokens.current()
		if token == "" {
			return nil, fmt.Errorf("%w: JWT authentication requires a prior login", ErrNotAuthenticated)
		}
		header.Set("Authorization", "Bearer "+token)
	}
	for _, pair := range m.Header().Pairs() {
		header.Add(pair.Name, pair.Value.String())
	}

	return &Request{
		Operation: m.Operation(),
		URL:       conn.buildURL(m),
		Header:    header,
		Body:      body,
	}, nil
}

// buildURL assembles base URL, optional /_db/{name} segment, method path
// and the query string. Query parameters keep their insertion order so the
// resulting URL is deterministic.
func (conn *Connection) buildURL(m api.Method) string {
	var b strings.Builder
	b.WriteString(conn.connector.datasource.BaseURL())
	if conn.database != "" {
		b.WriteString(dbPathPrefix)
		b.WriteString(url.PathEscape(conn.database))
	}
	b.WriteString(m.Path())
	params := m.Parameters()
	if !params.IsEmpty() {
		b.WriteByte('?')
		for i, pair := range params.Pairs() {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(pair.Name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(pair.Value.String()))
		}
	}
	return b.String()
}

// envelope mirrors the status fields of the server's response wrapper.
type envelope struct {
	Error        bool          `json:"error"`
	Code         int           `json:"code"`
	ErrorNum     api.ErrorCode `json:"errorNum"`
	ErrorMessage string        `json:"errorMessage"`
}

// decodeResponse inspects the envelope and extracts the typed payload.
func decodeResponse[T any](rt api.ReturnType, resp *Response) (*T, error) {
	// The envelope's error marker is authoritative: logical failures may
	// arrive with a 2xx transport status.
	var env envelope
	if len(resp.Body) > 0 && json.Unmarshal(resp.Body, &env) == nil && env.Error {
		status := env.Code
		if status == 0 {
			status = resp.StatusCode
		}
		return nil, &MethodError{apiError: api.Error{
			StatusCode: status,
			ErrorNum:   env.ErrorNum,
			Message:    env.ErrorMessage,
		}}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// No parseable error envelope; synthesize one from the transport
		// status.
		message := strings.TrimSpace(string(resp.Body))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &MethodError{apiError: api.Error{
			StatusCode: resp.StatusCode,
			ErrorNum:   api.ErrorCode(resp.StatusCode),
			Message:    message,
		}}
	}

	payload := resp.Body
	if rt.ResultField != "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(resp.Body, &fields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
		}
		if sub, ok := fields[rt.ResultField]; ok {
			payload = sub
		}
	}
	if len(payload) == 0 {
		payload = []byte("null")
	}
	result := new(T)
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return result, nil
}
