package connector

import "sync"

// AuthMethod names the way credentials are attached to requests.
type AuthMethod uint8

const (
	// AuthNone attaches no credentials.
	AuthNone AuthMethod = iota
	// AuthBasic attaches the username and password as HTTP Basic
	// credentials on every request.
	AuthBasic
	// AuthJWT attaches a bearer token obtained via client.Login (or set
	// explicitly with UseAuthToken) on every request.
	AuthJWT
)

// String returns the method name for logging.
func (m AuthMethod) String() string {
	switch m {
	case AuthBasic:
		return "basic"
	case AuthJWT:
		return "jwt"
	}
	return "none"
}

// Credentials holds a username and password pair.
type Credentials struct {
	Username string
	Password string
}

// Authentication selects how a datasource authenticates against the
// server.
type Authentication struct {
	method      AuthMethod
	credentials Credentials
}

// NoAuthentication disables authentication.
func NoAuthentication() Authentication {
	return Authentication{method: AuthNone}
}

// BasicAuthentication authenticates with HTTP Basic credentials.
func BasicAuthentication(username, password string) Authentication {
	return Authentication{
		method:      AuthBasic,
		credentials: Credentials{Username: username, Password: password},
	}
}

// JWTAuthentication authenticates with a JSON Web Token obtained for the
// given credentials. The token itself is acquired separately (client.Login)
// and held by the connector's token store.
func JWTAuthentication(username, password string) Authentication {
	return Authentication{
		method:      AuthJWT,
		credentials: Credentials{Username: username, Password: password},
	}
}

// Method returns the selected authentication method.
func (a Authentication) Method() AuthMethod { return a.method }

// Credentials returns the configured credentials. Meaningless for
// AuthNone.
func (a Authentication) Credentials() Credentials { return a.credentials }

// tokenStore is the one piece of mutable state shared between cloned
// connections: the current JWT. Reads vastly outnumber writes (one read
// per request, a write only on login or invalidation), hence the RWMutex.
type tokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *tokenStore) current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *tokenStore) replace(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *tokenStore) clear() {
	s.replace("")
}
