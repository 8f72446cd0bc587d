package mockdb

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/forgo/rango/api"
)

// ServerVersionNumber is the version the fake reports.
const ServerVersionNumber = "3.12.0"

const systemDatabase = "_system"

// queryFixture is a registered query with its canned result set.
type queryFixture struct {
	docs [][]byte

	// createErr, when set, fails cursor creation with this error.
	createErr *api.Error
	// failOnContinuation, when > 0, fails the nth continuation read.
	failOnContinuation int

	continuations int
}

// cursorState is one open server-side cursor.
type cursorState struct {
	fixture   *queryFixture
	remaining [][]byte
	batchSize int
	count     *int64
	reads     int
}

// Server is a fake ArangoDB server bound to a test.
type Server struct {
	t    *testing.T
	http *httptest.Server

	secret []byte

	mu             sync.Mutex
	users          map[string]string
	databases      map[string]bool
	queries        map[string]*queryFixture
	cursors        map[string]*cursorState
	deletedCursors []string
}

// New starts a fake server with a root user with empty password and only
// the _system database. It shuts down when the test finishes.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		t:         t,
		secret:    []byte(uuid.NewString()),
		users:     map[string]string{"root": ""},
		databases: map[string]bool{systemDatabase: true},
		queries:   map[string]*queryFixture{},
		cursors:   map[string]*cursorState{},
	}
	s.http = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.http.Close)
	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.http.URL
}

// SetCredentials registers a user the fake accepts for Basic auth and
// the token endpoint.
func (s *Server) SetCredentials(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// RegisterQuery registers a query string with the documents it yields.
// Registering the same query again replaces the fixture.
func (s *Server) RegisterQuery(query string, docs ...any) {
	encoded := make([][]byte, len(docs))
	for i, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			s.t.Fatalf("mockdb: encoding document %d: %v", i, err)
		}
		encoded[i] = raw
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries[query] = &queryFixture{docs: encoded}
}

// FailQuery makes cursor creation for the query fail with the given
// error.
func (s *Server) FailQuery(query string, status int, errNum api.ErrorCode, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries[query] = &queryFixture{
		createErr: &api.Error{StatusCode: status, ErrorNum: errNum, Message: message},
	}
}

// FailContinuation makes the nth continuation read of the query's cursor
// fail and drop the cursor, as a killed query would.
func (s *Server) FailContinuation(query string, nth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fixture, ok := s.queries[query]
	if !ok {
		s.t.Fatalf("mockdb: query not registered: %s", query)
	}
	fixture.failOnContinuation = nth
}

// Continuations returns how many continuation reads the query's cursors
// have served.
func (s *Server) Continuations(query string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	fixture, ok := s.queries[query]
	if !ok {
		return 0
	}
	return fixture.continuations
}

// OpenCursors returns how many server-side cursors are currently open.
func (s *Server) OpenCursors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cursors)
}

// DeletedCursors returns the ids of cursors removed by explicit delete
// requests.
func (s *Server) DeletedCursors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deletedCursors...)
}

// Databases returns the names of the databases the fake knows.
func (s *Server) Databases() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.databases))
	for name := range s.databases {
		names = append(names, name)
	}
	return names
}

// MintToken issues a token the fake accepts as Bearer auth, expiring
// after the given lifetime.
func (s *Server) MintToken(username string, lifetime time.Duration) string {
	claims := jwtlib.MapClaims{
		"iss":                "arangodb",
		"preferred_username": username,
		"server_id":          "mockdb",
		"iat":                time.Now().Unix(),
		"exp":                time.Now().Add(lifetime).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.t.Fatalf("mockdb: signing token: %v", err)
	}
	return token
}

// handle routes one request: resolve the database prefix, authenticate,
// dispatch.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	database := systemDatabase
	path := r.URL.Path
	if strings.HasPrefix(path, "/_db/") {
		rest := strings.TrimPrefix(path, "/_db/")
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			s.writeError(w, http.StatusNotFound, api.ErrCodeHTTPNotFound, "unknown path")
			return
		}
		name, err := url.PathUnescape(rest[:slash])
		if err != nil {
			s.writeError(w, http.StatusBadRequest, api.ErrCodeHTTPBadParameter, "invalid database name")
			return
		}
		database = name
		path = rest[slash:]
	}

	if path == "/_open/auth" {
		s.handleAuth(w, r)
		return
	}

	if !s.authenticated(r) {
		s.writeError(w, http.StatusUnauthorized, api.ErrCodeHTTPUnauthorized, "not authorized to execute this request")
		return
	}

	s.mu.Lock()
	known := s.databases[database]
	s.mu.Unlock()
	if !known {
		s.writeError(w, http.StatusNotFound, api.ErrCodeArangoDatabaseNotFound, "database not found")
		return
	}

	switch {
	case path == "/_api/version":
		s.handleVersion(w, r)
	case path == "/_api/database" || strings.HasPrefix(path, "/_api/database/"):
		s.handleDatabase(w, r, database, strings.TrimPrefix(path, "/_api/database"))
	case path == "/_api/cursor":
		s.handleCursorCreate(w, r)
	case strings.HasPrefix(path, "/_api/cursor/"):
		s.handleCursorID(w, r, strings.TrimPrefix(path, "/_api/cursor/"))
	default:
		s.writeError(w, http.StatusNotFound, api.ErrCodeHTTPNotFound, "unknown path "+path)
	}
}

// authenticated checks Basic credentials or a Bearer token signed with
// the server secret.
func (s *Server) authenticated(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	switch {
	case strings.HasPrefix(header, "Basic "):
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		if err != nil {
			return false
		}
		username, password, ok := strings.Cut(string(raw), ":")
		if !ok {
			return false
		}
		s.mu.Lock()
		expected, known := s.users[username]
		s.mu.Unlock()
		return known && expected == password
	case strings.HasPrefix(header, "Bearer "):
		token := strings.TrimPrefix(header, "Bearer ")
		_, err := jwtlib.Parse(token, func(*jwtlib.Token) (any, error) {
			return s.secret, nil
		}, jwtlib.WithValidMethods([]string{"HS256"}))
		return err == nil
	}
	return false
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, api.ErrCodeHTTPMethodNotAllowed, "method not allowed")
		return
	}
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		s.writeError(w, http.StatusBadRequest, api.ErrCodeHTTPBadParameter, "invalid credentials payload")
		return
	}
	s.mu.Lock()
	expected, known := s.users[creds.Username]
	s.mu.Unlock()
	if !known || expected != creds.Password {
		s.writeError(w, http.StatusUnauthorized, api.ErrCodeHTTPUnauthorized, "wrong credentials")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"jwt": s.MintToken(creds.Username, time.Hour),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"server":  "arango",
		"license": "community",
		"version": ServerVersionNumber,
	}
	if r.URL.Query().Get("details") == "true" {
		body["details"] = map[string]string{
			"architecture": "64bit",
			"mode":         "server",
		}
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleDatabase(w http.ResponseWriter, r *http.Request, database, sub string) {
	switch {
	case r.Method == http.MethodGet && sub == "":
		if database != systemDatabase {
			s.writeError(w, http.StatusForbidden, api.ErrCodeArangoUseSystemDatabase, "server database management is restricted to _system")
			return
		}
		s.writeResult(w, http.StatusOK, s.Databases())
	case r.Method == http.MethodGet && sub == "/user":
		s.writeResult(w, http.StatusOK, s.Databases())
	case r.Method == http.MethodGet && sub == "/current":
		s.writeResult(w, http.StatusOK, map[string]any{
			"id":       "1",
			"name":     database,
			"path":     "/var/lib/mockdb/" + database,
			"isSystem": database == systemDatabase,
		})
	case r.Method == http.MethodPost && sub == "":
		s.handleDatabaseCreate(w, r, database)
	case r.Method == http.MethodDelete && strings.HasPrefix(sub, "/"):
		s.handleDatabaseDrop(w, database, strings.TrimPrefix(sub, "/"))
	default:
		s.writeError(w, http.StatusMethodNotAllowed, api.ErrCodeHTTPMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleDatabaseCreate(w http.ResponseWriter, r *http.Request, database string) {
	if database != systemDatabase {
		s.writeError(w, http.StatusForbidden, api.ErrCodeArangoUseSystemDatabase, "server database management is restricted to _system")
		return
	}
	var payload struct {
		Name  string `json:"name"`
		Users []struct {
			Username string `json:"username"`
			Password string `json:"passwd"`
		} `json:"users"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		s.writeError(w, http.StatusBadRequest, api.ErrCodeArangoDatabaseNameInvalid, "invalid database name")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.databases[payload.Name] {
		s.writeError(w, http.StatusConflict, api.ErrCodeArangoDuplicateName, "duplicate database name")
		return
	}
	s.databases[payload.Name] = true
	for _, user := range payload.Users {
		if _, exists := s.users[user.Username]; !exists {
			s.users[user.Username] = user.Password
		}
	}
	s.writeResult(w, http.StatusCreated, true)
}

func (s *Server) handleDatabaseDrop(w http.ResponseWriter, database, name string) {
	if database != systemDatabase {
		s.writeError(w, http.StatusForbidden, api.ErrCodeArangoUseSystemDatabase, "server database management is restricted to _system")
		return
	}
	if name == systemDatabase {
		s.writeError(w, http.StatusForbidden, api.ErrCodeForbidden, "cannot drop the system database")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.databases[name] {
		s.writeError(w, http.StatusNotFound, api.ErrCodeArangoDatabaseNotFound, "database not found")
		return
	}
	delete(s.databases, name)
	s.writeResult(w, http.StatusOK, true)
}

func (s *Server) handleCursorCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, api.ErrCodeHTTPMethodNotAllowed, "method not allowed")
		return
	}
	var payload struct {
		Query     string `json:"query"`
		Count     bool   `json:"count"`
		BatchSize int    `json:"batchSize"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Query == "" {
		s.writeError(w, http.StatusBadRequest, api.ErrCodeQueryEmpty, "query is empty")
		return
	}

	s.mu.Lock()
	fixture, ok := s.queries[payload.Query]
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusBadRequest, api.ErrCodeQueryParse, "unexpected query: "+payload.Query)
		return
	}
	if fixture.createErr != nil {
		s.writeError(w, fixture.createErr.StatusCode, fixture.createErr.ErrorNum, fixture.createErr.Message)
		return
	}

	batchSize := payload.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	cur := &cursorState{
		fixture:   fixture,
		remaining: fixture.docs,
		batchSize: batchSize,
	}
	if payload.Count {
		total := int64(len(fixture.docs))
		cur.count = &total
	}

	batch, hasMore := cur.nextBatch()
	body := map[string]any{
		"error":   false,
		"code":    http.StatusCreated,
		"result":  batch,
		"hasMore": hasMore,
		"cached":  false,
	}
	if cur.count != nil {
		body["count"] = *cur.count
	}
	if hasMore {
		id := uuid.NewString()
		body["id"] = id
		s.mu.Lock()
		s.cursors[id] = cur
		s.mu.Unlock()
	}
	s.writeJSON(w, http.StatusCreated, body)
}

func (s *Server) handleCursorID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		s.handleCursorNext(w, id)
	case http.MethodDelete:
		s.handleCursorDelete(w, id)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, api.ErrCodeHTTPMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCursorNext(w http.ResponseWriter, id string) {
	s.mu.Lock()
	cur, ok := s.cursors[id]
	if !ok {
		s.mu.Unlock()
		s.writeError(w, http.StatusNotFound, api.ErrCodeCursorNotFound, "cursor not found")
		return
	}
	cur.reads++
	cur.fixture.continuations++
	if cur.fixture.failOnContinuation > 0 && cur.reads >= cur.fixture.failOnContinuation {
		delete(s.cursors, id)
		s.mu.Unlock()
		s.writeError(w, http.StatusGone, api.ErrCodeQueryKilled, "query killed")
		return
	}
	batch, hasMore := cur.nextBatch()
	if !hasMore {
		delete(s.cursors, id)
	}
	s.mu.Unlock()

	body := map[string]any{
		"error":   false,
		"code":    http.StatusOK,
		"result":  batch,
		"hasMore": hasMore,
		"cached":  false,
	}
	if cur.count != nil {
		body["count"] = *cur.count
	}
	if hasMore {
		body["id"] = id
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleCursorDelete(w http.ResponseWriter, id string) {
	s.mu.Lock()
	_, ok := s.cursors[id]
	if ok {
		delete(s.cursors, id)
		s.deletedCursors = append(s.deletedCursors, id)
	}
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, api.ErrCodeCursorNotFound, "cursor not found")
		return
	}
	s.writeJSON(w, http.StatusAccepted, map[string]any{
		"error": false,
		"code":  http.StatusAccepted,
		"id":    id,
	})
}

// nextBatch pops up to batchSize documents and reports whether more
// remain.
func (c *cursorState) nextBatch() ([]json.RawMessage, bool) {
	n := c.batchSize
	if n > len(c.remaining) {
		n = len(c.remaining)
	}
	batch := make([]json.RawMessage, n)
	for i, raw := range c.remaining[:n] {
		batch[i] = json.RawMessage(raw)
	}
	c.remaining = c.remaining[n:]
	return batch, len(c.remaining) > 0
}

func (s *Server) writeResult(w http.ResponseWriter, status int, result any) {
	s.writeJSON(w, status, map[string]any{
		"error":  false,
		"code":   status,
		"result": result,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, errNum api.ErrorCode, message string) {
	s.writeJSON(w, status, map[string]any{
		"error":        true,
		"code":         status,
		"errorNum":     errNum,
		"errorMessage": message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.t.Errorf("mockdb: encoding response: %v", err)
	}
}
