package api

// Query holds an AQL query string together with its named bind variables.
// The driver does not interpret the query text; it only carries it to the
// server.
type Query struct {
	text  string
	binds map[string]Value
}

// NewQuery constructs a Query with the given AQL text and no bind
// variables.
func NewQuery(text string) *Query {
	return &Query{text: text, binds: make(map[string]Value)}
}

// Bind sets the value of a named bind variable and returns the query for
// chaining. Binding the same name twice replaces the earlier value; bind
// variable names are unique.
func (q *Query) Bind(name string, value Value) *Query {
	q.binds[name] = value
	return q
}

// Text returns the AQL query string.
func (q *Query) Text() string { return q.text }

// BindVars returns a copy of the bind-variable mapping.
func (q *Query) BindVars() map[string]Value {
	out := make(map[string]Value, len(q.binds))
	for name, value := range q.binds {
		out[name] = value
	}
	return out
}
