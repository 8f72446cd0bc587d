package api

// Operation is the request-intent tag of a Method. The transport maps it
// to the wire verb; it carries no payload itself.
type Operation uint8

const (
	// OperationCreate creates a resource (HTTP POST).
	OperationCreate Operation = iota
	// OperationRead reads a resource (HTTP GET).
	OperationRead
	// OperationModify partially updates a resource (HTTP PATCH).
	OperationModify
	// OperationReplace replaces a resource (HTTP PUT).
	OperationReplace
	// OperationDelete removes a resource (HTTP DELETE).
	OperationDelete
	// OperationReadHeader reads resource metadata only (HTTP HEAD).
	OperationReadHeader
)

// String returns the operation name for logging.
func (o Operation) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationRead:
		return "read"
	case OperationModify:
		return "modify"
	case OperationReplace:
		return "replace"
	case OperationDelete:
		return "delete"
	case OperationReadHeader:
		return "read-header"
	}
	return "unknown"
}

// ReturnType tells the execution engine how to interpret the server's
// response envelope for a Method.
type ReturnType struct {
	// ResultField names the top-level envelope field that holds the
	// payload. Empty means the whole response body is the result.
	ResultField string

	// CodeField names the top-level envelope field carrying the numeric
	// HTTP-equivalent status, available to error reporting even when the
	// transport status is in the 2xx range. Empty means no such field.
	CodeField string
}

// Method is a typed, declarative description of one API operation. All
// accessors must be pure and referentially stable for the lifetime of the
// value: the engine may call them more than once and must observe
// identical results.
type Method interface {
	// Operation returns the request intent.
	Operation() Operation

	// Path returns the request target, already containing any path
	// segments in their final, percent-encoded form.
	Path() string

	// Parameters returns the query-string parameters.
	Parameters() Parameters

	// Header returns extra request headers.
	Header() Parameters

	// Content returns the request body to serialize, or nil when no body
	// is sent.
	Content() any

	// ReturnType describes where the payload lives in the response
	// envelope.
	ReturnType() ReturnType
}

// MethodSpec is a declarative Method descriptor. Concrete operations are
// plain MethodSpec values instead of one hand-written type per endpoint.
type MethodSpec struct {
	Op        Operation
	PathValue string
	Params    Parameters
	Headers   Parameters
	Body      any
	Return    ReturnType
}

// Operation implements Method.
func (s MethodSpec) Operation() Operation { return s.Op }

// Path implements Method.
func (s MethodSpec) Path() string { return s.PathValue }

// Parameters implements Method.
func (s MethodSpec) Parameters() Parameters { return s.Params }

// Header implements Method.
func (s MethodSpec) Header() Parameters { return s.Headers }

// Content implements Method.
func (s MethodSpec) Content() any { return s.Body }

// ReturnType implements Method.
func (s MethodSpec) ReturnType() ReturnType { return s.Return }

// Empty is the result type of operations whose envelope carries no payload
// beyond the status fields.
type Empty struct{}
