package cursor

import (
	"github.com/forgo/rango/api"
	"github.com/forgo/rango/aql"
)

// Cursor is one batch of results of an AQL query together with the
// server-side cursor state needed to fetch the next one. ID is only set
// while the server holds the cursor open, that is while HasMore is true.
type Cursor[T any] struct {
	ID      string `json:"id,omitempty"`
	Result  []T    `json:"result"`
	HasMore bool   `json:"hasMore"`
	Count   *int64 `json:"count,omitempty"`
	Extra   *Extra `json:"extra,omitempty"`
	Cached  bool   `json:"cached"`
}

// Extra carries the non-result information a cursor can report.
type Extra struct {
	Stats    *Statistics `json:"stats,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// Statistics are the execution statistics of a query.
type Statistics struct {
	WritesExecuted int64   `json:"writesExecuted"`
	WritesIgnored  int64   `json:"writesIgnored"`
	ScannedFull    int64   `json:"scannedFull"`
	ScannedIndex   int64   `json:"scannedIndex"`
	Filtered       int64   `json:"filtered"`
	FullCount      *int64  `json:"fullCount,omitempty"`
	ExecutionTime  float64 `json:"executionTime"`
}

// Warning is a non-fatal problem the server noticed while executing a
// query.
type Warning struct {
	Code    api.ErrorCode `json:"code"`
	Message string        `json:"message"`
}

// NewCursor is the request payload that creates a cursor. Optional fields
// are pointers so that an unset field is omitted and the server default
// applies.
type NewCursor struct {
	Query       string               `json:"query"`
	BindVars    map[string]api.Value `json:"bindVars,omitempty"`
	Count       *bool                `json:"count,omitempty"`
	BatchSize   *uint32              `json:"batchSize,omitempty"`
	Cache       *bool                `json:"cache,omitempty"`
	MemoryLimit *uint64              `json:"memoryLimit,omitempty"`
	TTL         *uint32              `json:"ttl,omitempty"`
	Options     *Options             `json:"options,omitempty"`
}

// NewFromQuery builds a NewCursor from a prepared query, carrying over
// its text and bind parameters.
func NewFromQuery(q *api.Query) *NewCursor {
	nc := &NewCursor{Query: q.Text()}
	if binds := q.BindVars(); len(binds) > 0 {
		nc.BindVars = binds
	}
	return nc
}

// WithCount requests the total number of documents in the result set.
func (nc *NewCursor) WithCount() *NewCursor {
	enabled := true
	nc.Count = &enabled
	return nc
}

// WithBatchSize limits how many documents the server returns per batch.
func (nc *NewCursor) WithBatchSize(size uint32) *NewCursor {
	nc.BatchSize = &size
	return nc
}

// WithOptions sets the query execution options.
func (nc *NewCursor) WithOptions(opts *Options) *NewCursor {
	nc.Options = opts
	return nc
}

// Options are the optional execution knobs of a query. Fields past the
// optimizer only apply to specific storage engines or deployments and
// are silently ignored by servers that do not support them.
type Options struct {
	FailOnWarning           *bool          `json:"failOnWarning,omitempty"`
	Profile                 *bool          `json:"profile,omitempty"`
	MaxWarningCount         *uint32        `json:"maxWarningCount,omitempty"`
	FullCount               *bool          `json:"fullCount,omitempty"`
	MaxPlans                *uint32        `json:"maxPlans,omitempty"`
	Optimizer               *aql.Optimizer `json:"optimizer,omitempty"`
	IntermediateCommitCount *uint32        `json:"intermediateCommitCount,omitempty"`
	IntermediateCommitSize  *uint64        `json:"intermediateCommitSize,omitempty"`
	MaxTransactionSize      *uint64        `json:"maxTransactionSize,omitempty"`
	SatelliteSyncWait       *float64       `json:"satelliteSyncWait,omitempty"`
}
