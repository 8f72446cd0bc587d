package api

import "strconv"

// ErrorCode is the closed enumeration of numeric error codes reported by
// the server in the errorNum field of an error envelope. Codes the driver
// does not know keep their numeric value and describe themselves as
// unknown.
type ErrorCode int

// General errors (0 - 99).
const (
	ErrCodeNoError         ErrorCode = 0
	ErrCodeFailed          ErrorCode = 1
	ErrCodeSysError        ErrorCode = 2
	ErrCodeOutOfMemory     ErrorCode = 3
	ErrCodeInternal        ErrorCode = 4
	ErrCodeIllegalNumber   ErrorCode = 5
	ErrCodeNumericOverflow ErrorCode = 6
	ErrCodeIllegalOption   ErrorCode = 7
	ErrCodeNotImplemented  ErrorCode = 9
	ErrCodeBadParameter    ErrorCode = 10
	ErrCodeForbidden       ErrorCode = 11
	ErrCodeTypeError       ErrorCode = 17
	ErrCodeLockTimeout     ErrorCode = 18
	ErrCodeRequestCanceled ErrorCode = 21
	ErrCodeFileExists      ErrorCode = 26
	ErrCodeLocked          ErrorCode = 27
	ErrCodeDeadlock        ErrorCode = 28
	ErrCodeShuttingDown    ErrorCode = 30
	ErrCodeOnlyEnterprise  ErrorCode = 31
	ErrCodeResourceLimit   ErrorCode = 32
)

// HTTP-mapped errors (400 - 599).
const (
	ErrCodeHTTPBadParameter     ErrorCode = 400
	ErrCodeHTTPUnauthorized     ErrorCode = 401
	ErrCodeHTTPForbidden        ErrorCode = 403
	ErrCodeHTTPNotFound         ErrorCode = 404
	ErrCodeHTTPMethodNotAllowed ErrorCode = 405
	ErrCodeHTTPPreconditionFail ErrorCode = 412
	ErrCodeHTTPServerError      ErrorCode = 500
	ErrCodeHTTPServiceUnavail   ErrorCode = 503
)

// ArangoDB-specific errors (1000+).
const (
	ErrCodeArangoIllegalState           ErrorCode = 1000
	ErrCodeArangoReadOnly               ErrorCode = 1004
	ErrCodeArangoDuplicateIdentifier    ErrorCode = 1005
	ErrCodeArangoCorruptedDatafile      ErrorCode = 1100
	ErrCodeArangoFilesystemFull         ErrorCode = 1104
	ErrCodeArangoConflict               ErrorCode = 1200
	ErrCodeArangoDocumentNotFound       ErrorCode = 1202
	ErrCodeArangoCollectionNotFound     ErrorCode = 1203
	ErrCodeArangoCollectionParamMissing ErrorCode = 1204
	ErrCodeArangoDocumentHandleBad      ErrorCode = 1205
	ErrCodeArangoDuplicateName          ErrorCode = 1207
	ErrCodeArangoIllegalName            ErrorCode = 1208
	ErrCodeArangoNoIndex                ErrorCode = 1209
	ErrCodeArangoUniqueConstraint       ErrorCode = 1210
	ErrCodeArangoIndexNotFound          ErrorCode = 1212
	ErrCodeArangoCrossCollectionRequest ErrorCode = 1213
	ErrCodeArangoIndexHandleBad         ErrorCode = 1214
	ErrCodeArangoDocumentTooLarge       ErrorCode = 1216
	ErrCodeArangoCollectionTypeInvalid  ErrorCode = 1218
	ErrCodeArangoDocumentKeyBad         ErrorCode = 1221
	ErrCodeArangoDocumentKeyUnexpected  ErrorCode = 1222
	ErrCodeArangoDatabaseNotFound       ErrorCode = 1228
	ErrCodeArangoDatabaseNameInvalid    ErrorCode = 1229
	ErrCodeArangoUseSystemDatabase      ErrorCode = 1230
	ErrCodeArangoDocumentKeyMissing     ErrorCode = 1238
)

// Query and cursor errors (1500 - 1699).
const (
	ErrCodeQueryKilled             ErrorCode = 1500
	ErrCodeQueryParse              ErrorCode = 1501
	ErrCodeQueryEmpty              ErrorCode = 1502
	ErrCodeQueryScript             ErrorCode = 1503
	ErrCodeQueryNumberOutOfRange   ErrorCode = 1504
	ErrCodeQueryVariableNameBad    ErrorCode = 1510
	ErrCodeQueryVariableRedeclared ErrorCode = 1511
	ErrCodeQueryVariableUnknown    ErrorCode = 1512
	ErrCodeQueryCollectionLock     ErrorCode = 1521
	ErrCodeQueryTooManyCollections ErrorCode = 1522
	ErrCodeQueryFunctionUnknown    ErrorCode = 1540
	ErrCodeQueryBindParamsInvalid  ErrorCode = 1550
	ErrCodeQueryBindParamMissing   ErrorCode = 1551
	ErrCodeQueryBindParamUndefined ErrorCode = 1552
	ErrCodeQueryBindParamType      ErrorCode = 1553
	ErrCodeQueryInvalidArithmetic  ErrorCode = 1561
	ErrCodeQueryDivisionByZero     ErrorCode = 1562
	ErrCodeQueryArrayExpected      ErrorCode = 1563
	ErrCodeQueryFailCalled         ErrorCode = 1569
	ErrCodeQueryMemoryLimit        ErrorCode = 1591
	ErrCodeCursorNotFound          ErrorCode = 1600
	ErrCodeCursorBusy              ErrorCode = 1601
)

// User and graph errors.
const (
	ErrCodeUserDuplicate  ErrorCode = 1702
	ErrCodeUserNotFound   ErrorCode = 1703
	ErrCodeGraphInvalid   ErrorCode = 1901
	ErrCodeGraphNotFound  ErrorCode = 1924
	ErrCodeGraphDuplicate ErrorCode = 1925
)

var errorCodeDescriptions = map[ErrorCode]string{
	ErrCodeNoError:         "no error",
	ErrCodeFailed:          "failed",
	ErrCodeSysError:        "system error",
	ErrCodeOutOfMemory:     "out of memory",
	ErrCodeInternal:        "internal error",
	ErrCodeIllegalNumber:   "illegal number",
	ErrCodeNumericOverflow: "numeric overflow",
	ErrCodeIllegalOption:   "illegal option",
	ErrCodeNotImplemented:  "not implemented",
	ErrCodeBadParameter:    "bad parameter",
	ErrCodeForbidden:       "forbidden",
	ErrCodeTypeError:       "type error",
	ErrCodeLockTimeout:     "lock timeout",
	ErrCodeRequestCanceled: "request canceled",
	ErrCodeFileExists:      "file exists",
	ErrCodeLocked:          "locked",
	ErrCodeDeadlock:        "deadlock detected",
	ErrCodeShuttingDown:    "shutdown in progress",
	ErrCodeOnlyEnterprise:  "only enterprise version",
	ErrCodeResourceLimit:   "resource limit exceeded",

	ErrCodeHTTPBadParameter:     "bad parameter",
	ErrCodeHTTPUnauthorized:     "unauthorized",
	ErrCodeHTTPForbidden:        "forbidden",
	ErrCodeHTTPNotFound:         "not found",
	ErrCodeHTTPMethodNotAllowed: "method not supported",
	ErrCodeHTTPPreconditionFail: "precondition failed",
	ErrCodeHTTPServerError:      "internal server error",
	ErrCodeHTTPServiceUnavail:   "service unavailable",

	ErrCodeArangoIllegalState:           "illegal state",
	ErrCodeArangoReadOnly:               "read only",
	ErrCodeArangoDuplicateIdentifier:    "duplicate identifier",
	ErrCodeArangoCorruptedDatafile:      "corrupted datafile",
	ErrCodeArangoFilesystemFull:         "filesystem full",
	ErrCodeArangoConflict:               "conflict",
	ErrCodeArangoDocumentNotFound:       "document not found",
	ErrCodeArangoCollectionNotFound:     "collection or view not found",
	ErrCodeArangoCollectionParamMissing: "parameter 'collection' not found",
	ErrCodeArangoDocumentHandleBad:      "illegal document handle",
	ErrCodeArangoDuplicateName:          "duplicate name",
	ErrCodeArangoIllegalName:            "illegal name",
	ErrCodeArangoNoIndex:                "no suitable index known",
	ErrCodeArangoUniqueConstraint:       "unique constraint violated",
	ErrCodeArangoIndexNotFound:          "index not found",
	ErrCodeArangoCrossCollectionRequest: "cross collection request not allowed",
	ErrCodeArangoIndexHandleBad:         "illegal index handle",
	ErrCodeArangoDocumentTooLarge:       "document too large",
	ErrCodeArangoCollectionTypeInvalid:  "invalid collection type",
	ErrCodeArangoDocumentKeyBad:         "illegal document key",
	ErrCodeArangoDocumentKeyUnexpected:  "unexpected document key",
	ErrCodeArangoDatabaseNotFound:       "database not found",
	ErrCodeArangoDatabaseNameInvalid:    "database name invalid",
	ErrCodeArangoUseSystemDatabase:      "operation only allowed in system database",
	ErrCodeArangoDocumentKeyMissing:     "missing document key",

	ErrCodeQueryKilled:             "query killed",
	ErrCodeQueryParse:              "query parse error",
	ErrCodeQueryEmpty:              "query is empty",
	ErrCodeQueryScript:             "runtime error in query",
	ErrCodeQueryNumberOutOfRange:   "number out of range",
	ErrCodeQueryVariableNameBad:    "variable name invalid",
	ErrCodeQueryVariableRedeclared: "variable redeclared",
	ErrCodeQueryVariableUnknown:    "unknown variable",
	ErrCodeQueryCollectionLock:     "unable to read-lock collection",
	ErrCodeQueryTooManyCollections: "too many collections",
	ErrCodeQueryFunctionUnknown:    "usage of unknown function",
	ErrCodeQueryBindParamsInvalid:  "invalid structure of bind parameters",
	ErrCodeQueryBindParamMissing:   "no value specified for declared bind parameter",
	ErrCodeQueryBindParamUndefined: "bind parameter not declared in the query",
	ErrCodeQueryBindParamType:      "bind parameter of invalid type used",
	ErrCodeQueryInvalidArithmetic:  "invalid arithmetic value",
	ErrCodeQueryDivisionByZero:     "division by zero",
	ErrCodeQueryArrayExpected:      "array expected",
	ErrCodeQueryFailCalled:         "FAIL(%s) called",
	ErrCodeQueryMemoryLimit:        "memory limit exceeded",
	ErrCodeCursorNotFound:          "cursor not found",
	ErrCodeCursorBusy:              "cursor is busy",

	ErrCodeUserDuplicate:  "duplicate user",
	ErrCodeUserNotFound:   "user not found",
	ErrCodeGraphInvalid:   "invalid graph",
	ErrCodeGraphNotFound:  "graph not found",
	ErrCodeGraphDuplicate: "graph already exists",
}

// Known reports whether the code is part of the known catalogue.
func (c ErrorCode) Known() bool {
	_, ok := errorCodeDescriptions[c]
	return ok
}

// String returns the catalogue description of the code, or "unknown error
// code <n>" for codes outside the catalogue.
func (c ErrorCode) String() string {
	if desc, ok := errorCodeDescriptions[c]; ok {
		return desc
	}
	return "unknown error code " + strconv.Itoa(int(c))
}
