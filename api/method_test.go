package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "create", OperationCreate.String())
	assert.Equal(t, "read", OperationRead.String())
	assert.Equal(t, "modify", OperationModify.String())
	assert.Equal(t, "replace", OperationReplace.String())
	assert.Equal(t, "delete", OperationDelete.String())
	assert.Equal(t, "read-header", OperationReadHeader.String())
}

func TestMethodSpec_ImplementsMethod(t *testing.T) {
	var params Parameters
	params.Add("details", Bool(true))
	spec := MethodSpec{
		Op:        OperationRead,
		PathValue: "/_api/version",
		Params:    params,
		Return:    ReturnType{ResultField: "result", CodeField: "code"},
	}

	var m Method = spec
	assert.Equal(t, OperationRead, m.Operation())
	assert.Equal(t, "/_api/version", m.Path())
	assert.Equal(t, 1, m.Parameters().Len())
	assert.True(t, m.Header().IsEmpty())
	assert.Nil(t, m.Content())
	assert.Equal(t, "result", m.ReturnType().ResultField)
}

func TestError_Message(t *testing.T) {
	err := NewError(404, ErrCodeArangoDocumentNotFound, "document not found")
	assert.Contains(t, err.Error(), "1202")
	assert.Contains(t, err.Error(), "document not found")
}

func TestErrorCode_Known(t *testing.T) {
	assert.True(t, ErrCodeCursorNotFound.Known())
	assert.False(t, ErrorCode(99999).Known())
	assert.Equal(t, "cursor not found", ErrCodeCursorNotFound.String())
}
