package serverutils

import (
	"errors"
	"net/http"
	"testing"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr
}

func TestValidateRequest_CreateFolder(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		err := ValidateRequest(dto.CreateFolderRequest{})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Missing 'name' in request body", appErr.Message)
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(dto.CreateFolderRequest{Name: "Work"}))
	})
}

func TestValidateRequest_CreateNote_FieldOrder(t *testing.T) {
	// The first missing field wins, in declaration order.
	t.Run("all missing reports folder_id", func(t *testing.T) {
		appErr := asAppError(t, ValidateRequest(dto.CreateNoteRequest{}))
		assert.Equal(t, "Missing 'folder_id' in request body", appErr.Message)
	})

	t.Run("folder_id present reports name", func(t *testing.T) {
		appErr := asAppError(t, ValidateRequest(dto.CreateNoteRequest{FolderId: 1}))
		assert.Equal(t, "Missing 'name' in request body", appErr.Message)
	})

	t.Run("content missing reports content", func(t *testing.T) {
		appErr := asAppError(t, ValidateRequest(dto.CreateNoteRequest{FolderId: 1, Name: "Todo"}))
		assert.Equal(t, "Missing 'content' in request body", appErr.Message)
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(dto.CreateNoteRequest{FolderId: 1, Name: "Todo", Content: "Buy milk"}))
	})
}

func TestParseId(t *testing.T) {
	id, ok := ParseId("12")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"abc", "0", "-1", "1.5", "", "99999999999999999999999"} {
		_, ok := ParseId(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
