package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{
			name:       "unique violation becomes conflict",
			cause:      errors.New(`ERROR: duplicate key value violates unique constraint "idx_blogs_slug" (SQLSTATE 23505)`),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "foreign key violation becomes bad request",
			cause:      errors.New(`ERROR: insert or update on table "blog_tags" violates foreign key constraint (SQLSTATE 23503)`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing record becomes not found",
			cause:      errors.New("record not found"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "connection failure becomes service unavailable",
			cause:      errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "anything else stays internal",
			cause:      errors.New("syntax error at or near SELECT"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "nil cause stays internal",
			cause:      nil,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "blog", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
			assert.Equal(t, tt.cause, err.Cause)
		})
	}
}

func TestNewAlreadyExistsUnwrapsToSentinel(t *testing.T) {
	err := NewAlreadyExists("admin")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.Contains(t, err.Error(), "admin")
}

func TestNewNotFoundUnwrapsToSentinel(t *testing.T) {
	err := NewNotFound("blog")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, IsNotFound(err))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusOf(NewAlreadyExists("tag")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := errors.New("connection reset by peer")
	err := NewDatabaseError("find", "blog", inner)

	full := err.GetFullError()
	require.Contains(t, full, "connection reset by peer")
	assert.Contains(t, full, "->")
}
