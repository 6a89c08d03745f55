package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{kind: Internal, status: http.StatusInternalServerError},
		{kind: BadRequest, status: http.StatusBadRequest},
		{kind: Unauthorized, status: http.StatusUnauthorized},
		{kind: Forbidden, status: http.StatusForbidden},
		{kind: NotFound, status: http.StatusNotFound},
		{kind: Conflict, status: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestErrorMessageAndCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(Conflict, "Email or username already exists.", cause)

	assert.Equal(t, "Email or username already exists.: duplicate key value violates unique constraint", err.Error())
	assert.Equal(t, "Email or username already exists.", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestNewHasNoCause(t *testing.T) {
	err := New(NotFound, "Todo not found")

	assert.Equal(t, "Todo not found", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestFrom_PassesTaxonomyErrorsThrough(t *testing.T) {
	original := New(NotFound, "Post not found")

	classified := From(fmt.Errorf("get post: %w", original))

	require.Same(t, original, classified)
	assert.Equal(t, http.StatusNotFound, classified.Status())
}

func TestFrom_MasksUnknownErrors(t *testing.T) {
	cause := errors.New("pq: connection refused")

	classified := From(cause)

	assert.Equal(t, Internal, classified.Kind)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), classified.Message)
	assert.ErrorIs(t, classified, cause)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("login: %w", New(Unauthorized, "Invalid credentials."))

	assert.True(t, IsKind(err, Unauthorized))
	assert.False(t, IsKind(err, NotFound))
	assert.False(t, IsKind(errors.New("plain"), Internal))
}
