package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "missing")
	assert.Equal(t, NotFound, KindOf(err))
	assert.Equal(t, Internal, KindOf(errors.New("raw")))
	assert.Equal(t, Internal, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(Internal, cause, "upload failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Internal, KindOf(err))
}

func TestMessageOfHidesUnclassified(t *testing.T) {
	assert.Equal(t, "missing", MessageOf(New(NotFound, "missing")))
	// Raw errors must not leak internals to clients.
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: connection refused")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized))
	assert.Equal(t, http.StatusForbidden, Status(Forbidden))
	assert.Equal(t, http.StatusNotFound, Status(NotFound))
	assert.Equal(t, http.StatusConflict, Status(Conflict))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal))
}
