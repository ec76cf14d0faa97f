package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("manager access only")
	mapped := ToDomainError(original)

	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
	assert.Equal(t, "manager access only", mapped.Message)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))

	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorContains(t, mapped, "boom")
}

func TestToDomainErrorMapsNoDocuments(t *testing.T) {
	mapped := ToDomainError(mongo.ErrNoDocuments)

	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorMapsDuplicateKey(t *testing.T) {
	mapped := ToDomainError(mongo.CommandError{Code: 11000, Message: "duplicate key"})

	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestConflictUses400(t *testing.T) {
	mapped := ToDomainError(NewConflict("User already exists", nil))

	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}
