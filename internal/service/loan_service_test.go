package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/loanlink-service/internal/domain"
)

func TestLoanCreateDefaults(t *testing.T) {
	svc := NewLoanService(&fakeLoanRepo{})

	doc, err := svc.Create(context.Background(), map[string]any{
		"amount":     10000,
		"termMonths": 12,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LoanStatusDefault, doc[domain.FieldStatus])
	assert.NotNil(t, doc[domain.FieldCreatedAt])
	assert.Equal(t, 10000, doc["amount"])

	// A caller-supplied status is kept as-is; loans have no status enum.
	doc, err = svc.Create(context.Background(), map[string]any{"status": "funded"})
	require.NoError(t, err)
	assert.Equal(t, "funded", doc[domain.FieldStatus])
}

func TestLoanListNewestFirstWithLimit(t *testing.T) {
	svc := NewLoanService(&fakeLoanRepo{})

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), map[string]any{"label": name})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	capped, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestLoanGet(t *testing.T) {
	svc := NewLoanService(&fakeLoanRepo{})

	created, err := svc.Create(context.Background(), map[string]any{"amount": 500})
	require.NoError(t, err)
	id := created["_id"].(primitive.ObjectID)

	loan, err := svc.Get(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, 500, loan["amount"])

	// Absent loans come back as nil without an error.
	loan, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, loan)

	_, err = svc.Get(context.Background(), "not-an-id")
	assert.Equal(t, "INVALID_INPUT", domainErr(t, err).Code)
}

func TestLoanDelete(t *testing.T) {
	svc := NewLoanService(&fakeLoanRepo{})

	created, err := svc.Create(context.Background(), map[string]any{"amount": 500})
	require.NoError(t, err)
	id := created["_id"].(primitive.ObjectID)

	deleted, err := svc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = svc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)

	_, err = svc.Delete(context.Background(), "not-an-id")
	assert.Equal(t, "INVALID_INPUT", domainErr(t, err).Code)
}
