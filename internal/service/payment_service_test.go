package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	client := &fakeCheckoutClient{sessionID: "cs_test_123"}
	svc := NewPaymentService(client)

	sessionID, err := svc.CreateCheckoutSession(context.Background(), "L1", "a@x.com", 500)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sessionID)
	assert.Equal(t, "L1", client.lastParams.LoanID)
	assert.Equal(t, "a@x.com", client.lastParams.UserEmail)
	assert.EqualValues(t, 500, client.lastParams.Amount)
}

func TestCreateCheckoutSessionProviderFault(t *testing.T) {
	client := &fakeCheckoutClient{err: errors.New("provider unavailable")}
	svc := NewPaymentService(client)

	_, err := svc.CreateCheckoutSession(context.Background(), "L1", "a@x.com", 500)
	de := domainErr(t, err)
	assert.Equal(t, "PAYMENT_PROVIDER_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
}

func TestCreateCheckoutSessionRejectsNonPositiveAmount(t *testing.T) {
	client := &fakeCheckoutClient{sessionID: "cs_test_123"}
	svc := NewPaymentService(client)

	_, err := svc.CreateCheckoutSession(context.Background(), "L1", "a@x.com", 0)
	assert.Equal(t, "INVALID_INPUT", domainErr(t, err).Code)

	_, err = svc.CreateCheckoutSession(context.Background(), "L1", "a@x.com", -5)
	assert.Equal(t, "INVALID_INPUT", domainErr(t, err).Code)
}
