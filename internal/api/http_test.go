package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-client/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewHTTPClient(server.URL, "test-token", 5*time.Second), server
}

func TestHTTPClient_ListOwnedWallets(t *testing.T) {
	want := []models.Wallet{{
		ID:       uuid.New(),
		Name:     "Cash",
		Currency: "VND",
		Balance:  decimal.NewFromInt(500000),
	}}

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/wallets", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(want)
	})
	defer server.Close()

	wallets, err := client.ListOwnedWallets(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, want[0].ID, wallets[0].ID)
	assert.True(t, wallets[0].Balance.Equal(want[0].Balance))
}

func TestHTTPClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"forbidden", http.StatusForbidden, ErrPermissionDenied},
		{"unauthorized", http.StatusUnauthorized, ErrPermissionDenied},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrTransient},
		{"bad gateway", http.StatusBadGateway, ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			defer server.Close()

			_, err := client.GetWallet(context.Background(), uuid.New())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPClient_FieldValidationPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": map[string]string{"amount": "must be positive"},
		})
	})
	defer server.Close()

	_, err := client.CreateTransaction(context.Background(), TransactionDraft{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be positive", verr.Fields["amount"])
}

func TestHTTPClient_TransportFailureIsTransient(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // connection refused from here on

	_, err := client.ListOwnedWallets(context.Background())
	assert.ErrorIs(t, err, ErrTransient)
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.ListOwnedWallets(ctx)
	assert.Error(t, err)
}

func TestHTTPClient_ListTransactionsFilter(t *testing.T) {
	walletID := uuid.New()
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, walletID.String(), r.URL.Query().Get("walletId"))
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		_ = json.NewEncoder(w).Encode([]models.Transaction{})
	})
	defer server.Close()

	_, err := client.ListTransactions(context.Background(), TransactionFilter{
		WalletID: &walletID,
		From:     time.Now().AddDate(0, -1, 0),
	})
	require.NoError(t, err)
}
