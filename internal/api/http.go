package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-client/internal/models"
	"wallet-client/internal/transfer"

	"github.com/google/uuid"
)

// HTTPClient implements Client over REST/JSON. It performs no retries:
// retry policy lives with the caller, not here.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListOwnedWallets(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := c.do(ctx, http.MethodGet, "/api/v1/wallets", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *HTTPClient) ListSharedWallets(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := c.do(ctx, http.MethodGet, "/api/v1/wallets/shared", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *HTTPClient) GetWallet(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/wallets/"+id.String(), nil, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error) {
	txn := &models.Transaction{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions", draft, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (c *HTTPClient) UpdateTransaction(ctx context.Context, id uuid.UUID, draft TransactionDraft) (*models.Transaction, error) {
	txn := &models.Transaction{}
	if err := c.do(ctx, http.MethodPut, "/api/v1/transactions/"+id.String(), draft, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (c *HTTPClient) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/transactions/"+id.String(), nil, nil)
}

func (c *HTTPClient) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	query := url.Values{}
	if filter.WalletID != nil {
		query.Set("walletId", filter.WalletID.String())
	}
	if filter.CategoryID != nil {
		query.Set("categoryId", filter.CategoryID.String())
	}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.Format(time.RFC3339))
	}
	path := "/api/v1/transactions"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var txns []models.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (c *HTTPClient) CreateTransfer(ctx context.Context, cmd transfer.Command) (*TransferReceipt, error) {
	receipt := &TransferReceipt{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/transfers", cmd, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, draft CategoryDraft) (*models.Category, error) {
	category := &models.Category{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/categories", draft, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id uuid.UUID, draft CategoryDraft) (*models.Category, error) {
	category := &models.Category{}
	if err := c.do(ctx, http.MethodPut, "/api/v1/categories/"+id.String(), draft, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/categories/"+id.String(), nil, nil)
}

func (c *HTTPClient) CreateShareInvitation(ctx context.Context, invitation ShareInvitation) (*models.WalletShare, error) {
	share := &models.WalletShare{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/shares", invitation, share); err != nil {
		return nil, err
	}
	return share, nil
}

func (c *HTTPClient) AcceptInvitation(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return c.do(ctx, http.MethodPost, "/api/v1/shares/accept", body, nil)
}

func (c *HTTPClient) RejectInvitation(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return c.do(ctx, http.MethodPost, "/api/v1/shares/reject", body, nil)
}

func (c *HTTPClient) RevokeShare(ctx context.Context, shareID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/shares/"+shareID.String(), nil, nil)
}

func (c *HTTPClient) UpdateSharePermission(ctx context.Context, shareID uuid.UUID, level models.PermissionLevel) (*models.WalletShare, error) {
	body := map[string]models.PermissionLevel{"permission": level}
	share := &models.WalletShare{}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/shares/"+shareID.String(), body, share); err != nil {
		return nil, err
	}
	return share, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response body: %v", ErrTransient, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrPermissionDenied, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrTransient, resp.StatusCode)
	default:
		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && len(payload.Errors) > 0 {
			return &ValidationError{Fields: payload.Errors}
		}
		return &ValidationError{Fields: map[string]string{"request": fmt.Sprintf("rejected with status %d", resp.StatusCode)}}
	}
}
