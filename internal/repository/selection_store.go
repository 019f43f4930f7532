// Package repository persists small pieces of client state. The only
// durable key today is the selected wallet id, which must survive
// restarts so wallet selection stays sticky across sessions.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const selectedWalletKey = "selected_wallet"

var ErrMalformedValue = errors.New("malformed stored value")

// SelectionStore keeps the sticky wallet selection in a client_settings
// table.
type SelectionStore struct {
	db *sql.DB
}

func NewSelectionStore(db *sql.DB) *SelectionStore {
	return &SelectionStore{
		db: db,
	}
}

func (s *SelectionStore) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS client_settings (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL,
					updated_at TIMESTAMP NOT NULL
				)`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Load returns the persisted wallet id. The second return is false when
// no selection has been stored yet.
func (s *SelectionStore) Load(ctx context.Context) (uuid.UUID, bool, error) {
	query := `SELECT value FROM client_settings WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, selectedWalletKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("%w: %q", ErrMalformedValue, value)
	}
	return id, true, nil
}

func (s *SelectionStore) Save(ctx context.Context, id uuid.UUID) error {
	query := `INSERT INTO client_settings (key, value, updated_at)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3`

	_, err := s.db.ExecContext(ctx, query, selectedWalletKey, id.String(), time.Now())
	return err
}

func (s *SelectionStore) Clear(ctx context.Context) error {
	query := `DELETE FROM client_settings WHERE key = $1`
	_, err := s.db.ExecContext(ctx, query, selectedWalletKey)
	return err
}
