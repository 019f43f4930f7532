// Package aggregator merges the wallets the actor owns with the wallets
// shared with them into one deduplicated, stably ordered set, and keeps
// the "currently selected" wallet sticky across sessions.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"wallet-client/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// WalletSource lists the two disjoint collections a refresh merges.
// ListSharedWallets must return ACCEPTED shares only.
type WalletSource interface {
	ListOwnedWallets(ctx context.Context) ([]models.Wallet, error)
	ListSharedWallets(ctx context.Context) ([]models.Wallet, error)
}

// SelectionStore persists the selected wallet id across sessions. The
// aggregator takes the capability rather than reaching for any global
// storage, so behavior is testable with an in-memory store.
type SelectionStore interface {
	Load(ctx context.Context) (uuid.UUID, bool, error)
	Save(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

var ErrUnknownWallet = fmt.Errorf("wallet is not in the merged set")

// WalletAggregator holds the merged wallet set and the current selection.
// Refreshes may overlap with explicit selections; a selection always wins
// over any refresh that was already in flight when the user acted. The
// selection intent counter is the only ordering discipline.
type WalletAggregator struct {
	source WalletSource
	store  SelectionStore
	log    *slog.Logger

	mu      sync.Mutex
	wallets []models.Wallet
	current *models.Wallet
	intent  uint64
}

func New(source WalletSource, store SelectionStore, log *slog.Logger) *WalletAggregator {
	return &WalletAggregator{
		source: source,
		store:  store,
		log:    log,
	}
}

// Refresh fetches owned and shared wallets in parallel, merges them, and
// re-derives the current selection. If the user selected a wallet while
// this refresh was in flight, that selection is kept.
func (a *WalletAggregator) Refresh(ctx context.Context) error {
	op := "aggregator.Refresh"
	log := a.log.With(slog.String("op", op))

	a.mu.Lock()
	startIntent := a.intent
	a.mu.Unlock()

	persistedID, hasPersisted, err := a.store.Load(ctx)
	if err != nil {
		log.Error("failed to load persisted selection", slog.String("error", err.Error()))
		return fmt.Errorf("failed to load persisted selection: %w", err)
	}

	var owned, shared []models.Wallet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = a.source.ListOwnedWallets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		shared, err = a.source.ListSharedWallets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to fetch wallets", slog.String("error", err.Error()))
		return fmt.Errorf("failed to fetch wallets: %w", err)
	}

	merged := merge(owned, shared)

	a.mu.Lock()
	a.wallets = merged

	desiredID := uuid.Nil
	switch {
	case a.current != nil:
		desiredID = a.current.ID
	case hasPersisted:
		desiredID = persistedID
	}

	selected, fellBack := resolve(merged, desiredID)
	if fellBack && a.intent != startIntent && a.current != nil {
		// The user picked a wallet after this refresh started, and this
		// refresh's snapshot does not contain it. The explicit selection
		// is newer than the snapshot, so it wins; the next refresh
		// reconciles.
		selected = a.current
		fellBack = false
	}
	a.current = selected
	a.mu.Unlock()

	switch {
	case selected == nil:
		if err := a.store.Clear(ctx); err != nil {
			log.Warn("failed to clear persisted selection", slog.String("error", err.Error()))
		}
		log.Info("refresh complete, no wallets available")
	case fellBack:
		if err := a.store.Save(ctx, selected.ID); err != nil {
			log.Warn("failed to persist fallback selection", slog.String("error", err.Error()))
		}
		log.Info("refresh complete, selection fell back",
			slog.String("wallet_id", selected.ID.String()),
			slog.Int("wallets", len(merged)))
	default:
		log.Info("refresh complete",
			slog.String("wallet_id", selected.ID.String()),
			slog.Int("wallets", len(merged)))
	}

	return nil
}

// Select makes the wallet with the given id current and persists the
// choice. It bumps the intent counter so any refresh already in flight
// cannot override it.
func (a *WalletAggregator) Select(ctx context.Context, id uuid.UUID) error {
	op := "aggregator.Select"
	log := a.log.With(slog.String("op", op), slog.String("wallet_id", id.String()))

	a.mu.Lock()
	a.intent++
	found := false
	for i := range a.wallets {
		if a.wallets[i].ID == id {
			w := a.wallets[i]
			a.current = &w
			found = true
			break
		}
	}
	a.mu.Unlock()

	if !found {
		log.Warn("selection rejected, wallet not in merged set")
		return ErrUnknownWallet
	}

	if err := a.store.Save(ctx, id); err != nil {
		log.Warn("failed to persist selection", slog.String("error", err.Error()))
	}
	log.Info("wallet selected")
	return nil
}

// Current returns a copy of the selected wallet, or nil when there is no
// wallet context. Callers treat nil as "no wallet", not as an error.
func (a *WalletAggregator) Current() *models.Wallet {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	w := *a.current
	return &w
}

// Wallets returns the merged set in its stable order.
func (a *WalletAggregator) Wallets() []models.Wallet {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Wallet, len(a.wallets))
	copy(out, a.wallets)
	return out
}

// Wallet looks up a wallet by id in the merged set.
func (a *WalletAggregator) Wallet(id uuid.UUID) (models.Wallet, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, w := range a.wallets {
		if w.ID == id {
			return w, true
		}
	}
	return models.Wallet{}, false
}

// Snapshot returns the merged set keyed by id, for validators.
func (a *WalletAggregator) Snapshot() map[uuid.UUID]models.Wallet {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[uuid.UUID]models.Wallet, len(a.wallets))
	for _, w := range a.wallets {
		out[w.ID] = w
	}
	return out
}

// merge deduplicates by wallet id, owned entries first. A shared row for
// an id already present only backfills sharing metadata; it never
// overwrites the owned entry.
func merge(owned, shared []models.Wallet) []models.Wallet {
	out := make([]models.Wallet, 0, len(owned)+len(shared))
	index := make(map[uuid.UUID]int, len(owned)+len(shared))

	for _, w := range owned {
		if _, dup := index[w.ID]; dup {
			continue
		}
		index[w.ID] = len(out)
		out = append(out, w)
	}
	for _, w := range shared {
		if i, dup := index[w.ID]; dup {
			if out[i].Sharing == nil {
				out[i].Sharing = w.Sharing
			}
			continue
		}
		index[w.ID] = len(out)
		out = append(out, w)
	}
	return out
}

// resolve finds desiredID in the merged set, falling back to the first
// wallet when the id is absent. The second return reports a fallback the
// caller must persist.
func resolve(merged []models.Wallet, desiredID uuid.UUID) (*models.Wallet, bool) {
	if len(merged) == 0 {
		return nil, false
	}
	if desiredID != uuid.Nil {
		for i := range merged {
			if merged[i].ID == desiredID {
				w := merged[i]
				return &w, false
			}
		}
	}
	w := merged[0]
	return &w, true
}
