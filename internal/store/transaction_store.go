package store

import (
	"context"
	"fmt"
	"sync"

	"realtoken-yam/internal/domain"
)

// TransactionFetcher retrieves the recent marketplace trade list.
// Implemented by yam.Client.
type TransactionFetcher interface {
	Transactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionStore caches the recent marketplace trade list behind a
// readiness gate, with the same single-load semantics as TokenStore.
type TransactionStore struct {
	fetcher TransactionFetcher
	gate    *Gate
	init    sync.Once

	mu           sync.RWMutex
	loading      bool
	transactions []domain.Transaction
}

// NewTransactionStore creates an uninitialized store. Call Init to load.
func NewTransactionStore(fetcher TransactionFetcher) *TransactionStore {
	return &TransactionStore{
		fetcher: fetcher,
		gate:    NewGate(),
	}
}

// Init loads the trade list on first call and returns the load outcome.
// Subsequent calls wait for the single in-flight load.
func (s *TransactionStore) Init(ctx context.Context) error {
	s.init.Do(func() { s.load(ctx) })
	return s.gate.Wait()
}

func (s *TransactionStore) load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	transactions, err := s.fetcher.Transactions(ctx)
	if err != nil {
		s.gate.Settle(fmt.Errorf("load transactions: %w", err))
		return
	}

	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()

	s.gate.Settle(nil)
}

func (s *TransactionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether the initial load is in flight.
func (s *TransactionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Ready reports whether the store loaded successfully.
func (s *TransactionStore) Ready() bool {
	return s.gate.Ready()
}

// WaitReady blocks until the load settles. Returns nil on success or the
// captured load error.
func (s *TransactionStore) WaitReady() error {
	return s.gate.Wait()
}

// List returns the cached trades, newest first.
func (s *TransactionStore) List() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
