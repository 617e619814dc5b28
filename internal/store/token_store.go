package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"realtoken-yam/internal/domain"
)

// MetadataFetcher retrieves the token registry for the active network.
// Implemented by registry.Client.
type MetadataFetcher interface {
	Tokens(ctx context.Context) ([]domain.RealToken, error)
}

// TokenStore caches the off-chain token registry. Exactly one load runs
// per instance, started by the first Init call; lookups never trigger a
// fetch. On load failure the store holds no data and every waiter receives
// the captured error.
type TokenStore struct {
	fetcher MetadataFetcher
	gate    *Gate
	init    sync.Once

	mu      sync.RWMutex
	loading bool
	tokens  []domain.RealToken
	byAddr  map[string]*domain.RealToken
}

// NewTokenStore creates an uninitialized store. Call Init to load.
func NewTokenStore(fetcher MetadataFetcher) *TokenStore {
	return &TokenStore{
		fetcher: fetcher,
		gate:    NewGate(),
	}
}

// Init loads the registry on first call and returns the load outcome.
// Subsequent calls do not refetch; they wait for the in-flight load and
// return the same outcome.
func (s *TokenStore) Init(ctx context.Context) error {
	s.init.Do(func() { s.load(ctx) })
	return s.gate.Wait()
}

func (s *TokenStore) load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	tokens, err := s.fetcher.Tokens(ctx)
	if err != nil {
		s.gate.Settle(fmt.Errorf("load token registry: %w", err))
		return
	}

	byAddr := make(map[string]*domain.RealToken, len(tokens))
	for i := range tokens {
		byAddr[tokens[i].BlockchainAddress.Contract] = &tokens[i]
	}

	s.mu.Lock()
	s.tokens = tokens
	s.byAddr = byAddr
	s.mu.Unlock()

	s.gate.Settle(nil)
}

func (s *TokenStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether the initial load is in flight.
func (s *TokenStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Ready reports whether the store loaded successfully.
func (s *TokenStore) Ready() bool {
	return s.gate.Ready()
}

// WaitReady blocks until the load settles. Returns nil on success or the
// captured load error.
func (s *TokenStore) WaitReady() error {
	return s.gate.Wait()
}

// List returns the cached registry entries.
func (s *TokenStore) List() []domain.RealToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RealToken, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// AddressList returns the contract address of every cached entry.
func (s *TokenStore) AddressList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tokens))
	for i := range s.tokens {
		out = append(out, s.tokens[i].BlockchainAddress.Contract)
	}
	return out
}

// Get looks up a token by contract address, case-insensitively. Safe to
// call before the store is ready: it reports absence rather than blocking.
func (s *TokenStore) Get(address string) (*domain.RealToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byAddr[strings.ToLower(address)]
	if !ok {
		return nil, false
	}
	tokenCopy := *t
	return &tokenCopy, true
}

// GetWhenReady waits for the store to settle, then looks up address. The
// error is the load error when the store failed.
func (s *TokenStore) GetWhenReady(address string) (*domain.RealToken, bool, error) {
	if err := s.gate.Wait(); err != nil {
		return nil, false, err
	}
	t, ok := s.Get(address)
	return t, ok, nil
}
