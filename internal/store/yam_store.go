package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"realtoken-yam/internal/domain"
)

// TradingFetcher retrieves trading summaries for a set of token addresses.
// Implemented by yam.Client.
type TradingFetcher interface {
	Tokens(ctx context.Context, addresses []string) ([]domain.YamToken, error)
}

// YamStore joins the token registry with marketplace trading summaries,
// keyed by lowercased contract address. It depends on a TokenStore: its
// load waits for the registry, fetches summaries for the registry's
// addresses, then left-joins them — registry entries without trading data
// are kept with a nil summary.
type YamStore struct {
	metadata *TokenStore
	fetcher  TradingFetcher
	gate     *Gate
	init     sync.Once

	mu      sync.RWMutex
	loading bool
	tokens  []domain.JoinedToken
	byAddr  map[string]*domain.JoinedToken
}

// NewYamStore creates an uninitialized joined store over metadata.
func NewYamStore(metadata *TokenStore, fetcher TradingFetcher) *YamStore {
	return &YamStore{
		metadata: metadata,
		fetcher:  fetcher,
		gate:     NewGate(),
	}
}

// Init loads and joins on first call and returns the outcome. Subsequent
// calls wait for the single in-flight load. The caller is responsible for
// initializing the dependency store; Init blocks until it settles.
func (s *YamStore) Init(ctx context.Context) error {
	s.init.Do(func() { s.load(ctx) })
	return s.gate.Wait()
}

func (s *YamStore) load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.metadata.WaitReady(); err != nil {
		s.gate.Settle(fmt.Errorf("token registry: %w", err))
		return
	}

	yamTokens, err := s.fetcher.Tokens(ctx, s.metadata.AddressList())
	if err != nil {
		s.gate.Settle(fmt.Errorf("load trading summaries: %w", err))
		return
	}

	byYamAddr := make(map[string]*domain.YamToken, len(yamTokens))
	for i := range yamTokens {
		byYamAddr[strings.ToLower(yamTokens[i].Address)] = &yamTokens[i]
	}

	metadata := s.metadata.List()
	joined := make([]domain.JoinedToken, 0, len(metadata))
	byAddr := make(map[string]*domain.JoinedToken, len(metadata))
	for _, t := range metadata {
		joined = append(joined, domain.JoinedToken{
			RealToken: t,
			Trading:   byYamAddr[t.BlockchainAddress.Contract],
		})
	}
	for i := range joined {
		byAddr[joined[i].BlockchainAddress.Contract] = &joined[i]
	}

	s.mu.Lock()
	s.tokens = joined
	s.byAddr = byAddr
	s.mu.Unlock()

	s.gate.Settle(nil)
}

func (s *YamStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether the initial load is in flight.
func (s *YamStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Ready reports whether the store loaded and joined successfully.
func (s *YamStore) Ready() bool {
	return s.gate.Ready()
}

// WaitReady blocks until the load settles. Returns nil on success or the
// captured load error.
func (s *YamStore) WaitReady() error {
	return s.gate.Wait()
}

// List returns the cached joined entries.
func (s *YamStore) List() []domain.JoinedToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.JoinedToken, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// AddressList returns the contract address of every cached entry.
func (s *YamStore) AddressList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tokens))
	for i := range s.tokens {
		out = append(out, s.tokens[i].BlockchainAddress.Contract)
	}
	return out
}

// Get looks up a joined token by contract address, case-insensitively.
// Safe to call before the store is ready: it reports absence rather than
// blocking.
func (s *YamStore) Get(address string) (*domain.JoinedToken, bool) {
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
func (s *YamStore) GetWhenReady(address string) (*domain.JoinedToken, bool, error) {
	if err := s.gate.Wait(); err != nil {
		return nil, false, err
	}
	t, ok := s.Get(address)
	return t, ok, nil
}
