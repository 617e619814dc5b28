package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtoken-yam/internal/domain"
)

type fakeMetadataFetcher struct {
	calls  atomic.Int32
	tokens []domain.RealToken
	err    error
}

func (f *fakeMetadataFetcher) Tokens(context.Context) ([]domain.RealToken, error) {
	f.calls.Add(1)
	return f.tokens, f.err
}

func metadataToken(contract, name string) domain.RealToken {
	return domain.RealToken{
		Token:             domain.TokenInfo{Name: name},
		BlockchainAddress: domain.BlockchainAddress{Contract: contract},
	}
}

func TestTokenStore_InitOnce(t *testing.T) {
	fetcher := &fakeMetadataFetcher{tokens: []domain.RealToken{
		metadataToken("0xabc1000000000000000000000000000000000001", "A"),
		metadataToken("0xabc2000000000000000000000000000000000002", "B"),
	}}
	store := NewTokenStore(fetcher)

	assert.False(t, store.Ready())
	if _, ok := store.Get("0xabc1000000000000000000000000000000000001"); ok {
		t.Fatal("lookup before init must report absence")
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Init(ctx))
		}()
	}
	wg.Wait()

	// Concurrent and repeated Init calls share one fetch.
	assert.Equal(t, int32(1), fetcher.calls.Load())
	require.NoError(t, store.Init(ctx))
	assert.Equal(t, int32(1), fetcher.calls.Load())

	assert.True(t, store.Ready())
	assert.False(t, store.Loading())
	assert.Len(t, store.List(), 2)
	assert.Equal(t, []string{
		"0xabc1000000000000000000000000000000000001",
		"0xabc2000000000000000000000000000000000002",
	}, store.AddressList())
}

func TestTokenStore_GetCaseInsensitive(t *testing.T) {
	fetcher := &fakeMetadataFetcher{tokens: []domain.RealToken{
		metadataToken("0xabc1000000000000000000000000000000000001", "A"),
	}}
	store := NewTokenStore(fetcher)
	require.NoError(t, store.Init(context.Background()))

	token, ok := store.Get("0xABC1000000000000000000000000000000000001")
	require.True(t, ok)
	assert.Equal(t, "A", token.Token.Name)

	_, ok = store.Get("0xdead000000000000000000000000000000000000")
	assert.False(t, ok)
}

func TestTokenStore_FailureHoldsNoData(t *testing.T) {
	cause := errors.New("feed unreachable")
	fetcher := &fakeMetadataFetcher{err: cause}
	store := NewTokenStore(fetcher)

	err := store.Init(context.Background())
	require.ErrorIs(t, err, cause)

	assert.False(t, store.Ready())
	assert.True(t, store.gate.Settled())
	assert.Empty(t, store.List())

	// Waiters and lookups observe the captured error; no refetch happens.
	require.ErrorIs(t, store.WaitReady(), cause)
	_, _, err = store.GetWhenReady("0xabc1000000000000000000000000000000000001")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestTokenStore_GetWhenReady(t *testing.T) {
	fetcher := &fakeMetadataFetcher{tokens: []domain.RealToken{
		metadataToken("0xabc1000000000000000000000000000000000001", "A"),
	}}
	store := NewTokenStore(fetcher)

	type result struct {
		token *domain.RealToken
		ok    bool
		err   error
	}
	done := make(chan result, 1)
	go func() {
		token, ok, err := store.GetWhenReady("0xABC1000000000000000000000000000000000001")
		done <- result{token, ok, err}
	}()

	require.NoError(t, store.Init(context.Background()))

	r := <-done
	require.NoError(t, r.err)
	require.True(t, r.ok)
	assert.Equal(t, "A", r.token.Token.Name)
}
