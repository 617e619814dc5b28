package yam

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/chain"
)

// fakeRunner records every request and answers through respond. Safe for
// the concurrent batch fan-out.
type fakeRunner struct {
	mu       sync.Mutex
	requests []*graphql.Request
	respond  func(req *graphql.Request, resp interface{}) error
}

func (f *fakeRunner) Run(_ context.Context, req *graphql.Request, resp interface{}) error {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req, resp)
}

func (f *fakeRunner) calls() []*graphql.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*graphql.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// respondJSON decodes a canned response body into resp.
func respondJSON(payload string) func(req *graphql.Request, resp interface{}) error {
	return func(_ *graphql.Request, resp interface{}) error {
		return json.Unmarshal([]byte(payload), resp)
	}
}

func goerli(t *testing.T) *chain.Network {
	t.Helper()
	network, err := chain.Select(5)
	if err != nil {
		t.Fatalf("select goerli: %v", err)
	}
	return network
}

func newTestClient(t *testing.T, r runner) *Client {
	t.Helper()
	return New(goerli(t), WithRunner(r))
}

func TestChunk(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	batches := chunk(items, 2)
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[2]) != 1 || batches[2][0] != "e" {
		t.Errorf("expected trailing batch [e], got %v", batches[2])
	}

	if got := chunk(nil, 2); len(got) != 0 {
		t.Errorf("expected no batches for empty input, got %v", got)
	}
}
