// Package yam queries the YAM marketplace subgraph and returns
// decimal-normalized results.
//
// Query text, field names and filter semantics are fixed by the deployed
// subgraph schema and must not be altered. Transport errors propagate
// unchanged to the caller; builders perform no retry.
package yam

import (
	"context"
	"net/http"
	"time"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/chain"
)

// DefaultTimeout bounds a single subgraph request.
const DefaultTimeout = 30 * time.Second

// BatchSize is the maximum number of addresses sent per tokens request.
const BatchSize = 500

// runner executes one GraphQL request and decodes the response into resp.
// It matches *graphql.Client.
type runner interface {
	Run(ctx context.Context, req *graphql.Request, resp interface{}) error
}

// Client exposes the subgraph query operations for one network.
type Client struct {
	gql        runner
	network    *chain.Network
	httpClient *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithRunner replaces the GraphQL transport. Used by tests.
func WithRunner(r runner) Option {
	return func(c *Client) {
		c.gql = r
	}
}

// WithHTTPClient sets a custom http.Client on the transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a subgraph client bound to the network's indexing endpoint.
func New(network *chain.Network, opts ...Option) *Client {
	c := &Client{network: network}
	for _, opt := range opts {
		opt(c)
	}
	if c.gql == nil {
		if c.httpClient == nil {
			c.httpClient = &http.Client{Timeout: DefaultTimeout}
		}
		c.gql = graphql.NewClient(network.SubgraphEndpoint, graphql.WithHTTPClient(c.httpClient))
	}
	return c
}

// chunk splits items into slices of at most size elements, preserving order.
func chunk(items []string, size int) [][]string {
	var out [][]string
	for len(items) > size {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
