// Package registry fetches the off-chain RealToken registry feed and
// narrows it to the active network.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"realtoken-yam/internal/chain"
	"realtoken-yam/internal/domain"
)

// DefaultBaseURL hosts the static registry feed.
const DefaultBaseURL = "https://portfolio.realt-dashboard.co"

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 30 * time.Second

const tokensPath = "/realt.min.json"

// Client retrieves the token registry for one network.
type Client struct {
	baseURL string
	client  *http.Client
	network *chain.Network
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the feed host. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a registry client bound to network.
func New(network *chain.Network, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		network: network,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tokenRecord is the raw feed entry carrying one sub-record per network.
type tokenRecord struct {
	Token                 domain.TokenInfo                    `json:"token"`
	BlockchainAddresses   map[string]domain.BlockchainAddress `json:"blockchainAddresses"`
	SecondaryMarketplaces []domain.SecondaryMarketplace       `json:"secondaryMarketplaces"`
	Return                domain.ReturnProjection             `json:"return"`
	Property              domain.Property                     `json:"property"`
}

// Tokens fetches the full registry feed and selects each record's
// sub-record for the active network. Contract addresses are lowercased;
// records with no contract on this network are dropped.
func (c *Client) Tokens(ctx context.Context) ([]domain.RealToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tokensPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch token registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("token registry: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var records []tokenRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode token registry: %w", err)
	}

	var out []domain.RealToken
	for _, rec := range records {
		addr := rec.BlockchainAddresses[string(c.network.Name)]
		if addr.Contract == "" {
			continue
		}
		addr.Contract = strings.ToLower(addr.Contract)
		out = append(out, domain.RealToken{
			Token:                 rec.Token,
			BlockchainAddress:     addr,
			SecondaryMarketplaces: rec.SecondaryMarketplaces,
			Return:                rec.Return,
			Property:              rec.Property,
		})
	}
	return out, nil
}
