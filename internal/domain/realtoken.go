// Package domain holds the shared value types produced by the data layer.
// Values are immutable once constructed.
package domain

// TokenInfo is the issuer-side description of a RealToken.
type TokenInfo struct {
	ID      string  `json:"id"`
	From    string  `json:"from"`
	Uniswap string  `json:"uniswap"`
	Name    string  `json:"name"`
	Supply  float64 `json:"supply"`
	Value   float64 `json:"value"` // legal value backing the token
}

// BlockchainAddress is the per-network contract record of a RealToken.
type BlockchainAddress struct {
	ChainName              string `json:"chainName"`
	ChainID                int    `json:"chainId"`
	Contract               string `json:"contract"` // lowercase hex, may be empty upstream
	Distributor            string `json:"distributor"`
	Maintenance            string `json:"maintenance"`
	RMMPoolAddress         string `json:"rmmPoolAddress,omitempty"`
	ChainlinkPriceContract string `json:"chainlinkPriceContract,omitempty"`
}

// MarketplacePair identifies the paired token of a secondary-market pool.
type MarketplacePair struct {
	Contract string `json:"contract"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
}

// SecondaryMarketplace is a DEX pool where the token also trades.
type SecondaryMarketplace struct {
	ChainID      int              `json:"chainId"`
	ChainName    string           `json:"chainName"`
	DexName      string           `json:"dexName"`
	ContractPool string           `json:"contractPool"`
	Pair         *MarketplacePair `json:"pair,omitempty"`
}

// ReturnProjection is the projected yield of the underlying property.
type ReturnProjection struct {
	APR      string  `json:"apr"`
	PerYear  float64 `json:"perYear"`
	PerMonth float64 `json:"perMonth"`
	PerDay   float64 `json:"perDay"`
}

// PropertyLocation locates the underlying property.
type PropertyLocation struct {
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Property describes the real-estate asset backing the token.
type Property struct {
	Name      string           `json:"name"`
	ShortName string           `json:"shortName"`
	URL       string           `json:"url"`
	Location  PropertyLocation `json:"location"`
	Images    []string         `json:"images"`
}

// RealToken is one entry of the off-chain token registry, already narrowed
// to the active network: Contract holds the lowercased address of the
// network's deployment and is never empty.
type RealToken struct {
	Token                 TokenInfo              `json:"token"`
	BlockchainAddress     BlockchainAddress      `json:"blockchainAddress"`
	SecondaryMarketplaces []SecondaryMarketplace `json:"secondaryMarketplaces"`
	Return                ReturnProjection       `json:"return"`
	Property              Property               `json:"property"`
}
