package domain

// TokenLeg is one side of a trade with its decoding metadata.
type TokenLeg struct {
	Address  string `json:"address"`
	Name     string `json:"name,omitempty"`
	Decimals int    `json:"decimals"`
}

// Transaction is one marketplace trade with both legs resolved.
type Transaction struct {
	ID             string          `json:"id"`
	Type           TransactionType `json:"type"`
	OfferID        string          `json:"offerId"`
	Maker          string          `json:"maker"`
	Taker          string          `json:"taker"`
	OfferToken     TokenLeg        `json:"offerToken"`
	BuyerToken     TokenLeg        `json:"buyerToken"`
	Price          float64         `json:"price"`
	Quantity       float64         `json:"quantity"`
	CreatedAt      int64           `json:"createdAt"`      // unix seconds
	OfferCreatedAt int64           `json:"offerCreatedAt"` // unix seconds
}

// TokenTransaction is one trade scoped to a single token.
type TokenTransaction struct {
	ID             string  `json:"id"`
	OfferID        string  `json:"offerId"`
	Maker          string  `json:"maker"`
	Taker          string  `json:"taker"`
	BuyerToken     string  `json:"buyerToken"`
	Price          float64 `json:"price"`
	Quantity       float64 `json:"quantity"`
	CreatedAt      int64   `json:"createdAt"`
	OfferCreatedAt int64   `json:"offerCreatedAt"`
}

// Purchase is one trade where the account was the buyer.
type Purchase struct {
	ID             string  `json:"id"`
	OfferID        string  `json:"offerId"`
	Maker          string  `json:"maker"`
	OfferToken     string  `json:"offerToken"`
	BuyerToken     string  `json:"buyerToken"`
	Price          float64 `json:"price"`
	Quantity       float64 `json:"quantity"`
	CreatedAt      int64   `json:"createdAt"`
	OfferCreatedAt int64   `json:"offerCreatedAt"`
}

// Sale is one trade where the account was the seller.
type Sale struct {
	ID             string  `json:"id"`
	OfferID        string  `json:"offerId"`
	Taker          string  `json:"taker"`
	OfferToken     string  `json:"offerToken"`
	BuyerToken     string  `json:"buyerToken"`
	Price          float64 `json:"price"`
	Quantity       float64 `json:"quantity"`
	CreatedAt      int64   `json:"createdAt"`
	OfferCreatedAt int64   `json:"offerCreatedAt"`
}
