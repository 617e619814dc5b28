package yam

// Raw subgraph entities. Every numeric field arrives string-encoded
// (BigInt/BigDecimal serialization); nothing leaves this package without
// passing through the normalize package.

type accountEntity struct {
	Address string `json:"address"`
}

type tokenLegEntity struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Decimals string `json:"decimals"`
}

type offerEntity struct {
	ID                 string         `json:"id"`
	OfferToken         tokenLegEntity `json:"offerToken"`
	BuyerToken         tokenLegEntity `json:"buyerToken"`
	Maker              accountEntity  `json:"maker"`
	CreatedAtTimestamp string         `json:"createdAtTimestamp"`
}

type transactionEntity struct {
	ID                 string        `json:"id"`
	Type               string        `json:"type"`
	Price              string        `json:"price"`
	Quantity           string        `json:"quantity"`
	Taker              accountEntity `json:"taker"`
	CreatedAtTimestamp string        `json:"createdAtTimestamp"`
	Offer              offerEntity   `json:"offer"`
}
