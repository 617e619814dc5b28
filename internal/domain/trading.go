package domain

// TransactionType is the direction of a marketplace trade as reported by
// the subgraph.
type TransactionType string

// Trade directions. Only the two realtoken directions participate in
// price aggregation; ERC20TOERC20 swaps never involve a base token.
const (
	TypeRealTokenToERC20 TransactionType = "REALTOKENTOERC20" // base token sold for stablecoin
	TypeERC20ToRealToken TransactionType = "ERC20TOREALTOKEN" // stablecoin spent for base token
	TypeERC20ToERC20     TransactionType = "ERC20TOERC20"
)

// TransactionSample is one decimal-normalized trade retained for price
// aggregation. QuoteToken is the stablecoin leg of the trade.
type TransactionSample struct {
	Type       TransactionType `json:"type"`
	Price      float64         `json:"price"`
	Quantity   float64         `json:"quantity"`
	QuoteToken string          `json:"quoteToken"`
}

// MonthHistory is one calendar-month bucket of per-token activity.
type MonthHistory struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	TransactionsCount  int     `json:"transactionsCount"`
	CreatedOffersCount int     `json:"createdOffersCount"`
	UpdatedOffersCount int     `json:"updatedOffersCount"`
	DeletedOffersCount int     `json:"deletedOffersCount"`
	Volume             float64 `json:"volume"`
}

// YamToken is the trading summary of one token on the marketplace.
// UnitPrice is NaN when the token has no qualifying trades.
type YamToken struct {
	Address           string              `json:"address"`
	UnitPrice         float64             `json:"unitPrice"`
	Quantity          float64             `json:"quantity"`
	TransactionsCount int                 `json:"transactionsCount"`
	Transactions      []TransactionSample `json:"transactions"`
	CurrentMonth      *MonthHistory       `json:"currentMonth,omitempty"`
	LastMonth         *MonthHistory       `json:"lastMonth,omitempty"`
}
