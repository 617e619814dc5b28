package domain

// Statistic is the cumulative marketplace counter set.
type Statistic struct {
	OffersCreatedCount          int     `json:"offersCreatedCount"`
	OffersWithPriceChangesCount int     `json:"offersWithPriceChangesCount"`
	OffersDeletedCount          int     `json:"offersDeletedCount"`
	OffersAcceptedCount         int     `json:"offersAcceptedCount"`
	OffersPrivateCount          int     `json:"offersPrivateCount"`
	OffersActiveCount           int     `json:"offersActiveCount"`
	OffersEmptyCount            int     `json:"offersEmptyCount"` // created - active - deleted
	AccountsCount               int     `json:"accountsCount"`
	AccountsWithOffersCount     int     `json:"accountsWithOffersCount"`
	AccountsWithSalesCount      int     `json:"accountsWithSalesCount"`
	AccountsWithPurchasesCount  int     `json:"accountsWithPurchasesCount"`
	AccountsWithSwapsCount      int     `json:"accountsWithSwapsCount"`
	TransactionsCount           int     `json:"transactionsCount"`
	RealTokenTradeVolume        float64 `json:"realTokenTradeVolume"`
}

// DayStatistic is one daily activity bucket.
type DayStatistic struct {
	ID                   string  `json:"id"`
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	Day                  int     `json:"day"`
	TransactionsCount    int     `json:"transactionsCount"`
	RealTokenTradeVolume float64 `json:"realTokenTradeVolume"`
}

// TokenVolume is a leaderboard entry ranking tokens by traded volume.
type TokenVolume struct {
	Token  string  `json:"token"`
	Volume float64 `json:"volume"`
}

// BuyerCount is a leaderboard entry ranking accounts by purchases.
type BuyerCount struct {
	Account        string `json:"account"`
	PurchasesCount int    `json:"purchasesCount"`
}

// SellerCount is a leaderboard entry ranking accounts by sales.
type SellerCount struct {
	Account    string `json:"account"`
	SalesCount int    `json:"salesCount"`
}

// AccountCount is a leaderboard entry ranking accounts by trades.
type AccountCount struct {
	Account           string `json:"account"`
	TransactionsCount int    `json:"transactionsCount"`
}

// GlobalStats aggregates marketplace-wide statistics with leaderboards for
// the current and previous calendar months.
type GlobalStats struct {
	Statistic Statistic      `json:"statistic"`
	Days      []DayStatistic `json:"statisticDays"`

	TopTokenCurrentMonth   []TokenVolume  `json:"topTokenCurrentMonth"`
	TopBuyerCurrentMonth   []BuyerCount   `json:"topBuyerCurrentMonth"`
	TopSellerCurrentMonth  []SellerCount  `json:"topSellerCurrentMonth"`
	TopAccountCurrentMonth []AccountCount `json:"topAccountCurrentMonth"`

	TopTokenLastMonth   []TokenVolume  `json:"topTokenLastMonth"`
	TopBuyerLastMonth   []BuyerCount   `json:"topBuyerLastMonth"`
	TopSellerLastMonth  []SellerCount  `json:"topSellerLastMonth"`
	TopAccountLastMonth []AccountCount `json:"topAccountLastMonth"`
}
