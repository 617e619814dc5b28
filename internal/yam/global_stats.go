package yam

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const globalStatsQuery = `
query GetGlobalStats (
  $currentMonth: String,
  $currentMonthYear: String,
  $lastMonth: String,
  $lastMonthYear: String
) {
  lastCumulativeStatistics: cumulativeStatisticMonths (
    orderBy: id,
    orderDirection: desc,
    first: 1
  ) {
    offersCreatedCount
    offersWithPriceChangesCount
    offersDeletedCount
    offersAcceptedCount
    offersPrivateCount
    offersActiveCount

    accountsCount
    accountsWithOffersCount
    accountsWithSalesCount
    accountsWithPurchasesCount
    accountsWithSwapsCount

    transactionsCount
    realTokenTradeVolume
  }
  statisticDays: statisticDays (
    orderBy: id,
    orderDirection: desc,
    first: 30
  ) {
    id
    year
    month
    day

    transactionsCount
    realTokenTradeVolume
  }
  topTokenCurrentMonth: tokenMonths (
    where: { year: $currentMonthYear, month: $currentMonth },
    orderBy: volume,
    orderDirection: desc,
    first: 10
  ) {
    token { address decimals }
    volume
  }
  topBuyerCurrentMonth: accountMonths (
    where: { year: $currentMonthYear, month: $currentMonth },
    orderBy: purchasesCount,
    orderDirection: desc,
    first: 5
  ) {
    account { address }
    purchasesCount
  }
  topSellerCurrentMonth: accountMonths (
    where: { year: $currentMonthYear, month: $currentMonth },
    orderBy: salesCount,
    orderDirection: desc,
    first: 5
  ) {
    account { address }
    salesCount
  }
  topAccountCurrentMonth: accountMonths (
    where: { year: $currentMonthYear, month: $currentMonth },
    orderBy: transactionsCount,
    orderDirection: desc,
    first: 5
  ) {
    account { address }
    transactionsCount
  }
  topTokenLastMonth: tokenMonths (
    where: { year: $lastMonthYear, month: $lastMonth },
    orderBy: volume,
    orderDirection: desc,
    first: 10
  ) {
    token { address decimals }
    volume
  }
  topBuyerLastMonth: accountMonths (
    where: { year: $lastMonthYear, month: $lastMonth },
    orderBy: purchasesCount,
    orderDirection: desc,
    first: 3
  ) {
    account { address }
    purchasesCount
  }
  topSellerLastMonth: accountMonths (
    where: { year: $lastMonthYear, month: $lastMonth },
    orderBy: salesCount,
    orderDirection: desc,
    first: 3
  ) {
    account { address }
    salesCount
  }
  topAccountLastMonth: accountMonths (
    where: { year: $lastMonthYear, month: $lastMonth },
    orderBy: transactionsCount,
    orderDirection: desc,
    first: 3
  ) {
    account { address }
    transactionsCount
  }
}`

type statisticEntity struct {
	OffersCreatedCount          string `json:"offersCreatedCount"`
	OffersWithPriceChangesCount string `json:"offersWithPriceChangesCount"`
	OffersDeletedCount          string `json:"offersDeletedCount"`
	OffersAcceptedCount         string `json:"offersAcceptedCount"`
	OffersPrivateCount          string `json:"offersPrivateCount"`
	OffersActiveCount           string `json:"offersActiveCount"`
	AccountsCount               string `json:"accountsCount"`
	AccountsWithOffersCount     string `json:"accountsWithOffersCount"`
	AccountsWithSalesCount      string `json:"accountsWithSalesCount"`
	AccountsWithPurchasesCount  string `json:"accountsWithPurchasesCount"`
	AccountsWithSwapsCount      string `json:"accountsWithSwapsCount"`
	TransactionsCount           string `json:"transactionsCount"`
	RealTokenTradeVolume        string `json:"realTokenTradeVolume"`
}

type statisticDayEntity struct {
	ID                   string `json:"id"`
	Year                 string `json:"year"`
	Month                string `json:"month"`
	Day                  string `json:"day"`
	TransactionsCount    string `json:"transactionsCount"`
	RealTokenTradeVolume string `json:"realTokenTradeVolume"`
}

type topTokenEntity struct {
	Token struct {
		Address  string `json:"address"`
		Decimals string `json:"decimals"`
	} `json:"token"`
	Volume string `json:"volume"`
}

type topBuyerEntity struct {
	Account        accountEntity `json:"account"`
	PurchasesCount string        `json:"purchasesCount"`
}

type topSellerEntity struct {
	Account    accountEntity `json:"account"`
	SalesCount string        `json:"salesCount"`
}

type topAccountEntity struct {
	Account           accountEntity `json:"account"`
	TransactionsCount string        `json:"transactionsCount"`
}

type globalStatsResponse struct {
	LastCumulativeStatistics []statisticEntity    `json:"lastCumulativeStatistics"`
	StatisticDays            []statisticDayEntity `json:"statisticDays"`
	TopTokenCurrentMonth     []topTokenEntity     `json:"topTokenCurrentMonth"`
	TopBuyerCurrentMonth     []topBuyerEntity     `json:"topBuyerCurrentMonth"`
	TopSellerCurrentMonth    []topSellerEntity    `json:"topSellerCurrentMonth"`
	TopAccountCurrentMonth   []topAccountEntity   `json:"topAccountCurrentMonth"`
	TopTokenLastMonth        []topTokenEntity     `json:"topTokenLastMonth"`
	TopBuyerLastMonth        []topBuyerEntity     `json:"topBuyerLastMonth"`
	TopSellerLastMonth       []topSellerEntity    `json:"topSellerLastMonth"`
	TopAccountLastMonth      []topAccountEntity   `json:"topAccountLastMonth"`
}

// GlobalStats fetches marketplace-wide statistics with leaderboards for
// the calendar month containing now and the month before it.
func (c *Client) GlobalStats(ctx context.Context, now time.Time) (*domain.GlobalStats, error) {
	req := graphql.NewRequest(globalStatsQuery)

	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	req.Var("currentMonth", strconv.Itoa(int(now.Month())))
	req.Var("currentMonthYear", strconv.Itoa(now.Year()))
	req.Var("lastMonth", strconv.Itoa(int(prev.Month())))
	req.Var("lastMonthYear", strconv.Itoa(prev.Year()))

	var resp globalStatsResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	if len(resp.LastCumulativeStatistics) == 0 {
		return nil, fmt.Errorf("global stats: no cumulative statistics returned")
	}

	return &domain.GlobalStats{
		Statistic:              parseStatistic(resp.LastCumulativeStatistics[0]),
		Days:                   parseStatisticDays(resp.StatisticDays),
		TopTokenCurrentMonth:   parseTopTokens(resp.TopTokenCurrentMonth),
		TopBuyerCurrentMonth:   parseTopBuyers(resp.TopBuyerCurrentMonth),
		TopSellerCurrentMonth:  parseTopSellers(resp.TopSellerCurrentMonth),
		TopAccountCurrentMonth: parseTopAccounts(resp.TopAccountCurrentMonth),
		TopTokenLastMonth:      parseTopTokens(resp.TopTokenLastMonth),
		TopBuyerLastMonth:      parseTopBuyers(resp.TopBuyerLastMonth),
		TopSellerLastMonth:     parseTopSellers(resp.TopSellerLastMonth),
		TopAccountLastMonth:    parseTopAccounts(resp.TopAccountLastMonth),
	}, nil
}

func parseStatistic(e statisticEntity) domain.Statistic {
	created := normalize.Count(e.OffersCreatedCount)
	active := normalize.Count(e.OffersActiveCount)
	deleted := normalize.Count(e.OffersDeletedCount)

	return domain.Statistic{
		OffersCreatedCount:          created,
		OffersWithPriceChangesCount: normalize.Count(e.OffersWithPriceChangesCount),
		OffersDeletedCount:          deleted,
		OffersAcceptedCount:         normalize.Count(e.OffersAcceptedCount),
		OffersPrivateCount:          normalize.Count(e.OffersPrivateCount),
		OffersActiveCount:           active,
		OffersEmptyCount:            created - active - deleted,
		AccountsCount:               normalize.Count(e.AccountsCount),
		AccountsWithOffersCount:     normalize.Count(e.AccountsWithOffersCount),
		AccountsWithSalesCount:      normalize.Count(e.AccountsWithSalesCount),
		AccountsWithPurchasesCount:  normalize.Count(e.AccountsWithPurchasesCount),
		AccountsWithSwapsCount:      normalize.Count(e.AccountsWithSwapsCount),
		TransactionsCount:           normalize.Count(e.TransactionsCount),
		RealTokenTradeVolume:        normalize.Decimal(e.RealTokenTradeVolume, normalize.DefaultDecimals),
	}
}

func parseStatisticDays(days []statisticDayEntity) []domain.DayStatistic {
	out := make([]domain.DayStatistic, 0, len(days))
	for _, d := range days {
		out = append(out, domain.DayStatistic{
			ID:                   d.ID,
			Year:                 normalize.Count(d.Year),
			Month:                normalize.Count(d.Month),
			Day:                  normalize.Count(d.Day),
			TransactionsCount:    normalize.Count(d.TransactionsCount),
			RealTokenTradeVolume: normalize.Decimal(d.RealTokenTradeVolume, normalize.DefaultDecimals),
		})
	}
	return out
}

func parseTopTokens(tokens []topTokenEntity) []domain.TokenVolume {
	out := make([]domain.TokenVolume, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, domain.TokenVolume{
			Token:  t.Token.Address,
			Volume: normalize.Decimal(t.Volume, normalize.Decimals(t.Token.Decimals)),
		})
	}
	return out
}

func parseTopBuyers(buyers []topBuyerEntity) []domain.BuyerCount {
	out := make([]domain.BuyerCount, 0, len(buyers))
	for _, b := range buyers {
		out = append(out, domain.BuyerCount{
			Account:        b.Account.Address,
			PurchasesCount: normalize.Count(b.PurchasesCount),
		})
	}
	return out
}

func parseTopSellers(sellers []topSellerEntity) []domain.SellerCount {
	out := make([]domain.SellerCount, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, domain.SellerCount{
			Account:    s.Account.Address,
			SalesCount: normalize.Count(s.SalesCount),
		})
	}
	return out
}

func parseTopAccounts(accounts []topAccountEntity) []domain.AccountCount {
	out := make([]domain.AccountCount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, domain.AccountCount{
			Account:           a.Account.Address,
			TransactionsCount: normalize.Count(a.TransactionsCount),
		})
	}
	return out
}
