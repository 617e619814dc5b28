package yam

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const globalStatsFixture = `{
  "lastCumulativeStatistics": [
    {
      "offersCreatedCount": "100",
      "offersWithPriceChangesCount": "12",
      "offersDeletedCount": "30",
      "offersAcceptedCount": "45",
      "offersPrivateCount": "5",
      "offersActiveCount": "50",
      "accountsCount": "200",
      "accountsWithOffersCount": "80",
      "accountsWithSalesCount": "60",
      "accountsWithPurchasesCount": "70",
      "accountsWithSwapsCount": "10",
      "transactionsCount": "400",
      "realTokenTradeVolume": "9000000000000000000000"
    }
  ],
  "statisticDays": [
    {
      "id": "2023-1-15",
      "year": "2023",
      "month": "1",
      "day": "15",
      "transactionsCount": "9",
      "realTokenTradeVolume": "2000000000000000000"
    }
  ],
  "topTokenCurrentMonth": [
    {
      "token": { "address": "0xaaa1000000000000000000000000000000000001", "decimals": "18" },
      "volume": "5000000000000000000"
    }
  ],
  "topBuyerCurrentMonth": [
    { "account": { "address": "0xbuyer" }, "purchasesCount": "14" }
  ],
  "topSellerCurrentMonth": [
    { "account": { "address": "0xseller" }, "salesCount": "11" }
  ],
  "topAccountCurrentMonth": [
    { "account": { "address": "0xaccount" }, "transactionsCount": "25" }
  ],
  "topTokenLastMonth": [],
  "topBuyerLastMonth": [],
  "topSellerLastMonth": [],
  "topAccountLastMonth": []
}`

func TestGlobalStats(t *testing.T) {
	runner := &fakeRunner{respond: respondJSON(globalStatsFixture)}
	client := newTestClient(t, runner)

	now := time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC)
	stats, err := client.GlobalStats(context.Background(), now)
	require.NoError(t, err)

	// Derived counter: created - active - deleted.
	assert.Equal(t, 20, stats.Statistic.OffersEmptyCount)
	assert.Equal(t, 400, stats.Statistic.TransactionsCount)
	assert.InDelta(t, 9000.0, stats.Statistic.RealTokenTradeVolume, 1e-9)

	require.Len(t, stats.Days, 1)
	assert.Equal(t, 15, stats.Days[0].Day)
	assert.InDelta(t, 2.0, stats.Days[0].RealTokenTradeVolume, 1e-9)

	require.Len(t, stats.TopTokenCurrentMonth, 1)
	assert.InDelta(t, 5.0, stats.TopTokenCurrentMonth[0].Volume, 1e-9)
	require.Len(t, stats.TopBuyerCurrentMonth, 1)
	assert.Equal(t, 14, stats.TopBuyerCurrentMonth[0].PurchasesCount)
	assert.Empty(t, stats.TopTokenLastMonth)

	// January rolls the previous-month window into the prior year.
	require.Len(t, runner.calls(), 1)
	vars := runner.calls()[0].Vars()
	assert.Equal(t, "1", vars["currentMonth"])
	assert.Equal(t, "2023", vars["currentMonthYear"])
	assert.Equal(t, "12", vars["lastMonth"])
	assert.Equal(t, "2022", vars["lastMonthYear"])
}

func TestGlobalStats_EmptyStatistics(t *testing.T) {
	fixture := `{"lastCumulativeStatistics": []}`
	runner := &fakeRunner{respond: respondJSON(fixture)}
	client := newTestClient(t, runner)

	_, err := client.GlobalStats(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cumulative statistics")
}
