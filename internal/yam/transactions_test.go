package yam

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transactionsFixture = `{
  "transactions": [
    {
      "id": "tx1",
      "type": "REALTOKENTOERC20",
      "price": "75000000",
      "quantity": "4000000000000000000",
      "taker": { "address": "0xtaker" },
      "createdAtTimestamp": "1700001000",
      "offer": {
        "id": "offer-1",
        "offerToken": { "address": "0xaaa1000000000000000000000000000000000001", "name": "RealToken A", "decimals": "18" },
        "buyerToken": { "address": "` + goerliUSDC + `", "name": "USDC", "decimals": "6" },
        "maker": { "address": "0xmaker" },
        "createdAtTimestamp": "1700000900"
      }
    },
    {
      "id": "tx2",
      "type": "ERC20TOERC20",
      "price": "1000000",
      "quantity": "1000000",
      "taker": { "address": "0xtaker2" },
      "createdAtTimestamp": "1700000800",
      "offer": {
        "id": "offer-2",
        "offerToken": { "address": "0xdddd000000000000000000000000000000000ddd", "name": "DAI", "decimals": "18" },
        "buyerToken": { "address": "` + goerliUSDC + `", "name": "USDC", "decimals": "6" },
        "maker": { "address": "0xmaker2" },
        "createdAtTimestamp": "1700000700"
      }
    }
  ]
}`

func TestTransactions_ParsesAllDirections(t *testing.T) {
	runner := &fakeRunner{respond: respondJSON(transactionsFixture)}
	client := newTestClient(t, runner)

	transactions, err := client.Transactions(context.Background())
	require.NoError(t, err)

	// The market-wide list is not stable-filtered.
	require.Len(t, transactions, 2)

	tx := transactions[0]
	assert.Equal(t, "tx1", tx.ID)
	assert.Equal(t, "offer-1", tx.OfferID)
	assert.Equal(t, "0xmaker", tx.Maker)
	assert.Equal(t, "0xtaker", tx.Taker)
	assert.InDelta(t, 75.0, tx.Price, 1e-9)
	assert.InDelta(t, 4.0, tx.Quantity, 1e-9)
	assert.Equal(t, int64(1700001000), tx.CreatedAt)
	assert.Equal(t, int64(1700000900), tx.OfferCreatedAt)
}

const tokenTransactionsFixture = `{
  "token": {
    "decimals": "9",
    "transactions": [
      {
        "id": "tt1",
        "price": "120000000",
        "quantity": "2500000000",
        "taker": { "address": "0xtaker" },
        "createdAtTimestamp": "1700002000",
        "offer": {
          "id": "offer-9",
          "maker": { "address": "0xmaker" },
          "createdAtTimestamp": "1700001900",
          "buyerToken": { "address": "` + goerliUSDC + `", "decimals": "6" }
        }
      }
    ]
  }
}`

func TestTokenTransactions_UsesTokenDecimals(t *testing.T) {
	runner := &fakeRunner{respond: respondJSON(tokenTransactionsFixture)}
	client := newTestClient(t, runner)

	transactions, err := client.TokenTransactions(context.Background(), "0xAAA1000000000000000000000000000000000001")
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tt := transactions[0]
	assert.Equal(t, "tt1", tt.ID)
	assert.Equal(t, goerliUSDC, tt.BuyerToken)
	assert.InDelta(t, 120.0, tt.Price, 1e-9)
	// Quantity decodes with the token's own decimal count (9).
	assert.InDelta(t, 2.5, tt.Quantity, 1e-9)

	require.Len(t, runner.calls(), 1)
	assert.Equal(t, "0xaaa1000000000000000000000000000000000001", runner.calls()[0].Vars()["address"])
}
