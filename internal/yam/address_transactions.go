package yam

import (
	"context"
	"strings"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
)

const addressTransactionsQuery = `
query GetAddressTransactions ($address: String) {
  account (id: $address) {
    transactions (orderBy: createdAtTimestamp, orderDirection: desc) {
      id
      type
      price
      quantity
      taker { address }
      createdAtTimestamp
      offer {
        id
        offerToken { address name decimals }
        buyerToken { address name decimals }
        maker { address }
        createdAtTimestamp
      }
    }
  }
}`

// AddressTransactions fetches the account's trades in either direction,
// newest first. Trades whose quote leg is not a recognized stablecoin are
// dropped.
func (c *Client) AddressTransactions(ctx context.Context, address string) ([]domain.Transaction, error) {
	req := graphql.NewRequest(addressTransactionsQuery)
	req.Var("address", strings.ToLower(address))

	var resp struct {
		Account struct {
			Transactions []transactionEntity `json:"transactions"`
		} `json:"account"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	var out []domain.Transaction
	for _, e := range resp.Account.Transactions {
		tx := parseTransaction(e)
		quote := quoteAddress(tx.Type, tx.OfferToken.Address, tx.BuyerToken.Address)
		if !c.network.IsStablecoin(quote) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}
