package yam

import (
	"context"
	"strings"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const tokenTransactionsQuery = `
query GetTokenTransactions ($address: String) {
  token (id: $address) {
    decimals
    transactions (
      orderBy: createdAtTimestamp,
      orderDirection: desc,
      where: { type_in: [REALTOKENTOERC20, ERC20TOREALTOKEN] }
    ) {
      id
      price
      quantity
      taker { address }
      createdAtTimestamp
      offer {
        id
        maker { address }
        createdAtTimestamp
        buyerToken { address decimals }
      }
    }
  }
}`

// TokenTransactions fetches the full trade history of one token, newest
// first. Quantities are decoded with the token's own decimal count.
func (c *Client) TokenTransactions(ctx context.Context, address string) ([]domain.TokenTransaction, error) {
	req := graphql.NewRequest(tokenTransactionsQuery)
	req.Var("address", strings.ToLower(address))

	var resp struct {
		Token struct {
			Decimals     string              `json:"decimals"`
			Transactions []transactionEntity `json:"transactions"`
		} `json:"token"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	decimals := normalize.Decimals(resp.Token.Decimals)
	out := make([]domain.TokenTransaction, 0, len(resp.Token.Transactions))
	for _, e := range resp.Token.Transactions {
		out = append(out, domain.TokenTransaction{
			ID:             e.ID,
			OfferID:        e.Offer.ID,
			Maker:          e.Offer.Maker.Address,
			Taker:          e.Taker.Address,
			BuyerToken:     e.Offer.BuyerToken.Address,
			Price:          normalize.Decimal(e.Price, normalize.Decimals(e.Offer.BuyerToken.Decimals)),
			Quantity:       normalize.Decimal(e.Quantity, decimals),
			CreatedAt:      normalize.Unix(e.CreatedAtTimestamp),
			OfferCreatedAt: normalize.Unix(e.Offer.CreatedAtTimestamp),
		})
	}
	return out, nil
}
