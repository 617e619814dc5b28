package yam

import (
	"context"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const transactionsQuery = `
query GetTransactions {
  transactions (orderBy: createdAtTimestamp, orderDirection: desc, first: 1000) {
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
}`

// Transactions fetches the most recent 1000 marketplace trades across all
// tokens, newest first.
func (c *Client) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	req := graphql.NewRequest(transactionsQuery)

	var resp struct {
		Transactions []transactionEntity `json:"transactions"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(resp.Transactions))
	for _, e := range resp.Transactions {
		out = append(out, parseTransaction(e))
	}
	return out, nil
}

func parseTransaction(e transactionEntity) domain.Transaction {
	return domain.Transaction{
		ID:             e.ID,
		Type:           domain.TransactionType(e.Type),
		OfferID:        e.Offer.ID,
		Maker:          e.Offer.Maker.Address,
		Taker:          e.Taker.Address,
		OfferToken:     parseLeg(e.Offer.OfferToken),
		BuyerToken:     parseLeg(e.Offer.BuyerToken),
		Price:          normalize.Decimal(e.Price, normalize.Decimals(e.Offer.BuyerToken.Decimals)),
		Quantity:       normalize.Decimal(e.Quantity, normalize.Decimals(e.Offer.OfferToken.Decimals)),
		CreatedAt:      normalize.Unix(e.CreatedAtTimestamp),
		OfferCreatedAt: normalize.Unix(e.Offer.CreatedAtTimestamp),
	}
}

func parseLeg(l tokenLegEntity) domain.TokenLeg {
	return domain.TokenLeg{
		Address:  l.Address,
		Name:     l.Name,
		Decimals: normalize.Decimals(l.Decimals),
	}
}

// quoteAddress returns the stablecoin leg of a trade given its direction.
func quoteAddress(typ domain.TransactionType, offerToken, buyerToken string) string {
	if typ == domain.TypeERC20ToRealToken {
		return offerToken
	}
	return buyerToken
}
