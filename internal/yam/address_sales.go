package yam

import (
	"context"
	"strings"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const addressSalesQuery = `
query GetAddressSales ($address: String) {
  account (id: $address) {
    sales (orderBy: createdAtTimestamp, orderDirection: desc) {
      id
      price
      quantity
      taker { address }
      createdAtTimestamp
      offer {
        id
        offerToken { address decimals }
        buyerToken { address decimals }
        createdAtTimestamp
      }
    }
  }
}`

// AddressSales fetches the account's sales, newest first. Only sales
// settled in a recognized stablecoin are retained.
func (c *Client) AddressSales(ctx context.Context, address string) ([]domain.Sale, error) {
	req := graphql.NewRequest(addressSalesQuery)
	req.Var("address", strings.ToLower(address))

	var resp struct {
		Account struct {
			Sales []transactionEntity `json:"sales"`
		} `json:"account"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	var out []domain.Sale
	for _, e := range resp.Account.Sales {
		if !c.network.IsStablecoin(e.Offer.BuyerToken.Address) {
			continue
		}
		out = append(out, domain.Sale{
			ID:             e.ID,
			OfferID:        e.Offer.ID,
			Taker:          e.Taker.Address,
			OfferToken:     e.Offer.OfferToken.Address,
			BuyerToken:     e.Offer.BuyerToken.Address,
			Price:          normalize.Decimal(e.Price, normalize.Decimals(e.Offer.BuyerToken.Decimals)),
			Quantity:       normalize.Decimal(e.Quantity, normalize.Decimals(e.Offer.OfferToken.Decimals)),
			CreatedAt:      normalize.Unix(e.CreatedAtTimestamp),
			OfferCreatedAt: normalize.Unix(e.Offer.CreatedAtTimestamp),
		})
	}
	return out, nil
}
