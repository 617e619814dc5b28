package yam

import (
	"context"
	"strings"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const addressPurchasesQuery = `
query GetAddressPurchases ($address: String) {
  account (id: $address) {
    purchases (orderBy: createdAtTimestamp, orderDirection: desc) {
      id
      price
      quantity
      createdAtTimestamp
      offer {
        id
        offerToken { address decimals }
        buyerToken { address decimals }
        maker { address }
        createdAtTimestamp
      }
    }
  }
}`

// AddressPurchases fetches the account's purchases, newest first. Only
// purchases paid with a recognized stablecoin are retained.
func (c *Client) AddressPurchases(ctx context.Context, address string) ([]domain.Purchase, error) {
	req := graphql.NewRequest(addressPurchasesQuery)
	req.Var("address", strings.ToLower(address))

	var resp struct {
		Account struct {
			Purchases []transactionEntity `json:"purchases"`
		} `json:"account"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	var out []domain.Purchase
	for _, e := range resp.Account.Purchases {
		if !c.network.IsStablecoin(e.Offer.BuyerToken.Address) {
			continue
		}
		out = append(out, domain.Purchase{
			ID:             e.ID,
			OfferID:        e.Offer.ID,
			Maker:          e.Offer.Maker.Address,
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
