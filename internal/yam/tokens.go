package yam

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/machinebox/graphql"

	"realtoken-yam/internal/chain"
	"realtoken-yam/internal/domain"
	"realtoken-yam/internal/normalize"
)

const tokensQuery = `
query GetTokens ($addresses: [String]) {
  tokens (where: { address_in: $addresses }, first: 500) {
    address
    decimals
    transactionsCount
    transactions (
      orderBy: createdAtTimestamp,
      orderDirection: desc,
      first: 5,
      where: { type_in: [REALTOKENTOERC20, ERC20TOREALTOKEN] }
    ) {
      type
      price
      quantity
      offer {
        offerToken { address decimals }
        buyerToken { address decimals }
      }
    }
    historyMonths (orderBy: id, orderDirection: desc, first: 2) {
      year
      month
      transactionsCount
      createdOffersCount
      updatedOffersCount
      deletedOffersCount
      volume
    }
  }
}`

type historyMonthEntity struct {
	Year               string `json:"year"`
	Month              string `json:"month"`
	TransactionsCount  string `json:"transactionsCount"`
	CreatedOffersCount string `json:"createdOffersCount"`
	UpdatedOffersCount string `json:"updatedOffersCount"`
	DeletedOffersCount string `json:"deletedOffersCount"`
	Volume             string `json:"volume"`
}

type tokenTradeEntity struct {
	Type     string `json:"type"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Offer    struct {
		OfferToken tokenLegEntity `json:"offerToken"`
		BuyerToken tokenLegEntity `json:"buyerToken"`
	} `json:"offer"`
}

type tokenEntity struct {
	Address           string               `json:"address"`
	Decimals          string               `json:"decimals"`
	TransactionsCount string               `json:"transactionsCount"`
	Transactions      []tokenTradeEntity   `json:"transactions"`
	HistoryMonths     []historyMonthEntity `json:"historyMonths"`
}

// Tokens fetches the trading summary for each address. Addresses are
// lowercased before leaving the process (the subgraph is case-sensitive)
// and split into batches of BatchSize fetched concurrently; results are
// concatenated in dispatch order.
func (c *Client) Tokens(ctx context.Context, addresses []string) ([]domain.YamToken, error) {
	lowered := make([]string, len(addresses))
	for i, a := range addresses {
		lowered[i] = strings.ToLower(a)
	}

	batches := chunk(lowered, BatchSize)
	results := make([][]tokenEntity, len(batches))
	errs := make([]error, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			req := graphql.NewRequest(tokensQuery)
			req.Var("addresses", batch)

			var resp struct {
				Tokens []tokenEntity `json:"tokens"`
			}
			if err := c.gql.Run(ctx, req, &resp); err != nil {
				errs[i] = fmt.Errorf("tokens batch %d: %w", i, err)
				return
			}
			results[i] = resp.Tokens
		}(i, batch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var out []domain.YamToken
	for _, entities := range results {
		for _, e := range entities {
			out = append(out, parseYamToken(e, c.network))
		}
	}
	return out, nil
}

func parseYamToken(e tokenEntity, network *chain.Network) domain.YamToken {
	decimals := normalize.Decimals(e.Decimals)

	samples := make([]domain.TransactionSample, 0, len(e.Transactions))
	for _, t := range e.Transactions {
		if s, ok := parseSample(t, network); ok {
			samples = append(samples, s)
		}
	}

	_, quantity := normalize.Totals(samples)

	return domain.YamToken{
		Address:           e.Address,
		UnitPrice:         normalize.UnitPrice(samples),
		Quantity:          quantity,
		TransactionsCount: normalize.Count(e.TransactionsCount),
		Transactions:      samples,
		CurrentMonth:      parseHistoryMonth(e.HistoryMonths, 0, decimals),
		LastMonth:         parseHistoryMonth(e.HistoryMonths, 1, decimals),
	}
}

// parseSample normalizes one trade. Trades whose quote leg is not a
// recognized stablecoin are excluded entirely: they contribute to neither
// the numerator nor the denominator of the unit price.
func parseSample(e tokenTradeEntity, network *chain.Network) (domain.TransactionSample, bool) {
	typ := domain.TransactionType(e.Type)

	quote := e.Offer.BuyerToken
	if typ == domain.TypeERC20ToRealToken {
		quote = e.Offer.OfferToken
	}
	if !network.IsStablecoin(quote.Address) {
		return domain.TransactionSample{}, false
	}

	return domain.TransactionSample{
		Type:       typ,
		Price:      normalize.Decimal(e.Price, normalize.Decimals(e.Offer.BuyerToken.Decimals)),
		Quantity:   normalize.Decimal(e.Quantity, normalize.Decimals(e.Offer.OfferToken.Decimals)),
		QuoteToken: quote.Address,
	}, true
}

func parseHistoryMonth(months []historyMonthEntity, index, decimals int) *domain.MonthHistory {
	if index >= len(months) {
		return nil
	}
	m := months[index]
	return &domain.MonthHistory{
		Year:               normalize.Count(m.Year),
		Month:              normalize.Count(m.Month),
		TransactionsCount:  normalize.Count(m.TransactionsCount),
		CreatedOffersCount: normalize.Count(m.CreatedOffersCount),
		UpdatedOffersCount: normalize.Count(m.UpdatedOffersCount),
		DeletedOffersCount: normalize.Count(m.DeletedOffersCount),
		Volume:             normalize.Decimal(m.Volume, decimals),
	}
}
