// Command dashboard loads the full RealToken marketplace snapshot for the
// configured network and prints a portfolio summary.
package main

import (
	"context"
	"flag"
	"math"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"realtoken-yam/internal/chain"
	"realtoken-yam/internal/registry"
	"realtoken-yam/internal/store"
	"realtoken-yam/internal/yam"
)

func main() {
	address := flag.String("address", "", "print a single token by contract address")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("loading .env")
	}

	network, err := chain.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("select network")
	}
	log.WithFields(log.Fields{
		"chainId": network.ChainID,
		"network": network.Name,
	}).Info("network selected")

	tokenStore := store.NewTokenStore(registry.New(network))
	yamStore := store.NewYamStore(tokenStore, yam.New(network))

	ctx := context.Background()
	go func() {
		tokenStore.Init(ctx) // outcome surfaces through yamStore
	}()
	if err := yamStore.Init(ctx); err != nil {
		log.WithError(err).Fatal("marketplace data load failed")
	}

	if *address != "" {
		printToken(yamStore, *address)
		return
	}

	tokens := yamStore.List()
	traded, priced := 0, 0
	for _, t := range tokens {
		if t.Trading == nil {
			continue
		}
		traded++
		if !math.IsNaN(t.Trading.UnitPrice) {
			priced++
		}
	}
	log.WithFields(log.Fields{
		"tokens": len(tokens),
		"traded": traded,
		"priced": priced,
	}).Info("portfolio loaded")
}

func printToken(s *store.YamStore, address string) {
	token, ok := s.Get(address)
	if !ok {
		log.WithField("address", address).Fatal("token not found")
	}

	entry := log.WithFields(log.Fields{
		"address":  token.BlockchainAddress.Contract,
		"property": token.Property.Name,
		"supply":   token.Token.Supply,
	})
	if token.Trading != nil && !math.IsNaN(token.Trading.UnitPrice) {
		entry = entry.WithFields(log.Fields{
			"unitPrice":    token.Trading.UnitPrice,
			"transactions": token.Trading.TransactionsCount,
		})
	}
	entry.Info("token")
}
