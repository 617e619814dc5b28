// Command stats fetches marketplace-wide statistics for the configured
// network and logs the cumulative counters and monthly leaderboards.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"realtoken-yam/internal/chain"
	"realtoken-yam/internal/yam"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("loading .env")
	}

	network, err := chain.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("select network")
	}

	client := yam.New(network)
	stats, err := client.GlobalStats(context.Background(), time.Now())
	if err != nil {
		log.WithError(err).Fatal("fetch global stats")
	}

	log.WithFields(log.Fields{
		"transactions": stats.Statistic.TransactionsCount,
		"accounts":     stats.Statistic.AccountsCount,
		"offersActive": stats.Statistic.OffersActiveCount,
		"offersEmpty":  stats.Statistic.OffersEmptyCount,
		"tradeVolume":  stats.Statistic.RealTokenTradeVolume,
	}).Info("marketplace totals")

	for _, t := range stats.TopTokenCurrentMonth {
		log.WithFields(log.Fields{
			"token":  t.Token,
			"volume": t.Volume,
		}).Info("top token, current month")
	}
	for _, b := range stats.TopBuyerCurrentMonth {
		log.WithFields(log.Fields{
			"account":   b.Account,
			"purchases": b.PurchasesCount,
		}).Info("top buyer, current month")
	}
}
