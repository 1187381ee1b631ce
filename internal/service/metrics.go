package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	completionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "payout",
		Name:      "completions_total",
		Help:      "Project completion attempts by outcome",
	}, []string{"outcome"})

	coinsPaidTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "payout",
		Name:      "coins_paid_total",
		Help:      "LeanCoins credited to wallets on project completion",
	}, []string{"kind"})
)
