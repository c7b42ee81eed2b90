package v1

import "github.com/prometheus/client_golang/prometheus"

// IngestedTransactions counts the transactions that have been stored,
// partitioned by the way they were submitted.
var IngestedTransactions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transactions_ingested_total",
		Help: "How many transactions have been ingested, partitioned by source.",
	},
	[]string{"source"},
)

const (
	sourceAPI = "api"
	sourceCSV = "csv"
)
