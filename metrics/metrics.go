package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ResultsIngestedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "friidrett_results_ingested_total",
	Help: "Number of result records persisted by the ingestion consumer",
})

var IngestionErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "friidrett_ingestion_errors_total",
	Help: "Number of import batches that failed to persist",
})

var ImportBatchCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "friidrett_import_batches_total",
	Help: "Number of import batches accepted from the admin panel",
})

var LiveClientsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "friidrett_live_clients",
	Help: "Number of connected live-feed websocket clients",
})
