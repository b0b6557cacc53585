package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	TransactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuelstation_transactions_recorded_total",
		Help: "Fueling transactions recorded, by input mode (volume or value)",
	}, []string{"mode"})

	TransactionsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuelstation_transactions_removed_total",
		Help: "Fueling transactions removed",
	})

	LitresDispensed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuelstation_litres_dispensed_total",
		Help: "Litres dispensed across all recorded transactions",
	})

	ValueCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuelstation_value_collected_total",
		Help: "Monetary value of all recorded transactions",
	})
)

// ObserveTransaction records one fueling. Counters are approximate floats;
// the database holds the exact decimals.
func ObserveTransaction(mode string, litres, value decimal.Decimal) {
	TransactionsRecorded.WithLabelValues(mode).Inc()
	LitresDispensed.Add(litres.InexactFloat64())
	ValueCollected.Add(value.InexactFloat64())
}
