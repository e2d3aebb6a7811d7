package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "request_ocr", Name: "runs_total", Help: "Pipeline runs by outcome."},
		[]string{"outcome"},
	)
	Documents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "request_ocr", Name: "documents_total", Help: "Documents handled by outcome."},
		[]string{"outcome"},
	)
	RecordsInserted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "request_ocr", Name: "records_inserted_total", Help: "Usage rows inserted."},
	)
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "request_ocr",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Runs)
	reg.MustRegister(Documents)
	reg.MustRegister(RecordsInserted)
	reg.MustRegister(RunDuration)
}
