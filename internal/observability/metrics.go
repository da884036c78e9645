package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	taskCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "warmup_service",
		Subsystem: "persistence",
		Name:      "last_task_completed_timestamp_seconds",
		Help:      "Unix timestamp of the most recent daily task marked completed.",
	})
	curriculumSeededCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "warmup_service",
		Subsystem: "persistence",
		Name:      "curricula_seeded_total",
		Help:      "Number of curriculum seed transactions that inserted new rows.",
	})
)

func init() {
	prometheus.MustRegister(taskCompletedGauge, curriculumSeededCounter)
}

// RecordTaskCompleted updates the completion watermark gauge.
func RecordTaskCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	taskCompletedGauge.Set(float64(ts.Unix()))
}

// RecordCurriculumSeeded counts a seed transaction that added rows.
func RecordCurriculumSeeded() {
	curriculumSeededCounter.Inc()
}
