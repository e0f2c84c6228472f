package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the notification pipeline.
type Metrics struct {
	RunsTotal        prometheus.Counter
	RunDuration      prometheus.Histogram
	DigestsSent      prometheus.Counter
	DigestFailures   prometheus.Counter
	UsersSkipped     prometheus.Counter
	TasksNotified    *prometheus.CounterVec
	UnrecordedDigest prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_runs_total",
			Help: "Total number of notification runs started",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "notifier_run_duration_seconds",
			Help:    "Wall clock duration of a full notification run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		DigestsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_digests_sent_total",
			Help: "Total number of digest emails sent",
		}),
		DigestFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_digest_failures_total",
			Help: "Total number of per-user digest failures",
		}),
		UsersSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_users_skipped_total",
			Help: "Total number of users skipped because every task was already notified",
		}),
		TasksNotified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_tasks_notified_total",
			Help: "Total number of tasks included in sent digests",
		}, []string{"kind"}),
		UnrecordedDigest: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_unrecorded_digests_total",
			Help: "Digests sent whose ledger write failed; tasks may be re-sent next run",
		}),
	}
}

// ObserveRun records one completed run.
func (m *Metrics) ObserveRun(d time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.Inc()
	m.RunDuration.Observe(d.Seconds())
}
