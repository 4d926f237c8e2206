package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the state stores.
// A nil *Metrics is valid and records nothing, so stores can run without it.
type Metrics struct {
	SessionEvents        *prometheus.CounterVec
	AuthLatency          *prometheus.HistogramVec
	CoinsMoved           *prometheus.CounterVec
	TaskProgressUpdates  *prometheus.CounterVec
	TasksCompleted       prometheus.Counter
	NotificationsAdded   *prometheus.CounterVec
	NotificationsExpired prometheus.Counter
	StorageCorruptions   *prometheus.CounterVec
	KVLatency            *prometheus.HistogramVec
}

// New creates and registers all metrics against the given registerer.
// Pass prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialboot_session_events_total",
			Help: "Session lifecycle events by kind and outcome",
		}, []string{"event", "outcome"}), // event: login, signup, logout; outcome: ok, error, superseded
		AuthLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "socialboot_auth_duration_seconds",
			Help:    "Duration of authenticator round-trips",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.8, 1, 2.5, 5},
		}, []string{"event"}),
		CoinsMoved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialboot_wallet_coins_total",
			Help: "Coins credited or debited",
		}, []string{"direction"}),
		TaskProgressUpdates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialboot_task_progress_updates_total",
			Help: "Progress updates applied by task category",
		}, []string{"category"}),
		TasksCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "socialboot_tasks_completed_total",
			Help: "Tasks whose completion latch flipped",
		}),
		NotificationsAdded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialboot_notifications_added_total",
			Help: "Notifications added by severity",
		}, []string{"severity"}),
		NotificationsExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "socialboot_notifications_expired_total",
			Help: "Success notifications removed by the expiry timer",
		}),
		StorageCorruptions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "socialboot_storage_corruptions_total",
			Help: "Persisted entries discarded because they failed to decode",
		}, []string{"store"}),
		KVLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "socialboot_kv_duration_seconds",
			Help:    "Key-value backend operation latency",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"op"}),
	}
}

// IncSessionEvent records a session lifecycle event.
func (m *Metrics) IncSessionEvent(event, outcome string) {
	if m != nil {
		m.SessionEvents.WithLabelValues(event, outcome).Inc()
	}
}

// ObserveAuth records an authenticator round-trip started at start.
func (m *Metrics) ObserveAuth(event string, start time.Time) {
	if m != nil {
		m.AuthLatency.WithLabelValues(event).Observe(time.Since(start).Seconds())
	}
}

// AddCoins records coins moving in direction "credit" or "debit".
func (m *Metrics) AddCoins(direction string, amount int) {
	if m != nil && amount > 0 {
		m.CoinsMoved.WithLabelValues(direction).Add(float64(amount))
	}
}

// IncTaskProgress records a progress update for a category.
func (m *Metrics) IncTaskProgress(category string) {
	if m != nil {
		m.TaskProgressUpdates.WithLabelValues(category).Inc()
	}
}

// IncTaskCompleted records a completion latch flip.
func (m *Metrics) IncTaskCompleted() {
	if m != nil {
		m.TasksCompleted.Inc()
	}
}

// IncNotification records an added notification.
func (m *Metrics) IncNotification(severity string) {
	if m != nil {
		m.NotificationsAdded.WithLabelValues(severity).Inc()
	}
}

// IncNotificationExpired records an expiry-timer removal.
func (m *Metrics) IncNotificationExpired() {
	if m != nil {
		m.NotificationsExpired.Inc()
	}
}

// IncCorruption records a discarded persisted entry for store.
func (m *Metrics) IncCorruption(store string) {
	if m != nil {
		m.StorageCorruptions.WithLabelValues(store).Inc()
	}
}

// ObserveKV records a key-value backend operation started at start.
func (m *Metrics) ObserveKV(op string, start time.Time) {
	if m != nil {
		m.KVLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
