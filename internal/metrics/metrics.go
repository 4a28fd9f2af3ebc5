// metrics собирает счётчики прогонов news-digest в Prometheus-реестр
// и выгружает их в textfile для node_exporter.
package metrics

import (
	"fmt"

	"github.com/pribylovaa/news-digest/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news_digest"

// Metrics реализует service.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	feeds    *prometheus.CounterVec
	entries  prometheus.Counter
	relevant prometheus.Counter
	selected prometheus.Gauge
	lastRun  prometheus.Gauge
}

// New регистрирует метрики в собственном реестре.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		feeds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feeds_total",
			Help:      "Feeds processed, by outcome.",
		}, []string{"status"}),
		entries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_seen_total",
			Help:      "Feed entries seen before filtering.",
		}),
		relevant: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_relevant_total",
			Help:      "Entries that passed the relevance filter.",
		}),
		selected: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "articles_selected",
			Help:      "Articles in the last published digest.",
		}),
		lastRun: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last finished run.",
		}),
	}
}

// ObserveRun учитывает результаты одного прогона. Безопасен для nil.
func (m *Metrics) ObserveRun(stats service.RunStats) {
	if m == nil {
		return
	}

	m.feeds.WithLabelValues("ok").Add(float64(stats.FeedsOK))
	m.feeds.WithLabelValues("failed").Add(float64(stats.FeedsFailed))
	m.entries.Add(float64(stats.EntriesSeen))
	m.relevant.Add(float64(stats.Relevant))
	m.selected.Set(float64(stats.Selected))
	m.lastRun.Set(float64(stats.FinishedAt.Unix()))
}

// Registry отдаёт реестр (например, для promhttp или тестов).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile атомарно записывает метрики в path в текстовом формате Prometheus.
func (m *Metrics) WriteTextfile(path string) error {
	const op = "metrics.WriteTextfile"

	if m == nil || path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
