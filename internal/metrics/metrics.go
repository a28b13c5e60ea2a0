// Package metrics объявляет метрики Prometheus сервиса нагрузки тренеров.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trainer_workload",
		Name:      "events_processed_total",
		Help:      "Количество обработанных событий тренировок по типу и результату",
	}, []string{"action", "result"})
	DeadLettered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trainer_workload",
		Name:      "dead_lettered_total",
		Help:      "Количество сообщений, отправленных в DLQ",
	}, []string{"reason"})
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trainer_workload",
		Name:      "summary_cache_hits_total",
		Help:      "Количество попаданий в кеш сводок",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trainer_workload",
		Name:      "summary_cache_misses_total",
		Help:      "Количество промахов кеша сводок",
	})
	StorageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trainer_workload",
		Name:      "storage_operation_duration_seconds",
		Help:      "Время операций с MongoDB",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(
		EventsProcessed,
		DeadLettered,
		CacheHits,
		CacheMisses,
		StorageDuration,
	)
}

// Result возвращает метку результата для EventsProcessed.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
