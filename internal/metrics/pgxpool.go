package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cms_api"

// RegisterPgxPoolMetrics exposes the connection pool statistics as gauges
// under the service namespace.
func RegisterPgxPoolMetrics(pool *pgxpool.Pool) {
	stat := pool.Stat

	poolGauge := func(name, help string, value func(*pgxpool.Stat) int32) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return float64(value(stat()))
		})
	}

	prometheus.MustRegister(
		poolGauge("acquired_conns", "Connections currently acquired from the pool", (*pgxpool.Stat).AcquiredConns),
		poolGauge("idle_conns", "Idle connections held by the pool", (*pgxpool.Stat).IdleConns),
		poolGauge("total_conns", "Total connections managed by the pool", (*pgxpool.Stat).TotalConns),
		poolGauge("max_conns", "Configured connection ceiling of the pool", (*pgxpool.Stat).MaxConns),
	)
}
