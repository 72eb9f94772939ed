package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "store",
		Name:      "records_created_total",
		Help:      "Records created through the API, by entity.",
	}, []string{"entity"})
	recordsDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "store",
		Name:      "records_deleted_total",
		Help:      "Records deleted through the API, by entity.",
	}, []string{"entity"})
	recomputeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "recomputes_total",
		Help:      "Completed leaderboard recomputations.",
	})
	recomputeLast = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "last_recompute_timestamp_seconds",
		Help:      "Unix timestamp of the most recent leaderboard recomputation.",
	})
	leaderboardEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "entries",
		Help:      "Entries produced by the most recent recomputation.",
	})
	teamPoints = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "team_points",
		Help:      "Team total points at the last roll-up.",
	}, []string{"team"})
	seedRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "runs_total",
		Help:      "Completed populate runs.",
	})
)

func init() {
	prometheus.MustRegister(recordsCreated, recordsDeleted, recomputeTotal, recomputeLast, leaderboardEntries, teamPoints, seedRuns)
}

func RecordCreated(entity string) {
	recordsCreated.WithLabelValues(entity).Inc()
}

func RecordDeleted(entity string) {
	recordsDeleted.WithLabelValues(entity).Inc()
}

// RecordRecompute updates the recompute counter and watermark gauges.
func RecordRecompute(ts time.Time, entries int) {
	recomputeTotal.Inc()
	recomputeLast.Set(float64(ts.Unix()))
	leaderboardEntries.Set(float64(entries))
}

func RecordTeamPoints(team string, points int) {
	teamPoints.WithLabelValues(team).Set(float64(points))
}

func RecordSeed() {
	seedRuns.Inc()
}
