package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "ticks_total",
		Help:      "Game ticks processed.",
	})
	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "tick_seconds",
		Help:      "Time spent advancing the game by one tick.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
	gameOvers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "game_overs_total",
		Help:      "Finished games by cause.",
	}, []string{"cause"})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "food_eaten_total",
		Help:      "Food items eaten.",
	})
	framesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "frames_dropped_total",
		Help:      "Frames not delivered to a slow subscriber.",
	})
)

func init() {
	prometheus.MustRegister(ticks, tickDuration, gameOvers, foodEaten, framesDropped)
}
