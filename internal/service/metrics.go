package service

import "github.com/prometheus/client_golang/prometheus"

var (
	itemCompletions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planet_item_completions_total",
		Help: "Items completed by users",
	})
	pointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planet_points_awarded_total",
		Help: "Points credited through item completions",
	})
)

func init() { prometheus.MustRegister(itemCompletions, pointsAwarded) }
