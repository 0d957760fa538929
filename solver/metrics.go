// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveIterations tracks the iteration count at which solves stopped.
	solveIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "itersolve_solver_iterations",
		Help:    "Iterations performed per solve by solver and final status",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
	}, []string{"solver", "status"})

	// solveDuration tracks wall time of the iteration loop.
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "itersolve_solver_duration_seconds",
		Help:    "Solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"solver"})

	// solveErrors counts solves aborted by an error.
	solveErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itersolve_solver_errors_total",
		Help: "Solves aborted by validation or criterion errors",
	}, []string{"solver"})
)
