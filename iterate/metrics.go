// SPDX-License-Identifier: MIT

package iterate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// controllerVerdicts counts terminal verdicts adopted by controllers.
	controllerVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itersolve_controller_verdicts_total",
		Help: "Terminal statuses adopted by iteration controllers",
	}, []string{"controller", "status"})

	// controllerCancellations counts Cancel transitions (not repeated calls).
	controllerCancellations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itersolve_controller_cancellations_total",
		Help: "Sticky cancellations latched on iteration controllers",
	}, []string{"controller"})
)

