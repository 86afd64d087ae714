package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "coleweb"
)

var (
	// PageViewsTotal counts rendered pages by route name
	PageViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by route name",
		},
		[]string{"page"},
	)

	// PlatformDetectionsTotal counts classified visitors by detected platform
	PlatformDetectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_detections_total",
			Help:      "Visitors classified by detected platform",
		},
		[]string{"platform"},
	)

	// PopupTransitionsTotal counts download popup state changes by new state
	PopupTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "popup_transitions_total",
			Help:      "Download popup transitions by resulting state",
		},
		[]string{"state"},
	)

	// ThemeTogglesTotal counts theme toggles by resulting theme
	ThemeTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme",
		},
		[]string{"theme"},
	)

	// SessionActionsTotal counts view-state actions received over websocket sessions
	SessionActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_actions_total",
			Help:      "View-state actions received from live sessions",
		},
		[]string{"action"},
	)

	// SessionsActive tracks open websocket sessions
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of open live view-state sessions",
		},
	)
)

func init() {
	// Register metrics with Prometheus default registry
	prometheus.MustRegister(PageViewsTotal)
	prometheus.MustRegister(PlatformDetectionsTotal)
	prometheus.MustRegister(PopupTransitionsTotal)
	prometheus.MustRegister(ThemeTogglesTotal)
	prometheus.MustRegister(SessionActionsTotal)
	prometheus.MustRegister(SessionsActive)
}
