package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"navigator/internal/app/filter"
)

const (
	EventFilterApplied  = "filter_applied"
	EventReportExported = "pdf_exported"
)

// Tracker records user interaction events as structured log lines and metrics.
type Tracker struct {
	log            logrus.FieldLogger
	filterApplied  *prometheus.CounterVec
	reportExported prometheus.Counter
	reportTools    prometheus.Histogram
}

// NewTracker registers the tracker metrics. A nil registerer uses the default registry.
func NewTracker(log logrus.FieldLogger, registerer prometheus.Registerer) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Tracker{
		log: log,
		filterApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navigator_filter_applied_total",
				Help: "Number of filter toggle events by filter type",
			},
			[]string{"filter_type"},
		),
		reportExported: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "navigator_reports_exported_total",
				Help: "Number of exported license reports",
			},
		),
		reportTools: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "navigator_report_tools",
				Help:    "Number of tools contained in exported reports",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
		),
	}
}

// FilterApplied records a filter change. An empty value means the filter was cleared.
// Search changes are not recorded; the text is free user input.
func (t *Tracker) FilterApplied(key filter.Key, value string) {
	if key == filter.KeySearch {
		return
	}
	if value == "" {
		value = "alle"
	}
	t.filterApplied.WithLabelValues(string(key)).Inc()
	t.log.WithFields(logrus.Fields{
		"event":        EventFilterApplied,
		"filter_type":  string(key),
		"filter_value": value,
	}).Info("analytics event")
}

func (t *Tracker) ReportExported(toolsCount int, activeFilters string) {
	t.reportExported.Inc()
	t.reportTools.Observe(float64(toolsCount))
	t.log.WithFields(logrus.Fields{
		"event":          EventReportExported,
		"tools_count":    toolsCount,
		"active_filters": activeFilters,
	}).Info("analytics event")
}
