package analytics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator/internal/app/filter"
)

func TestTracker_FilterApplied(t *testing.T) {
	logger, hook := test.NewNullLogger()
	reg := prometheus.NewRegistry()
	tr := NewTracker(logger, reg)

	tr.FilterApplied(filter.KeyLicense, "Kostenlos")
	tr.FilterApplied(filter.KeyLicense, "")
	tr.FilterApplied(filter.KeyAI, "true")

	assert.Equal(t, 2.0, testutil.ToFloat64(tr.filterApplied.WithLabelValues("lizenzKategorie")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.filterApplied.WithLabelValues("ki")))

	require.Len(t, hook.AllEntries(), 3)
	cleared := hook.AllEntries()[1]
	assert.Equal(t, logrus.InfoLevel, cleared.Level)
	assert.Equal(t, EventFilterApplied, cleared.Data["event"])
	assert.Equal(t, "alle", cleared.Data["filter_value"])
}

func TestTracker_SearchIsNotRecorded(t *testing.T) {
	logger, hook := test.NewNullLogger()
	reg := prometheus.NewRegistry()
	tr := NewTracker(logger, reg)

	tr.FilterApplied(filter.KeySearch, "pinnwand")

	assert.Equal(t, 0, testutil.CollectAndCount(tr.filterApplied))
	assert.Empty(t, hook.AllEntries())
}

func TestTracker_ReportExported(t *testing.T) {
	logger, hook := test.NewNullLogger()
	reg := prometheus.NewRegistry()
	tr := NewTracker(logger, reg)

	tr.ReportExported(4, "Kostenlos, Mit KI")

	assert.Equal(t, 1.0, testutil.ToFloat64(tr.reportExported))
	assert.Equal(t, 1, testutil.CollectAndCount(tr.reportTools))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, EventReportExported, entry.Data["event"])
	assert.Equal(t, 4, entry.Data["tools_count"])
	assert.Equal(t, "Kostenlos, Mit KI", entry.Data["active_filters"])
}
