package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.RecordConversion("to_ranges")
	m.RecordConversion("to_ranges")
	m.RecordCollisions(3)
	m.RecordCollisions(0)
	m.RecordUnderMinimum("sum", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScheduleConversions.WithLabelValues("to_ranges")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CollisionsFound))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.UnderMinimumSections.WithLabelValues("sum")))
}

func TestRecorders_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordConversion("to_cells")
		m.RecordCollisions(1)
		m.RecordUnderMinimum("longest", 1)
	})
}
