package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewOrganizer(reg)
	require.NoError(t, err)

	m.Classified("pattern", 3)
	m.Classified("pattern", 0)
	m.Moved("moved")
	m.Moved("moved")
	m.Moved("failed")
	m.AIFallback("pick")

	assert.Equal(t, float64(3), testutil.ToFloat64(m.classified.WithLabelValues("pattern")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.moved.WithLabelValues("moved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.moved.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.aiFallbacks.WithLabelValues("pick")))
}

func TestOrganizer_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewOrganizer(reg)
	require.NoError(t, err)

	_, err = NewOrganizer(reg)
	assert.Error(t, err)
}

func TestOrganizer_NilIsNoop(t *testing.T) {
	var m *Organizer
	assert.NotPanics(t, func() {
		m.Classified("ai", 1)
		m.Moved("moved")
		m.AIFallback("describe")
	})
}
