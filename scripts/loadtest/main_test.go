package main

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRecord(t *testing.T) {
	st := &stats{}
	st.minLat.Store(math.MaxInt64)

	st.record(300, true)
	st.record(100, true)
	st.record(0, false)

	assert.Equal(t, int64(3), st.total.Load())
	assert.Equal(t, int64(2), st.success.Load())
	assert.Equal(t, int64(1), st.failed.Load())
	assert.Equal(t, int64(100), st.minLat.Load())
	assert.Equal(t, int64(300), st.maxLat.Load())
	assert.Equal(t, int64(200), st.avgLatency())
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("LOADTEST_BASE_URL", "http://api:9000/")
	t.Setenv("LOADTEST_CONCURRENCY", "")
	t.Setenv("LOADTEST_DURATION", "3")
	t.Setenv("LOADTEST_TARGET_RPS", "")

	s, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://api:9000", s.BaseURL)
	assert.Equal(t, 20, s.Concurrency)
	assert.Equal(t, 3*time.Second, s.Duration)
	assert.Equal(t, 200, s.TargetRPS)
}
