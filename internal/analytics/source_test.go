package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_Deterministic(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	s := NewStaticSourceAt(anchor)
	ctx := context.Background()

	first, err := s.Series(ctx, "alice", 7)
	require.NoError(t, err)
	second, err := s.Series(ctx, "bob", 7)
	require.NoError(t, err)

	assert.Equal(t, first, second, "series must not depend on owner or call count")
}

func TestStaticSource_DatesEndAtAnchor(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	s := NewStaticSourceAt(anchor)

	series, err := s.Series(context.Background(), "alice", 3)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "2026-08-30", series[0].Date)
	assert.Equal(t, "2026-08-31", series[1].Date)
	assert.Equal(t, "2026-09-01", series[2].Date)
}

func TestStaticSource_DefaultWindow(t *testing.T) {
	s := NewStaticSourceAt(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local))

	series, err := s.Series(context.Background(), "alice", 0)
	require.NoError(t, err)
	assert.Len(t, series, 7)
}
