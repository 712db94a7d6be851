// Package analytics provides the engagement-series source behind the
// dashboard's chart. Real platform analytics are not integrated; the
// interface exists so a real source can be dropped in without touching the
// service or handlers.
package analytics

import (
	"context"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/projection"
)

// Source yields a per-day engagement series for an owner, most recent day
// last. Implementations must be deterministic for a given anchor day so the
// chart is stable across reloads and tests.
type Source interface {
	Series(ctx context.Context, ownerID string, days int) ([]models.AnalyticsDataPoint, error)
}

// StaticSource serves a fixed weekly engagement pattern, cycled across the
// requested window and dated relative to the anchor. Owner id does not
// change the figures; every demo account sees the same curve.
type StaticSource struct {
	anchor func() time.Time
}

func NewStaticSource() *StaticSource {
	return &StaticSource{anchor: time.Now}
}

// NewStaticSourceAt pins the anchor day, for tests.
func NewStaticSourceAt(anchor time.Time) *StaticSource {
	return &StaticSource{anchor: func() time.Time { return anchor }}
}

var weeklyPattern = []models.AnalyticsDataPoint{
	{Likes: 45, Comments: 12, Shares: 5},
	{Likes: 38, Comments: 8, Shares: 3},
	{Likes: 62, Comments: 15, Shares: 8},
	{Likes: 43, Comments: 9, Shares: 4},
	{Likes: 54, Comments: 11, Shares: 7},
	{Likes: 74, Comments: 18, Shares: 12},
	{Likes: 82, Comments: 24, Shares: 15},
}

func (s *StaticSource) Series(ctx context.Context, ownerID string, days int) ([]models.AnalyticsDataPoint, error) {
	if days <= 0 {
		days = len(weeklyPattern)
	}

	end := s.anchor()
	series := make([]models.AnalyticsDataPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		point := weeklyPattern[(days-1-i)%len(weeklyPattern)]
		point.Date = day.Local().Format(projection.DayKeyFormat)
		series = append(series, point)
	}
	return series, nil
}
