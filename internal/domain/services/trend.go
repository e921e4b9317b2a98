package services

import (
	"sort"

	"pcimon/internal/domain/models"
)

// BuildTrendSeries returns a copy of the trend points sorted ascending by
// date. Input is assumed pre-sorted upstream; the sort guards against a
// shuffled snapshot. Dates are ISO calendar dates, so string order equals
// chronological order.
func BuildTrendSeries(points []models.TrendPoint) []models.TrendPoint {
	series := make([]models.TrendPoint, len(points))
	copy(series, points)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// AttachEvents positions each event on the series at the compliance score of
// the trend point with an exactly matching date. Events without a matching
// point are dropped silently; there is no interpolation.
func AttachEvents(series []models.TrendPoint, events []models.Event) []models.Annotation {
	scoreByDate := make(map[string]float64, len(series))
	for _, p := range series {
		if _, ok := scoreByDate[p.Date]; !ok {
			scoreByDate[p.Date] = p.ComplianceScore
		}
	}

	annotations := make([]models.Annotation, 0, len(events))
	for _, event := range events {
		score, ok := scoreByDate[event.Date]
		if !ok {
			continue
		}
		annotations = append(annotations, models.Annotation{
			Date:  event.Date,
			Score: score,
			Label: event.Event,
		})
	}
	return annotations
}

// BuildPassFailSeries splits the trend points into parallel passing/failing
// sequences indexed identically to the date axis, for a stacked chart.
func BuildPassFailSeries(points []models.TrendPoint) models.PassFailSeries {
	series := models.PassFailSeries{
		Dates:   make([]string, 0, len(points)),
		Passing: make([]int, 0, len(points)),
		Failing: make([]int, 0, len(points)),
	}
	for _, p := range points {
		series.Dates = append(series.Dates, p.Date)
		series.Passing = append(series.Passing, p.Passing)
		series.Failing = append(series.Failing, p.Failing)
	}
	return series
}

// BuildTrendReport assembles the full trend analysis view-model
func BuildTrendReport(trend *models.TrendData) *models.TrendReport {
	series := BuildTrendSeries(trend.TrendData)
	return &models.TrendReport{
		Series:      series,
		Annotations: AttachEvents(series, trend.Events),
		PassFail:    BuildPassFailSeries(series),
		Events:      trend.Events,
	}
}
