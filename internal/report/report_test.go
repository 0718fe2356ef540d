package report

import (
	"testing"

	"github.com/hafidzramadhan/talent-match/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []model.MatchResult {
	// two employees, two TGVs, two TVs each; final_match_rate constant per
	// employee across rows
	return []model.MatchResult{
		{EmployeeID: "emp-2", Fullname: "Budi Santoso", Position: "Data Analyst", FinalMatchRate: 60.5, TgvName: "Cognitive", TvName: "Numerical", BaselineScore: 4.1, UserScore: 3.2, TvMatchRate: 78.0, TgvMatchRate: 74.0},
		{EmployeeID: "emp-2", Fullname: "Budi Santoso", Position: "Data Analyst", FinalMatchRate: 60.5, TgvName: "Cognitive", TvName: "Verbal", BaselineScore: 3.8, UserScore: 2.9, TvMatchRate: 70.0, TgvMatchRate: 74.0},
		{EmployeeID: "emp-2", Fullname: "Budi Santoso", Position: "Data Analyst", FinalMatchRate: 60.5, TgvName: "Drive", TvName: "Ambition", BaselineScore: 4.0, UserScore: 2.0, TvMatchRate: 50.0, TgvMatchRate: 50.0},
		{EmployeeID: "emp-1", Fullname: "Siti Rahma", Position: "Data Analyst", FinalMatchRate: 80.0, TgvName: "Cognitive", TvName: "Numerical", BaselineScore: 4.1, UserScore: 4.0, TvMatchRate: 95.0, TgvMatchRate: 90.0},
		{EmployeeID: "emp-1", Fullname: "Siti Rahma", Position: "Data Analyst", FinalMatchRate: 80.0, TgvName: "Cognitive", TvName: "Verbal", BaselineScore: 3.8, UserScore: 3.3, TvMatchRate: 85.0, TgvMatchRate: 90.0},
		{EmployeeID: "emp-1", Fullname: "Siti Rahma", Position: "Data Analyst", FinalMatchRate: 80.0, TgvName: "Drive", TvName: "Ambition", BaselineScore: 4.0, UserScore: 3.0, TvMatchRate: 75.0, TgvMatchRate: 75.0},
	}
}

func TestRankEmployeesDeduplicatesAndSortsDescending(t *testing.T) {
	ranked := RankEmployees(sampleRows())

	require.Len(t, ranked, 2)
	assert.Equal(t, "emp-1", ranked[0].EmployeeID)
	assert.Equal(t, 80.0, ranked[0].FinalMatchRate)
	assert.Equal(t, "emp-2", ranked[1].EmployeeID)
	assert.Equal(t, 60.5, ranked[1].FinalMatchRate)
}

func TestRankEmployeesKeepsArrivalOrderOnTies(t *testing.T) {
	rows := []model.MatchResult{
		{EmployeeID: "b", FinalMatchRate: 70.0},
		{EmployeeID: "a", FinalMatchRate: 70.0},
		{EmployeeID: "c", FinalMatchRate: 70.0},
	}
	ranked := RankEmployees(rows)

	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].EmployeeID)
	assert.Equal(t, "a", ranked[1].EmployeeID)
	assert.Equal(t, "c", ranked[2].EmployeeID)
}

func TestRankEmployeesEmptyInput(t *testing.T) {
	assert.Empty(t, RankEmployees(nil))
}

func TestHistogramBucketsAllValues(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	bins := Histogram(values, 12)

	require.Len(t, bins, 12)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(values), total)
	assert.Equal(t, 10.0, bins[0].From)
	assert.Equal(t, 100.0, bins[len(bins)-1].To)
	// max value must land in the last bin, not overflow it
	assert.Equal(t, 1, bins[len(bins)-1].Count)
}

func TestHistogramDegenerateRange(t *testing.T) {
	bins := Histogram([]float64{55, 55, 55}, 12)

	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, 55.0, bins[0].From)
	assert.Equal(t, 55.0, bins[0].To)
}

func TestHistogramEmpty(t *testing.T) {
	assert.Nil(t, Histogram(nil, 12))
	assert.Nil(t, Histogram([]float64{1}, 0))
}

func TestTgvAveragesSortedDescending(t *testing.T) {
	avgs := TgvAverages(sampleRows())

	require.Len(t, avgs, 2)
	assert.Equal(t, "Cognitive", avgs[0].TgvName)
	assert.InDelta(t, 82.0, avgs[0].AvgMatchRate, 1e-9) // (74+74+90+90)/4
	assert.Equal(t, "Drive", avgs[1].TgvName)
	assert.InDelta(t, 62.5, avgs[1].AvgMatchRate, 1e-9) // (50+75)/2
}

func TestRadarClosesTheSeries(t *testing.T) {
	radar := Radar(sampleRows(), "emp-1")

	require.Len(t, radar.Categories, 3)
	require.Len(t, radar.Values, 3)
	assert.Equal(t, radar.Categories[0], radar.Categories[len(radar.Categories)-1])
	assert.Equal(t, radar.Values[0], radar.Values[len(radar.Values)-1])
	assert.Equal(t, []string{"Cognitive", "Drive", "Cognitive"}, radar.Categories)
	assert.InDelta(t, 90.0, radar.Values[0], 1e-9) // (95+85)/2
	assert.InDelta(t, 75.0, radar.Values[1], 1e-9)
}

func TestRadarUnknownEmployee(t *testing.T) {
	radar := Radar(sampleRows(), "nobody")
	assert.Empty(t, radar.Categories)
	assert.Empty(t, radar.Values)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 70.25, Median([]float64{80.0, 60.5}))
	assert.Equal(t, 60.5, Median([]float64{80.0, 60.5, 40.0}))
	assert.Equal(t, 0.0, Median(nil))
}

func TestBuildFullReport(t *testing.T) {
	rep := Build(sampleRows())

	require.Len(t, rep.Ranking, 2)
	assert.Equal(t, "emp-1", rep.Insights.TopEmployeeID)
	assert.Equal(t, "Siti Rahma", rep.Insights.TopFullname)
	assert.Equal(t, 80.0, rep.Insights.TopMatchRate)
	assert.Equal(t, []string{"Cognitive", "Drive"}, rep.Insights.TopTgvNames)
	assert.Equal(t, 70.25, rep.Insights.MedianMatchRate)

	assert.NotEmpty(t, rep.Charts.MatchRateHistogram)
	assert.NotEmpty(t, rep.Charts.TgvAverages)
	assert.NotEmpty(t, rep.Charts.TopCandidateRadar.Categories)
}

func TestBuildEmptyRows(t *testing.T) {
	rep := Build(nil)

	assert.Empty(t, rep.Ranking)
	assert.Empty(t, rep.Charts.MatchRateHistogram)
	assert.Empty(t, rep.Insights.TopEmployeeID)
}
