package report

import (
	"sort"

	"github.com/hafidzramadhan/talent-match/internal/model"
)

// histogramBins matches the dashboard's fixed bin count for the final match
// rate distribution.
const histogramBins = 12

type RankedEmployee struct {
	EmployeeID     string  `json:"employee_id"`
	Fullname       string  `json:"fullname"`
	Position       string  `json:"position"`
	FinalMatchRate float64 `json:"final_match_rate"`
}

type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

type TgvAverage struct {
	TgvName      string  `json:"tgv_name"`
	AvgMatchRate float64 `json:"avg_match_rate"`
}

// RadarChart holds a closed polar series: the first point is repeated at the
// end so the polygon renders as a full circle.
type RadarChart struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

type Charts struct {
	MatchRateHistogram []HistogramBin `json:"match_rate_histogram"`
	TgvAverages        []TgvAverage   `json:"tgv_averages"`
	TopCandidateRadar  RadarChart     `json:"top_candidate_radar"`
}

type Insights struct {
	TopEmployeeID   string   `json:"top_employee_id"`
	TopFullname     string   `json:"top_fullname"`
	TopPosition     string   `json:"top_position"`
	TopMatchRate    float64  `json:"top_match_rate"`
	TopTgvNames     []string `json:"top_tgv_names"`
	MedianMatchRate float64  `json:"median_match_rate"`
}

type Report struct {
	Ranking  []RankedEmployee `json:"ranking"`
	Charts   Charts           `json:"charts"`
	Insights Insights         `json:"insights"`
}

// Build computes every dashboard payload from the raw scoring rows. The rows
// carry one entry per talent variable, so employees are deduplicated first.
func Build(rows []model.MatchResult) *Report {
	ranking := RankEmployees(rows)
	if len(ranking) == 0 {
		return &Report{Ranking: ranking}
	}

	rates := make([]float64, len(ranking))
	for i, e := range ranking {
		rates[i] = e.FinalMatchRate
	}

	top := ranking[0]

	return &Report{
		Ranking: ranking,
		Charts: Charts{
			MatchRateHistogram: Histogram(rates, histogramBins),
			TgvAverages:        TgvAverages(rows),
			TopCandidateRadar:  Radar(rows, top.EmployeeID),
		},
		Insights: Insights{
			TopEmployeeID:   top.EmployeeID,
			TopFullname:     top.Fullname,
			TopPosition:     top.Position,
			TopMatchRate:    top.FinalMatchRate,
			TopTgvNames:     tgvNamesFor(rows, top.EmployeeID),
			MedianMatchRate: Median(rates),
		},
	}
}

// RankEmployees collapses the per-TV rows to one entry per employee and sorts
// by descending final match rate. Ties keep arrival order.
func RankEmployees(rows []model.MatchResult) []RankedEmployee {
	seen := make(map[string]bool, len(rows))
	ranked := make([]RankedEmployee, 0, len(rows))
	for _, r := range rows {
		if seen[r.EmployeeID] {
			continue
		}
		seen[r.EmployeeID] = true
		ranked = append(ranked, RankedEmployee{
			EmployeeID:     r.EmployeeID,
			Fullname:       r.Fullname,
			Position:       r.Position,
			FinalMatchRate: r.FinalMatchRate,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalMatchRate > ranked[j].FinalMatchRate
	})
	return ranked
}

// Histogram buckets the values into a fixed number of equal-width bins over
// [min, max]. A degenerate range collapses to a single bin.
func Histogram(values []float64, bins int) []HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []HistogramBin{{From: lo, To: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i] = HistogramBin{From: lo + float64(i)*width, To: lo + float64(i+1)*width}
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			// max value lands in the last bin
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// TgvAverages computes the mean tgv_match_rate per TGV across all rows,
// sorted by descending average. Ties break on name for a stable payload.
func TgvAverages(rows []model.MatchResult) []TgvAverage {
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		if _, ok := counts[r.TgvName]; !ok {
			order = append(order, r.TgvName)
		}
		sums[r.TgvName] += r.TgvMatchRate
		counts[r.TgvName]++
	}

	out := make([]TgvAverage, 0, len(order))
	for _, name := range order {
		out = append(out, TgvAverage{
			TgvName:      name,
			AvgMatchRate: sums[name] / float64(counts[name]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgMatchRate != out[j].AvgMatchRate {
			return out[i].AvgMatchRate > out[j].AvgMatchRate
		}
		return out[i].TgvName < out[j].TgvName
	})
	return out
}

// Radar builds the per-TGV mean tv_match_rate series for one employee,
// categories in first-seen order, closed for rendering.
func Radar(rows []model.MatchResult, employeeID string) RadarChart {
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		if r.EmployeeID != employeeID {
			continue
		}
		if _, ok := counts[r.TgvName]; !ok {
			order = append(order, r.TgvName)
		}
		sums[r.TgvName] += r.TvMatchRate
		counts[r.TgvName]++
	}
	if len(order) == 0 {
		return RadarChart{}
	}

	values := make([]float64, 0, len(order)+1)
	for _, name := range order {
		values = append(values, sums[name]/float64(counts[name]))
	}

	categories := append(append(make([]string, 0, len(order)+1), order...), order[0])
	values = append(values, values[0])
	return RadarChart{Categories: categories, Values: values}
}

// Median over employee-level rates; the caller guarantees a non-empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func tgvNamesFor(rows []model.MatchResult, employeeID string) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, r := range rows {
		if r.EmployeeID != employeeID || seen[r.TgvName] {
			continue
		}
		seen[r.TgvName] = true
		names = append(names, r.TgvName)
	}
	return names
}
