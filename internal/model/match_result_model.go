package model

// MatchResult is one row returned by the get_benchmark_scores database
// function. The function emits one row per talent variable, so a single
// employee appears multiple times with the same final_match_rate.
type MatchResult struct {
	EmployeeID     string  `gorm:"column:employee_id" json:"employee_id"`
	Fullname       string  `gorm:"column:fullname" json:"fullname"`
	Position       string  `gorm:"column:position" json:"position"`
	Role           string  `gorm:"column:role" json:"role"`
	FinalMatchRate float64 `gorm:"column:final_match_rate" json:"final_match_rate"`
	TgvName        string  `gorm:"column:tgv_name" json:"tgv_name"`
	TvName         string  `gorm:"column:tv_name" json:"tv_name"`
	BaselineScore  float64 `gorm:"column:baseline_score" json:"baseline_score"`
	UserScore      float64 `gorm:"column:user_score" json:"user_score"`
	TvMatchRate    float64 `gorm:"column:tv_match_rate" json:"tv_match_rate"`
	TgvMatchRate   float64 `gorm:"column:tgv_match_rate" json:"tgv_match_rate"`
}
