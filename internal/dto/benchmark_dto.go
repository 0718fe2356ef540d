package dto

import (
	"github.com/hafidzramadhan/talent-match/internal/model"
	"github.com/hafidzramadhan/talent-match/internal/report"
)

type BenchmarkRequest struct {
	RoleName             string   `json:"role_name" validate:"required"`
	JobLevel             string   `json:"job_level" validate:"required"`
	RolePurpose          string   `json:"role_purpose" validate:"required"`
	BenchmarkEmployeeIDs []string `json:"benchmark_employee_ids" validate:"required,min=1,max=3,dive,required"`
}

// EmployeeOptionDTO is one entry of the benchmark selection control. Label is
// the display form "Fullname (8-char id prefix)".
type EmployeeOptionDTO struct {
	EmployeeID string `json:"employee_id"`
	Fullname   string `json:"fullname"`
	Position   string `json:"position"`
	Label      string `json:"label"`
}

type BenchmarkReportDTO struct {
	JobVacancyID string                  `json:"job_vacancy_id"`
	RoleName     string                  `json:"role_name"`
	JobLevel     string                  `json:"job_level"`
	JobProfile   string                  `json:"job_profile"`
	Ranking      []report.RankedEmployee `json:"ranking"`
	Details      []model.MatchResult     `json:"details"`
	Charts       report.Charts           `json:"charts"`
	Insights     report.Insights         `json:"insights"`
}
