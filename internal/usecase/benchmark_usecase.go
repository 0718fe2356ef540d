package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hafidzramadhan/talent-match/internal/dto"
	"github.com/hafidzramadhan/talent-match/internal/logger"
	"github.com/hafidzramadhan/talent-match/internal/model"
	"github.com/hafidzramadhan/talent-match/internal/report"
	"github.com/hafidzramadhan/talent-match/internal/repository"
	"github.com/hafidzramadhan/talent-match/internal/response"
	"github.com/hafidzramadhan/talent-match/internal/service"
	"github.com/hafidzramadhan/talent-match/internal/util"
)

const MaxBenchmarkEmployees = 3

type EmployeeRepositoryInterface interface {
	FindByRole(role string, page, pageSize int) ([]model.Employee, int64, error)
	CheckConnection() (*repository.ConnectionStatus, error)
}

type BenchmarkRepositoryInterface interface {
	GetBenchmarkScores(p repository.BenchmarkParams) ([]model.MatchResult, error)
}

type BenchmarkUsecase struct {
	employeeRepo  EmployeeRepositoryInterface
	benchmarkRepo BenchmarkRepositoryInterface
	groq          service.GroqServiceInterface
}

func NewBenchmarkUsecase(employeeRepo EmployeeRepositoryInterface, benchmarkRepo BenchmarkRepositoryInterface, groq service.GroqServiceInterface) *BenchmarkUsecase {
	return &BenchmarkUsecase{employeeRepo: employeeRepo, benchmarkRepo: benchmarkRepo, groq: groq}
}

// LookupEmployees feeds the benchmark selection control. An empty result is
// not an error; the UI shows a "no employees found" notice instead.
func (uc *BenchmarkUsecase) LookupEmployees(role string, page, pageSize int) ([]dto.EmployeeOptionDTO, *response.Pagination, error) {
	role = util.NormalizeRoleName(role)
	if role == "" {
		return nil, nil, util.NewFormError("role name is required", map[string]string{
			"role": "role name must not be empty",
		})
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	employees, total, err := uc.employeeRepo.FindByRole(role, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch employees for role: %w", err)
	}

	options := make([]dto.EmployeeOptionDTO, 0, len(employees))
	for _, e := range employees {
		options = append(options, dto.EmployeeOptionDTO{
			EmployeeID: e.EmployeeID,
			Fullname:   e.Fullname,
			Position:   e.Position,
			Label:      employeeLabel(e),
		})
	}
	return options, response.NewPagination(page, pageSize, total), nil
}

// RunBenchmark is the whole submission flow: validate, generate the job
// profile text, run the external scoring function, build the report. The
// profile call falling over does not halt the run; the scoring query failing
// does.
func (uc *BenchmarkUsecase) RunBenchmark(ctx context.Context, req dto.BenchmarkRequest) (*dto.BenchmarkReportDTO, error) {
	roleName := util.NormalizeRoleName(req.RoleName)
	jobLevel := util.NormalizeJobLevel(req.JobLevel)
	rolePurpose := util.NormalizeRolePurpose(req.RolePurpose)

	ids := make([]string, 0, len(req.BenchmarkEmployeeIDs))
	for _, id := range req.BenchmarkEmployeeIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	formErrors := map[string]string{}
	if roleName == "" {
		formErrors["role_name"] = "role name must not be empty"
	}
	if jobLevel == "" {
		formErrors["job_level"] = "job level must not be empty"
	}
	if rolePurpose == "" {
		formErrors["role_purpose"] = "role purpose must not be empty"
	}
	if len(ids) < 1 || len(ids) > MaxBenchmarkEmployees {
		formErrors["benchmark_employee_ids"] = fmt.Sprintf("select between 1 and %d benchmark employees", MaxBenchmarkEmployees)
	}
	if len(formErrors) > 0 {
		return nil, util.NewFormError("please fill in all fields and select up to 3 benchmark employees", formErrors)
	}

	// Display label only, never stored.
	jobVacancyID := uuid.NewString()

	jobProfile, err := uc.groq.GenerateJobProfile(ctx, roleName, jobLevel, rolePurpose)
	if err != nil {
		logger.L().WithError(err).Warn("job profile generation failed, using fallback text")
		jobProfile = service.FallbackProfile
	}

	rows, err := uc.benchmarkRepo.GetBenchmarkScores(repository.BenchmarkParams{
		RoleName:             roleName,
		JobLevel:             jobLevel,
		RolePurpose:          rolePurpose,
		BenchmarkEmployeeIDs: ids,
	})
	if err != nil {
		return nil, fmt.Errorf("benchmark scoring query failed: %w", err)
	}

	rep := report.Build(rows)
	return &dto.BenchmarkReportDTO{
		JobVacancyID: jobVacancyID,
		RoleName:     roleName,
		JobLevel:     jobLevel,
		JobProfile:   jobProfile,
		Ranking:      rep.Ranking,
		Details:      rows,
		Charts:       rep.Charts,
		Insights:     rep.Insights,
	}, nil
}

func (uc *BenchmarkUsecase) CheckDatabase() (*repository.ConnectionStatus, error) {
	return uc.employeeRepo.CheckConnection()
}

func employeeLabel(e model.Employee) string {
	id := e.EmployeeID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s (%s)", e.Fullname, id)
}
