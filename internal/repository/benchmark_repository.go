package repository

import (
	"database/sql"

	"github.com/hafidzramadhan/talent-match/internal/model"
	"github.com/hafidzramadhan/talent-match/internal/util"
	"gorm.io/gorm"
)

type BenchmarkParams struct {
	RoleName             string
	JobLevel             string
	RolePurpose          string
	BenchmarkEmployeeIDs []string
}

type BenchmarkRepository struct {
	db *gorm.DB
	// sqlPath points at the on-disk talent_match.sql template. When empty the
	// stored function is called directly.
	sqlPath string
}

func NewBenchmarkRepository(db *gorm.DB, sqlPath string) *BenchmarkRepository {
	return &BenchmarkRepository{db: db, sqlPath: sqlPath}
}

// GetBenchmarkScores runs the external scoring function and scans its rows.
// The ranking math lives entirely in the database; this only binds parameters.
func (r *BenchmarkRepository) GetBenchmarkScores(p BenchmarkParams) ([]model.MatchResult, error) {
	var rows []model.MatchResult

	if r.sqlPath != "" {
		sqlText, err := util.LoadSQL(r.sqlPath)
		if err != nil {
			return nil, err
		}
		err = r.db.Raw(sqlText,
			sql.Named("role_name", p.RoleName),
			sql.Named("job_level", p.JobLevel),
			sql.Named("role_purpose", p.RolePurpose),
			sql.Named("benchmark_employee_ids", p.BenchmarkEmployeeIDs),
		).Scan(&rows).Error
		return rows, err
	}

	err := r.db.Raw(`
        SELECT *
        FROM get_benchmark_scores(@p_employee_ids, @p_job_level, @p_role_name, @p_role_purpose)`,
		sql.Named("p_employee_ids", p.BenchmarkEmployeeIDs),
		sql.Named("p_job_level", p.JobLevel),
		sql.Named("p_role_name", p.RoleName),
		sql.Named("p_role_purpose", p.RolePurpose),
	).Scan(&rows).Error
	return rows, err
}
