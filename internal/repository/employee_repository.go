package repository

import (
	"database/sql"

	"github.com/hafidzramadhan/talent-match/internal/model"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db}
}

// FindByRole returns employees whose position name contains the role name,
// case-insensitive, for the benchmark selection control.
func (r *EmployeeRepository) FindByRole(role string, page, pageSize int) ([]model.Employee, int64, error) {
	pattern := "%" + role + "%"

	var total int64
	err := r.db.Raw(`
        SELECT COUNT(*)
        FROM employees e
        JOIN dim_positions p ON p.id = e.position_id
        WHERE p.name ILIKE @role`,
		sql.Named("role", pattern),
	).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var employees []model.Employee
	err = r.db.Raw(`
        SELECT e.employee_id, e.fullname, p.name AS position
        FROM employees e
        JOIN dim_positions p ON p.id = e.position_id
        WHERE p.name ILIKE @role
        ORDER BY e.fullname, e.employee_id
        LIMIT @limit OFFSET @offset`,
		sql.Named("role", pattern),
		sql.Named("limit", pageSize),
		sql.Named("offset", (page-1)*pageSize),
	).Scan(&employees).Error
	return employees, total, err
}

type ConnectionStatus struct {
	Version        string `json:"version"`
	EmployeesTable bool   `json:"employees_table"`
	EmployeeCount  int64  `json:"employee_count"`
}

// CheckConnection is the ops smoke test: server version, employees table
// presence, row count.
func (r *EmployeeRepository) CheckConnection() (*ConnectionStatus, error) {
	status := &ConnectionStatus{}

	if err := r.db.Raw(`SELECT version()`).Scan(&status.Version).Error; err != nil {
		return nil, err
	}

	var tables int64
	err := r.db.Raw(`
        SELECT COUNT(*)
        FROM information_schema.tables
        WHERE table_name = 'employees'`,
	).Scan(&tables).Error
	if err != nil {
		return nil, err
	}
	status.EmployeesTable = tables > 0

	if status.EmployeesTable {
		if err := r.db.Raw(`SELECT COUNT(*) FROM employees`).Scan(&status.EmployeeCount).Error; err != nil {
			return nil, err
		}
	}
	return status, nil
}
