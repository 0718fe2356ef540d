package model

type Employee struct {
	EmployeeID string `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	Fullname   string `gorm:"column:fullname" json:"fullname"`
	Position   string `gorm:"column:position" json:"position"`
}

func (e *Employee) TableName() string {
	return "employees"
}
