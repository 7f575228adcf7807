package dto

import (
	"time"

	"registro/internal/models"
	"registro/internal/utils"
)

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Salary        float64   `json:"salary"`
	SalaryDisplay string    `json:"salary_display"`
	Department    *string   `json:"department"`
	Position      *string   `json:"position"`
	DepartmentID  *uint64   `json:"department_id"`
	PositionID    *uint64   `json:"position_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToEmployeeDTO converts an employee model to DTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:            employee.ID,
		Name:          employee.Name,
		Email:         employee.Email,
		Phone:         employee.Phone,
		Salary:        employee.Salary,
		SalaryDisplay: utils.FormatBRL(employee.Salary),
		DepartmentID:  employee.DepartmentID,
		PositionID:    employee.PositionID,
		CreatedAt:     employee.CreatedAt,
		UpdatedAt:     employee.UpdatedAt,
	}
	if employee.Department != nil {
		dto.Department = &employee.Department.Name
	}
	if employee.Position != nil {
		dto.Position = &employee.Position.Title
	}
	return dto
}

// ToEmployeeDTOs converts a slice of employees
func ToEmployeeDTOs(employees []models.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		dtos[i] = ToEmployeeDTO(employee)
	}
	return dtos
}
