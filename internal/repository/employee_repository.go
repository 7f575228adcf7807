package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"registro/internal/models"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// FindByID finds an employee by ID with department and position preloaded
func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.
		Preload("Department").
		Preload("Position").
		First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail finds an employee by email
func (r *GormEmployeeRepository) FindByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List retrieves all employees, newest first
func (r *GormEmployeeRepository) List() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Preload("Department").
		Preload("Position").
		Order("id DESC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// ListEmails retrieves every stored employee email
func (r *GormEmployeeRepository) ListEmails() ([]string, error) {
	var emails []string
	if err := r.db.Model(&models.Employee{}).Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// Update updates an employee
func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee
func (r *GormEmployeeRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Employee{}, id).Error
}

// ImportBatch inserts all pending rows atomically. Department and
// position names are resolved to ids first, creating missing rows, so a
// failure anywhere rolls back the entire import.
func (r *GormEmployeeRepository) ImportBatch(batch []ImportEmployee) error {
	if len(batch) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		departments := make(map[string]uint64)
		positions := make(map[string]uint64)

		for _, pending := range batch {
			if name := strings.TrimSpace(pending.DepartmentName); name != "" {
				id, ok := departments[name]
				if !ok {
					var department models.Department
					err := tx.Where("name = ?", name).
						FirstOrCreate(&department, models.Department{Name: name}).Error
					if err != nil {
						return fmt.Errorf("failed to resolve department %q: %w", name, err)
					}
					id = department.ID
					departments[name] = id
				}
				departmentID := id
				pending.Employee.DepartmentID = &departmentID
			}

			if title := strings.TrimSpace(pending.PositionName); title != "" {
				id, ok := positions[title]
				if !ok {
					var position models.Position
					err := tx.Where("title = ?", title).
						FirstOrCreate(&position, models.Position{Title: title}).Error
					if err != nil {
						return fmt.Errorf("failed to resolve position %q: %w", title, err)
					}
					id = position.ID
					positions[title] = id
				}
				positionID := id
				pending.Employee.PositionID = &positionID
			}
		}

		employees := make([]*models.Employee, len(batch))
		for i, pending := range batch {
			employees[i] = pending.Employee
		}

		if err := tx.Create(&employees).Error; err != nil {
			return fmt.Errorf("failed to insert imported employees: %w", err)
		}
		return nil
	})
}
