package repository

import (
	"gorm.io/gorm"

	"registro/internal/models"
)

// GormDepartmentRepository is a GORM implementation of DepartmentRepository
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

func (r *GormDepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

func (r *GormDepartmentRepository) FindByID(id uint64) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *GormDepartmentRepository) List() ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Delete removes the department. Employees that referenced it keep
// existing with a nulled department_id; the update and the delete commit
// together.
func (r *GormDepartmentRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Employee{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Department{}, id).Error
	})
}
