package repository

import (
	"gorm.io/gorm"

	"registro/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("employees.name")
		}).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Employees").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AddEmployee links the employee to the project. The join insert is an
// upsert on the composite key, so re-adding a member changes nothing.
func (r *GormProjectRepository) AddEmployee(project *models.Project, employee *models.Employee) error {
	return r.db.Model(project).Association("Employees").Append(employee)
}

// RemoveEmployee unlinks the employee. Deleting an absent link matches
// zero join rows and is a no-op.
func (r *GormProjectRepository) RemoveEmployee(project *models.Project, employee *models.Employee) error {
	return r.db.Model(project).Association("Employees").Delete(employee)
}
