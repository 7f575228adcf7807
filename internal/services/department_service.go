package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"registro/internal/models"
	"registro/internal/repository"
)

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameRequired = errors.New("name is required")
	ErrDepartmentExists       = errors.New("department already exists")
)

// DepartmentService handles department business logic.
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// List returns all departments ordered by name.
func (s *DepartmentService) List() ([]models.Department, error) {
	return s.departmentRepo.List()
}

// Create stores a new department.
func (s *DepartmentService) Create(name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDepartmentNameRequired
	}

	department := &models.Department{Name: name}
	if err := s.departmentRepo.Create(department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return department, nil
}

// Delete removes a department. Its employees stay, unassigned.
func (s *DepartmentService) Delete(id uint64) error {
	if _, err := s.departmentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to find department: %w", err)
	}
	if err := s.departmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
