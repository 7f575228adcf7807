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
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("name is required")
)

// ProjectService handles project business logic, including the
// many-to-many employee assignment.
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	employeeRepo repository.EmployeeRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, employeeRepo repository.EmployeeRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// List returns all projects with their members.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.List()
}

// Get returns one project with its members.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create stores a new project.
func (s *ProjectService) Create(name string, description *string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	project := &models.Project{Name: name, Description: description}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// AddEmployee assigns an employee to a project. Assigning an existing
// member again is a no-op.
func (s *ProjectService) AddEmployee(projectID, employeeID uint64) error {
	project, employee, err := s.resolvePair(projectID, employeeID)
	if err != nil {
		return err
	}
	if err := s.projectRepo.AddEmployee(project, employee); err != nil {
		return fmt.Errorf("failed to add employee to project: %w", err)
	}
	return nil
}

// RemoveEmployee unassigns an employee from a project. Removing a
// non-member is a no-op.
func (s *ProjectService) RemoveEmployee(projectID, employeeID uint64) error {
	project, employee, err := s.resolvePair(projectID, employeeID)
	if err != nil {
		return err
	}
	if err := s.projectRepo.RemoveEmployee(project, employee); err != nil {
		return fmt.Errorf("failed to remove employee from project: %w", err)
	}
	return nil
}

func (s *ProjectService) resolvePair(projectID, employeeID uint64) (*models.Project, *models.Employee, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEmployeeNotFound
		}
		return nil, nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return project, employee, nil
}
