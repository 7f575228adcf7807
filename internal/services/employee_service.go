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
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeNameRequired  = errors.New("name is required")
	ErrEmployeeEmailRequired = errors.New("email is required")
	ErrEmailTaken            = errors.New("email already in use")
)

// EmployeeService handles employee business logic.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// EmployeeInput carries the employee form fields. Phone, department and
// position are optional; salary defaults to zero.
type EmployeeInput struct {
	Name         string
	Email        string
	Phone        *string
	Salary       float64
	DepartmentID *uint64
	PositionID   *uint64
}

// List returns all employees, newest first.
func (s *EmployeeService) List() ([]models.Employee, error) {
	return s.employeeRepo.List()
}

// Get returns one employee with its references.
func (s *EmployeeService) Get(id uint64) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

// Create stores a new employee. Email uniqueness is a hard invariant:
// a duplicate is rejected, never overwritten.
func (s *EmployeeService) Create(input EmployeeInput) (*models.Employee, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, ErrEmployeeNameRequired
	}
	if email == "" {
		return nil, ErrEmployeeEmailRequired
	}

	if err := s.checkEmailFree(email, 0); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:         name,
		Email:        email,
		Phone:        trimPhone(input.Phone),
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
		PositionID:   input.PositionID,
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// Update rewrites an employee's fields. Changing the email to one held
// by a different employee is rejected.
func (s *EmployeeService) Update(id uint64, input EmployeeInput) (*models.Employee, error) {
	employee, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, ErrEmployeeNameRequired
	}
	if email == "" {
		return nil, ErrEmployeeEmailRequired
	}

	if err := s.checkEmailFree(email, id); err != nil {
		return nil, err
	}

	employee.Name = name
	employee.Email = email
	employee.Phone = trimPhone(input.Phone)
	employee.Salary = input.Salary
	employee.DepartmentID = input.DepartmentID
	employee.PositionID = input.PositionID
	employee.Department = nil
	employee.Position = nil

	if err := s.employeeRepo.Update(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}

// Delete removes an employee.
func (s *EmployeeService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.employeeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) checkEmailFree(email string, selfID uint64) error {
	existing, err := s.employeeRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

func trimPhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
