package repository

import (
	"registro/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ImportEmployee is one validated spreadsheet row waiting for the bulk
// commit. Department and position arrive as names and are resolved to
// rows inside the commit transaction.
type ImportEmployee struct {
	Employee       *models.Employee
	DepartmentName string
	PositionName   string
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(employee *models.Employee) error

	// FindByID finds an employee by ID with its references preloaded
	FindByID(id uint64) (*models.Employee, error)

	// FindByEmail finds an employee by email
	FindByEmail(email string) (*models.Employee, error)

	// List retrieves all employees, newest first, references preloaded
	List() ([]models.Employee, error)

	// ListEmails retrieves every stored employee email
	ListEmails() ([]string, error)

	// Update updates an employee
	Update(employee *models.Employee) error

	// Delete deletes an employee
	Delete(id uint64) error

	// ImportBatch inserts all pending rows in a single transaction,
	// creating referenced departments and positions when absent.
	ImportBatch(batch []ImportEmployee) error
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(department *models.Department) error
	FindByID(id uint64) (*models.Department, error)
	List() ([]models.Department, error)

	// Delete removes the department and nulls referencing employees'
	// department_id in the same transaction.
	Delete(id uint64) error
}

// PositionRepository defines the interface for position data access
type PositionRepository interface {
	Create(position *models.Position) error
	FindByID(id uint64) (*models.Position, error)
	List() ([]models.Position, error)

	// Delete removes the position and nulls referencing employees'
	// position_id in the same transaction.
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error

	// FindByID finds a project by ID with its members preloaded
	FindByID(id uint64) (*models.Project, error)

	// List retrieves all projects with members preloaded
	List() ([]models.Project, error)

	// AddEmployee links an employee to a project; adding an existing
	// member again is a no-op.
	AddEmployee(project *models.Project, employee *models.Employee) error

	// RemoveEmployee unlinks an employee; removing a non-member is a no-op.
	RemoveEmployee(project *models.Project, employee *models.Employee) error
}
