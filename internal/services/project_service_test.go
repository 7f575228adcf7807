package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"registro/internal/models"
	"registro/internal/repository"
)

func setupProjectTest(t *testing.T) (*ProjectService, *EmployeeService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.Position{},
		&models.Employee{},
		&models.Project{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	employeeRepo := repository.NewEmployeeRepository(db)
	return NewProjectService(repository.NewProjectRepository(db), employeeRepo),
		NewEmployeeService(employeeRepo)
}

func TestProjectService_AddEmployee(t *testing.T) {
	projects, employees := setupProjectTest(t)

	project, err := projects.Create("Apollo", nil)
	require.NoError(t, err)
	ana, err := employees.Create(EmployeeInput{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	t.Run("adding twice keeps a single membership", func(t *testing.T) {
		require.NoError(t, projects.AddEmployee(project.ID, ana.ID))
		require.NoError(t, projects.AddEmployee(project.ID, ana.ID))

		loaded, err := projects.Get(project.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Employees, 1)
	})

	t.Run("unknown project or employee", func(t *testing.T) {
		assert.ErrorIs(t, projects.AddEmployee(9999, ana.ID), ErrProjectNotFound)
		assert.ErrorIs(t, projects.AddEmployee(project.ID, 9999), ErrEmployeeNotFound)
	})
}

func TestProjectService_RemoveEmployee(t *testing.T) {
	projects, employees := setupProjectTest(t)

	project, err := projects.Create("Apollo", nil)
	require.NoError(t, err)
	ana, err := employees.Create(EmployeeInput{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	bea, err := employees.Create(EmployeeInput{Name: "Bea", Email: "bea@x.com"})
	require.NoError(t, err)

	require.NoError(t, projects.AddEmployee(project.ID, ana.ID))

	t.Run("removing a non-member is a no-op", func(t *testing.T) {
		require.NoError(t, projects.RemoveEmployee(project.ID, bea.ID))

		loaded, err := projects.Get(project.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Employees, 1)
	})

	t.Run("removing a member unlinks it", func(t *testing.T) {
		require.NoError(t, projects.RemoveEmployee(project.ID, ana.ID))

		loaded, err := projects.Get(project.ID)
		require.NoError(t, err)
		assert.Empty(t, loaded.Employees)
	})
}

func TestProjectService_Create(t *testing.T) {
	projects, _ := setupProjectTest(t)

	_, err := projects.Create("   ", nil)
	assert.ErrorIs(t, err, ErrProjectNameRequired)

	description := "internal tooling"
	project, err := projects.Create("Apollo", &description)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
	require.NotNil(t, project.Description)
	assert.Equal(t, description, *project.Description)
}
