package dto

import (
	"registro/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Employees   []EmployeeDTO `json:"employees"`
}

// ToProjectDTO converts a project model to DTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Employees:   ToEmployeeDTOs(project.Employees),
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
