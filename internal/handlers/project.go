package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"registro/internal/dto"
	apierrors "registro/internal/errors"
	"registro/internal/services"
)

// ProjectHandler coordinates project routes and employee assignment.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns all projects with their members.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// Get returns one project with its members.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Create stores a new project and redirects to the listing.
func (h *ProjectHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	var description *string
	if d := strings.TrimSpace(c.PostForm("description")); d != "" {
		description = &d
	}

	if _, err := h.projectService.Create(name, description); err != nil {
		if errors.Is(err, services.ErrProjectNameRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}
	c.Redirect(http.StatusSeeOther, "/projects")
}

// AddEmployee assigns an employee to the project; re-adding a member is
// a no-op.
func (h *ProjectHandler) AddEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID := parseOptionalID(c.PostForm("employee_id"))
	if employeeID == nil {
		apierrors.BadRequest(c, "employee_id is required")
		return
	}

	if err := h.projectService.AddEmployee(projectID, *employeeID); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/projects/%d", projectID))
}

// RemoveEmployee unassigns an employee; removing a non-member is a no-op.
func (h *ProjectHandler) RemoveEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employee_id")
	if !ok {
		return
	}

	if err := h.projectService.RemoveEmployee(projectID, employeeID); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/projects/%d", projectID))
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "project not found")
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "employee not found")
	default:
		apierrors.InternalError(c, "")
	}
}
