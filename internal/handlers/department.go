package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "registro/internal/errors"
	"registro/internal/services"
)

// DepartmentHandler coordinates department routes.
type DepartmentHandler struct {
	departmentService *services.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// List returns all departments ordered by name.
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, departments)
}

// Create stores a new department and redirects to the listing.
func (h *DepartmentHandler) Create(c *gin.Context) {
	name := c.PostForm("name")

	if _, err := h.departmentService.Create(name); err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNameRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrDepartmentExists):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/departments")
}

// Delete removes a department; its employees keep existing without one.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.departmentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			apierrors.NotFound(c, "department not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}
	c.Status(http.StatusNoContent)
}
