package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"registro/internal/dto"
	apierrors "registro/internal/errors"
	"registro/internal/middleware"
	"registro/internal/services"
	"registro/internal/utils"
)

// EmployeeHandler coordinates employee CRUD and the spreadsheet import.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
	importService   *services.ImportService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService, importService *services.ImportService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		importService:   importService,
	}
}

// EmployeeRequest carries the employee form. Salary and the reference
// ids arrive as strings because HTML forms submit empty fields as "";
// salary additionally tolerates the BRL currency shape.
type EmployeeRequest struct {
	Name         string  `form:"name" json:"name"`
	Email        string  `form:"email" json:"email"`
	Phone        *string `form:"phone" json:"phone"`
	Salary       string  `form:"salary" json:"salary"`
	DepartmentID string  `form:"department_id" json:"department_id"`
	PositionID   string  `form:"position_id" json:"position_id"`
}

func (r EmployeeRequest) toInput() services.EmployeeInput {
	return services.EmployeeInput{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Salary:       utils.ParseBRL(r.Salary),
		DepartmentID: parseOptionalID(r.DepartmentID),
		PositionID:   parseOptionalID(r.PositionID),
	}
}

// List returns all employees, newest first, along with the viewer.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	response := gin.H{"employees": dto.ToEmployeeDTOs(employees)}
	if user, ok := middleware.CurrentUser(c); ok {
		response["user"] = dto.ToUserDTO(*user)
	}
	c.JSON(http.StatusOK, response)
}

// Get returns one employee.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(id)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

// Create stores a new employee and redirects to the listing.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.employeeService.Create(req.toInput()); err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/employees")
}

// Update rewrites an employee.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.employeeService.Update(id, req.toInput()); err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes an employee.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportPage describes what the import endpoint expects.
func (h *EmployeeHandler) ImportPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":          "import",
		"headers":       services.ImportHeaders,
		"content_types": services.AcceptedContentTypes,
	})
}

// Import runs the spreadsheet pipeline on the uploaded file and returns
// the per-row report.
func (h *EmployeeHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.BadRequest(c, "unreadable file")
		return
	}
	defer file.Close()

	report, err := h.importService.Import(file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType),
			errors.Is(err, services.ErrUnreadableFile),
			errors.Is(err, services.ErrInvalidHeaders):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "import failed")
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "employee not found")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "email already in use")
	case errors.Is(err, services.ErrEmployeeNameRequired),
		errors.Is(err, services.ErrEmployeeEmailRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func parseOptionalID(value string) *uint64 {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	return &id
}
