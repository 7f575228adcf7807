package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "registro/internal/errors"
	"registro/internal/services"
)

// PositionHandler coordinates position routes.
type PositionHandler struct {
	positionService *services.PositionService
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
	}
}

// List returns all positions ordered by title.
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.positionService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, positions)
}

// Create stores a new position and redirects to the listing.
func (h *PositionHandler) Create(c *gin.Context) {
	title := c.PostForm("title")

	if _, err := h.positionService.Create(title); err != nil {
		switch {
		case errors.Is(err, services.ErrPositionTitleRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrPositionExists):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/positions")
}

// Delete removes a position; its employees keep existing without one.
func (h *PositionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.positionService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPositionNotFound) {
			apierrors.NotFound(c, "position not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}
	c.Status(http.StatusNoContent)
}
