package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/application"
	app "github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/pkg/response"
)

type ApplicationHandler struct {
	svc *application.ApplicationService
}

func NewApplicationHandler(svc *application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Create godoc
// @Summary Submit a bootcamp application
// @Tags applications
// @Accept json
// @Produce json
// @Param input body app.CreateApplicationInput true "Application form"
// @Success 201 {object} app.Application
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already used"
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var input app.CreateApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	created, err := h.svc.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, reviewing, accepted, rejected or waitlisted"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} app.Application
// @Failure 400 {object} response.ValidationErrorResponse "Unknown status"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	apps, err := h.svc.List(q)
	if err != nil {
		writeError(c, err)
		return
	}
	if apps == nil {
		apps = []app.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// Get godoc
// @Summary Get an application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} app.Application
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateStatus godoc
// @Summary Change an application status
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param input body app.UpdateApplicationStatusInput true "Target status"
// @Success 200 {object} app.Application
// @Failure 400 {object} response.ValidationErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input app.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err, map[string]string{"Status": "status"})
		return
	}
	updated, err := h.svc.UpdateStatus(id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Application deleted"})
}
