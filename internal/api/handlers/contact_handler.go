package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/pkg/response"
)

type ContactHandler struct {
	svc *application.ContactService
}

func NewContactHandler(svc *application.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create godoc
// @Summary Send a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Param input body contact.CreateContactInput true "Message"
// @Success 201 {object} contact.Contact
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var input contact.CreateContactInput
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
// @Summary List contact messages
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param status query string false "unread or read"
// @Param is_read query bool false "Legacy read filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} contact.Contact
// @Router /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	if raw := c.Query("is_read"); raw != "" && q.Status == "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "is_read must be a boolean"})
			return
		}
		q.Status = string(contact.StatusUnread)
		if isRead {
			q.Status = string(contact.StatusRead)
		}
	}
	contacts, err := h.svc.List(q)
	if err != nil {
		writeError(c, err)
		return
	}
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

// Get godoc
// @Summary Get a contact message
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} contact.Contact
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
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
// @Summary Mark a contact message read
// @Tags contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param input body contact.UpdateContactStatusInput true "{\"status\":\"read\"} or {\"is_read\":true}"
// @Success 200 {object} contact.Contact
// @Failure 400 {object} response.ValidationErrorResponse "Only read is accepted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input contact.UpdateContactStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	target, err := input.Target()
	if err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.svc.UpdateStatus(id, target)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Message deleted"})
}
