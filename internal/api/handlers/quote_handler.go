package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/pkg/response"
)

type QuoteHandler struct {
	svc *application.QuoteService
}

func NewQuoteHandler(svc *application.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// Create godoc
// @Summary Request a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param input body quote.CreateQuoteInput true "Quote request"
// @Success 201 {object} quote.Quote
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var input quote.CreateQuoteInput
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

// ServiceTypes godoc
// @Summary List the service types a quote may request
// @Tags quotes
// @Produce json
// @Success 200 {array} string
// @Router /quotes/service-types [get]
func (h *QuoteHandler) ServiceTypes(c *gin.Context) {
	types := h.svc.ServiceTypes
	if types == nil {
		types = []string{}
	}
	c.JSON(http.StatusOK, types)
}

// List godoc
// @Summary List quote requests
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved, rejected or completed"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} quote.Quote
// @Failure 400 {object} response.ValidationErrorResponse "Unknown status"
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	quotes, err := h.svc.List(q)
	if err != nil {
		writeError(c, err)
		return
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	c.JSON(http.StatusOK, quotes)
}

// Get godoc
// @Summary Get a quote request
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} quote.Quote
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
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
// @Summary Change a quote status and admin notes
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param input body quote.UpdateQuoteStatusInput true "Status and notes"
// @Success 200 {object} quote.Quote
// @Failure 400 {object} response.ValidationErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input quote.UpdateQuoteStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err, map[string]string{"Status": "status"})
		return
	}
	updated, err := h.svc.UpdateStatus(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a quote request
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quote deleted"})
}
