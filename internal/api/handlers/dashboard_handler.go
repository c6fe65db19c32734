package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/activity"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/pkg/response"
	"github.com/linskybing/bootcamp-go/pkg/utils"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Activities godoc
// @Summary Recent submissions across applications, quotes and contacts
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of items (default 5)"
// @Success 200 {array} activity.Item
// @Router /dashboard/activities [get]
func (h *DashboardHandler) Activities(c *gin.Context) {
	limit, err := utils.ParseIntQuery(c, "limit", activity.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be a non-negative integer"})
		return
	}
	items, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []activity.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// Stats godoc
// @Summary Submission counts per kind and status
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]application.KindStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
