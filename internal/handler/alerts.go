package handler

import (
	"github.com/gin-gonic/gin"

	"foundersight/internal/apperr"
	"foundersight/internal/repository"
)

type AlertHandler struct {
	Repo repository.Repository
}

func (h *AlertHandler) Register(r *gin.Engine) {
	r.GET("/api/startups/:id/alerts", h.list)
}

// @Summary List alerts for a startup, newest first
// @Tags alerts
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/alerts [get]
func (h *AlertHandler) list(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	items, err := h.Repo.ListAlerts(c.Request.Context(), startup.ID, intQuery(c, "limit", 50))
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, items, nil)
}
