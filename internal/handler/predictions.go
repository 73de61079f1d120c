package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foundersight/internal/apperr"
	"foundersight/internal/repository"
	"foundersight/internal/service"
)

type PredictionHandler struct {
	Repo    repository.Repository
	Service *service.PredictionService
}

func (h *PredictionHandler) Register(r *gin.Engine) {
	group := r.Group("/api/startups/:id/predictions")
	group.GET("", h.list)
	group.POST("", h.generate)
}

// @Summary List predictions for a startup, newest first (max 10)
// @Tags predictions
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/predictions [get]
func (h *PredictionHandler) list(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	items, err := h.Repo.ListPredictions(c.Request.Context(), startup.ID, 10)
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, items, nil)
}

type generatePredictionRequest struct {
	CurrentMetrics service.CurrentMetrics `json:"current_metrics"`
	StartupData    *service.StartupData   `json:"startup_data"`
}

// @Summary Generate an AI prediction from current metrics and profile
// @Tags predictions
// @Accept json
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/predictions [post]
func (h *PredictionHandler) generate(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	var req generatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}

	// Profile defaults to the stored startup when the caller omits it.
	profile := service.StartupData{
		Sector:         startup.Sector,
		Stage:          startup.Stage,
		TeamExperience: startup.TeamExperience,
	}
	if req.StartupData != nil {
		profile = *req.StartupData
	}

	item, err := h.Service.Generate(c.Request.Context(), startup.ID, req.CurrentMetrics, profile)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item, nil)
}
