package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foundersight/internal/repository"
	"foundersight/internal/service"
)

type PlaybookHandler struct {
	Repo    repository.Repository
	Service *service.PlaybookService
}

func (h *PlaybookHandler) Register(r *gin.Engine) {
	group := r.Group("/api/startups/:id/playbook")
	group.POST("", h.generate)
	group.GET("/latest", h.latest)
}

type generatePlaybookRequest struct {
	CurrentStage   string                  `json:"current_stage"`
	Sector         string                  `json:"sector"`
	CurrentMetrics *service.CurrentMetrics `json:"current_metrics"`
	PredictionData *service.PredictionData `json:"prediction_data"`
}

// @Summary Generate a growth playbook (markdown) for a startup
// @Tags playbooks
// @Accept json
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/playbook [post]
func (h *PlaybookHandler) generate(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	var req generatePlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	stage := strings.TrimSpace(req.CurrentStage)
	if stage == "" {
		stage = startup.Stage
	}
	sector := strings.TrimSpace(req.Sector)
	if sector == "" {
		sector = startup.Sector
	}

	result, err := h.Service.Generate(c.Request.Context(), startup.ID, service.PlaybookRequest{
		CurrentStage:   stage,
		Sector:         sector,
		CurrentMetrics: req.CurrentMetrics,
		PredictionData: req.PredictionData,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, result, nil)
}

// @Summary Latest generated playbook
// @Tags playbooks
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/playbook/latest [get]
func (h *PlaybookHandler) latest(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	result, err := h.Service.Latest(c.Request.Context(), startup.ID)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, result, nil)
}
