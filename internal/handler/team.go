package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foundersight/internal/apperr"
	"foundersight/internal/models"
	"foundersight/internal/repository"
)

type TeamHandler struct {
	Repo repository.Repository
}

func (h *TeamHandler) Register(r *gin.Engine) {
	group := r.Group("/api/startups/:id/team")
	group.GET("", h.list)
	group.POST("", h.create)
}

// @Summary List team members, oldest first
// @Tags team
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/team [get]
func (h *TeamHandler) list(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	items, err := h.Repo.ListTeamMembers(c.Request.Context(), startup.ID)
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, items, nil)
}

type addTeamMemberRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// @Summary Add a team member
// @Tags team
// @Accept json
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/team [post]
func (h *TeamHandler) create(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	var req addTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}

	item := &models.TeamMember{
		StartupID: startup.ID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := h.Repo.InsertTeamMember(c.Request.Context(), item); err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, item, nil)
}
