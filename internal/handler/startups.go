package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foundersight/internal/apperr"
	"foundersight/internal/auth"
	"foundersight/internal/models"
	"foundersight/internal/repository"
)

type StartupHandler struct {
	Repo repository.Repository
}

func (h *StartupHandler) Register(r *gin.Engine) {
	group := r.Group("/api/startups")
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:id", h.get)
}

// @Summary List startups owned by the caller, newest first
// @Tags startups
// @Success 200 {object} map[string]any
// @Router /api/startups [get]
func (h *StartupHandler) list(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c.Request.Context())
	if !ok {
		Error(c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}
	items, err := h.Repo.ListStartups(c.Request.Context(), userID)
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, items, nil)
}

type createStartupRequest struct {
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	Stage          string  `json:"stage"`
	TeamExperience int     `json:"team_experience"`
	Description    *string `json:"description"`
}

// @Summary Create a startup under the caller's identity
// @Tags startups
// @Accept json
// @Success 200 {object} map[string]any
// @Router /api/startups [post]
func (h *StartupHandler) create(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c.Request.Context())
	if !ok {
		Error(c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}
	var req createStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	if !models.ValidSector(req.Sector) {
		Error(c, http.StatusBadRequest, fmt.Sprintf("unknown sector %q", req.Sector), nil)
		return
	}
	if !models.ValidStage(req.Stage) {
		Error(c, http.StatusBadRequest, fmt.Sprintf("unknown stage %q", req.Stage), nil)
		return
	}
	if req.TeamExperience < 0 || req.TeamExperience > 60 {
		Error(c, http.StatusBadRequest, "team_experience must be 0-60 years", nil)
		return
	}

	item := &models.Startup{
		Name:           req.Name,
		Sector:         req.Sector,
		Stage:          req.Stage,
		TeamExperience: req.TeamExperience,
		Description:    req.Description,
		OwnerID:        userID,
	}
	if err := h.Repo.CreateStartup(c.Request.Context(), item); err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, item, nil)
}

// @Summary Fetch one startup (ownership checked)
// @Tags startups
// @Success 200 {object} map[string]any
// @Router /api/startups/{id} [get]
func (h *StartupHandler) get(c *gin.Context) {
	item, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	Ok(c, item, nil)
}

// ownedStartup resolves the :id path param against the caller's
// identity. A malformed id is a validation failure; a row owned by
// someone else is indistinguishable from a missing one.
func ownedStartup(c *gin.Context, repo repository.Repository) (*models.Startup, bool) {
	userID, ok := auth.UserIDFromContext(c.Request.Context())
	if !ok {
		Error(c, http.StatusUnauthorized, "unauthenticated", nil)
		return nil, false
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "startup id required", nil)
		return nil, false
	}
	if _, err := uuid.Parse(id); err != nil {
		Error(c, http.StatusBadRequest, "invalid startup id", nil)
		return nil, false
	}
	item, err := repo.GetStartupByID(c.Request.Context(), userID, id)
	if err != nil {
		Fail(c, apperr.Store(err))
		return nil, false
	}
	if item == nil {
		Error(c, http.StatusNotFound, "startup not found", nil)
		return nil, false
	}
	return item, true
}
