package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"foundersight/internal/apperr"
	"foundersight/internal/config"
	"foundersight/internal/importer"
	"foundersight/internal/models"
	"foundersight/internal/repository"
	"foundersight/internal/service"
)

type MetricHandler struct {
	Repo     repository.Repository
	Importer *service.MetricsImportService
	Config   config.ImporterConfig
}

func (h *MetricHandler) Register(r *gin.Engine) {
	group := r.Group("/api/startups/:id/metrics")
	group.GET("", h.list)
	group.GET("/latest", h.latest)
	group.POST("", h.create)
	group.POST("/import", h.importFile)
	group.POST("/import/preview", h.previewFile)
}

// @Summary List metrics for a startup, newest period first
// @Tags metrics
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/metrics [get]
func (h *MetricHandler) list(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	items, err := h.Repo.ListMetrics(c.Request.Context(), startup.ID, intQuery(c, "limit", 0))
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, items, nil)
}

// @Summary Latest metric by period_start
// @Tags metrics
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/metrics/latest [get]
func (h *MetricHandler) latest(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	item, err := h.Repo.LatestMetric(c.Request.Context(), startup.ID)
	if err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "no metrics recorded", nil)
		return
	}
	Ok(c, item, nil)
}

type createMetricRequest struct {
	Revenue     *float64 `json:"revenue"`
	Expenses    *float64 `json:"expenses"`
	BurnRate    *float64 `json:"burn_rate"`
	Runway      *int     `json:"runway"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
}

// @Summary Record one metric period manually
// @Tags metrics
// @Accept json
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/metrics [post]
func (h *MetricHandler) create(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	var req createMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if req.Revenue == nil || req.Expenses == nil || req.BurnRate == nil || req.Runway == nil {
		Error(c, http.StatusBadRequest, "revenue, expenses, burn_rate and runway are required", nil)
		return
	}
	periodStart, err := importer.ParseDate(req.PeriodStart)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid period_start", nil)
		return
	}
	periodEnd, err := importer.ParseDate(req.PeriodEnd)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid period_end", nil)
		return
	}

	item := &models.Metric{
		StartupID:   startup.ID,
		Revenue:     decimal.NewFromFloat(*req.Revenue),
		Expenses:    decimal.NewFromFloat(*req.Expenses),
		BurnRate:    decimal.NewFromFloat(*req.BurnRate),
		Runway:      *req.Runway,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if err := h.Repo.InsertMetric(c.Request.Context(), item); err != nil {
		Fail(c, apperr.Store(err))
		return
	}
	Ok(c, item, nil)
}

// @Summary Bulk-import metrics from a CSV/XLS/XLSX upload
// @Tags metrics
// @Accept multipart/form-data
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/metrics/import [post]
func (h *MetricHandler) importFile(c *gin.Context) {
	startup, ok := ownedStartup(c, h.Repo)
	if !ok {
		return
	}
	rows, ok := h.parseUpload(c)
	if !ok {
		return
	}
	summary := h.Importer.Import(c.Request.Context(), startup.ID, rows)
	Ok(c, summary, map[string]any{"rows": len(rows)})
}

// @Summary Preview the first rows of an upload with validity flags
// @Tags metrics
// @Accept multipart/form-data
// @Success 200 {object} map[string]any
// @Router /api/startups/{id}/metrics/import/preview [post]
func (h *MetricHandler) previewFile(c *gin.Context) {
	if _, ok := ownedStartup(c, h.Repo); !ok {
		return
	}
	rows, ok := h.parseUpload(c)
	if !ok {
		return
	}
	previewRows := h.Config.PreviewRows
	if previewRows <= 0 {
		previewRows = 5
	}
	Ok(c, importer.Preview(rows, previewRows), map[string]any{"rows": len(rows)})
}

// parseUpload gates the extension before any parsing and reads the
// whole file in one pass.
func (h *MetricHandler) parseUpload(c *gin.Context) ([]importer.Row, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		Error(c, http.StatusBadRequest, "file required", nil)
		return nil, false
	}
	if h.Config.MaxFileBytes > 0 && fileHeader.Size > h.Config.MaxFileBytes {
		Error(c, http.StatusBadRequest, "file too large", nil)
		return nil, false
	}
	if !importer.AllowedExtension(fileHeader.Filename) {
		Error(c, http.StatusBadRequest, "please select a CSV, XLS, or XLSX file", nil)
		return nil, false
	}
	rows, err := parseMultipart(fileHeader)
	if err != nil {
		Error(c, http.StatusBadRequest, "failed to parse file: "+err.Error(), nil)
		return nil, false
	}
	return rows, true
}

func parseMultipart(fileHeader *multipart.FileHeader) ([]importer.Row, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return importer.Parse(strings.TrimSpace(fileHeader.Filename), f)
}
