package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# FounderSight API

Startup analytics backend: founders register startups, upload financial
metrics, and request AI-generated predictions and growth playbooks.

## Auth

All /api/* routes require a Bearer token. The token subject is the
owning user id; every query is scoped to it. Health endpoints are
public.

## Endpoints

- GET  /api/startups
- POST /api/startups
- GET  /api/startups/:id
- GET  /api/startups/:id/metrics
- GET  /api/startups/:id/metrics/latest
- POST /api/startups/:id/metrics
- POST /api/startups/:id/metrics/import            (multipart "file": csv/xls/xlsx)
- POST /api/startups/:id/metrics/import/preview
- GET  /api/startups/:id/predictions
- POST /api/startups/:id/predictions
- POST /api/startups/:id/playbook
- GET  /api/startups/:id/playbook/latest
- GET  /api/startups/:id/team
- POST /api/startups/:id/team
- GET  /api/startups/:id/alerts

Interactive docs at /swagger/index.html.
`)
	})
}
