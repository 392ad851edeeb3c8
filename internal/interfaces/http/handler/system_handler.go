package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/persistence"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	version   string
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports liveness and the local store's reachability. The order
// source is not probed here; its availability only matters per request and
// health checks should not consume API rate limit.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	storeStatus := "ok"
	httpStatus := http.StatusOK

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		storeStatus = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":  status,
		"store":   storeStatus,
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
