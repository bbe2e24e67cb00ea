package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"shoplist/internal/adapter/http/dto"
	"shoplist/internal/adapter/http/middleware"
)

const (
	StatusOk          = "ok"
	StatusDown        = "down"
	healthPingTimeout = 2 * time.Second
)

// Pinger is a dependency the health report can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    *sqlx.DB
	cache Pinger
}

// NewHealthHandler builds the health endpoints. cache may be nil when the
// configured cache has nothing remote to probe.
func NewHealthHandler(db *sqlx.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	if !h.checkConnectionToDatabase(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, dto.HealthStatus{Status: StatusDown})
		return
	}

	c.JSON(http.StatusOK, dto.HealthStatus{Status: StatusOk})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	services := dto.HealthServices{Database: StatusDown}
	if h.checkConnectionToDatabase(ctx) {
		services.Database = StatusOk
	}
	if h.cache != nil {
		services.Cache = StatusDown
		if ping(ctx, h.cache.Ping) {
			services.Cache = StatusOk
		}
	}

	c.JSON(http.StatusOK, dto.HealthReport{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Language:          middleware.GetLang(c),
		Status:            services,
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	return ping(ctx, h.db.PingContext)
}

func ping(ctx context.Context, probe func(context.Context) error) bool {
	timeoutCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return probe(timeoutCtx) == nil
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "shoplist"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
