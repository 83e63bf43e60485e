package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dc6084/backend/internal/config"
	"github.com/dc6084/backend/internal/db"
	"github.com/dc6084/backend/internal/http/handlers"
	"github.com/dc6084/backend/internal/http/middleware"
	"github.com/dc6084/backend/internal/state"

	_ "github.com/dc6084/backend/docs"
)

func Router(cfg config.Config, store *db.Store, appState *state.State, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		State:     appState,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/roster", h.RosterList)
		api.GET("/records", h.RecordsList)
		api.GET("/filters", h.FiltersGet)
		api.GET("/filters/options", h.FilterOptions)
		api.PUT("/filters", h.FiltersPut)
		api.POST("/sort/:column", h.SortToggle)
		api.GET("/dashboard/summary", h.DashboardSummary)
		api.GET("/dashboard/breakdown", h.DashboardBreakdown)
		api.GET("/dashboard/scorecards", h.DashboardScorecards)
		api.GET("/dashboard/building", h.DashboardBuilding)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/roster/import", h.RosterImport)
		admin.POST("/roster/reset", h.RosterReset)
		admin.POST("/metrics/import", h.MetricsImport)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
