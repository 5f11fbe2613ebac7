package handlers

import (
	"time"

	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, streamInterval: defaultInterval}
}

// WithStreamInterval sets the default WebSocket push interval.
func (h *Handler) WithStreamInterval(d time.Duration) *Handler {
	if d > 0 && d <= maxInterval {
		h.streamInterval = d
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Live vitals over WebSocket (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerVitalsRoutes(api)
		h.registerRecordingRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerVitalsRoutes(api *gin.RouterGroup) {
	vitals := api.Group("/vitals")
	{
		vitals.GET("", h.getVitals)
		vitals.GET("/ecg", h.getECG)
		vitals.GET("/pulse", h.getPulse)
		vitals.GET("/hrv", h.getHRV)
		vitals.GET("/cards", h.getCards)
	}
}

func (h *Handler) registerRecordingRoutes(api *gin.RouterGroup) {
	rec := api.Group("/recording")
	{
		rec.GET("", h.getRecording)
		rec.POST("/start", h.startRecording)
		rec.POST("/pause", h.pauseRecording)
		rec.POST("/toggle", h.toggleRecording)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
