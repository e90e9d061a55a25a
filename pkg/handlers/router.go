package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/arnavshah/duty-planner-go/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions holds what the router needs besides the handlers
type RouterOptions struct {
	// Logger is the base request logger. Defaults to the standard logger.
	Logger *logger.Logger
	// Gatherer backs /metrics. The route is omitted when nil.
	Gatherer prometheus.Gatherer
	// Ping checks the database for /health
	Ping func(ctx context.Context) error
	// Version is reported by the index route
	Version string
}

// NewRouter builds the gin engine with every planner route
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(opts.Logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Duty Planner API",
			"version": opts.Version,
		})
	})
	r.GET("/health", health(opts.Ping))
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.GET("/dashboard", h.Dashboard)
		api.GET("/slots", h.ListSlots)
		api.GET("/stats", h.GetStats)

		personnel := api.Group("/personnel")
		personnel.GET("", h.ListPersonnel)
		personnel.POST("", h.CreatePerson)
		personnel.POST("/import", h.ImportPersonnel)
		personnel.GET("/:id", h.GetPerson)
		personnel.PUT("/:id", h.UpdatePerson)
		personnel.DELETE("/:id", h.DeletePerson)

		unavailability := api.Group("/unavailability")
		unavailability.GET("", h.ListUnavailability)
		unavailability.POST("", h.CreateUnavailability)
		unavailability.DELETE("/:id", h.DeleteUnavailability)

		schedule := api.Group("/schedule/:date")
		schedule.GET("", h.ViewSchedule)
		schedule.POST("/generate", h.GenerateSchedule)
		schedule.POST("/confirm", h.ConfirmSchedule)
		schedule.GET("/coverage", h.CheckCoverage)
		schedule.GET("/csv", h.ExportSchedule)
	}

	return r
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
