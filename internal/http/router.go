// Package httpapi wires the HTTP transport (Gin) to the feedback service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// error rendering, CORS, security headers, and idempotency.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - One error middleware renders every failure; handlers only record them
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/li-0406/foodApi/docs"
	"github.com/li-0406/foodApi/internal/apperr"
	"github.com/li-0406/foodApi/internal/config"
	"github.com/li-0406/foodApi/internal/http/handlers"
	"github.com/li-0406/foodApi/internal/http/middleware"
	"github.com/li-0406/foodApi/internal/services"
)

// healthTimeout bounds the store ping behind /health.
const healthTimeout = 2 * time.Second

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: tracing, metrics, error rendering, idempotency, CORS and security
// headers, health/metrics/docs endpoints, and the feedback API under
// cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip (optional) and Metrics: wrap the error middleware so they see its output
//  7. ErrorHandler: renders every error recorded further down
//  8. CORS and Security headers
//  9. Idempotency validator
func RegisterRoutes(r *gin.Engine, svc *services.FeedbackService, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Compression and Prometheus metrics
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Global error middleware
	r.Use(middleware.ErrorHandler(cfg.ExposeErrorStack))

	// 8) CORS posture (safe defaults: allow all if none configured)
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// 9) Idempotency validation
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{MaxLen: 200},
		svc.HasIdempotencyKey,
	))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "no matching route",
			"path":    c.Request.URL.Path,
		})
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperr.New(http.StatusMethodNotAllowed, "method not allowed"))
		c.Abort()
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health: store ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API docs
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(svc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.POST("/feedbacks", h.CreateFeedback)
		api.POST("/feedbacks/", h.CreateFeedback)
		api.GET("/feedbacks", h.ListFeedbacks)
		api.GET("/feedbacks/", h.ListFeedbacks)
		api.GET("/feedbacks/:id", h.GetFeedback)
		api.PATCH("/feedbacks/:id", h.UpdateFeedback)
		api.DELETE("/feedbacks/:id", h.DeleteFeedback)
	}
}

// corsMiddleware returns the CORS chain. With no allowlist every origin is
// accepted and ACAO is forced to "*"; otherwise allowed origins are echoed.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "ETag", middleware.HeaderIdempotentReplayed}
	methods := []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}

	if len(origins) == 0 {
		return []gin.HandlerFunc{
			// Force ACAO: * even for requests without an Origin header.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(cors.Config{
				AllowAllOrigins:  true,
				AllowMethods:     methods,
				AllowHeaders:     allowHeaders,
				ExposeHeaders:    exposeHeaders,
				AllowCredentials: false, // must remain false with AllowAllOrigins
				MaxAge:           12 * time.Hour,
			}),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     methods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
