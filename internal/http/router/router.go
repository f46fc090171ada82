// Package router builds the Gin engine from the composed application.
package router

import (
	"net/http"
	"strings"
	"time"

	apphttp "chimney_site_backend/internal/http"
	"chimney_site_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New constructs the HTTP engine: global middleware, health endpoint, CORS,
// and every module's routes.
func New(app *apphttp.App) *gin.Engine {
	if !strings.EqualFold(app.Config.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routerCtx := &apphttp.RouterContext{
		Engine:             engine,
		V1:                 engine.Group("/api/v1"),
		ContactRateLimiter: httpkit.NewContactRateLimiter(app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(routerCtx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{httpkit.RequestIDHeader},
		AllowCredentials: app.Config.CORSAllowCreds,
		MaxAge:           12 * time.Hour,
	}

	if app.Config.CORSAllowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = app.Config.CORSOrigins
	}

	return cors.New(corsCfg)
}
