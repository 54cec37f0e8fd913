package api

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface: the four API routes, the static
// landing page, and the metrics endpoint. staticDir may be empty to skip
// static serving (tests do this).
func NewRouter(app App, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(cors.Default())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if staticDir != "" {
		index := filepath.Join(staticDir, "index.html")
		r.GET("/", func(c *gin.Context) {
			c.File(index)
		})
		r.Static("/public", staticDir)
	}

	r.POST("/api/users", PostUser(app))
	r.GET("/api/users", GetUsers(app))
	r.POST("/api/users/:id/exercises", PostExercise(app))
	r.GET("/api/users/:id/logs", GetLogs(app))

	return r
}
