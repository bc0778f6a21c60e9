package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	configapi "azdns/api/v1/config"
	"azdns/api/v1/records"
	"azdns/internal/config"
	"azdns/internal/credstore"
	"azdns/internal/dns"
	"azdns/internal/httpx"
)

// SetupRouter sets up the console routes: the JSON API, the Prometheus
// endpoint and the static frontend.
func SetupRouter(r *gin.Engine, store *credstore.Store, build dns.Factory, cfg *config.Config, logger *logrus.Entry) {
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler(store))

		configHandler := configapi.NewHandler(store, build, logger)
		configGroup := api.Group("/config")
		{
			configGroup.GET("/status", configHandler.Status)
			configGroup.GET("", configHandler.Get)
			configGroup.POST("", configHandler.Update)
			configGroup.POST("/test", configHandler.Test)
		}

		recordsHandler := records.NewHandler(store, build, logger)
		recordsGroup := api.Group("/records")
		{
			recordsGroup.GET("", recordsHandler.ListRecords)
			recordsGroup.POST("", recordsHandler.CreateRecord)
			recordsGroup.PUT("/:type/*name", recordsHandler.UpdateRecord)
			recordsGroup.DELETE("/:type/*name", recordsHandler.DeleteRecord)
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything not matched above is the static console.
	r.NoRoute(staticHandler(cfg.StaticDir))
}

// healthHandler reports liveness and the configured zone
// GET /api/health
func healthHandler(store *credstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"zone":   store.Get().Zone,
		})
	}
}

// staticHandler serves the single-page console from dir. Unknown API paths
// stay JSON 404s instead of falling through to index.html.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			httpx.Error(c, http.StatusNotFound, "not found")
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			httpx.Error(c, http.StatusNotFound, "not found")
			return
		}

		// Clean from the root so ".." cannot escape dir.
		p := filepath.Clean("/" + c.Request.URL.Path)
		if p == "/" {
			p = "/index.html"
		}
		full := filepath.Join(dir, p)
		if info, err := os.Stat(full); err != nil || info.IsDir() {
			httpx.Error(c, http.StatusNotFound, "not found")
			return
		}
		c.File(full)
	}
}
