package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HossamTabana/databricks-apps-cookbook/internal/server/handlers/api"
	"github.com/HossamTabana/databricks-apps-cookbook/internal/server/handlers/health"
	"github.com/HossamTabana/databricks-apps-cookbook/internal/server/middlewares"
	"github.com/HossamTabana/databricks-apps-cookbook/internal/version"
)

// SetupRoutes builds the router tree. Registration happens once at startup;
// path matching is delegated to gin.
func SetupRoutes(config *Config) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.GZIP())
	r.Use(middlewares.CORS())
	r.Use(middlewares.RateLimiter(config.HTTP.RateLimit))
	if config.TLSEnabled() {
		r.Use(middlewares.HSTS())
	}

	r.GET("/", IndexHandler)
	r.GET("/healthz", LivenessHandler)

	healthH := health.New()

	apiGroup := r.Group("/api")
	v1 := apiGroup.Group("/v1")
	healthH.RegisterRoutes(v1)

	r.NoRoute(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusNotFound, api.CodeNotFound, errors.New("not found"))
	})

	r.NoMethod(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusMethodNotAllowed, api.CodeMethodNotAllowed, errors.New("method not allowed"))
	})

	return r.Handler()
}

func IndexHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, version.Banner())
}

// LivenessHandler is the unversioned probe used by the hosting platform.
func LivenessHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
