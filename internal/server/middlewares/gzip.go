package middlewares

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Probe responses are tiny; compressing them is wasted work.
var excludedPaths = []string{
	"/healthz",
	"/api/v1/healthcheck",
}

func GZIP() gin.HandlerFunc {
	return gzip.Gzip(
		gzip.BestSpeed,
		gzip.WithExcludedPaths(excludedPaths),
	)
}
