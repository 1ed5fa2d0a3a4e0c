package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusOK is the literal status token reported by the healthcheck.
const StatusOK = "OK"

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type HealthHandler struct {
	// now is swapped out in tests for a fixed clock.
	now func() time.Time
}

func New() *HealthHandler {
	return &HealthHandler{
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Check responds to a liveness probe. It takes no input, performs no I/O
// beyond reading the clock, and always succeeds.
func (h *HealthHandler) Check(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, HealthResponse{
		Status:    StatusOK,
		Timestamp: h.now().Format(time.RFC3339),
	})
}

// RegisterRoutes mounts the health endpoints on the given router group.
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/healthcheck", h.Check)
}
