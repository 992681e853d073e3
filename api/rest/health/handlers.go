package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// a dependency whose reachability is reported by /health
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Handler godoc
// @Summary Health check
// @Description Reports server health and the reachability of its backing services
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := Response{
			Status:  "healthy",
			Service: "medlit",
			Version: Version,
		}

		code := http.StatusOK

		for _, check := range checks {
			status := "ok"
			if err := check.Ping(ctx); err != nil {
				status = "unreachable"
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
			}

			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(checks))
			}
			resp.Checks[check.Name] = status
		}

		c.JSON(code, resp)
	}
}

// PingHandler godoc
// @Summary Ping
// @Description Responds with pong
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/v1/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
