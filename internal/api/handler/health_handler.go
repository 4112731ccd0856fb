package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes. Liveness
// answers immediately; readiness pings MongoDB and, when a client is
// configured, Redis. The cache is optional so a nil Redis client is
// reported as disabled rather than unhealthy.
type HealthHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{mongo: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func probe(err error) dependencyStatus {
	if err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	deps := map[string]dependencyStatus{
		"mongodb": probe(h.mongo.Client().Ping(ctx, nil)),
	}
	if h.redis == nil {
		deps["redis"] = dependencyStatus{Status: "disabled"}
	} else {
		deps["redis"] = probe(h.redis.Ping(ctx).Err())
	}

	status, code := "ok", http.StatusOK
	for _, d := range deps {
		if d.Status == "unhealthy" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": deps,
	})
}
