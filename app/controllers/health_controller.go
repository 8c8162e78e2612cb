package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/config"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/cache"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/database"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/mongodb"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/response"
)

// HealthController answers liveness and dependency checks.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports the status of each backing service. Returns 503 when
// a required store is down; the Redis cache is optional.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if config.StoreDriver() == "mongo" {
		if err := mongodb.Ping(ctx); err != nil {
			checks["mongodb"] = err.Error()
			healthy = false
		} else {
			checks["mongodb"] = "ok"
		}
	}

	if err := database.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if err := cache.Ping(ctx); err != nil {
		checks["redis"] = "unavailable"
	} else {
		checks["redis"] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, status, map[string]interface{}{
		"success": healthy,
		"checks":  checks,
	})
}
