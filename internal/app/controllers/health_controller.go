package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webssis/ssis/internal/app/models/dto"
)

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness probes
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health returns 200 when the database answers a ping and 503 otherwise
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
