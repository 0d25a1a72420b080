package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"catalog/internal/infra"
	"catalog/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.Ping(ctx, h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "database unavailable",
			TraceID: c.GetString("trace_id"),
		})
		return
	}
	utils.RespondSuccess(c, gin.H{"database": "ok"}, "healthy")
}
