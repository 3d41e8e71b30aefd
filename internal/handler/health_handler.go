package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 处理健康检查请求。
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建一个新的 HealthHandler。
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check 处理 GET /api/health，附带数据库连通性指示。
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "Disconnected"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if sqlDB, err := h.db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			dbStatus = "Connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "RoastHub Backend is healthy!",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root 处理 GET /，仅作为存活探针。
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "RoastHub Backend is running!"})
}
