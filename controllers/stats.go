package controllers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"github.com/gin-gonic/gin"
)

func GetDashboardStats(c *gin.Context) {
	stats, err := models.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
