package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondData writes a success envelope with a payload
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondList writes a success envelope with a payload and element count
func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// respondMessage writes a success envelope with a message and payload
func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}
