package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bentuk respons seragam: { success, data?, error?, details? }

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, message string, err error) {
	resp := gin.H{"success": false, "error": message}
	if err != nil {
		resp["details"] = err.Error()
	}
	c.JSON(status, resp)
}

// Paginated menyelipkan blok pagination di samping data.
func Paginated(c *gin.Context, data interface{}, page, limit int, total int64) {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}
