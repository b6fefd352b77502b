package controllers

import (
	"gorm.io/gorm"

	"org-compliance-api/config"

	"github.com/gin-gonic/gin"
)

func getDB() *gorm.DB { return config.DB }

func getCurrentOrgID(c *gin.Context) (int, bool) {
	if v, ok := c.Get("accountID"); ok {
		switch t := v.(type) {
		case int:
			return t, true
		case int64:
			return int(t), true
		case float64:
			return int(t), true
		}
	}
	return 0, false
}

func getCurrentCategory(c *gin.Context) (string, bool) {
	if v, ok := c.Get("category"); ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
