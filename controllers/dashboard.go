package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"org-compliance-api/config"
	"org-compliance-api/models"
)

// GetDashboardStats returns submission counts by status for the caller:
// reviewers see their queue, submitting orgs see their own filings.
func GetDashboardStats(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	base := func() *gorm.DB {
		query := config.DB.Model(&models.Submission{}).Where("delete_at IS NULL")
		if models.IsReviewer(category) {
			return query.Where("submitted_to = ?", category)
		}
		return query.Where("org_id = ?", orgID)
	}

	stats := gin.H{}
	for _, status := range []string{models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusForRevision} {
		var count int64
		if err := base().Where("status = ?", status).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		stats[status] = count
	}

	var endorsed int64
	if err := base().Where("endorsed_to_coa = 1").Count(&endorsed).Error; err == nil {
		stats["endorsed_to_coa"] = endorsed
	}

	var openEvents int64
	if err := config.DB.Model(&models.OsldEvent{}).Where("delete_at IS NULL").Count(&openEvents).Error; err == nil {
		stats["open_events"] = openEvents
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
