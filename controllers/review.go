package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/services"
)

type decisionReq struct {
	Comment string   `json:"comment"`
	Items   []string `json:"items"`
	Opinion string   `json:"opinion"`
}

// ApproveSubmission finalizes or endorses the submission, depending on
// whether the caller is an intermediate reviewer.
func ApproveSubmission(c *gin.Context) {
	submission, decision, ok := loadDecisionContext(c)
	if !ok {
		return
	}

	workflow := services.NewWorkflowService(config.DB)
	endorsed, err := workflow.Approve(submission, decision)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	message := "Submission approved"
	if endorsed {
		message = "Submission endorsed to COA"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"endorsed":   endorsed,
		"submission": submission,
	})
}

// RejectSubmission ends the submission with an optional reason. The row is
// kept; rejection never deletes anything.
func RejectSubmission(c *gin.Context) {
	submission, decision, ok := loadDecisionContext(c)
	if !ok {
		return
	}

	workflow := services.NewWorkflowService(config.DB)
	if err := workflow.Reject(submission, decision); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission rejected",
		"submission": submission,
	})
}

// RequestRevision returns the submission to the org with checklist items.
func RequestRevision(c *gin.Context) {
	submission, decision, ok := loadDecisionContext(c)
	if !ok {
		return
	}

	workflow := services.NewWorkflowService(config.DB)
	if err := workflow.RequestRevision(submission, decision); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission returned for revision",
		"submission": submission,
	})
}

func loadDecisionContext(c *gin.Context) (*models.Submission, services.Decision, bool) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return nil, services.Decision{}, false
	}

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, services.Decision{}, false
	}
	category, _ := getCurrentCategory(c)

	var req decisionReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, services.Decision{}, false
	}

	var submission models.Submission
	if err := config.DB.
		Where("submission_id = ? AND delete_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return nil, services.Decision{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return nil, services.Decision{}, false
	}

	decision := services.Decision{
		ReviewerOrgID:    orgID,
		ReviewerCategory: category,
		Comment:          req.Comment,
		Items:            req.Items,
		Opinion:          req.Opinion,
		IPAddress:        c.ClientIP(),
		UserAgent:        c.GetHeader("User-Agent"),
	}
	return &submission, decision, true
}

func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": "This submission was already handled"})
	case errors.Is(err, services.ErrNotCurrentReviewer):
		c.JSON(http.StatusForbidden, gin.H{"error": "This submission is not routed to your organization"})
	case errors.Is(err, services.ErrRevisionReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one revision reason or comment is required"})
	case errors.Is(err, services.ErrNotAnAppeal):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission is not a letter of appeal"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
	}
}
