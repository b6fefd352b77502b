package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/services"
)

type fileAppealReq struct {
	ActivityTitle        string  `json:"activity_title" binding:"required"`
	EventID              *int    `json:"event_id" binding:"required"`
	AppealReportType     *string `json:"appeal_report_type" binding:"required"`
	FileID               *int    `json:"file_id"`
	PreviousSubmissionID *int    `json:"previous_submission_id"`
}

// FileAppeal creates a letter of appeal against a report deadline. Same row as
// any other submission; this route just fixes the type.
func FileAppeal(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	var req fileAppealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	createSubmission(c, orgID, category, createSubmissionReq{
		SubmissionType:       models.SubmissionTypeLetterOfAppeal,
		ActivityTitle:        req.ActivityTitle,
		EventID:              req.EventID,
		AppealReportType:     req.AppealReportType,
		FileID:               req.FileID,
		PreviousSubmissionID: req.PreviousSubmissionID,
	})
}

// ApproveAppeal grants the extension: the linked event's deadline override is
// set to today plus three working days and the appellant is notified.
func ApproveAppeal(c *gin.Context) {
	submission, decision, ok := loadDecisionContext(c)
	if !ok {
		return
	}
	if submission.SubmissionType != models.SubmissionTypeLetterOfAppeal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission is not a letter of appeal"})
		return
	}

	workflow := services.NewWorkflowService(config.DB)
	if _, err := workflow.Approve(submission, decision); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Appeal approved; deadline extended",
		"submission": submission,
	})
}

// DeclineAppeal denies the extension. Persisted as rejected; the report stays
// due today.
func DeclineAppeal(c *gin.Context) {
	submission, decision, ok := loadDecisionContext(c)
	if !ok {
		return
	}

	workflow := services.NewWorkflowService(config.DB)
	if err := workflow.DeclineAppeal(submission, decision); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Appeal declined",
		"submission": submission,
	})
}

// GetAppealState reports the derived deadline standing for one report on one
// event: effective deadline, appeal tri-state and the banner to show.
func GetAppealState(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	eventID, err := strconv.Atoi(c.Query("event_id"))
	if err != nil || eventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	reportType := strings.TrimSpace(c.Query("report_type"))
	if !models.IsReport(reportType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report type"})
		return
	}

	var event models.OsldEvent
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	appeals := services.NewAppealService(config.DB)
	standing, err := appeals.Standing(&event, orgID, reportType, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive appeal state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"event_id": eventID,
		"standing": standing,
	})
}
