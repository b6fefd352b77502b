package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/services"
)

type createSubmissionReq struct {
	SubmissionType   string   `json:"submission_type" binding:"required"`
	ActivityTitle    string   `json:"activity_title" binding:"required"`
	ActivityDuration *string  `json:"activity_duration"`
	Venue            *string  `json:"venue"`
	Participants     *string  `json:"participants"`
	FundingSource    *string  `json:"funding_source"`
	FundingAmount    *float64 `json:"funding_amount"`
	FileID           *int     `json:"file_id"`
	EventID          *int     `json:"event_id"`

	// Letters of appeal only
	AppealReportType *string `json:"appeal_report_type"`

	// Resubmission after a for_revision decision
	PreviousSubmissionID *int `json:"previous_submission_id"`
}

var validSubmissionTypes = map[string]bool{
	models.SubmissionTypeActivityRequest:      true,
	models.SubmissionTypeAccomplishmentReport: true,
	models.SubmissionTypeLiquidationReport:    true,
	models.SubmissionTypeLetterOfAppeal:       true,
}

// CreateSubmission files a new submission and routes it to its first reviewer.
// A resubmission after for_revision is always a fresh row; the returned row
// links back through previous_submission_id.
func CreateSubmission(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	var req createSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !validSubmissionTypes[req.SubmissionType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission type"})
		return
	}

	createSubmission(c, orgID, category, req)
}

func createSubmission(c *gin.Context, orgID int, category string, req createSubmissionReq) {
	var target string
	var err error
	if req.SubmissionType == models.SubmissionTypeLetterOfAppeal {
		if req.EventID == nil || req.AppealReportType == nil || !models.IsReport(*req.AppealReportType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An appeal must name the event and the report deadline it covers"})
			return
		}
		target = services.AppealRecipient(category)
	} else {
		target, err = services.FirstHop(req.SubmissionType, category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if req.EventID != nil {
		var event models.OsldEvent
		if err := config.DB.Where("event_id = ? AND delete_at IS NULL", *req.EventID).First(&event).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event not found"})
			return
		}
	}

	if req.PreviousSubmissionID != nil {
		var previous models.Submission
		err := config.DB.
			Where("submission_id = ? AND org_id = ? AND status = ? AND delete_at IS NULL",
				*req.PreviousSubmissionID, orgID, models.StatusForRevision).
			First(&previous).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Previous submission is not one of yours awaiting revision"})
			return
		}
	}

	now := time.Now()
	submission := models.Submission{
		SubmissionNumber:     generateSubmissionNumber(req.SubmissionType, now),
		OrgID:                orgID,
		OrgCategory:          category,
		SubmissionType:       req.SubmissionType,
		ActivityTitle:        strings.TrimSpace(req.ActivityTitle),
		ActivityDuration:     req.ActivityDuration,
		Venue:                req.Venue,
		Participants:         req.Participants,
		FundingSource:        req.FundingSource,
		FundingAmount:        req.FundingAmount,
		FileID:               req.FileID,
		Status:               models.StatusPending,
		SubmittedTo:          target,
		EventID:              req.EventID,
		AppealReportType:     req.AppealReportType,
		PreviousSubmissionID: req.PreviousSubmissionID,
		SubmittedAt:          now,
		CreateAt:             now,
		UpdateAt:             now,
	}

	if err := config.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	notifier := services.NewNotificationService(config.DB)
	id := submission.SubmissionID
	notifier.NotifyCategory(orgID, target,
		"New submission for review",
		fmt.Sprintf("%s submitted %s (%s) for your review.",
			strings.ToUpper(category), submission.ActivityTitle, submission.SubmissionNumber), &id)

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// GetSubmissions lists submissions visible to the caller: their own, plus
// anything currently routed to their category when they are a reviewer.
func GetSubmissions(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	query := config.DB.Preload("Org").Preload("Event").Preload("File").
		Where("delete_at IS NULL")

	if models.IsReviewer(category) {
		query = query.Where("submitted_to = ? OR org_id = ?", category, orgID)
	} else {
		query = query.Where("org_id = ?", orgID)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}
	if subType := strings.TrimSpace(c.Query("type")); subType != "" {
		query = query.Where("submission_type = ?", subType)
	}
	if eventID, err := strconv.Atoi(c.Query("event_id")); err == nil && eventID > 0 {
		query = query.Where("event_id = ?", eventID)
	}
	if filterOrg, err := strconv.Atoi(c.Query("org_id")); err == nil && filterOrg > 0 && models.IsReviewer(category) {
		query = query.Where("org_id = ?", filterOrg)
	}

	var submissions []models.Submission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmission returns one submission with its status history.
func GetSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	orgID, _ := getCurrentOrgID(c)
	category, _ := getCurrentCategory(c)

	var submission models.Submission
	if err := config.DB.Preload("Org").Preload("Event").Preload("File").
		Where("submission_id = ? AND delete_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if submission.OrgID != orgID && submission.SubmittedTo != category && !models.IsReviewer(category) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var history []models.SubmissionStatusHistory
	if err := config.DB.Where("submission_id = ?", submissionID).
		Order("created_at ASC").Find(&history).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"submission": submission,
			"history":    history,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// GetRevisionChecklist returns the fixed revision-reason checklist for a type.
func GetRevisionChecklist(c *gin.Context) {
	subType := strings.TrimSpace(c.Query("type"))
	items, ok := services.RevisionChecklist[subType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": subType, "items": items})
}

func generateSubmissionNumber(submissionType string, now time.Time) string {
	prefix := map[string]string{
		models.SubmissionTypeActivityRequest:      "RCA",
		models.SubmissionTypeAccomplishmentReport: "ACC",
		models.SubmissionTypeLiquidationReport:    "LIQ",
		models.SubmissionTypeLetterOfAppeal:       "APL",
	}[submissionType]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
