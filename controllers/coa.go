package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/services"
)

// GetReviewCopies lists COA review copies. COA sees everything; other orgs
// only their own.
func GetReviewCopies(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	query := config.DB.Preload("Submission").Preload("File").Where("delete_at IS NULL")
	if category != models.CategoryCOA {
		query = query.Where("org_id = ?", orgID)
	}
	if submissionID, err := strconv.Atoi(c.Query("submission_id")); err == nil && submissionID > 0 {
		query = query.Where("submission_id = ?", submissionID)
	}

	var copies []models.CoaReviewCopy
	if err := query.Order("create_at DESC").Find(&copies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review copies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "copies": copies})
}

type reviewCopyReq struct {
	SubmissionID int     `json:"submission_id" binding:"required"`
	FileID       *int    `json:"file_id"`
	Opinion      *string `json:"opinion"`
	Remarks      *string `json:"remarks"`
}

// CreateReviewCopy files an audited copy with the auditor's opinion against a
// submission. COA only (enforced in routes); the audited org is notified.
func CreateReviewCopy(c *gin.Context) {
	coaID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req reviewCopyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ? AND delete_at IS NULL", req.SubmissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission not found"})
		return
	}

	copy := models.CoaReviewCopy{
		OrgID:        submission.OrgID,
		SubmissionID: submission.SubmissionID,
		FileID:       req.FileID,
		Opinion:      req.Opinion,
		Remarks:      req.Remarks,
		CreatedBy:    coaID,
		CreateAt:     time.Now(),
	}

	if err := config.DB.Create(&copy).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review copy"})
		return
	}

	notifier := services.NewNotificationService(config.DB)
	id := submission.SubmissionID
	notifier.Notify(coaID, &submission.OrgID, "Audit review copy available",
		"COA filed a reviewed copy of "+submission.SubmissionNumber+".", &id)

	c.JSON(http.StatusCreated, gin.H{"success": true, "copy": copy})
}

// GetAuditSchedule lists scheduled audits. COA sees all; other orgs theirs.
func GetAuditSchedule(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	query := config.DB.Preload("Org").Where("delete_at IS NULL")
	if category != models.CategoryCOA {
		query = query.Where("org_id = ?", orgID)
	}

	var schedule []models.CoaAuditSchedule
	if err := query.Order("scheduled_date ASC").Find(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "schedule": schedule})
}

type auditScheduleReq struct {
	OrgID         int       `json:"org_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Agenda        *string   `json:"agenda"`
}

// CreateAuditSchedule books an audit visit for an org and notifies it.
func CreateAuditSchedule(c *gin.Context) {
	coaID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req auditScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var account models.OrgAccount
	if err := config.DB.Where("account_id = ? AND delete_at IS NULL", req.OrgID).First(&account).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization not found"})
		return
	}

	now := time.Now()
	entry := models.CoaAuditSchedule{
		OrgID:         req.OrgID,
		ScheduledDate: req.ScheduledDate,
		Agenda:        req.Agenda,
		CreatedBy:     coaID,
		CreateAt:      now,
		UpdateAt:      now,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create audit schedule"})
		return
	}

	notifier := services.NewNotificationService(config.DB)
	notifier.Notify(coaID, &req.OrgID, "Audit scheduled",
		"COA scheduled an audit on "+req.ScheduledDate.Format("January 2, 2006")+".", nil)

	c.JSON(http.StatusCreated, gin.H{"success": true, "schedule": entry})
}
