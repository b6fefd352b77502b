package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/services"
)

type eventReq struct {
	Title                  string    `json:"title" binding:"required"`
	Description            *string   `json:"description"`
	StartDate              time.Time `json:"start_date" binding:"required"`
	EndDate                time.Time `json:"end_date" binding:"required"`
	RequiresAccomplishment bool      `json:"requires_accomplishment"`
	RequiresLiquidation    bool      `json:"requires_liquidation"`
}

// CreateEvent schedules an activity. OSLD only (enforced in routes).
func CreateEvent(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	now := time.Now()
	event := models.OsldEvent{
		Title:                  req.Title,
		Description:            req.Description,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		RequiresAccomplishment: req.RequiresAccomplishment,
		RequiresLiquidation:    req.RequiresLiquidation,
		CreatedBy:              orgID,
		CreateAt:               now,
		UpdateAt:               now,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	// Broadcast so every org sees the new reporting obligation.
	notifier := services.NewNotificationService(config.DB)
	notifier.Notify(orgID, nil, "New OSLD event scheduled",
		"Event \""+event.Title+"\" was scheduled. Check its report deadlines on your dashboard.", nil)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"event":   event,
	})
}

// GetEvents lists events that are still open (not completed/deleted).
func GetEvents(c *gin.Context) {
	var events []models.OsldEvent
	if err := config.DB.Where("delete_at IS NULL").Order("start_date DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   len(events),
	})
}

// GetEvent returns one event.
func GetEvent(c *gin.Context) {
	event, ok := loadEvent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// UpdateEvent edits event fields. Deadline overrides are not editable here;
// only an approved appeal moves them.
func UpdateEvent(c *gin.Context) {
	event, ok := loadEvent(c)
	if !ok {
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	updates := map[string]interface{}{
		"title":                   req.Title,
		"description":             req.Description,
		"start_date":              req.StartDate,
		"end_date":                req.EndDate,
		"requires_accomplishment": req.RequiresAccomplishment,
		"requires_liquidation":    req.RequiresLiquidation,
		"update_at":               time.Now(),
	}
	if err := config.DB.Model(&models.OsldEvent{}).
		Where("event_id = ?", event.EventID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event updated"})
}

// DeleteEvent soft-deletes an event, removing its deadlines from dashboards.
func DeleteEvent(c *gin.Context) {
	event, ok := loadEvent(c)
	if !ok {
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.OsldEvent{}).
		Where("event_id = ? AND delete_at IS NULL", event.EventID).
		Update("delete_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted"})
}

// GetEventDeadlines returns the caller's deadline standing for each report the
// event requires: effective date, appeal tri-state and banner.
func GetEventDeadlines(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	event, ok := loadEvent(c)
	if !ok {
		return
	}

	appeals := services.NewAppealService(config.DB)
	today := time.Now()

	standings := []*services.DeadlineStanding{}
	for _, reportType := range []string{models.SubmissionTypeAccomplishmentReport, models.SubmissionTypeLiquidationReport} {
		if !event.RequiresReport(reportType) {
			continue
		}
		standing, err := appeals.Standing(event, orgID, reportType, today)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute deadlines"})
			return
		}
		standings = append(standings, standing)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"event_id":  event.EventID,
		"deadlines": standings,
	})
}

func loadEvent(c *gin.Context) (*models.OsldEvent, bool) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, false
	}

	var event models.OsldEvent
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return nil, false
	}
	return &event, true
}
