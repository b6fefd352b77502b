package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/models"
)

type notificationView struct {
	models.Notification
	IsRead bool `json:"is_read"`
}

// GetNotifications lists notifications visible to the caller: ones targeted
// at their org plus broadcasts, newest first.
func GetNotifications(c *gin.Context) {
	db := getDB()

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	unreadOnly := strings.TrimSpace(c.Query("unreadOnly"))
	limit := 20
	offset := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	var items []models.Notification
	if err := db.Model(&models.Notification{}).
		Where("target_org_id = ? OR target_org_id IS NULL", orgID).
		Order("create_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	readIDs := map[int]bool{}
	var reads []models.NotificationReadStatus
	if err := db.Where("org_id = ? AND is_read = 1", orgID).Find(&reads).Error; err == nil {
		for _, r := range reads {
			readIDs[r.NotificationID] = true
		}
	}

	views := make([]notificationView, 0, len(items))
	for _, n := range items {
		read := readIDs[n.NotificationID]
		if unreadOnly == "1" || strings.EqualFold(unreadOnly, "true") {
			if read {
				continue
			}
		}
		views = append(views, notificationView{Notification: n, IsRead: read})
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}

// GetNotificationCounter returns the unread count for the badge.
func GetNotificationCounter(c *gin.Context) {
	db := getDB()

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var total int64
	if err := db.Model(&models.Notification{}).
		Where("target_org_id = ? OR target_org_id IS NULL", orgID).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var read int64
	if err := db.Model(&models.NotificationReadStatus{}).
		Where("org_id = ? AND is_read = 1", orgID).
		Count(&read).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	unread := total - read
	if unread < 0 {
		unread = 0
	}
	c.JSON(http.StatusOK, gin.H{"unread": unread})
}

// MarkNotificationRead upserts the caller's read marker for one notification.
func MarkNotificationRead(c *gin.Context) {
	db := getDB()

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || notificationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	now := time.Now()
	var status models.NotificationReadStatus
	err = db.Where("notification_id = ? AND org_id = ?", notificationID, orgID).First(&status).Error
	if err == nil {
		if err := db.Model(&models.NotificationReadStatus{}).
			Where("id = ?", status.ID).
			Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		status = models.NotificationReadStatus{
			NotificationID: notificationID,
			OrgID:          orgID,
			IsRead:         true,
			ReadAt:         &now,
		}
		if err := db.Create(&status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MarkAllNotificationsRead marks everything currently visible as read.
func MarkAllNotificationsRead(c *gin.Context) {
	db := getDB()

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var items []models.Notification
	if err := db.Where("target_org_id = ? OR target_org_id IS NULL", orgID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	for _, n := range items {
		var status models.NotificationReadStatus
		err := db.Where("notification_id = ? AND org_id = ?", n.NotificationID, orgID).First(&status).Error
		if err == nil {
			if status.IsRead {
				continue
			}
			db.Model(&models.NotificationReadStatus{}).
				Where("id = ?", status.ID).
				Updates(map[string]interface{}{"is_read": true, "read_at": now})
			continue
		}
		db.Create(&models.NotificationReadStatus{
			NotificationID: n.NotificationID,
			OrgID:          orgID,
			IsRead:         true,
			ReadAt:         &now,
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteNotification removes a notification from the caller's feed. Targeted
// rows are deleted outright; broadcasts are dismissed via the read marker so
// other orgs keep seeing them.
func DeleteNotification(c *gin.Context) {
	db := getDB()

	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || notificationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var n models.Notification
	if err := db.Where("notification_id = ?", notificationID).First(&n).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if n.TargetOrgID != nil {
		if *n.TargetOrgID != orgID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		if err := db.Delete(&models.NotificationReadStatus{}, "notification_id = ?", notificationID).Error; err == nil {
			_ = db.Delete(&models.Notification{}, "notification_id = ?", notificationID).Error
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	now := time.Now()
	var status models.NotificationReadStatus
	if err := db.Where("notification_id = ? AND org_id = ?", notificationID, orgID).First(&status).Error; err == nil {
		db.Model(&models.NotificationReadStatus{}).
			Where("id = ?", status.ID).
			Updates(map[string]interface{}{"is_read": true, "read_at": now})
	} else {
		db.Create(&models.NotificationReadStatus{
			NotificationID: notificationID,
			OrgID:          orgID,
			IsRead:         true,
			ReadAt:         &now,
		})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
