package services

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"time"

	"gorm.io/gorm"

	"org-compliance-api/config"
	"org-compliance-api/models"
)

// NotificationService emits state-change announcements. Emission is
// at-least-once and fire-and-forget: a failed insert or email is logged and
// never rolls back the transition that triggered it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify records a notification for one org (nil target = broadcast) and
// sends a best-effort email to the targeted account.
func (s *NotificationService) Notify(creatorOrgID int, targetOrgID *int, title, body string, relatedSubmissionID *int) {
	n := models.Notification{
		CreatorOrgID:        creatorOrgID,
		TargetOrgID:         targetOrgID,
		Title:               title,
		Description:         body,
		RelatedSubmissionID: relatedSubmissionID,
		CreateAt:            time.Now(),
	}
	if err := s.db.Create(&n).Error; err != nil {
		log.Printf("notification insert failed (title=%q target=%v): %v", title, targetOrgID, err)
		return
	}

	if targetOrgID == nil {
		return
	}

	readStatus := models.NotificationReadStatus{
		NotificationID: n.NotificationID,
		OrgID:          *targetOrgID,
	}
	if err := s.db.Create(&readStatus).Error; err != nil {
		log.Printf("notification read-status insert failed (notification_id=%d): %v", n.NotificationID, err)
	}

	s.emailOrg(*targetOrgID, title, body)
}

// NotifyCategory fans a notification out to every account in a category.
// Routing targets are categories, not accounts, so hand-offs land here.
func (s *NotificationService) NotifyCategory(creatorOrgID int, category, title, body string, relatedSubmissionID *int) {
	var accounts []models.OrgAccount
	if err := s.db.Where("category = ? AND delete_at IS NULL", category).Find(&accounts).Error; err != nil {
		log.Printf("notification fan-out lookup failed (category=%s): %v", category, err)
		return
	}
	for i := range accounts {
		id := accounts[i].AccountID
		s.Notify(creatorOrgID, &id, title, body, relatedSubmissionID)
	}
}

func (s *NotificationService) emailOrg(orgID int, subject, body string) {
	var account models.OrgAccount
	err := s.db.Select("email", "org_name").
		Where("account_id = ? AND delete_at IS NULL", orgID).
		First(&account).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("notification email lookup failed (org_id=%d): %v", orgID, err)
		}
		return
	}
	if account.Email == "" {
		return
	}
	sendMailSafe([]string{account.Email}, subject, buildNotificationEmailHTML(subject, account.OrgName, body))
}

func sendMailSafe(to []string, subject, html string) {
	if err := config.SendMail(to, subject, html); err != nil {
		log.Printf("notification email send failed (subject=%q to=%v): %v", subject, to, err)
	}
}

func buildNotificationEmailHTML(subject, recipientName, message string) string {
	escapedSubject := template.HTMLEscapeString(subject)
	escapedName := template.HTMLEscapeString(recipientName)
	escapedMessage := template.HTMLEscapeString(message)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h3>%s</h3>
  <p>Dear %s,</p>
  <p>%s</p>
  <p>Please log in to the compliance portal for details.</p>
</body>
</html>`, escapedSubject, escapedName, escapedMessage)
}
