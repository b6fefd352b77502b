package models

import "time"

// Notification is an immutable state-change announcement. TargetOrgID nil
// means broadcast; per-viewer read state lives in notification_read_status.
type Notification struct {
	NotificationID      int       `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	CreatorOrgID        int       `gorm:"column:creator_org_id" json:"creator_org_id"`
	TargetOrgID         *int      `gorm:"column:target_org_id" json:"target_org_id,omitempty"`
	Title               string    `gorm:"column:title" json:"title"`
	Description         string    `gorm:"column:description" json:"description"`
	RelatedSubmissionID *int      `gorm:"column:related_submission_id" json:"related_submission_id,omitempty"`
	CreateAt            time.Time `gorm:"column:create_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

type NotificationReadStatus struct {
	ID             int        `gorm:"primaryKey;column:id" json:"id"`
	NotificationID int        `gorm:"column:notification_id" json:"notification_id"`
	OrgID          int        `gorm:"column:org_id" json:"org_id"`
	IsRead         bool       `gorm:"column:is_read" json:"is_read"`
	ReadAt         *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}

func (NotificationReadStatus) TableName() string { return "notification_read_status" }
