package models

import "time"

// ActivityLog records one administrative action taken by an account.
type ActivityLog struct {
	LogID       int       `gorm:"primaryKey;column:log_id" json:"log_id"`
	AccountID   int       `gorm:"column:account_id" json:"account_id"`
	Action      string    `gorm:"column:action" json:"action"`
	EntityType  string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID    *int      `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IPAddress   string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent   *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
