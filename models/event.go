package models

import "time"

// OsldEvent is an activity scheduled by the oversight office. Report deadlines
// are computed from EndDate unless an approved appeal stored an override.
type OsldEvent struct {
	EventID     int       `gorm:"primaryKey;column:event_id" json:"event_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	StartDate   time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date" json:"end_date"`

	RequiresAccomplishment bool `gorm:"column:requires_accomplishment" json:"requires_accomplishment"`
	RequiresLiquidation    bool `gorm:"column:requires_liquidation" json:"requires_liquidation"`

	AccomplishmentDeadlineOverride *time.Time `gorm:"column:accomplishment_deadline_override" json:"accomplishment_deadline_override,omitempty"`
	LiquidationDeadlineOverride    *time.Time `gorm:"column:liquidation_deadline_override" json:"liquidation_deadline_override,omitempty"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Creator *OrgAccount `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (OsldEvent) TableName() string {
	return "osld_events"
}

// DeadlineOverride returns the stored override for the given report type, if any.
func (e *OsldEvent) DeadlineOverride(reportType string) *time.Time {
	switch reportType {
	case SubmissionTypeAccomplishmentReport:
		return e.AccomplishmentDeadlineOverride
	case SubmissionTypeLiquidationReport:
		return e.LiquidationDeadlineOverride
	}
	return nil
}

// RequiresReport reports whether the event expects the given report type.
func (e *OsldEvent) RequiresReport(reportType string) bool {
	switch reportType {
	case SubmissionTypeAccomplishmentReport:
		return e.RequiresAccomplishment
	case SubmissionTypeLiquidationReport:
		return e.RequiresLiquidation
	}
	return false
}
