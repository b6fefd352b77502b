package models

import "time"

// CoaReviewCopy is a reviewed copy of a financial report filed by COA against
// a submission, with the auditor's opinion attached.
type CoaReviewCopy struct {
	CopyID       int        `gorm:"primaryKey;column:copy_id" json:"copy_id"`
	OrgID        int        `gorm:"column:org_id" json:"org_id"`
	SubmissionID int        `gorm:"column:submission_id" json:"submission_id"`
	FileID       *int       `gorm:"column:file_id" json:"file_id,omitempty"`
	Opinion      *string    `gorm:"column:opinion" json:"opinion,omitempty"`
	Remarks      *string    `gorm:"column:remarks" json:"remarks,omitempty"`
	CreatedBy    int        `gorm:"column:created_by" json:"created_by"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Submission *Submission `gorm:"foreignKey:SubmissionID" json:"submission,omitempty"`
	File       *FileUpload `gorm:"foreignKey:FileID" json:"file,omitempty"`
}

func (CoaReviewCopy) TableName() string {
	return "coa_review_copies"
}

// CoaAuditSchedule is a scheduled audit visit for an organization.
type CoaAuditSchedule struct {
	ScheduleID    int        `gorm:"primaryKey;column:schedule_id" json:"schedule_id"`
	OrgID         int        `gorm:"column:org_id" json:"org_id"`
	ScheduledDate time.Time  `gorm:"column:scheduled_date" json:"scheduled_date"`
	Agenda        *string    `gorm:"column:agenda" json:"agenda,omitempty"`
	CreatedBy     int        `gorm:"column:created_by" json:"created_by"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Org *OrgAccount `gorm:"foreignKey:OrgID" json:"org,omitempty"`
}

func (CoaAuditSchedule) TableName() string {
	return "coa_audit_schedule"
}
