package models

import "time"

// Submission types.
const (
	SubmissionTypeActivityRequest      = "request_to_conduct"
	SubmissionTypeAccomplishmentReport = "accomplishment_report"
	SubmissionTypeLiquidationReport    = "liquidation_report"
	SubmissionTypeLetterOfAppeal       = "letter_of_appeal"
)

// Submission statuses. All three decided states are terminal; a revised
// submission is always a fresh row linked via previous_submission_id.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusForRevision = "for_revision"
)

type Submission struct {
	SubmissionID     int    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	SubmissionNumber string `gorm:"column:submission_number" json:"submission_number"`
	OrgID            int    `gorm:"column:org_id" json:"org_id"`
	OrgCategory      string `gorm:"column:org_category" json:"org_category"`
	SubmissionType   string `gorm:"column:submission_type" json:"submission_type"`

	ActivityTitle    string   `gorm:"column:activity_title" json:"activity_title"`
	ActivityDuration *string  `gorm:"column:activity_duration" json:"activity_duration,omitempty"`
	Venue            *string  `gorm:"column:venue" json:"venue,omitempty"`
	Participants     *string  `gorm:"column:participants" json:"participants,omitempty"`
	FundingSource    *string  `gorm:"column:funding_source" json:"funding_source,omitempty"`
	FundingAmount    *float64 `gorm:"column:funding_amount" json:"funding_amount,omitempty"`

	FileID *int `gorm:"column:file_id" json:"file_id,omitempty"`

	Status        string `gorm:"column:status" json:"status"`
	SubmittedTo   string `gorm:"column:submitted_to" json:"submitted_to"`
	EndorsedToCoa bool   `gorm:"column:endorsed_to_coa" json:"endorsed_to_coa"`

	EventID          *int    `gorm:"column:event_id" json:"event_id,omitempty"`
	AppealReportType *string `gorm:"column:appeal_report_type" json:"appeal_report_type,omitempty"`

	RevisionReason  *string `gorm:"column:revision_reason" json:"revision_reason,omitempty"`
	RejectionReason *string `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	ReviewerOpinion *string `gorm:"column:reviewer_opinion" json:"reviewer_opinion,omitempty"`

	PreviousSubmissionID *int `gorm:"column:previous_submission_id" json:"previous_submission_id,omitempty"`

	SubmittedAt time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Org   *OrgAccount `gorm:"foreignKey:OrgID" json:"org,omitempty"`
	Event *OsldEvent  `gorm:"foreignKey:EventID" json:"event,omitempty"`
	File  *FileUpload `gorm:"foreignKey:FileID" json:"file,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// IsReport reports whether the submission type carries a working-day deadline.
func IsReport(submissionType string) bool {
	return submissionType == SubmissionTypeAccomplishmentReport ||
		submissionType == SubmissionTypeLiquidationReport
}

// SubmissionStatusHistory records every status transition for audit purposes.
type SubmissionStatusHistory struct {
	HistoryID    int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	OldStatus    *string   `gorm:"column:old_status" json:"old_status,omitempty"`
	NewStatus    string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy    int       `gorm:"column:changed_by" json:"changed_by"`
	Reason       *string   `gorm:"column:reason" json:"reason,omitempty"`
	Notes        *string   `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SubmissionStatusHistory) TableName() string {
	return "submission_status_history"
}
