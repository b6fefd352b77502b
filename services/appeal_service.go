package services

import (
	"time"

	"gorm.io/gorm"

	"org-compliance-api/models"
)

// AppealState is the derived standing of the latest letter of appeal for one
// (event, org, report type) triple. It is computed from the appeal rows on
// demand, never stored on the event.
type AppealState string

const (
	AppealStateNone          AppealState = "none"
	AppealStatePendingReview AppealState = "pending_review"
	AppealStateApproved      AppealState = "approved"
	AppealStateDeclined      AppealState = "declined"
)

// DeriveAppealState classifies the latest appeal row. A nil row means no
// appeal was ever filed.
func DeriveAppealState(latest *models.Submission) AppealState {
	if latest == nil {
		return AppealStateNone
	}
	switch latest.Status {
	case models.StatusPending:
		return AppealStatePendingReview
	case models.StatusApproved:
		return AppealStateApproved
	case models.StatusRejected:
		return AppealStateDeclined
	default:
		// for_revision on an appeal behaves like no decision yet
		return AppealStatePendingReview
	}
}

// DeadlineBanner is what the dashboard shows an org about one report deadline.
type DeadlineBanner string

const (
	BannerUpcoming      DeadlineBanner = "upcoming"
	BannerDeadlineToday DeadlineBanner = "deadline_today"
	BannerPendingReview DeadlineBanner = "pending_review"
	BannerExtended      DeadlineBanner = "extended"
	BannerOverdue       DeadlineBanner = "overdue"
)

// SelectBanner picks the banner for a report deadline given the appeal state.
// A pending appeal suppresses the deadline warning; an approved appeal shows
// the extended date; a declined appeal means the report is due today with no
// extension regardless of the calendar.
func SelectBanner(state AppealState, today, deadline time.Time) DeadlineBanner {
	switch state {
	case AppealStatePendingReview:
		return BannerPendingReview
	case AppealStateApproved:
		if today.After(deadline) && !SameDeadlineDay(today, deadline) {
			return BannerOverdue
		}
		return BannerExtended
	case AppealStateDeclined:
		return BannerDeadlineToday
	}
	if SameDeadlineDay(today, deadline) {
		return BannerDeadlineToday
	}
	if today.After(deadline) {
		return BannerOverdue
	}
	return BannerUpcoming
}

// AppealService answers deadline-standing queries for events.
type AppealService struct {
	db *gorm.DB
}

func NewAppealService(db *gorm.DB) *AppealService {
	return &AppealService{db: db}
}

// LatestAppeal loads the most recent letter of appeal an org filed against a
// report deadline on an event. Returns nil when none exists.
func (s *AppealService) LatestAppeal(eventID, orgID int, reportType string) (*models.Submission, error) {
	var appeal models.Submission
	err := s.db.
		Where("submission_type = ? AND event_id = ? AND org_id = ? AND appeal_report_type = ? AND delete_at IS NULL",
			models.SubmissionTypeLetterOfAppeal, eventID, orgID, reportType).
		Order("create_at DESC").
		First(&appeal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &appeal, nil
}

// DeadlineStanding combines the effective deadline, derived appeal state and
// banner for one report on one event.
type DeadlineStanding struct {
	ReportType  string         `json:"report_type"`
	Deadline    time.Time      `json:"deadline"`
	AppealState AppealState    `json:"appeal_state"`
	Banner      DeadlineBanner `json:"banner"`
}

// Standing resolves the deadline standing for an org's report on an event as
// of `today`.
func (s *AppealService) Standing(event *models.OsldEvent, orgID int, reportType string, today time.Time) (*DeadlineStanding, error) {
	latest, err := s.LatestAppeal(event.EventID, orgID, reportType)
	if err != nil {
		return nil, err
	}
	state := DeriveAppealState(latest)
	deadline := EffectiveDeadline(event, reportType)
	return &DeadlineStanding{
		ReportType:  reportType,
		Deadline:    deadline,
		AppealState: state,
		Banner:      SelectBanner(state, today, deadline),
	}, nil
}
