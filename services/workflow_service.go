package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"org-compliance-api/models"
)

var (
	// ErrAlreadyDecided surfaces a lost decision race: the conditional update
	// matched zero rows because another reviewer got there first.
	ErrAlreadyDecided = errors.New("submission has already been decided")

	// ErrNotCurrentReviewer is returned when the deciding org is not the one
	// the submission is currently routed to.
	ErrNotCurrentReviewer = errors.New("submission is not routed to this organization")

	// ErrRevisionReasonRequired is returned when a revision request carries
	// neither a checklist item nor a free-text comment.
	ErrRevisionReasonRequired = errors.New("at least one revision reason or comment is required")

	// ErrNotAnAppeal is returned when an appeal decision targets a submission
	// that is not a letter of appeal.
	ErrNotAnAppeal = errors.New("submission is not a letter of appeal")
)

// Decision carries the reviewing org's input for one transition.
type Decision struct {
	ReviewerOrgID    int
	ReviewerCategory string
	Comment          string
	Items            []string
	Opinion          string
	IPAddress        string
	UserAgent        string
}

// WorkflowService drives the submission lifecycle:
// pending -> approved | rejected | for_revision, with endorsement re-routing
// and appeal deadline extensions as side effects. Every transition is a
// conditional update guarded on status = 'pending'; side effects after the
// update are fire-and-forget and logged on failure.
type WorkflowService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db, notifier: NewNotificationService(db)}
}

// Approve finalizes a submission, or endorses it onward when the reviewer is
// an intermediate (LCO/USG) acting on a report. Returns endorsed=true when the
// submission was re-routed to COA instead of being finalized.
func (s *WorkflowService) Approve(sub *models.Submission, d Decision) (endorsed bool, err error) {
	if err := s.guard(sub, d); err != nil {
		return false, err
	}
	if models.IsReport(sub.SubmissionType) && IsIntermediateReviewer(d.ReviewerCategory) {
		return true, s.endorse(sub, d)
	}
	return false, s.finalApprove(sub, d)
}

func (s *WorkflowService) endorse(sub *models.Submission, d Decision) error {
	now := time.Now()
	res := s.db.Exec(
		"UPDATE submissions SET submitted_to = ?, endorsed_to_coa = 1, update_at = ? WHERE submission_id = ? AND status = 'pending'",
		EndorsementTarget, now, sub.SubmissionID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}

	from := sub.SubmittedTo
	sub.SubmittedTo = EndorsementTarget
	sub.EndorsedToCoa = true
	sub.UpdateAt = now

	note := fmt.Sprintf("endorsed:%s->%s", from, EndorsementTarget)
	s.recordHistory(sub.SubmissionID, models.StatusPending, models.StatusPending, d, note)
	s.recordActivity(d, "endorse", sub.SubmissionID, fmt.Sprintf("Endorsed %s to %s", sub.SubmissionNumber, strings.ToUpper(EndorsementTarget)))

	id := sub.SubmissionID
	title := fmt.Sprintf("%s endorsed for audit", submissionLabel(sub.SubmissionType))
	s.notifier.NotifyCategory(d.ReviewerOrgID, EndorsementTarget, title,
		fmt.Sprintf("Submission %s was endorsed by %s and now awaits your review.", sub.SubmissionNumber, strings.ToUpper(from)), &id)
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID, title,
		fmt.Sprintf("Your %s was endorsed by %s and forwarded to COA.", submissionLabel(sub.SubmissionType), strings.ToUpper(from)), &id)
	return nil
}

func (s *WorkflowService) finalApprove(sub *models.Submission, d Decision) error {
	now := time.Now()
	var opinion *string
	if trimmed := strings.TrimSpace(d.Opinion); trimmed != "" {
		opinion = &trimmed
	}
	res := s.db.Exec(
		"UPDATE submissions SET status = ?, reviewer_opinion = ?, update_at = ? WHERE submission_id = ? AND status = 'pending'",
		models.StatusApproved, opinion, now, sub.SubmissionID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}

	sub.Status = models.StatusApproved
	sub.ReviewerOpinion = opinion
	sub.UpdateAt = now

	s.recordHistory(sub.SubmissionID, models.StatusPending, models.StatusApproved, d, "")
	s.recordActivity(d, "approve", sub.SubmissionID, fmt.Sprintf("Approved %s", sub.SubmissionNumber))

	id := sub.SubmissionID
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID,
		fmt.Sprintf("%s approved", submissionLabel(sub.SubmissionType)),
		fmt.Sprintf("Your %s (%s) was approved by %s.", submissionLabel(sub.SubmissionType), sub.SubmissionNumber, strings.ToUpper(d.ReviewerCategory)), &id)

	if sub.SubmissionType == models.SubmissionTypeLetterOfAppeal {
		s.applyAppealExtension(sub, d, now)
	} else if models.IsReport(sub.SubmissionType) && sub.EventID != nil {
		s.maybeCompleteEvent(*sub.EventID, sub.OrgID)
	}
	return nil
}

// Reject ends the submission with an optional free-text reason. The row is
// preserved in full; rejection is a status, not a removal.
func (s *WorkflowService) Reject(sub *models.Submission, d Decision) error {
	if err := s.guard(sub, d); err != nil {
		return err
	}
	if err := s.transitionRejected(sub, d); err != nil {
		return err
	}

	id := sub.SubmissionID
	body := fmt.Sprintf("Your %s (%s) was rejected by %s.", submissionLabel(sub.SubmissionType), sub.SubmissionNumber, strings.ToUpper(d.ReviewerCategory))
	if sub.RejectionReason != nil {
		body += " Reason: " + *sub.RejectionReason
	}
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID,
		fmt.Sprintf("%s rejected", submissionLabel(sub.SubmissionType)), body, &id)
	return nil
}

// DeclineAppeal rejects a letter of appeal. The persisted status is the same
// 'rejected' as Reject; only the notification copy differs: the underlying
// report is due today with no extension.
func (s *WorkflowService) DeclineAppeal(sub *models.Submission, d Decision) error {
	if sub.SubmissionType != models.SubmissionTypeLetterOfAppeal {
		return ErrNotAnAppeal
	}
	if err := s.guard(sub, d); err != nil {
		return err
	}
	if err := s.transitionRejected(sub, d); err != nil {
		return err
	}

	id := sub.SubmissionID
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID, "Letter of appeal declined",
		fmt.Sprintf("Your appeal (%s) was declined. The report it covers is due today; no extension was granted.", sub.SubmissionNumber), &id)
	return nil
}

func (s *WorkflowService) transitionRejected(sub *models.Submission, d Decision) error {
	now := time.Now()
	var reason *string
	if trimmed := strings.TrimSpace(d.Comment); trimmed != "" {
		reason = &trimmed
	}
	res := s.db.Exec(
		"UPDATE submissions SET status = ?, rejection_reason = ?, update_at = ? WHERE submission_id = ? AND status = 'pending'",
		models.StatusRejected, reason, now, sub.SubmissionID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}

	sub.Status = models.StatusRejected
	sub.RejectionReason = reason
	sub.UpdateAt = now

	s.recordHistory(sub.SubmissionID, models.StatusPending, models.StatusRejected, d, "")
	s.recordActivity(d, "reject", sub.SubmissionID, fmt.Sprintf("Rejected %s", sub.SubmissionNumber))
	return nil
}

// RequestRevision sends the submission back with an itemized reason list. The
// row stays in for_revision permanently; the org resubmits as a new row
// linked through previous_submission_id.
func (s *WorkflowService) RequestRevision(sub *models.Submission, d Decision) error {
	if err := s.guard(sub, d); err != nil {
		return err
	}

	items := ValidRevisionItems(sub.SubmissionType, d.Items)
	comment := strings.TrimSpace(d.Comment)
	if len(items) == 0 && comment == "" {
		return ErrRevisionReasonRequired
	}

	parts := append([]string{}, items...)
	if comment != "" {
		parts = append(parts, comment)
	}
	reason := strings.Join(parts, "; ")

	now := time.Now()
	res := s.db.Exec(
		"UPDATE submissions SET status = ?, revision_reason = ?, update_at = ? WHERE submission_id = ? AND status = 'pending'",
		models.StatusForRevision, reason, now, sub.SubmissionID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}

	sub.Status = models.StatusForRevision
	sub.RevisionReason = &reason
	sub.UpdateAt = now

	s.recordHistory(sub.SubmissionID, models.StatusPending, models.StatusForRevision, d, "")
	s.recordActivity(d, "request_revision", sub.SubmissionID, fmt.Sprintf("Returned %s for revision", sub.SubmissionNumber))

	id := sub.SubmissionID
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID,
		fmt.Sprintf("%s returned for revision", submissionLabel(sub.SubmissionType)),
		fmt.Sprintf("Your %s (%s) needs revision: %s. Please correct the items and submit again.", submissionLabel(sub.SubmissionType), sub.SubmissionNumber, reason), &id)
	return nil
}

// applyAppealExtension moves the appealed report's deadline on the linked
// event to today plus the appeal allowance and informs the appellant.
func (s *WorkflowService) applyAppealExtension(sub *models.Submission, d Decision, now time.Time) {
	if sub.EventID == nil || sub.AppealReportType == nil {
		log.Printf("appeal %d approved without an event/report linkage; no extension applied", sub.SubmissionID)
		return
	}

	newDeadline := AddWorkingDays(now, AppealExtensionDays)
	column := "accomplishment_deadline_override"
	if *sub.AppealReportType == models.SubmissionTypeLiquidationReport {
		column = "liquidation_deadline_override"
	}

	res := s.db.Exec(
		"UPDATE osld_events SET "+column+" = ?, update_at = ? WHERE event_id = ? AND delete_at IS NULL",
		newDeadline, now, *sub.EventID,
	)
	if res.Error != nil {
		log.Printf("appeal extension update failed (event_id=%d): %v", *sub.EventID, res.Error)
		return
	}

	id := sub.SubmissionID
	s.notifier.Notify(d.ReviewerOrgID, &sub.OrgID, "Deadline extended",
		fmt.Sprintf("Your appeal was approved. The %s deadline is extended to %s.",
			submissionLabel(*sub.AppealReportType), newDeadline.Format("January 2, 2006")), &id)
}

// maybeCompleteEvent soft-deletes an event once every report it requires has
// an approved submission from the org, which removes its deadlines from the
// org's dashboard.
func (s *WorkflowService) maybeCompleteEvent(eventID, orgID int) {
	var event models.OsldEvent
	if err := s.db.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("event completion check failed (event_id=%d): %v", eventID, err)
		}
		return
	}

	required := []string{}
	if event.RequiresAccomplishment {
		required = append(required, models.SubmissionTypeAccomplishmentReport)
	}
	if event.RequiresLiquidation {
		required = append(required, models.SubmissionTypeLiquidationReport)
	}
	if len(required) == 0 {
		return
	}

	for _, reportType := range required {
		var count int64
		err := s.db.Model(&models.Submission{}).
			Where("event_id = ? AND org_id = ? AND submission_type = ? AND status = ? AND delete_at IS NULL",
				eventID, orgID, reportType, models.StatusApproved).
			Count(&count).Error
		if err != nil {
			log.Printf("event completion count failed (event_id=%d type=%s): %v", eventID, reportType, err)
			return
		}
		if count == 0 {
			return
		}
	}

	now := time.Now()
	if err := s.db.Exec("UPDATE osld_events SET delete_at = ? WHERE event_id = ? AND delete_at IS NULL", now, eventID).Error; err != nil {
		log.Printf("event completion delete failed (event_id=%d): %v", eventID, err)
	}
}

func (s *WorkflowService) guard(sub *models.Submission, d Decision) error {
	if sub.SubmittedTo != d.ReviewerCategory {
		return ErrNotCurrentReviewer
	}
	if sub.Status != models.StatusPending {
		return ErrAlreadyDecided
	}
	return nil
}

func (s *WorkflowService) recordHistory(submissionID int, oldStatus, newStatus string, d Decision, note string) {
	history := models.SubmissionStatusHistory{
		SubmissionID: submissionID,
		OldStatus:    &oldStatus,
		NewStatus:    newStatus,
		ChangedBy:    d.ReviewerOrgID,
		CreatedAt:    time.Now(),
	}
	if comment := strings.TrimSpace(d.Comment); comment != "" {
		history.Reason = &comment
	}
	if note != "" {
		history.Notes = &note
	}
	if err := s.db.Create(&history).Error; err != nil {
		log.Printf("status history insert failed (submission_id=%d): %v", submissionID, err)
	}
}

func (s *WorkflowService) recordActivity(d Decision, action string, submissionID int, description string) {
	entityID := submissionID
	entry := models.ActivityLog{
		AccountID:   d.ReviewerOrgID,
		Action:      action,
		EntityType:  "submission",
		EntityID:    &entityID,
		Description: &description,
		IPAddress:   d.IPAddress,
		CreatedAt:   time.Now(),
	}
	if ua := strings.TrimSpace(d.UserAgent); ua != "" {
		entry.UserAgent = &ua
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("activity log insert failed (submission_id=%d): %v", submissionID, err)
	}
}

func submissionLabel(submissionType string) string {
	switch submissionType {
	case models.SubmissionTypeActivityRequest:
		return "request to conduct activity"
	case models.SubmissionTypeAccomplishmentReport:
		return "accomplishment report"
	case models.SubmissionTypeLiquidationReport:
		return "liquidation report"
	case models.SubmissionTypeLetterOfAppeal:
		return "letter of appeal"
	}
	return "submission"
}
