package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"org-compliance-api/models"
)

func pendingReport(id, orgID int, submittedTo string) *models.Submission {
	return &models.Submission{
		SubmissionID:     id,
		SubmissionNumber: "ACC-20240607-TEST",
		OrgID:            orgID,
		OrgCategory:      models.CategoryAO,
		SubmissionType:   models.SubmissionTypeAccomplishmentReport,
		Status:           models.StatusPending,
		SubmittedTo:      submittedTo,
	}
}

func notifyInsertSteps() []*queryStep {
	return []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `notifications`"),
			result:  scriptedResult{lastInsertID: 100, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `notification_read_status`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			// Email lookup finds no account: the send is skipped silently.
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .*email.* FROM `org_accounts`"),
			columns: []string{"email", "org_name"},
			rows:    [][]driver.Value{},
		},
	}
}

func TestEndorsementReroutesToCOA(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE submissions SET submitted_to = \?, endorsed_to_coa = 1`),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `submission_status_history`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `activity_logs`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			// Fan-out to COA accounts.
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `org_accounts` WHERE category = \\?"),
			columns: []string{"account_id", "org_name", "email", "category"},
			rows:    [][]driver.Value{{int64(9), "Commission on Audit", "", "coa"}},
		},
	}
	steps = append(steps, notifyInsertSteps()...) // to COA
	steps = append(steps, notifyInsertSteps()...) // to the originating org

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewWorkflowService(db)
	sub := pendingReport(42, 7, models.CategoryLCO)

	endorsed, err := svc.Approve(sub, Decision{ReviewerOrgID: 3, ReviewerCategory: models.CategoryLCO})
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if !endorsed {
		t.Fatal("expected an endorsement, got a final approval")
	}

	if sub.SubmittedTo != models.CategoryCOA {
		t.Fatalf("submitted_to = %s, want coa", sub.SubmittedTo)
	}
	if !sub.EndorsedToCoa {
		t.Fatal("endorsed_to_coa not set")
	}
	if sub.Status != models.StatusPending {
		t.Fatalf("status = %s, endorsement must leave the submission pending for COA", sub.Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveLostRaceFailsClosed(t *testing.T) {
	steps := []*queryStep{
		{
			// Another reviewer already decided: the conditional update matches
			// zero rows.
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE submissions SET status = \?, reviewer_opinion = \?`),
			result:  scriptedResult{rowsAffected: 0},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewWorkflowService(db)
	sub := pendingReport(42, 7, models.CategoryCOA)

	_, err := svc.Approve(sub, Decision{ReviewerOrgID: 9, ReviewerCategory: models.CategoryCOA})
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
	if sub.Status != models.StatusPending {
		t.Fatalf("lost race must not mutate the local row, status = %s", sub.Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveRejectsWrongReviewer(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewWorkflowService(db)
	sub := pendingReport(42, 7, models.CategoryCOA)

	_, err := svc.Approve(sub, Decision{ReviewerOrgID: 3, ReviewerCategory: models.CategoryLCO})
	if !errors.Is(err, ErrNotCurrentReviewer) {
		t.Fatalf("expected ErrNotCurrentReviewer, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("guard failure must not touch the database: %v", err)
	}
}

func TestRejectPreservesRow(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE submissions SET status = \?, rejection_reason = \?`),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `submission_status_history`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `activity_logs`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
	}
	steps = append(steps, notifyInsertSteps()...)

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewWorkflowService(db)
	fileID := 55
	sub := pendingReport(8, 5, models.CategoryCOA)
	sub.FileID = &fileID

	err := svc.Reject(sub, Decision{ReviewerOrgID: 9, ReviewerCategory: models.CategoryCOA, Comment: "Receipts incomplete"})
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	if sub.Status != models.StatusRejected {
		t.Fatalf("status = %s, want rejected", sub.Status)
	}
	if sub.RejectionReason == nil || *sub.RejectionReason != "Receipts incomplete" {
		t.Fatalf("rejection reason not recorded: %v", sub.RejectionReason)
	}
	// Rejection is a status, not a removal: everything else survives.
	if sub.OrgID != 5 || sub.FileID == nil || *sub.FileID != 55 {
		t.Fatal("rejection must preserve the row's other fields")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRequestRevisionRequiresReason(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewWorkflowService(db)
	sub := pendingReport(8, 5, models.CategoryCOA)

	err := svc.RequestRevision(sub, Decision{ReviewerOrgID: 9, ReviewerCategory: models.CategoryCOA})
	if !errors.Is(err, ErrRevisionReasonRequired) {
		t.Fatalf("expected ErrRevisionReasonRequired, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("validation failure must not touch the database: %v", err)
	}
}

func TestApproveAppealExtendsEventDeadline(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE submissions SET status = \?, reviewer_opinion = \?`),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `submission_status_history`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `activity_logs`"),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
	}
	steps = append(steps, notifyInsertSteps()...) // approval notice
	steps = append(steps,
		&queryStep{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE osld_events SET accomplishment_deadline_override = \?`),
			result:  scriptedResult{rowsAffected: 1},
		},
	)
	steps = append(steps, notifyInsertSteps()...) // extension notice

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewWorkflowService(db)
	eventID := 4
	reportType := models.SubmissionTypeAccomplishmentReport
	sub := &models.Submission{
		SubmissionID:     9,
		SubmissionNumber: "APL-20240607-TEST",
		OrgID:            5,
		OrgCategory:      models.CategoryAO,
		SubmissionType:   models.SubmissionTypeLetterOfAppeal,
		Status:           models.StatusPending,
		SubmittedTo:      models.CategoryLCO,
		EventID:          &eventID,
		AppealReportType: &reportType,
	}

	endorsed, err := svc.Approve(sub, Decision{ReviewerOrgID: 3, ReviewerCategory: models.CategoryLCO})
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if endorsed {
		t.Fatal("appeal approval must finalize, not endorse")
	}
	if sub.Status != models.StatusApproved {
		t.Fatalf("status = %s, want approved", sub.Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeclineAppealOnNonAppeal(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewWorkflowService(db)
	sub := pendingReport(8, 5, models.CategoryCOA)

	err := svc.DeclineAppeal(sub, Decision{ReviewerOrgID: 9, ReviewerCategory: models.CategoryCOA})
	if !errors.Is(err, ErrNotAnAppeal) {
		t.Fatalf("expected ErrNotAnAppeal, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
