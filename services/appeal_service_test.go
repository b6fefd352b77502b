package services

import (
	"testing"
	"time"

	"org-compliance-api/models"
)

func TestDeriveAppealState(t *testing.T) {
	cases := []struct {
		name   string
		latest *models.Submission
		want   AppealState
	}{
		{"no appeal filed", nil, AppealStateNone},
		{"pending", &models.Submission{Status: models.StatusPending}, AppealStatePendingReview},
		{"approved", &models.Submission{Status: models.StatusApproved}, AppealStateApproved},
		{"declined", &models.Submission{Status: models.StatusRejected}, AppealStateDeclined},
		{"returned for revision", &models.Submission{Status: models.StatusForRevision}, AppealStatePendingReview},
	}
	for _, tc := range cases {
		if got := DeriveAppealState(tc.latest); got != tc.want {
			t.Fatalf("%s: DeriveAppealState = %s, want %s", tc.name, got, tc.want)
		}
	}
}

// Walks the full appeal lifecycle against one deadline the way the dashboard
// would see it: no appeal on deadline day, then a pending appeal, then an
// approved extension.
func TestAppealLifecycleBannerScenario(t *testing.T) {
	event := &models.OsldEvent{EndDate: date(2024, time.June, 7)} // Friday
	deadline := EffectiveDeadline(event, models.SubmissionTypeAccomplishmentReport)
	today := deadline // June 12

	// No appeal: the deadline-today warning shows.
	if got := SelectBanner(DeriveAppealState(nil), today, deadline); got != BannerDeadlineToday {
		t.Fatalf("no appeal on deadline day: banner = %s, want %s", got, BannerDeadlineToday)
	}

	// Appeal filed, undecided: warning suppressed in favor of pending review.
	appeal := &models.Submission{Status: models.StatusPending}
	if got := SelectBanner(DeriveAppealState(appeal), today, deadline); got != BannerPendingReview {
		t.Fatalf("pending appeal: banner = %s, want %s", got, BannerPendingReview)
	}

	// Appeal approved: the override moves the deadline and the banner shows
	// the extension.
	appeal.Status = models.StatusApproved
	extended := AddWorkingDays(today, AppealExtensionDays)
	event.AccomplishmentDeadlineOverride = &extended

	newDeadline := EffectiveDeadline(event, models.SubmissionTypeAccomplishmentReport)
	if !newDeadline.Equal(extended) {
		t.Fatalf("effective deadline = %v, want override %v", newDeadline, extended)
	}
	if got := SelectBanner(DeriveAppealState(appeal), today, newDeadline); got != BannerExtended {
		t.Fatalf("approved appeal: banner = %s, want %s", got, BannerExtended)
	}
}

func TestSelectBannerDeclinedAppealMeansDueToday(t *testing.T) {
	deadline := date(2024, time.June, 12)

	// Declined: due today regardless of where the calendar sits.
	for _, today := range []time.Time{deadline.AddDate(0, 0, -2), deadline, deadline.AddDate(0, 0, 3)} {
		if got := SelectBanner(AppealStateDeclined, today, deadline); got != BannerDeadlineToday {
			t.Fatalf("declined appeal on %v: banner = %s, want %s", today, got, BannerDeadlineToday)
		}
	}
}

func TestSelectBannerWithoutAppeal(t *testing.T) {
	deadline := date(2024, time.June, 12)

	if got := SelectBanner(AppealStateNone, deadline.AddDate(0, 0, -3), deadline); got != BannerUpcoming {
		t.Fatalf("before deadline: banner = %s, want %s", got, BannerUpcoming)
	}
	if got := SelectBanner(AppealStateNone, deadline, deadline); got != BannerDeadlineToday {
		t.Fatalf("on deadline: banner = %s, want %s", got, BannerDeadlineToday)
	}
	if got := SelectBanner(AppealStateNone, deadline.AddDate(0, 0, 1), deadline); got != BannerOverdue {
		t.Fatalf("past deadline: banner = %s, want %s", got, BannerOverdue)
	}
}
