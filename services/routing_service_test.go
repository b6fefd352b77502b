package services

import (
	"testing"

	"org-compliance-api/models"
)

func TestFirstHopActivityRequestsAlwaysReachOSLD(t *testing.T) {
	for _, org := range []string{models.CategoryAO, models.CategoryLSG, models.CategoryGSC, models.CategoryUSED, models.CategoryTGP} {
		got, err := FirstHop(models.SubmissionTypeActivityRequest, org)
		if err != nil {
			t.Fatalf("FirstHop(request, %s) returned error: %v", org, err)
		}
		if got != models.CategoryOSLD {
			t.Fatalf("FirstHop(request, %s) = %s, want osld", org, got)
		}
	}
}

func TestFirstHopReportRouting(t *testing.T) {
	cases := []struct {
		org  string
		want string
	}{
		{models.CategoryAO, models.CategoryLCO},
		{models.CategoryLSG, models.CategoryUSG},
		{models.CategoryGSC, models.CategoryCOA},
		{models.CategoryUSED, models.CategoryCOA},
		{models.CategoryTGP, models.CategoryCOA},
	}

	for _, reportType := range []string{
		models.SubmissionTypeAccomplishmentReport,
		models.SubmissionTypeLiquidationReport,
		models.SubmissionTypeLetterOfAppeal,
	} {
		for _, tc := range cases {
			got, err := FirstHop(reportType, tc.org)
			if err != nil {
				t.Fatalf("FirstHop(%s, %s) returned error: %v", reportType, tc.org, err)
			}
			if got != tc.want {
				t.Fatalf("FirstHop(%s, %s) = %s, want %s", reportType, tc.org, got, tc.want)
			}
		}
	}
}

func TestFirstHopIsIdempotent(t *testing.T) {
	first, err := FirstHop(models.SubmissionTypeAccomplishmentReport, models.CategoryAO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := FirstHop(models.SubmissionTypeAccomplishmentReport, models.CategoryAO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("routing not stable: %s then %s", first, second)
	}
}

func TestFirstHopUnknownOrg(t *testing.T) {
	if _, err := FirstHop(models.SubmissionTypeAccomplishmentReport, "registrar"); err == nil {
		t.Fatal("expected error for unknown org")
	}
}

func TestAppealRecipientMirrorsReportRoute(t *testing.T) {
	cases := []struct {
		org  string
		want string
	}{
		{models.CategoryAO, models.CategoryLCO},
		{models.CategoryLSG, models.CategoryCOA},
		{models.CategoryGSC, models.CategoryCOA},
		{models.CategoryUSED, models.CategoryCOA},
		{models.CategoryTGP, models.CategoryCOA},
		// No report route: OSLD handles its own-level deadlines.
		{models.CategoryOSLD, models.CategoryOSLD},
	}
	for _, tc := range cases {
		if got := AppealRecipient(tc.org); got != tc.want {
			t.Fatalf("AppealRecipient(%s) = %s, want %s", tc.org, got, tc.want)
		}
	}
}

func TestIsIntermediateReviewer(t *testing.T) {
	if !IsIntermediateReviewer(models.CategoryLCO) || !IsIntermediateReviewer(models.CategoryUSG) {
		t.Fatal("LCO and USG are intermediate reviewers")
	}
	if IsIntermediateReviewer(models.CategoryCOA) || IsIntermediateReviewer(models.CategoryOSLD) {
		t.Fatal("COA and OSLD are terminal reviewers")
	}
}

func TestValidRevisionItemsFiltersUnknownEntries(t *testing.T) {
	items := ValidRevisionItems(models.SubmissionTypeLiquidationReport, []string{
		"Official receipts missing or illegible",
		"not on any checklist",
		"Unspent funds not accounted for",
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 valid items, got %d: %v", len(items), items)
	}
}
