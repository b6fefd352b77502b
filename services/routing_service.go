package services

import (
	"fmt"

	"org-compliance-api/models"
)

// reportFirstHop maps a submitting org category to the first reviewer for
// accomplishment reports, liquidation reports and letters of appeal.
var reportFirstHop = map[string]string{
	models.CategoryAO:   models.CategoryLCO,
	models.CategoryLSG:  models.CategoryUSG,
	models.CategoryGSC:  models.CategoryCOA,
	models.CategoryUSED: models.CategoryCOA,
	models.CategoryTGP:  models.CategoryCOA,
}

// FirstHop returns the category that must act first on a new submission.
// Activity-conduct requests always terminate at OSLD; reports and appeals
// follow the fixed hierarchy table.
func FirstHop(submissionType, orgCategory string) (string, error) {
	if submissionType == models.SubmissionTypeActivityRequest {
		return models.CategoryOSLD, nil
	}
	hop, ok := reportFirstHop[orgCategory]
	if !ok {
		return "", fmt.Errorf("no route for %s submitted by %s", submissionType, orgCategory)
	}
	return hop, nil
}

// IsIntermediateReviewer reports whether approval by this category endorses
// the submission onward to COA instead of finalizing it.
func IsIntermediateReviewer(category string) bool {
	return category == models.CategoryLCO || category == models.CategoryUSG
}

// EndorsementTarget is where an intermediate reviewer's approval re-routes a
// report. Once endorsed_to_coa is set, submitted_to never regresses from it.
const EndorsementTarget = models.CategoryCOA

// AppealRecipient returns who reviews a letter of appeal for the given
// appellant: it mirrors the underlying report's first hop (LCO stays LCO,
// everything else lands at COA). OSLD handles appeals on its own deadlines.
func AppealRecipient(orgCategory string) string {
	if hop, ok := reportFirstHop[orgCategory]; ok {
		if hop == models.CategoryLCO {
			return models.CategoryLCO
		}
		return models.CategoryCOA
	}
	return models.CategoryOSLD
}

// RevisionChecklist is the fixed set of revision reasons a reviewer may cite,
// keyed by submission type.
var RevisionChecklist = map[string][]string{
	models.SubmissionTypeActivityRequest: {
		"Incomplete activity details",
		"Missing adviser signature",
		"Budget breakdown not itemized",
		"Venue reservation not attached",
	},
	models.SubmissionTypeAccomplishmentReport: {
		"Missing photo documentation",
		"Attendance sheet not attached",
		"Narrative report incomplete",
	},
	models.SubmissionTypeLiquidationReport: {
		"Official receipts missing or illegible",
		"Expense totals do not match the approved budget",
		"Unspent funds not accounted for",
	},
	models.SubmissionTypeLetterOfAppeal: {
		"Justification insufficient",
		"Supporting documents missing",
	},
}

// ValidRevisionItems filters the requested items down to those present in the
// checklist for the submission type.
func ValidRevisionItems(submissionType string, items []string) []string {
	allowed := RevisionChecklist[submissionType]
	valid := make([]string, 0, len(items))
	for _, item := range items {
		for _, candidate := range allowed {
			if item == candidate {
				valid = append(valid, item)
				break
			}
		}
	}
	return valid
}
