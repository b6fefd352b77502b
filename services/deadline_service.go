package services

import (
	"time"

	"org-compliance-api/models"
)

// Working-day allowances for post-activity reports and approved appeals.
const (
	AccomplishmentReportDays = 3
	LiquidationReportDays    = 7
	AppealExtensionDays      = 3
)

// ReportDays returns the working-day allowance for the given report type.
// Unknown types fall back to the accomplishment allowance.
func ReportDays(reportType string) int {
	if reportType == models.SubmissionTypeLiquidationReport {
		return LiquidationReportDays
	}
	return AccomplishmentReportDays
}

// AddWorkingDays returns the calendar date exactly `days` working days after
// `from`. Counting starts the day after `from`; Saturdays and Sundays do not
// count, every other day (holidays included) does.
func AddWorkingDays(from time.Time, days int) time.Time {
	date := from
	counted := 0
	for counted < days {
		date = date.AddDate(0, 0, 1)
		if date.Weekday() != time.Saturday && date.Weekday() != time.Sunday {
			counted++
		}
	}
	return date
}

// EffectiveDeadline returns the due date for a report on an event: the stored
// override if an approved appeal set one, otherwise the working-day date
// computed from the event's end date.
func EffectiveDeadline(event *models.OsldEvent, reportType string) time.Time {
	if override := event.DeadlineOverride(reportType); override != nil {
		return *override
	}
	return AddWorkingDays(event.EndDate, ReportDays(reportType))
}

// SameDeadlineDay reports whether two timestamps fall on the same calendar day.
// Deadlines compare by day, never by clock time.
func SameDeadlineDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
