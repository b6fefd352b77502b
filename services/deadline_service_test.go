package services

import (
	"testing"
	"time"

	"org-compliance-api/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddWorkingDaysSkipsWeekends(t *testing.T) {
	// Friday + 3 working days: Sat/Sun skipped, lands on Wednesday.
	friday := date(2024, time.June, 7)
	got := AddWorkingDays(friday, 3)
	want := date(2024, time.June, 12)
	if !got.Equal(want) {
		t.Fatalf("AddWorkingDays(Friday, 3) = %v, want %v", got, want)
	}
	if got.Weekday() != time.Wednesday {
		t.Fatalf("expected Wednesday, got %v", got.Weekday())
	}
}

func TestAddWorkingDaysMidWeek(t *testing.T) {
	// Monday + 7 working days crosses one weekend: next Wednesday.
	monday := date(2024, time.June, 3)
	got := AddWorkingDays(monday, 7)
	want := date(2024, time.June, 12)
	if !got.Equal(want) {
		t.Fatalf("AddWorkingDays(Monday, 7) = %v, want %v", got, want)
	}
}

func TestAddWorkingDaysNeverLandsOnWeekend(t *testing.T) {
	start := date(2024, time.January, 1)
	for offset := 0; offset < 14; offset++ {
		for n := 1; n <= 10; n++ {
			from := start.AddDate(0, 0, offset)
			got := AddWorkingDays(from, n)

			if got.Weekday() == time.Saturday || got.Weekday() == time.Sunday {
				t.Fatalf("AddWorkingDays(%v, %d) landed on %v", from, n, got.Weekday())
			}

			// The count of weekdays in (from, got] must equal n.
			counted := 0
			for d := from.AddDate(0, 0, 1); !d.After(got); d = d.AddDate(0, 0, 1) {
				if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
					counted++
				}
			}
			if counted != n {
				t.Fatalf("AddWorkingDays(%v, %d): %d weekdays in range", from, n, counted)
			}
		}
	}
}

func TestReportDays(t *testing.T) {
	if got := ReportDays(models.SubmissionTypeAccomplishmentReport); got != 3 {
		t.Fatalf("accomplishment allowance = %d, want 3", got)
	}
	if got := ReportDays(models.SubmissionTypeLiquidationReport); got != 7 {
		t.Fatalf("liquidation allowance = %d, want 7", got)
	}
}

func TestEffectiveDeadlineComputedFromEndDate(t *testing.T) {
	event := &models.OsldEvent{EndDate: date(2024, time.June, 7)} // Friday

	acc := EffectiveDeadline(event, models.SubmissionTypeAccomplishmentReport)
	if !acc.Equal(date(2024, time.June, 12)) {
		t.Fatalf("accomplishment deadline = %v, want June 12", acc)
	}

	liq := EffectiveDeadline(event, models.SubmissionTypeLiquidationReport)
	if !liq.Equal(date(2024, time.June, 18)) {
		t.Fatalf("liquidation deadline = %v, want June 18", liq)
	}
}

func TestEffectiveDeadlineOverridePrecedence(t *testing.T) {
	override := date(2024, time.July, 1)
	event := &models.OsldEvent{
		EndDate:                        date(2024, time.June, 7),
		AccomplishmentDeadlineOverride: &override,
	}

	got := EffectiveDeadline(event, models.SubmissionTypeAccomplishmentReport)
	if !got.Equal(override) {
		t.Fatalf("deadline = %v, want override %v", got, override)
	}

	// Liquidation has no override and keeps the computed date.
	liq := EffectiveDeadline(event, models.SubmissionTypeLiquidationReport)
	if !liq.Equal(date(2024, time.June, 18)) {
		t.Fatalf("liquidation deadline = %v, want June 18", liq)
	}
}
