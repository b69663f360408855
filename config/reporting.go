package config

import (
	"log"
	"sync"
	"time"
)

var (
	reportingOnce sync.Once
	reportingLoc  *time.Location
)

// ReportingLocation returns the single fixed timezone used for all "day"
// and "time-of-day" business rules (late cutoff, daily punch lookup,
// CSV export, dashboard stats). The client or server host timezone is
// never used for these.
func ReportingLocation() *time.Location {
	reportingOnce.Do(func() {
		name := GetEnv("REPORTING_TZ", "Asia/Kolkata")
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Invalid REPORTING_TZ %q, falling back to UTC: %v", name, err)
			loc = time.UTC
		}
		reportingLoc = loc
	})
	return reportingLoc
}

// ReportingDate renders the calendar day of t in the reporting timezone.
func ReportingDate(t time.Time) string {
	return t.In(ReportingLocation()).Format("2006-01-02")
}

// ReportingClock renders the wall clock of t in the reporting timezone,
// e.g. "09:45:12 AM".
func ReportingClock(t time.Time) string {
	return t.In(ReportingLocation()).Format("03:04:05 PM")
}
