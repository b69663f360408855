package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PunchIn  = "In"
	PunchOut = "Out"

	StatusPresent    = "Present"
	StatusLate       = "Late"
	StatusCheckedOut = "Checked Out"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Verified  bool    `json:"verified"`
}

type Device struct {
	UserAgent string `json:"userAgent"`
	Hash      string `json:"hash"`
}

// Attendance is a single punch event. Records are immutable once created;
// there is no update or delete path.
type Attendance struct {
	gorm.Model
	StaffID   string    `json:"staffId" gorm:"index:idx_staff_date;not null"`
	StaffName string    `json:"staffName" gorm:"not null"`
	Type      string    `json:"type" gorm:"default:In"` // In/Out
	Status    string    `json:"status"`                 // Present/Late/Checked Out
	Date      string    `json:"date" gorm:"index:idx_staff_date"` // e.g. "2026-01-26", reporting timezone
	Time      string    `json:"time"`                             // e.g. "09:45:12 AM", reporting timezone
	Timestamp time.Time `json:"timestamp"`
	Location  Location  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Device    Device    `json:"device" gorm:"embedded;embeddedPrefix:device_"`
	Photo     string    `json:"photo"` // stored file path under /uploads
}
