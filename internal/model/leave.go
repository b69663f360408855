package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

type Leave struct {
	gorm.Model
	StaffID   string    `json:"staffId" gorm:"index;not null"`
	StaffName string    `json:"staffName" gorm:"not null"` // snapshot at application time
	LeaveType string    `json:"leaveType"`                 // Sick Leave/Casual Leave/Emergency/Other
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status" gorm:"default:Pending"` // Pending/Approved/Rejected
	Timestamp time.Time `json:"timestamp"`

	// Joined from the staff record on admin listing, never stored
	Phone string `json:"phone,omitempty" gorm:"->;-:migration"`
}
