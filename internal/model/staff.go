package model

import "gorm.io/gorm"

const (
	StaffActive   = "Active"
	StaffOnLeave  = "On Leave"
	StaffResigned = "Resigned"
)

type Staff struct {
	gorm.Model
	StaffID          string `json:"staffId" gorm:"uniqueIndex;not null"`
	Name             string `json:"name" gorm:"not null"`
	Designation      string `json:"designation" gorm:"not null"`
	Department       string `json:"department" gorm:"default:General"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	JoiningDate      string `json:"joiningDate"`
	Shift            string `json:"shift" gorm:"default:Morning"` // Morning/Evening/Night
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	BloodGroup       string `json:"bloodGroup"`
	DateOfBirth      string `json:"dateOfBirth"`
	Status           string `json:"status" gorm:"default:Active"` // Active/On Leave/Resigned
	Salary           string `json:"salary"`
	QRCode           string `json:"qrCode" gorm:"type:longtext"` // Base64 data URL of the punch QR
	Password         string `json:"-"`                           // bcrypt hash, empty until an admin sets it
}
