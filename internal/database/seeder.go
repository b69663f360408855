package database

import (
	"log"
	"strings"
	"time"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedStaff struct {
	StaffID     string
	Name        string
	Designation string
	Department  string
}

var demoStaff = []seedStaff{
	{"TVH-101", "MR HEERA LAL", "MARKETING", "Marketing"},
	{"TVH-102", "MR SHIVA JI KUMAR", "MARKETING", "Marketing"},
	{"TVH-103", "MS FARIYA", "MANPOWER", "HR"},
	{"TVH-104", "MR HASMAT ALI", "MANAGER", "General"},
	{"TVH-105", "MR NIZAM KHAN", "DIRECTOR OF SALES", "Sales"},
	{"TVH-106", "MR JITENDRA KUMAR", "EMIGRATION DEP", "General"},
	{"TVH-107", "MS SARA", "VISA DEPARTMENT", "General"},
	{"TVH-108", "MR AMIT SINGH", "HR EXECUTIVE", "HR"},
	{"TVH-109", "MS POOJA SHARMA", "ACCOUNTS", "Finance"},
	{"TVH-110", "MR RAHUL VERMA", "IT SUPPORT", "IT"},
	{"TVH-111", "MR VIKRAM ADITYA", "SECURITY HEAD", "General"},
	{"TVH-112", "MS NEHA KAPOOR", "RECEPTIONIST", "General"},
	{"TVH-113", "MR SIDDHARTH JAIN", "CONTENT WRITER", "Marketing"},
	{"TVH-114", "MS ANANYA RAO", "UI/UX DESIGNER", "IT"},
	{"TVH-115", "MR KABIR KHAN", "DRIVER", "Driver"},
}

// SeedAll creates the admin account and the demo roster. Existing rows are
// kept; only the admin password is forced back in sync.
func SeedAll(db *gorm.DB) {
	// 1. Admin account. Designation "Administrator" is what grants the
	// admin role at login.
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "admin123")
	hashed, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)

	admin := model.Staff{
		StaffID:     "TVH-ADMIN",
		Name:        "System Administrator",
		Designation: "Administrator",
		Department:  "General",
		Status:      model.StaffActive,
		Password:    string(hashed),
	}
	result := db.FirstOrCreate(&admin, model.Staff{StaffID: admin.StaffID})
	if result.Error == nil {
		db.Model(&admin).Update("password", string(hashed))
		log.Println("Admin account seeded")
	}

	// 2. Demo roster
	today := config.ReportingDate(time.Now())
	for _, s := range demoStaff {
		staff := model.Staff{
			StaffID:     s.StaffID,
			Name:        s.Name,
			Designation: s.Designation,
			Department:  s.Department,
			Shift:       "Morning",
			Status:      model.StaffActive,
			Email:       strings.ToLower(s.StaffID) + "@company.com",
			JoiningDate: today,
		}
		db.FirstOrCreate(&staff, model.Staff{StaffID: staff.StaffID})
		log.Printf("Synced: %s", s.Name)
	}
}
