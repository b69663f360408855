package usecase

import (
	"fmt"
	"log"
	"math"
	"time"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"
)

// Broadcaster pushes an event to all connected admin live-feed sessions.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// Notifier queues best-effort outbound notifications (email/WhatsApp). The
// submission path never waits on delivery.
type Notifier interface {
	EnqueueAttendance(att *model.Attendance)
	EnqueueLeaveDecision(leave *model.Leave)
}

// PhotoStore persists the submitted selfie and returns an opaque reference
// (a served file path) stored on the attendance record.
type PhotoStore interface {
	Save(staffID string, data string) (string, error)
}

// PolicyConfig holds the attendance decision constants. Geofencing is
// optional system-wide: with no office coordinates configured every
// submission is admitted unverified.
type PolicyConfig struct {
	CutoffHour   int // punches after cutoff classify Late
	CutoffMinute int

	GeofenceEnabled      bool
	OfficeLatitude       float64
	OfficeLongitude      float64
	CheckInRadiusMeters  float64 // arrival tolerance (parking, entrance queue)
	CheckOutRadiusMeters float64 // departure is verified tightly at the premises
}

// PolicyFromEnv builds the policy from environment variables. Geofencing
// turns on only when both office coordinates are set.
func PolicyFromEnv() PolicyConfig {
	p := PolicyConfig{
		CutoffHour:           config.GetEnvAsInt("CUTOFF_HOUR", 10),
		CutoffMinute:         config.GetEnvAsInt("CUTOFF_MINUTE", 0),
		CheckInRadiusMeters:  config.GetEnvAsFloat("RADIUS_IN_METERS", 50),
		CheckOutRadiusMeters: config.GetEnvAsFloat("RADIUS_OUT_METERS", 20),
	}
	lat := config.GetEnv("OFFICE_LAT", "")
	long := config.GetEnv("OFFICE_LONG", "")
	if lat != "" && long != "" {
		p.GeofenceEnabled = true
		p.OfficeLatitude = config.GetEnvAsFloat("OFFICE_LAT", 0)
		p.OfficeLongitude = config.GetEnvAsFloat("OFFICE_LONG", 0)
	}
	return p
}

type SubmitLocation struct {
	Latitude  *float64
	Longitude *float64
	Accuracy  float64
}

type SubmitDevice struct {
	UserAgent string
	Hash      string
}

type SubmitAttendanceInput struct {
	StaffID  string
	Name     string
	Photo    string // base64 selfie, required
	Type     string // "In"/"Out" from the UI toggle; empty means auto-infer
	Location *SubmitLocation
	Device   *SubmitDevice
}

type AttendanceService struct {
	repo      repository.AttendanceRepository
	staffRepo repository.StaffRepository
	photos    PhotoStore
	notifier  Notifier
	feed      Broadcaster
	policy    PolicyConfig

	now func() time.Time
}

func NewAttendanceService(
	repo repository.AttendanceRepository,
	staffRepo repository.StaffRepository,
	photos PhotoStore,
	notifier Notifier,
	feed Broadcaster,
	policy PolicyConfig,
) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		staffRepo: staffRepo,
		photos:    photos,
		notifier:  notifier,
		feed:      feed,
		policy:    policy,
		now:       time.Now,
	}
}

// Submit runs the attendance decision pipeline: validate, classify punch
// direction, classify status, evaluate the geofence, persist, then fire the
// side effects. Punch classification and the insert share one transaction so
// two near-simultaneous submissions cannot both read an empty day.
func (s *AttendanceService) Submit(in SubmitAttendanceInput) (*model.Attendance, string, error) {
	if in.StaffID == "" || in.Name == "" || in.Photo == "" {
		return nil, "", ErrMissingFields
	}

	now := s.now().In(config.ReportingLocation())
	date := config.ReportingDate(now)

	var att *model.Attendance
	err := s.repo.InTransaction(func(tx repository.AttendanceRepository) error {
		punchType, err := s.classifyPunch(tx, in.StaffID, in.Type, date)
		if err != nil {
			return err
		}

		status := s.classifyStatus(punchType, now)

		verified, err := s.evaluateGeofence(punchType, in.Location)
		if err != nil {
			return err
		}

		photoPath, err := s.photos.Save(in.StaffID, in.Photo)
		if err != nil {
			return err
		}

		record := &model.Attendance{
			StaffID:   in.StaffID,
			StaffName: in.Name,
			Type:      punchType,
			Status:    status,
			Date:      date,
			Time:      config.ReportingClock(now),
			Timestamp: now,
			Photo:     photoPath,
		}
		if in.Location != nil && in.Location.Latitude != nil && in.Location.Longitude != nil {
			record.Location = model.Location{
				Latitude:  *in.Location.Latitude,
				Longitude: *in.Location.Longitude,
				Accuracy:  in.Location.Accuracy,
			}
		}
		record.Location.Verified = verified
		if in.Device != nil {
			record.Device = model.Device{UserAgent: in.Device.UserAgent, Hash: in.Device.Hash}
		}

		if err := tx.Create(record); err != nil {
			return err
		}
		att = record
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	// Fire-and-forget: the record is durably persisted, so side-effect
	// failures are logged at the source and never surfaced to the caller.
	s.feed.Broadcast("newAttendance", att)
	s.notifier.EnqueueAttendance(att)

	return att, punchMessage(att.Type, att.Status), nil
}

// classifyPunch uses the explicit UI toggle when present; otherwise it
// infers the direction from the last punch of the day: In begets Out,
// anything else (including no punch) begets In. Strict alternation is not
// enforced beyond this single-lookback rule.
func (s *AttendanceService) classifyPunch(tx repository.AttendanceRepository, staffID, explicit, date string) (string, error) {
	if explicit == model.PunchIn || explicit == model.PunchOut {
		return explicit, nil
	}
	last, err := tx.LastOfDay(staffID, date)
	if err != nil {
		return "", err
	}
	if last != nil && last.Type == model.PunchIn {
		return model.PunchOut, nil
	}
	return model.PunchIn, nil
}

// classifyStatus judges only arrivals: a punch In strictly after the cutoff
// instant is Late, at or before it Present. Departures are always
// "Checked Out" regardless of time.
func (s *AttendanceService) classifyStatus(punchType string, now time.Time) string {
	if punchType == model.PunchOut {
		return model.StatusCheckedOut
	}
	cutoff := time.Date(now.Year(), now.Month(), now.Day(),
		s.policy.CutoffHour, s.policy.CutoffMinute, 0, 0, now.Location())
	if now.After(cutoff) {
		return model.StatusLate
	}
	return model.StatusPresent
}

// evaluateGeofence admits or rejects the reported coordinates against the
// office circle. Missing coordinates while geofencing is on are a
// precondition failure, not a distance failure.
func (s *AttendanceService) evaluateGeofence(punchType string, loc *SubmitLocation) (bool, error) {
	if !s.policy.GeofenceEnabled {
		return false, nil
	}
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return false, ErrLocationRequired
	}

	distance := Haversine(*loc.Latitude, *loc.Longitude, s.policy.OfficeLatitude, s.policy.OfficeLongitude)
	radius := s.policy.CheckInRadiusMeters
	if punchType == model.PunchOut {
		radius = s.policy.CheckOutRadiusMeters
	}
	if distance <= radius {
		return true, nil
	}
	log.Printf("Geofence rejection: staff %.0fm from office (allowed %.0fm)", distance, radius)
	return false, &AdmissionError{DistanceMeters: distance}
}

// TodayStats counts today's punches per status plus the active headcount,
// all evaluated on the reporting-timezone day.
func (s *AttendanceService) TodayStats() (map[string]int64, error) {
	date := config.ReportingDate(s.now())

	stats := make(map[string]int64)
	for key, status := range map[string]string{
		"present":    model.StatusPresent,
		"late":       model.StatusLate,
		"checkedOut": model.StatusCheckedOut,
	} {
		count, err := s.repo.CountByStatus(date, status)
		if err != nil {
			return nil, err
		}
		stats[key] = count
	}

	active, err := s.staffRepo.CountByStatus(model.StaffActive)
	if err != nil {
		return nil, err
	}
	stats["totalActive"] = active
	return stats, nil
}

func punchMessage(punchType, status string) string {
	if punchType == model.PunchIn {
		return fmt.Sprintf("Punch In Successful (%s)", status)
	}
	return "Punch Out Successful"
}

// Haversine computes the great-circle distance between two coordinates in
// meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371000 // earth radius in meters
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
