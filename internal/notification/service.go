package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"

	"gopkg.in/gomail.v2"
)

// Service dispatches best-effort email and WhatsApp notifications. Tasks are
// queued after the triggering record is committed and consumed by a single
// worker goroutine, so delivery latency and failures never touch the
// submission response. Failed tasks are logged and dropped, never retried.
type Service struct {
	staffRepo repository.StaffRepository
	queue     chan func()

	smtpHost string
	smtpPort int
	smtpUser string
	smtpPass string

	waInstanceID string
	waToken      string
	httpClient   *http.Client
}

func NewService(staffRepo repository.StaffRepository) *Service {
	return &Service{
		staffRepo:    staffRepo,
		queue:        make(chan func(), 256),
		smtpHost:     config.GetEnv("SMTP_HOST", "smtp.gmail.com"),
		smtpPort:     config.GetEnvAsInt("SMTP_PORT", 587),
		smtpUser:     config.GetEnv("EMAIL_USER", ""),
		smtpPass:     config.GetEnv("EMAIL_PASS", ""),
		waInstanceID: config.GetEnv("WHATSAPP_INSTANCE_ID", ""),
		waToken:      config.GetEnv("WHATSAPP_TOKEN", ""),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Start launches the outbound worker.
func (s *Service) Start() {
	go func() {
		for task := range s.queue {
			task()
		}
	}()
}

func (s *Service) enqueue(task func()) {
	select {
	case s.queue <- task:
	default:
		log.Println("Notification queue full, dropping task")
	}
}

func (s *Service) EnqueueAttendance(att *model.Attendance) {
	s.enqueue(func() { s.notifyAttendance(att) })
}

func (s *Service) EnqueueLeaveDecision(leave *model.Leave) {
	s.enqueue(func() { s.notifyLeaveDecision(leave) })
}

func (s *Service) notifyAttendance(att *model.Attendance) {
	staff, err := s.staffRepo.FindByStaffID(att.StaffID)
	if err != nil {
		// Soft reference: a punch without a staff record just skips notification.
		log.Printf("Notification skipped, staff %s not found: %v", att.StaffID, err)
		return
	}

	typeText := "Punch Out"
	if att.Type == model.PunchIn {
		typeText = "Punch In"
	}

	subject := fmt.Sprintf("Attendance Alert: %s Successful", typeText)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
			<h2 style="color: #4F46E5;">Attendance Recorded</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>Your <strong>%s</strong> has been recorded successfully.</p>
			<ul style="background: #f9f9f9; padding: 15px; list-style: none; border-radius: 5px;">
				<li><strong>Time:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Status:</strong> %s</li>
			</ul>
			<p style="font-size: 12px; color: #888;">If this wasn't you, please contact HR immediately.</p>
		</div>`,
		att.StaffName, typeText, att.Time, att.Date, att.Status)
	waMsg := fmt.Sprintf("Attendance: %s Recorded at %s. Status: %s.", typeText, att.Time, att.Status)

	if staff.Email != "" {
		s.sendEmail(staff.Email, subject, body)
	}
	if staff.Phone != "" {
		s.sendWhatsApp(staff.Phone, waMsg)
	}
}

func (s *Service) notifyLeaveDecision(leave *model.Leave) {
	staff, err := s.staffRepo.FindByStaffID(leave.StaffID)
	if err != nil {
		log.Printf("Notification skipped, staff %s not found: %v", leave.StaffID, err)
		return
	}

	statusColor := "#EF4444"
	if leave.Status == model.LeaveApproved {
		statusColor = "#22C55E"
	}

	subject := fmt.Sprintf("Leave Request: %s", leave.Status)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
			<h2 style="color: %s;">%s</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>Your leave request has been <strong>%s</strong> by the administrator.</p>
			<ul style="background: #f9f9f9; padding: 15px; list-style: none; border-radius: 5px;">
				<li><strong>Period:</strong> %s to %s</li>
				<li><strong>Type:</strong> %s</li>
				<li><strong>Reason:</strong> %s</li>
			</ul>
		</div>`,
		statusColor, leave.Status, leave.StaffName, strings.ToLower(leave.Status),
		leave.StartDate, leave.EndDate, leave.LeaveType, leave.Reason)
	waMsg := fmt.Sprintf("Leave Request Update: Your request for %s to %s has been %s.",
		leave.StartDate, leave.EndDate, strings.ToUpper(leave.Status))

	if staff.Email != "" {
		s.sendEmail(staff.Email, subject, body)
	}
	if staff.Phone != "" {
		s.sendWhatsApp(staff.Phone, waMsg)
	}
}

func (s *Service) sendEmail(to, subject, html string) {
	if s.smtpUser == "" {
		log.Printf("[Mock Email] To: %s | Subject: %s", to, subject)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUser, s.smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("[Email Failed] To: %s: %v", to, err)
		return
	}
	log.Printf("[Email Sent] To: %s", to)
}

// sendWhatsApp posts to the Ultramsg chat API.
func (s *Service) sendWhatsApp(phone, message string) {
	if s.waInstanceID == "" || s.waToken == "" {
		log.Printf("[Mock WhatsApp] To: %s | Msg: %s", phone, message)
		return
	}

	cleanPhone := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	payload, _ := json.Marshal(map[string]string{
		"token": s.waToken,
		"to":    cleanPhone,
		"body":  message,
	})

	url := fmt.Sprintf("https://api.ultramsg.com/%s/messages/chat", s.waInstanceID)
	resp, err := s.httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("[WhatsApp Failed] To: %s: %v", cleanPhone, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[WhatsApp API Error] To: %s: status %d", cleanPhone, resp.StatusCode)
		return
	}
	log.Printf("[WhatsApp Sent] To: %s", cleanPhone)
}
