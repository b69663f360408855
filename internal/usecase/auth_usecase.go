package usecase

import (
	"time"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AdminDesignation = "Administrator"

type AuthService struct {
	staffRepo repository.StaffRepository
}

func NewAuthService(staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{staffRepo: staffRepo}
}

// Login checks credentials and issues a 24h JWT. A staff record with no
// password hash is locked out until an admin sets one; there is no default
// password fallback.
func (s *AuthService) Login(staffID, password string) (string, *model.Staff, error) {
	if staffID == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	staff, err := s.staffRepo.FindByStaffID(staffID)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if staff.Password == "" {
		return "", nil, ErrPasswordNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role := "staff"
	if staff.Designation == AdminDesignation {
		role = "admin"
	}

	claims := jwt.MapClaims{
		"id":       staff.ID,
		"staff_id": staff.StaffID,
		"name":     staff.Name,
		"role":     role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTSecret())
	if err != nil {
		return "", nil, err
	}
	return signed, staff, nil
}

// JWTSecret is shared with the auth middleware so issued tokens verify.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "fallback_secret_key_123"))
}
