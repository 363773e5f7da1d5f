package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mindcare/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles counselor login and anonymous student sessions.
type AuthService struct {
	counselorUsername string
	counselorPassword string
	jwtSecret         []byte
}

// NewAuthService creates a new auth service.
func NewAuthService() *AuthService {
	username := os.Getenv("COUNSELOR_USERNAME")
	if username == "" {
		username = "counselor"
	}
	password := os.Getenv("COUNSELOR_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		counselorUsername: username,
		counselorPassword: password,
		jwtSecret:         []byte(secret),
	}
}

// Login validates counselor credentials and returns a token.
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.counselorUsername || password != s.counselorPassword {
		return nil, ErrInvalidCredentials
	}

	counselorID := "counselor_" + uuid.New().String()[:8]

	claims := &model.CounselorClaims{
		CounselorID: counselorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		CounselorID: counselorID,
	}, nil
}

// RegisterStudent issues an anonymous student identity and session token.
// Students stay pseudonymous; the platform never collects names.
func (s *AuthService) RegisterStudent() (*model.RegisterResponse, error) {
	studentID := "student_" + uuid.New().String()[:8]

	claims := &model.StudentClaims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.RegisterResponse{
		Token:     tokenString,
		StudentID: studentID,
	}, nil
}

// ValidateCounselorToken validates a counselor JWT and returns claims.
func (s *AuthService) ValidateCounselorToken(tokenString string) (*model.CounselorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CounselorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CounselorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateStudentToken validates a student JWT and returns claims.
func (s *AuthService) ValidateStudentToken(tokenString string) (*model.StudentClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.StudentClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.StudentClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
