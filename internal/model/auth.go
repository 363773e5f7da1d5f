package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the counselor login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the counselor token.
type LoginResponse struct {
	Token       string `json:"token"`
	CounselorID string `json:"counselorId"`
}

// RegisterResponse carries the anonymous student token.
type RegisterResponse struct {
	Token     string `json:"token"`
	StudentID string `json:"studentId"`
}

// CounselorClaims are JWT claims for counselor dashboard access.
type CounselorClaims struct {
	CounselorID string `json:"counselorId"`
	jwt.RegisteredClaims
}

// StudentClaims are JWT claims for an anonymous student session.
type StudentClaims struct {
	StudentID string `json:"studentId"`
	jwt.RegisteredClaims
}
