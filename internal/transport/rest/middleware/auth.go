package middleware

import (
	"context"
	"net/http"
	"strings"

	"mindcare/internal/service"
)

type contextKey string

const (
	CounselorIDKey contextKey = "counselorId"
	StudentIDKey   contextKey = "studentId"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCounselor validates a counselor JWT from the Authorization header.
func (m *AuthMiddleware) RequireCounselor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCounselorToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), CounselorIDKey, claims.CounselorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStudent validates a student JWT from the Authorization header or
// query param.
func (m *AuthMiddleware) RequireStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// Try query param for WebSocket
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateStudentToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), StudentIDKey, claims.StudentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCounselorID extracts the counselor ID from context.
func GetCounselorID(ctx context.Context) string {
	if v := ctx.Value(CounselorIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetStudentID extracts the student ID from context.
func GetStudentID(ctx context.Context) string {
	if v := ctx.Value(StudentIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
