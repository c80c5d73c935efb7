package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents the acting role resolved by the identity gate.
type Role string

const (
	RoleGuest    Role = "GUEST"
	RoleAdmin    Role = "ADMIN"
	RoleInventor Role = "INVENTOR"
	RoleReviewer Role = "REVIEWER"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Role     Role   `json:"role" validate:"required,oneof=ADMIN INVENTOR REVIEWER"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and user info.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	User        UserInfo  `json:"user"`
	IssuedAt    time.Time `json:"issued_at"`
}

// UserInfo describes the authenticated subject in responses.
type UserInfo struct {
	SubjectID int64  `json:"subject_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// JWTClaims carries the resolved (role, subjectID) pair the engine consumes.
// The engine never re-derives identity from credentials.
type JWTClaims struct {
	SubjectID int64  `json:"subject_id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}
