package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type inventorCredentialReader interface {
	FindByEmail(ctx context.Context, email string) (*models.Inventor, error)
}

type reviewerCredentialReader interface {
	FindByEmail(ctx context.Context, email string) (*models.Reviewer, error)
}

// AuthConfig defines configuration for authentication flows. The admin
// account is static; inventors and reviewers authenticate against their
// registered accounts.
type AuthConfig struct {
	Secret            string
	Expiry            time.Duration
	Issuer            string
	AdminEmail        string
	AdminPasswordHash string
}

// AuthService resolves credentials into the (role, subjectID) pair the engine
// consumes. No session state is held; identity travels in the token.
type AuthService struct {
	inventors inventorCredentialReader
	reviewers reviewerCredentialReader
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(inventors inventorCredentialReader, reviewers reviewerCredentialReader, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		inventors: inventors,
		reviewers: reviewers,
		validator: validate,
		logger:    logger,
		config:    config,
	}
}

// Login authenticates a user for the requested role and returns a token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	var user models.UserInfo
	var hash string

	switch req.Role {
	case models.RoleAdmin:
		if s.config.AdminPasswordHash == "" || req.Email != s.config.AdminEmail {
			return nil, appErrors.ErrInvalidCredentials
		}
		user = models.UserInfo{Name: "Administrator", Email: s.config.AdminEmail, Role: models.RoleAdmin}
		hash = s.config.AdminPasswordHash
	case models.RoleInventor:
		inventor, err := s.inventors.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ErrInvalidCredentials
			}
			return nil, mapStoreErr(err, "login unavailable")
		}
		user = models.UserInfo{SubjectID: inventor.ID, Name: inventor.Name, Email: inventor.Email, Role: models.RoleInventor}
		hash = inventor.PasswordHash
	case models.RoleReviewer:
		reviewer, err := s.reviewers.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ErrInvalidCredentials
			}
			return nil, mapStoreErr(err, "login unavailable")
		}
		user = models.UserInfo{SubjectID: reviewer.ID, Name: reviewer.Name, Email: reviewer.Email, Role: models.RoleReviewer}
		hash = reviewer.PasswordHash
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported login role")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, issuedAt, err := s.generateAccessToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	s.logger.Info("login succeeded", zap.String("role", string(user.Role)), zap.Int64("subject_id", user.SubjectID))
	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.Expiry.Seconds()),
		User:        user,
		IssuedAt:    issuedAt,
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(token string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) generateAccessToken(user models.UserInfo) (string, time.Time, error) {
	now := time.Now().UTC()
	claims := models.JWTClaims{
		SubjectID: user.SubjectID,
		Role:      user.Role,
		Email:     user.Email,
		Name:      user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now, nil
}
