package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type mockInventorReader struct {
	byEmail map[string]*models.Inventor
}

func (m *mockInventorReader) FindByEmail(ctx context.Context, email string) (*models.Inventor, error) {
	if inventor, ok := m.byEmail[email]; ok {
		cp := *inventor
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

type mockReviewerReader struct {
	byEmail map[string]*models.Reviewer
}

func (m *mockReviewerReader) FindByEmail(ctx context.Context, email string) (*models.Reviewer, error) {
	if reviewer, ok := m.byEmail[email]; ok {
		cp := *reviewer
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthService(t *testing.T, inventors *mockInventorReader, reviewers *mockReviewerReader, adminHash string) *AuthService {
	t.Helper()
	if inventors == nil {
		inventors = &mockInventorReader{}
	}
	if reviewers == nil {
		reviewers = &mockReviewerReader{}
	}
	return NewAuthService(inventors, reviewers, validator.New(), zap.NewNop(), AuthConfig{
		Secret:            "test-secret",
		Expiry:            time.Hour,
		Issuer:            "patent-lifecycle-api",
		AdminEmail:        "admin@system.com",
		AdminPasswordHash: adminHash,
	})
}

func TestAuthServiceAdminLogin(t *testing.T) {
	svc := newAuthService(t, nil, nil, hashPassword(t, "admin-pass"))

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Role:     models.RoleAdmin,
		Email:    "admin@system.com",
		Password: "admin-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, models.RoleAdmin, res.User.Role)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceAdminLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t, nil, nil, hashPassword(t, "admin-pass"))

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Role:     models.RoleAdmin,
		Email:    "admin@system.com",
		Password: "nope",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceInventorLogin(t *testing.T) {
	inventors := &mockInventorReader{byEmail: map[string]*models.Inventor{
		"ada@example.com": {ID: 3, Name: "Ada", Email: "ada@example.com", PasswordHash: hashPassword(t, "s3cret1")},
	}}
	svc := newAuthService(t, inventors, nil, "")

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Role:     models.RoleInventor,
		Email:    "ada@example.com",
		Password: "s3cret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.User.SubjectID)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.SubjectID)
	assert.Equal(t, models.RoleInventor, claims.Role)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t, nil, nil, "")

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Role:     models.RoleReviewer,
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	svc := newAuthService(t, nil, nil, hashPassword(t, "admin-pass"))

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Role:     models.RoleAdmin,
		Email:    "admin@system.com",
		Password: "admin-pass",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken + "x")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
