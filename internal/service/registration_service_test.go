package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type mockInventorAccounts struct {
	created []models.Inventor
	emails  map[string]bool
}

func (m *mockInventorAccounts) Create(ctx context.Context, inventor *models.Inventor) error {
	inventor.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *inventor)
	return nil
}

func (m *mockInventorAccounts) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emails[email], nil
}

type mockReviewerAccounts struct {
	created []models.Reviewer
	emails  map[string]bool
}

func (m *mockReviewerAccounts) Create(ctx context.Context, reviewer *models.Reviewer) error {
	reviewer.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *reviewer)
	return nil
}

func (m *mockReviewerAccounts) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emails[email], nil
}

type mockOppositions struct {
	created []models.Opposition
	latest  []models.Opposition
}

func (m *mockOppositions) Create(ctx context.Context, opposition *models.Opposition) error {
	opposition.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *opposition)
	return nil
}

func (m *mockOppositions) ListLatest(ctx context.Context, limit int) ([]models.Opposition, error) {
	return m.latest, nil
}

func newRegistrationService(inventors *mockInventorAccounts, reviewers *mockReviewerAccounts, oppositions *mockOppositions) *RegistrationService {
	if inventors == nil {
		inventors = &mockInventorAccounts{emails: map[string]bool{}}
	}
	if reviewers == nil {
		reviewers = &mockReviewerAccounts{emails: map[string]bool{}}
	}
	if oppositions == nil {
		oppositions = &mockOppositions{}
	}
	return NewRegistrationService(inventors, reviewers, oppositions, validator.New(), zap.NewNop())
}

func TestRegistrationServiceRegisterInventorHashesPassword(t *testing.T) {
	inventors := &mockInventorAccounts{emails: map[string]bool{}}
	svc := newRegistrationService(inventors, nil, nil)

	inventor, err := svc.RegisterInventor(context.Background(), dto.RegisterInventorRequest{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "s3cret1",
		ConfirmPassword: "s3cret1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret1", inventor.PasswordHash)
	require.Len(t, inventors.created, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inventors.created[0].PasswordHash), []byte("s3cret1")))
}

func TestRegistrationServiceRegisterInventorDuplicateEmail(t *testing.T) {
	inventors := &mockInventorAccounts{emails: map[string]bool{"ada@example.com": true}}
	svc := newRegistrationService(inventors, nil, nil)

	_, err := svc.RegisterInventor(context.Background(), dto.RegisterInventorRequest{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "s3cret1",
		ConfirmPassword: "s3cret1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Empty(t, inventors.created)
}

func TestRegistrationServiceRegisterInventorPasswordMismatch(t *testing.T) {
	svc := newRegistrationService(nil, nil, nil)

	_, err := svc.RegisterInventor(context.Background(), dto.RegisterInventorRequest{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "s3cret1",
		ConfirmPassword: "different",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRegistrationServiceRegisterReviewerStartsActive(t *testing.T) {
	reviewers := &mockReviewerAccounts{emails: map[string]bool{}}
	svc := newRegistrationService(nil, reviewers, nil)

	reviewer, err := svc.RegisterReviewer(context.Background(), dto.RegisterReviewerRequest{
		Name:            "Dr. Ray",
		Designation:     "Senior Examiner",
		Email:           "ray@example.com",
		Password:        "s3cret1",
		ConfirmPassword: "s3cret1",
	})
	require.NoError(t, err)
	assert.True(t, reviewer.IsActive)
}

func TestRegistrationServiceFileOppositionStampsDate(t *testing.T) {
	oppositions := &mockOppositions{}
	svc := newRegistrationService(nil, nil, oppositions)
	filed := date(2026, 9, 1)
	svc.now = func() time.Time { return filed }

	opposition, err := svc.FileOpposition(context.Background(), dto.FileOppositionRequest{
		Email:       "rival@example.com",
		PatentTitle: "Gene Splicer",
		Reason:      "prior art",
	})
	require.NoError(t, err)
	assert.Equal(t, filed, opposition.Date)
	// title is kept as free text, no patent lookup gates the filing
	assert.Equal(t, "Gene Splicer", opposition.PatentTitle)
}

func TestRegistrationServiceLatestOppositionsAdminOnly(t *testing.T) {
	svc := newRegistrationService(nil, nil, &mockOppositions{latest: []models.Opposition{{ID: 1}}})

	_, err := svc.LatestOppositions(context.Background(), inventorClaims(3))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	latest, err := svc.LatestOppositions(context.Background(), adminClaims())
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
