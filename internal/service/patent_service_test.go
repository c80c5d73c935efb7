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

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type mockPatentRepo struct {
	items      map[int64]*models.Patent
	owners     map[int64][]int64
	nextID     int64
	updated    []int64
	statusSets map[int64]models.Status
	listErr    error
}

func newMockPatentRepo() *mockPatentRepo {
	return &mockPatentRepo{
		items:      make(map[int64]*models.Patent),
		owners:     make(map[int64][]int64),
		nextID:     1,
		statusSets: make(map[int64]models.Status),
	}
}

func (m *mockPatentRepo) CreateWithOwner(ctx context.Context, patent *models.Patent, inventorID int64) (int64, error) {
	id := m.nextID
	m.nextID++
	patent.ID = id
	cp := *patent
	m.items[id] = &cp
	m.owners[id] = append(m.owners[id], inventorID)
	return id, nil
}

func (m *mockPatentRepo) FindByID(ctx context.Context, id int64) (*models.Patent, error) {
	if patent, ok := m.items[id]; ok {
		cp := *patent
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPatentRepo) List(ctx context.Context) ([]models.Patent, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var patents []models.Patent
	for _, p := range m.items {
		patents = append(patents, *p)
	}
	return patents, nil
}

func (m *mockPatentRepo) ListByInventor(ctx context.Context, inventorID int64) ([]models.Patent, error) {
	var patents []models.Patent
	for id, owners := range m.owners {
		for _, owner := range owners {
			if owner == inventorID {
				patents = append(patents, *m.items[id])
			}
		}
	}
	return patents, nil
}

func (m *mockPatentRepo) CountByInventor(ctx context.Context, inventorID int64) (int, error) {
	patents, _ := m.ListByInventor(ctx, inventorID)
	return len(patents), nil
}

func (m *mockPatentRepo) ListByDomain(ctx context.Context, domain string) ([]models.Patent, error) {
	var patents []models.Patent
	for _, p := range m.items {
		if p.Domain == domain {
			patents = append(patents, *p)
		}
	}
	return patents, nil
}

func (m *mockPatentRepo) Domains(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var domains []string
	for _, p := range m.items {
		if _, ok := seen[p.Domain]; !ok {
			seen[p.Domain] = struct{}{}
			domains = append(domains, p.Domain)
		}
	}
	return domains, nil
}

func (m *mockPatentRepo) Update(ctx context.Context, patent *models.Patent) error {
	if _, ok := m.items[patent.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *patent
	m.items[patent.ID] = &cp
	m.updated = append(m.updated, patent.ID)
	return nil
}

func (m *mockPatentRepo) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	patent, ok := m.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	patent.Status = status
	m.statusSets[id] = status
	return nil
}

func inventorClaims(id int64) *models.JWTClaims {
	return &models.JWTClaims{SubjectID: id, Role: models.RoleInventor}
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{SubjectID: 0, Role: models.RoleAdmin}
}

func validCreateRequest() dto.CreatePatentRequest {
	return dto.CreatePatentRequest{
		Title:       "Gene Splicer",
		Description: "A gene splicing device",
		Domain:      "Biotech",
		PatentType:  "Utility",
		ApplName:    "Acme Corp",
		FilingDate:  "2020-03-20",
	}
}

func TestPatentServiceCreateStartsPendingWithOwner(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	patent, err := svc.Create(context.Background(), inventorClaims(3), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, patent.Status)
	assert.Equal(t, []int64{3}, repo.owners[patent.ID])
}

func TestPatentServiceCreateRejectsNonInventor(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), adminClaims(), validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.items)
}

func TestPatentServiceCreateRejectsBadType(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	req := validCreateRequest()
	req.PatentType = "Gadget"
	_, err := svc.Create(context.Background(), inventorClaims(3), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPatentServiceSetStatusRejectsUnknownValue(t *testing.T) {
	repo := newMockPatentRepo()
	repo.items[1] = &models.Patent{ID: 1, Status: models.StatusPending}
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	err := svc.SetStatus(context.Background(), adminClaims(), 1, "Escalated")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidStatus.Code, appErrors.FromError(err).Code)
	assert.Equal(t, models.StatusPending, repo.items[1].Status)
}

func TestPatentServiceSetStatusAllowsAnyEnumTransition(t *testing.T) {
	repo := newMockPatentRepo()
	repo.items[1] = &models.Patent{ID: 1, Status: models.StatusGranted}
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	// No transition-legality rule: even terminal states may move again.
	require.NoError(t, svc.SetStatus(context.Background(), adminClaims(), 1, "Pending"))
	assert.Equal(t, models.StatusPending, repo.items[1].Status)
}

func TestPatentServiceSetStatusNotFound(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	err := svc.SetStatus(context.Background(), adminClaims(), 42, "Granted")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPatentServiceUpdateRequiresAdmin(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	_, err := svc.Update(context.Background(), inventorClaims(3), 1, dto.UpdatePatentRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestPatentServiceListMineFiltersByOwner(t *testing.T) {
	repo := newMockPatentRepo()
	svc := NewPatentService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), inventorClaims(3), validCreateRequest())
	require.NoError(t, err)
	req := validCreateRequest()
	req.Title = "Other"
	_, err = svc.Create(context.Background(), inventorClaims(4), req)
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), inventorClaims(3))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	count, err := svc.CountMine(context.Background(), inventorClaims(3))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPatentServiceAge(t *testing.T) {
	repo := newMockPatentRepo()
	repo.items[1] = &models.Patent{ID: 1, FilingDate: date(2020, 3, 20)}
	svc := NewPatentService(repo, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return date(2024, 3, 19) }

	age, err := svc.Age(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, age.Years)
	assert.Equal(t, 11, age.Months)
}
