package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type mockReportRepo struct {
	total         int
	byStatus      map[models.Status]int
	renewals      int
	renewalsFrom  time.Time
	renewalsTo    time.Time
	statsQueries  int
	domainCounts  []models.DomainCount
	typeCounts    []models.TypeCount
	joinRows      []models.AssignmentJoinRow
	granted       []models.GrantedReviewer
	workload      []models.ReviewerWorkload
	qualifying    []models.QualifyingRenewal
}

func (m *mockReportRepo) CountPatents(ctx context.Context) (int, error) {
	m.statsQueries++
	return m.total, nil
}

func (m *mockReportRepo) CountPatentsByStatus(ctx context.Context, status models.Status) (int, error) {
	return m.byStatus[status], nil
}

func (m *mockReportRepo) CountUpcomingRenewals(ctx context.Context, from, to time.Time) (int, error) {
	m.renewalsFrom = from
	m.renewalsTo = to
	return m.renewals, nil
}

func (m *mockReportRepo) DomainDistribution(ctx context.Context) ([]models.DomainCount, error) {
	return m.domainCounts, nil
}

func (m *mockReportRepo) TypeDistribution(ctx context.Context) ([]models.TypeCount, error) {
	return m.typeCounts, nil
}

func (m *mockReportRepo) AssignmentJoinView(ctx context.Context) ([]models.AssignmentJoinRow, error) {
	return m.joinRows, nil
}

func (m *mockReportRepo) GrantedReviewers(ctx context.Context) ([]models.GrantedReviewer, error) {
	return m.granted, nil
}

func (m *mockReportRepo) ReviewerWorkload(ctx context.Context) ([]models.ReviewerWorkload, error) {
	return m.workload, nil
}

func (m *mockReportRepo) QualifyingRenewals(ctx context.Context) ([]models.QualifyingRenewal, error) {
	return m.qualifying, nil
}

type mockStatsCache struct {
	hit    *models.PublicStats
	sets   int
	setTTL time.Duration
}

func (m *mockStatsCache) Get(ctx context.Context, key string, dest interface{}) error {
	if m.hit == nil {
		return appErrors.ErrCacheMiss
	}
	*dest.(*models.PublicStats) = *m.hit
	return nil
}

func (m *mockStatsCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.sets++
	m.setTTL = ttl
	return nil
}

func TestReportServicePublicStatsCacheHitSkipsStore(t *testing.T) {
	repo := &mockReportRepo{}
	cache := &mockStatsCache{hit: &models.PublicStats{TotalPatents: 12, GrantedPatents: 4}}
	svc := NewReportService(repo, newMockPatentRepo(), cache, time.Minute, zap.NewNop())

	stats, err := svc.PublicStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalPatents)
	assert.Zero(t, repo.statsQueries)
}

func TestReportServicePublicStatsCacheMissComputesAndStores(t *testing.T) {
	repo := &mockReportRepo{
		total:    20,
		byStatus: map[models.Status]int{models.StatusGranted: 8, models.StatusExpired: 3},
		renewals: 5,
	}
	cache := &mockStatsCache{}
	svc := NewReportService(repo, newMockPatentRepo(), cache, 5*time.Minute, zap.NewNop())
	now := date(2026, 9, 1)
	svc.now = func() time.Time { return now }

	stats, err := svc.PublicStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.TotalPatents)
	assert.Equal(t, 8, stats.GrantedPatents)
	assert.Equal(t, 3, stats.ExpiredPatents)
	assert.Equal(t, 5, stats.UpcomingRenewals)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 5*time.Minute, cache.setTTL)
	// window is (today, today+30d]
	assert.Equal(t, now, repo.renewalsFrom)
	assert.Equal(t, now.AddDate(0, 0, 30), repo.renewalsTo)
}

func TestReportServicePublicStatsWithoutCache(t *testing.T) {
	repo := &mockReportRepo{total: 2, byStatus: map[models.Status]int{}}
	svc := NewReportService(repo, newMockPatentRepo(), nil, time.Minute, zap.NewNop())

	stats, err := svc.PublicStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPatents)
}

func TestReportServiceExportRegisterCSV(t *testing.T) {
	register := newMockPatentRepo()
	register.items[1] = &models.Patent{
		ID:         1,
		Title:      "Gene Splicer",
		ApplName:   "Acme Corp",
		FilingDate: date(2020, 3, 20),
		Domain:     "Biotech",
		PatentType: models.TypeUtility,
		Status:     models.StatusGranted,
	}
	svc := NewReportService(&mockReportRepo{}, register, nil, time.Minute, zap.NewNop())

	data, contentType, err := svc.ExportRegister(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	body := string(data)
	assert.True(t, strings.HasPrefix(body, "ID,Title,Applicant,Filing Date,Domain,Type,Status"))
	assert.Contains(t, body, "1,Gene Splicer,Acme Corp,2020-03-20,Biotech,Utility,Granted")
}

func TestReportServiceExportRegisterRejectsUnknownFormat(t *testing.T) {
	svc := NewReportService(&mockReportRepo{}, newMockPatentRepo(), nil, time.Minute, zap.NewNop())

	_, _, err := svc.ExportRegister(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceProjectionsTolerateEmptySets(t *testing.T) {
	svc := NewReportService(&mockReportRepo{}, newMockPatentRepo(), nil, time.Minute, zap.NewNop())

	domains, err := svc.DomainDistribution(context.Background())
	require.NoError(t, err)
	assert.Empty(t, domains)

	workload, err := svc.ReviewerWorkload(context.Background())
	require.NoError(t, err)
	assert.Empty(t, workload)

	renewals, err := svc.QualifyingRenewals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, renewals)
}
