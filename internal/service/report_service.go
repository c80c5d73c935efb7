package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
	"github.com/noah-isme/patent-lifecycle-api/pkg/export"
)

const (
	publicStatsCacheKey  = "stats:public"
	upcomingRenewalsDays = 30
)

type reportRepository interface {
	CountPatents(ctx context.Context) (int, error)
	CountPatentsByStatus(ctx context.Context, status models.Status) (int, error)
	CountUpcomingRenewals(ctx context.Context, from, to time.Time) (int, error)
	DomainDistribution(ctx context.Context) ([]models.DomainCount, error)
	TypeDistribution(ctx context.Context) ([]models.TypeCount, error)
	AssignmentJoinView(ctx context.Context) ([]models.AssignmentJoinRow, error)
	GrantedReviewers(ctx context.Context) ([]models.GrantedReviewer, error)
	ReviewerWorkload(ctx context.Context) ([]models.ReviewerWorkload, error)
	QualifyingRenewals(ctx context.Context) ([]models.QualifyingRenewal, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type registerLister interface {
	List(ctx context.Context) ([]models.Patent, error)
}

// ReportService exposes the read-only reporting projections. Every operation
// tolerates zero rows; error returns are reserved for store failures.
type ReportService struct {
	reports  reportRepository
	register registerLister
	cache    statsCache
	cacheTTL time.Duration
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportService constructs the service.
func NewReportService(reports reportRepository, register registerLister, cache statsCache, cacheTTL time.Duration, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		reports:  reports,
		register: register,
		cache:    cache,
		cacheTTL: cacheTTL,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
		now:      time.Now,
	}
}

// PublicStats returns the headline counters, served cache-aside. Cache
// failures fall back to live queries; they never fail the request.
func (s *ReportService) PublicStats(ctx context.Context) (*models.PublicStats, error) {
	if s.cache != nil {
		var cached models.PublicStats
		if err := s.cache.Get(ctx, publicStatsCacheKey, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.computePublicStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, publicStatsCacheKey, stats, s.cacheTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *ReportService) computePublicStats(ctx context.Context) (*models.PublicStats, error) {
	total, err := s.reports.CountPatents(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "stats unavailable")
	}
	granted, err := s.reports.CountPatentsByStatus(ctx, models.StatusGranted)
	if err != nil {
		return nil, mapStoreErr(err, "stats unavailable")
	}
	expired, err := s.reports.CountPatentsByStatus(ctx, models.StatusExpired)
	if err != nil {
		return nil, mapStoreErr(err, "stats unavailable")
	}
	today := s.now()
	renewals, err := s.reports.CountUpcomingRenewals(ctx, today, today.AddDate(0, 0, upcomingRenewalsDays))
	if err != nil {
		return nil, mapStoreErr(err, "stats unavailable")
	}

	return &models.PublicStats{
		TotalPatents:     total,
		GrantedPatents:   granted,
		ExpiredPatents:   expired,
		UpcomingRenewals: renewals,
	}, nil
}

// DomainDistribution groups the register by domain.
func (s *ReportService) DomainDistribution(ctx context.Context) ([]models.DomainCount, error) {
	counts, err := s.reports.DomainDistribution(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "distribution unavailable")
	}
	return counts, nil
}

// TypeDistribution groups the register by patent type.
func (s *ReportService) TypeDistribution(ctx context.Context) ([]models.TypeCount, error) {
	counts, err := s.reports.TypeDistribution(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "distribution unavailable")
	}
	return counts, nil
}

// AssignmentJoinView joins assignments to patent titles and reviewer names.
func (s *ReportService) AssignmentJoinView(ctx context.Context) ([]models.AssignmentJoinRow, error) {
	rows, err := s.reports.AssignmentJoinView(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "join view unavailable")
	}
	return rows, nil
}

// GrantedReviewers returns reviewers who reviewed at least one granted patent.
func (s *ReportService) GrantedReviewers(ctx context.Context) ([]models.GrantedReviewer, error) {
	reviewers, err := s.reports.GrantedReviewers(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "reviewers unavailable")
	}
	return reviewers, nil
}

// ReviewerWorkload reports completed versus pending reviews per reviewer,
// including reviewers with no assignments.
func (s *ReportService) ReviewerWorkload(ctx context.Context) ([]models.ReviewerWorkload, error) {
	workload, err := s.reports.ReviewerWorkload(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "workload unavailable")
	}
	return workload, nil
}

// QualifyingRenewals returns patents with at least two paid renewals.
func (s *ReportService) QualifyingRenewals(ctx context.Context) ([]models.QualifyingRenewal, error) {
	renewals, err := s.reports.QualifyingRenewals(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "renewals unavailable")
	}
	return renewals, nil
}

// ExportRegister renders the patent register as csv or pdf.
func (s *ReportService) ExportRegister(ctx context.Context, format string) (data []byte, contentType string, err error) {
	patents, err := s.register.List(ctx)
	if err != nil {
		return nil, "", mapStoreErr(err, "patents unavailable")
	}

	reg := registerFromPatents(patents)

	switch format {
	case "csv":
		data, err = s.csv.Render(reg)
		contentType = "text/csv"
	case "pdf":
		data, err = s.pdf.Render(reg, "Patent Register")
		contentType = "application/pdf"
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render register export")
	}
	return data, contentType, nil
}
