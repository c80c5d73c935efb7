package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

const filingDateLayout = "2006-01-02"

type patentRepository interface {
	CreateWithOwner(ctx context.Context, patent *models.Patent, inventorID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Patent, error)
	List(ctx context.Context) ([]models.Patent, error)
	ListByInventor(ctx context.Context, inventorID int64) ([]models.Patent, error)
	CountByInventor(ctx context.Context, inventorID int64) (int, error)
	ListByDomain(ctx context.Context, domain string) ([]models.Patent, error)
	Domains(ctx context.Context) ([]string, error)
	Update(ctx context.Context, patent *models.Patent) error
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
}

// PatentService implements patent and ownership operations.
type PatentService struct {
	patents   patentRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPatentService constructs the service.
func NewPatentService(patents patentRepository, validate *validator.Validate, logger *zap.Logger) *PatentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatentService{patents: patents, validator: validate, logger: logger, now: time.Now}
}

// Create files a new patent for the acting inventor. The patent starts
// Pending and the ownership link is written in the same transaction.
func (s *PatentService) Create(ctx context.Context, claims *models.JWTClaims, req dto.CreatePatentRequest) (*models.Patent, error) {
	if claims == nil || claims.Role != models.RoleInventor {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only inventors may file patents")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid patent payload")
	}

	filingDate, err := time.Parse(filingDateLayout, req.FilingDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid filing date format")
	}

	patent := &models.Patent{
		ApplName:    req.ApplName,
		FilingDate:  filingDate,
		Domain:      req.Domain,
		Status:      models.StatusPending,
		PatentType:  models.PatentType(req.PatentType),
		Title:       req.Title,
		Description: req.Description,
	}

	if _, err := s.patents.CreateWithOwner(ctx, patent, claims.SubjectID); err != nil {
		return nil, mapStoreErr(err, "patent could not be created")
	}

	s.logger.Info("patent filed",
		zap.Int64("patent_id", patent.ID),
		zap.Int64("inventor_id", claims.SubjectID),
		zap.String("domain", patent.Domain))
	return patent, nil
}

// Update replaces every editable field of a patent. Admin only; any field may
// change, including status, which is validated against the enumeration.
func (s *PatentService) Update(ctx context.Context, claims *models.JWTClaims, id int64, req dto.UpdatePatentRequest) (*models.Patent, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may edit patents")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid patent payload")
	}

	status := models.Status(req.Status)
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidStatus, "unknown patent status: "+req.Status)
	}

	filingDate, err := time.Parse(filingDateLayout, req.FilingDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid filing date format")
	}

	patent := &models.Patent{
		ID:          id,
		ApplName:    req.ApplName,
		FilingDate:  filingDate,
		Domain:      req.Domain,
		Status:      status,
		PatentType:  models.PatentType(req.PatentType),
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.patents.Update(ctx, patent); err != nil {
		return nil, mapStoreErr(err, "patent not found")
	}
	return patent, nil
}

// SetStatus assigns a new status to a patent. The value is validated against
// the fixed enumeration; transition order is deliberately unconstrained.
func (s *PatentService) SetStatus(ctx context.Context, claims *models.JWTClaims, id int64, rawStatus string) error {
	if claims == nil || claims.Role != models.RoleAdmin {
		return appErrors.Clone(appErrors.ErrUnauthorized, "only admins may update patent status")
	}

	status := models.Status(rawStatus)
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrInvalidStatus, "unknown patent status: "+rawStatus)
	}

	if err := s.patents.UpdateStatus(ctx, id, status); err != nil {
		return mapStoreErr(err, "patent not found")
	}

	s.logger.Info("patent status updated", zap.Int64("patent_id", id), zap.String("status", rawStatus))
	return nil
}

// Get returns a single patent.
func (s *PatentService) Get(ctx context.Context, id int64) (*models.Patent, error) {
	patent, err := s.patents.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "patent not found")
	}
	return patent, nil
}

// List returns the full register ordered by title.
func (s *PatentService) List(ctx context.Context) ([]models.Patent, error) {
	patents, err := s.patents.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "patents unavailable")
	}
	return patents, nil
}

// ListMine returns the acting inventor's patents, newest filing first.
func (s *PatentService) ListMine(ctx context.Context, claims *models.JWTClaims) ([]models.Patent, error) {
	if claims == nil || claims.Role != models.RoleInventor {
		return nil, appErrors.ErrUnauthorized
	}
	patents, err := s.patents.ListByInventor(ctx, claims.SubjectID)
	if err != nil {
		return nil, mapStoreErr(err, "patents unavailable")
	}
	return patents, nil
}

// CountMine returns the acting inventor's patent count.
func (s *PatentService) CountMine(ctx context.Context, claims *models.JWTClaims) (int, error) {
	if claims == nil || claims.Role != models.RoleInventor {
		return 0, appErrors.ErrUnauthorized
	}
	count, err := s.patents.CountByInventor(ctx, claims.SubjectID)
	if err != nil {
		return 0, mapStoreErr(err, "patents unavailable")
	}
	return count, nil
}

// ListByDomain filters the register on an exact domain match.
func (s *PatentService) ListByDomain(ctx context.Context, domain string) ([]models.Patent, error) {
	if domain == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "domain is required")
	}
	patents, err := s.patents.ListByDomain(ctx, domain)
	if err != nil {
		return nil, mapStoreErr(err, "patents unavailable")
	}
	return patents, nil
}

// Domains lists the distinct domains on the register.
func (s *PatentService) Domains(ctx context.Context) ([]string, error) {
	domains, err := s.patents.Domains(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "domains unavailable")
	}
	return domains, nil
}

// Age computes the calendar age of a patent's filing as of today.
func (s *PatentService) Age(ctx context.Context, id int64) (*models.PatentAge, error) {
	patent, err := s.patents.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "patent not found")
	}
	age := ComputeAge(patent.FilingDate, s.now())
	return &age, nil
}
