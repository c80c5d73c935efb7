package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type inventorAccountRepository interface {
	Create(ctx context.Context, inventor *models.Inventor) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type reviewerAccountRepository interface {
	Create(ctx context.Context, reviewer *models.Reviewer) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type oppositionRepository interface {
	Create(ctx context.Context, opposition *models.Opposition) error
	ListLatest(ctx context.Context, limit int) ([]models.Opposition, error)
}

// RegistrationService handles public sign-up and opposition filing.
type RegistrationService struct {
	inventors   inventorAccountRepository
	reviewers   reviewerAccountRepository
	oppositions oppositionRepository
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewRegistrationService constructs the service.
func NewRegistrationService(
	inventors inventorAccountRepository,
	reviewers reviewerAccountRepository,
	oppositions oppositionRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		inventors:   inventors,
		reviewers:   reviewers,
		oppositions: oppositions,
		validator:   validate,
		logger:      logger,
		now:         time.Now,
	}
}

// RegisterInventor creates an inventor account. Emails are unique across
// inventors.
func (s *RegistrationService) RegisterInventor(ctx context.Context, req dto.RegisterInventorRequest) (*models.Inventor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	exists, err := s.inventors.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, mapStoreErr(err, "registration unavailable")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered as inventor")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	inventor := &models.Inventor{
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		PhoneNo:      req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.inventors.Create(ctx, inventor); err != nil {
		return nil, mapStoreErr(err, "registration unavailable")
	}

	s.logger.Info("inventor registered", zap.Int64("inventor_id", inventor.ID))
	return inventor, nil
}

// RegisterReviewer creates a reviewer account, active by default.
func (s *RegistrationService) RegisterReviewer(ctx context.Context, req dto.RegisterReviewerRequest) (*models.Reviewer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	exists, err := s.reviewers.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, mapStoreErr(err, "registration unavailable")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered as reviewer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	reviewer := &models.Reviewer{
		Email:        req.Email,
		Name:         req.Name,
		Designation:  req.Designation,
		Organisation: req.Organisation,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.reviewers.Create(ctx, reviewer); err != nil {
		return nil, mapStoreErr(err, "registration unavailable")
	}

	s.logger.Info("reviewer registered", zap.Int64("reviewer_id", reviewer.ID))
	return reviewer, nil
}

// FileOpposition records a third-party opposition against a patent title.
// The title stays free text; no patent lookup gates the filing.
func (s *RegistrationService) FileOpposition(ctx context.Context, req dto.FileOppositionRequest) (*models.Opposition, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid opposition payload")
	}

	opposition := &models.Opposition{
		Email:       req.Email,
		PatentTitle: req.PatentTitle,
		Date:        s.now(),
		Reason:      req.Reason,
	}
	if err := s.oppositions.Create(ctx, opposition); err != nil {
		return nil, mapStoreErr(err, "opposition filing unavailable")
	}

	s.logger.Info("opposition filed", zap.Int64("opposition_id", opposition.ID))
	return opposition, nil
}

// LatestOppositions returns the most recent oppositions for admin review.
func (s *RegistrationService) LatestOppositions(ctx context.Context, claims *models.JWTClaims) ([]models.Opposition, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may list oppositions")
	}
	oppositions, err := s.oppositions.ListLatest(ctx, 20)
	if err != nil {
		return nil, mapStoreErr(err, "oppositions unavailable")
	}
	return oppositions, nil
}
