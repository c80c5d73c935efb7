package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/patent-lifecycle-api/internal/dto"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	"github.com/noah-isme/patent-lifecycle-api/internal/repository"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

type assignmentRepository interface {
	AssignBatch(ctx context.Context, patentID int64, reviewerIDs []int64, date time.Time) (int, error)
	Find(ctx context.Context, patentID, reviewerID int64) (*models.Assignment, error)
	CompleteReview(ctx context.Context, patentID, reviewerID int64, decision models.Status, comments string, date time.Time) error
	ListPendingByReviewer(ctx context.Context, reviewerID int64) ([]models.AssignmentDetail, error)
	ListByPatent(ctx context.Context, patentID int64) ([]models.Assignment, error)
	ListHistoryByReviewer(ctx context.Context, reviewerID int64) ([]models.AssignmentDetail, error)
}

type reviewerPool interface {
	CountActive(ctx context.Context) (int, error)
	ListActive(ctx context.Context) ([]models.Reviewer, error)
}

type patentLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Patent, error)
}

// ReviewService coordinates reviewer assignment and decision submission.
type ReviewService struct {
	assignments assignmentRepository
	reviewers   reviewerPool
	patents     patentLookup
	logger      *zap.Logger
	now         func() time.Time
}

// NewReviewService constructs the coordinator.
func NewReviewService(assignments assignmentRepository, reviewers reviewerPool, patents patentLookup, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		assignments: assignments,
		reviewers:   reviewers,
		patents:     patents,
		logger:      logger,
		now:         time.Now,
	}
}

// AssignReviewers attaches reviewers to a patent. Idempotent per reviewer:
// pairs that already exist, and ids that are inactive or unknown, are skipped
// rather than failing the batch. Returns the number of assignments created.
func (s *ReviewService) AssignReviewers(ctx context.Context, claims *models.JWTClaims, patentID int64, req dto.AssignReviewersRequest) (int, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return 0, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may assign reviewers")
	}
	if len(req.ReviewerIDs) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "select at least one reviewer")
	}

	if _, err := s.patents.FindByID(ctx, patentID); err != nil {
		return 0, mapStoreErr(err, "patent not found")
	}

	active, err := s.reviewers.CountActive(ctx)
	if err != nil {
		return 0, mapStoreErr(err, "reviewers unavailable")
	}
	if active == 0 {
		return 0, appErrors.ErrNoActiveReviewers
	}

	assigned, err := s.assignments.AssignBatch(ctx, patentID, req.ReviewerIDs, s.now())
	if err != nil {
		return 0, mapStoreErr(err, "patent not found")
	}

	s.logger.Info("reviewers assigned",
		zap.Int64("patent_id", patentID),
		zap.Int("requested", len(req.ReviewerIDs)),
		zap.Int("assigned", assigned))
	return assigned, nil
}

// ActiveReviewers returns the pool of reviewers eligible for new assignment,
// ordered by name.
func (s *ReviewService) ActiveReviewers(ctx context.Context, claims *models.JWTClaims) ([]models.Reviewer, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may list the reviewer pool")
	}
	reviewers, err := s.reviewers.ListActive(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "reviewers unavailable")
	}
	return reviewers, nil
}

// SubmitReview records the acting reviewer's decision and propagates it to the
// patent status in one transaction. The last reviewer to submit overwrites any
// status set by an earlier decision; there is no quorum.
func (s *ReviewService) SubmitReview(ctx context.Context, claims *models.JWTClaims, patentID int64, req dto.SubmitReviewRequest) error {
	if claims == nil || claims.Role != models.RoleReviewer {
		return appErrors.Clone(appErrors.ErrUnauthorized, "only reviewers may submit reviews")
	}

	decision := models.Status(req.Decision)
	if !models.ValidDecision(decision) {
		return appErrors.Clone(appErrors.ErrInvalidStatus, "unknown review decision: "+req.Decision)
	}

	if _, err := s.patents.FindByID(ctx, patentID); err != nil {
		return mapStoreErr(err, "patent not found")
	}

	assignment, err := s.assignments.Find(ctx, patentID, claims.SubjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrUnauthorized, "patent is not assigned to this reviewer")
		}
		return mapStoreErr(err, "assignment not found")
	}
	if assignment.ReviewStatus == models.ReviewCompleted {
		return appErrors.ErrAlreadyReviewed
	}

	if err := s.assignments.CompleteReview(ctx, patentID, claims.SubjectID, decision, req.Comments, s.now()); err != nil {
		if errors.Is(err, repository.ErrReviewCompleted) {
			return appErrors.ErrAlreadyReviewed
		}
		return mapStoreErr(err, "assignment not found")
	}

	s.logger.Info("review submitted",
		zap.Int64("patent_id", patentID),
		zap.Int64("reviewer_id", claims.SubjectID),
		zap.String("decision", req.Decision))
	return nil
}

// ListPending returns the acting reviewer's open worklist, newest assignment
// first.
func (s *ReviewService) ListPending(ctx context.Context, claims *models.JWTClaims) ([]models.AssignmentDetail, error) {
	if claims == nil || claims.Role != models.RoleReviewer {
		return nil, appErrors.ErrUnauthorized
	}
	assignments, err := s.assignments.ListPendingByReviewer(ctx, claims.SubjectID)
	if err != nil {
		return nil, mapStoreErr(err, "assignments unavailable")
	}
	return assignments, nil
}

// ListForPatent returns every assignment attached to a patent.
func (s *ReviewService) ListForPatent(ctx context.Context, claims *models.JWTClaims, patentID int64) ([]models.Assignment, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may list patent assignments")
	}
	if _, err := s.patents.FindByID(ctx, patentID); err != nil {
		return nil, mapStoreErr(err, "patent not found")
	}
	assignments, err := s.assignments.ListByPatent(ctx, patentID)
	if err != nil {
		return nil, mapStoreErr(err, "assignments unavailable")
	}
	return assignments, nil
}

// History returns the acting reviewer's full record, most recent review first.
func (s *ReviewService) History(ctx context.Context, claims *models.JWTClaims) ([]models.AssignmentDetail, error) {
	if claims == nil || claims.Role != models.RoleReviewer {
		return nil, appErrors.ErrUnauthorized
	}
	assignments, err := s.assignments.ListHistoryByReviewer(ctx, claims.SubjectID)
	if err != nil {
		return nil, mapStoreErr(err, "assignments unavailable")
	}
	return assignments, nil
}
