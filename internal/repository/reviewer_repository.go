package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// ReviewerRepository persists reviewer accounts and the active pool.
type ReviewerRepository struct {
	db *sqlx.DB
}

// NewReviewerRepository constructs the repository.
func NewReviewerRepository(db *sqlx.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Create inserts a reviewer, active by default, and stores the generated id.
func (r *ReviewerRepository) Create(ctx context.Context, reviewer *models.Reviewer) error {
	const query = `INSERT INTO Reviewers (Email, Name, Designation, Organisation, Comment, Password, Is_Active)
VALUES ($1, $2, $3, $4, $5, $6, TRUE)
RETURNING R_ID`
	if err := r.db.GetContext(ctx, &reviewer.ID, query,
		reviewer.Email, reviewer.Name, reviewer.Designation, reviewer.Organisation, reviewer.Comment, reviewer.PasswordHash); err != nil {
		return wrapStoreErr("insert reviewer", err)
	}
	reviewer.IsActive = true
	return nil
}

// FindByEmail returns the reviewer with the given email or sql.ErrNoRows.
func (r *ReviewerRepository) FindByEmail(ctx context.Context, email string) (*models.Reviewer, error) {
	const query = `SELECT R_ID, Email, Name, Designation, Organisation, Comment, Password, Is_Active
FROM Reviewers WHERE Email = $1`
	var reviewer models.Reviewer
	if err := r.db.GetContext(ctx, &reviewer, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get reviewer by email", err)
	}
	return &reviewer, nil
}

// FindByID returns the reviewer or sql.ErrNoRows.
func (r *ReviewerRepository) FindByID(ctx context.Context, id int64) (*models.Reviewer, error) {
	const query = `SELECT R_ID, Email, Name, Designation, Organisation, Comment, Password, Is_Active
FROM Reviewers WHERE R_ID = $1`
	var reviewer models.Reviewer
	if err := r.db.GetContext(ctx, &reviewer, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get reviewer", err)
	}
	return &reviewer, nil
}

// ListActive returns the reviewers eligible for new assignment.
func (r *ReviewerRepository) ListActive(ctx context.Context) ([]models.Reviewer, error) {
	const query = `SELECT R_ID, Email, Name, Designation, Organisation, Comment, Password, Is_Active
FROM Reviewers WHERE Is_Active = TRUE ORDER BY Name`
	var reviewers []models.Reviewer
	if err := r.db.SelectContext(ctx, &reviewers, query); err != nil {
		return nil, wrapStoreErr("list active reviewers", err)
	}
	return reviewers, nil
}

// CountActive counts reviewers eligible for new assignment.
func (r *ReviewerRepository) CountActive(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM Reviewers WHERE Is_Active = TRUE`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, wrapStoreErr("count active reviewers", err)
	}
	return count, nil
}

// EmailExists reports whether the email is already registered.
func (r *ReviewerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM Reviewers WHERE Email = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, email); err != nil {
		return false, wrapStoreErr("count reviewer email", err)
	}
	return count > 0, nil
}
