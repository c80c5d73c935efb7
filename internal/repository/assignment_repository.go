package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// AssignmentRepository persists the Patent_Reviewers join rows and mediates
// the review-decision side effect on patent status.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AssignBatch inserts one assignment per reviewer id that is active, exists
// and is not already assigned to the patent. Skipped reviewers do not fail
// the batch; all inserted rows commit together. Returns the inserted count.
func (r *AssignmentRepository) AssignBatch(ctx context.Context, patentID int64, reviewerIDs []int64, date time.Time) (assigned int, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, wrapStoreErr("begin assign reviewers", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insert = `INSERT INTO Patent_Reviewers (P_ID, R_ID, Reviewer_Name, Assignment_Date, Review_Status)
SELECT $1, R.R_ID, R.Name, $2, 'Assigned'
FROM Reviewers R
WHERE R.R_ID = $3
  AND R.Is_Active = TRUE
  AND NOT EXISTS (SELECT 1 FROM Patent_Reviewers PR WHERE PR.P_ID = $1 AND PR.R_ID = $3)`
	for _, reviewerID := range reviewerIDs {
		result, execErr := tx.ExecContext(ctx, insert, patentID, date, reviewerID)
		if execErr != nil {
			err = wrapStoreErr("insert assignment", execErr)
			return 0, err
		}
		affected, execErr := result.RowsAffected()
		if execErr != nil {
			err = wrapStoreErr("check inserted assignment rows", execErr)
			return 0, err
		}
		assigned += int(affected)
	}

	if err = tx.Commit(); err != nil {
		return 0, wrapStoreErr("commit assign reviewers", err)
	}
	return assigned, nil
}

// Find returns the assignment for a (patent, reviewer) pair or sql.ErrNoRows.
func (r *AssignmentRepository) Find(ctx context.Context, patentID, reviewerID int64) (*models.Assignment, error) {
	const query = `SELECT P_ID, R_ID, Reviewer_Name, Assignment_Date, Review_Status, Decision, Comments, Review_Date
FROM Patent_Reviewers WHERE P_ID = $1 AND R_ID = $2`
	var assignment models.Assignment
	if err := r.db.GetContext(ctx, &assignment, query, patentID, reviewerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get assignment", err)
	}
	return &assignment, nil
}

// CompleteReview flips the assignment to Completed and propagates the decision
// to the patent status inside one transaction. The patent row is locked first
// so concurrent submissions against the same patent serialize; the last
// committer wins the status write. Returns ErrReviewCompleted when the
// assignment is already terminal.
func (r *AssignmentRepository) CompleteReview(ctx context.Context, patentID, reviewerID int64, decision models.Status, comments string, date time.Time) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapStoreErr("begin submit review", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var currentStatus models.Status
	const lockPatent = `SELECT Status FROM Patents WHERE P_ID = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &currentStatus, lockPatent, patentID); err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return wrapStoreErr("lock patent row", err)
	}

	var reviewStatus models.ReviewStatus
	const lockAssignment = `SELECT Review_Status FROM Patent_Reviewers WHERE P_ID = $1 AND R_ID = $2 FOR UPDATE`
	if err = tx.GetContext(ctx, &reviewStatus, lockAssignment, patentID, reviewerID); err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return wrapStoreErr("lock assignment row", err)
	}
	if reviewStatus == models.ReviewCompleted {
		err = ErrReviewCompleted
		return err
	}

	const completeAssignment = `UPDATE Patent_Reviewers
SET Review_Status = 'Completed', Decision = $1, Comments = $2, Review_Date = $3
WHERE P_ID = $4 AND R_ID = $5`
	if _, err = tx.ExecContext(ctx, completeAssignment, decision, comments, date, patentID, reviewerID); err != nil {
		return wrapStoreErr("complete assignment", err)
	}

	const propagateStatus = `UPDATE Patents SET Status = $1 WHERE P_ID = $2`
	if _, err = tx.ExecContext(ctx, propagateStatus, decision, patentID); err != nil {
		return wrapStoreErr("propagate review decision", err)
	}

	if err = tx.Commit(); err != nil {
		return wrapStoreErr("commit submit review", err)
	}
	return nil
}

// ListPendingByReviewer returns the reviewer worklist: assignments not yet
// Completed, newest assignment first.
func (r *AssignmentRepository) ListPendingByReviewer(ctx context.Context, reviewerID int64) ([]models.AssignmentDetail, error) {
	const query = `SELECT PR.P_ID, PR.R_ID, PR.Reviewer_Name, PR.Assignment_Date, PR.Review_Status, PR.Decision, PR.Comments, PR.Review_Date, P.Title
FROM Patent_Reviewers PR
JOIN Patents P ON PR.P_ID = P.P_ID
WHERE PR.R_ID = $1 AND PR.Review_Status <> 'Completed'
ORDER BY PR.Assignment_Date DESC`
	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, reviewerID); err != nil {
		return nil, wrapStoreErr("list pending assignments", err)
	}
	return assignments, nil
}

// ListByPatent returns every assignment for a patent, newest first.
func (r *AssignmentRepository) ListByPatent(ctx context.Context, patentID int64) ([]models.Assignment, error) {
	const query = `SELECT P_ID, R_ID, Reviewer_Name, Assignment_Date, Review_Status, Decision, Comments, Review_Date
FROM Patent_Reviewers
WHERE P_ID = $1
ORDER BY Assignment_Date DESC`
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, patentID); err != nil {
		return nil, wrapStoreErr("list patent assignments", err)
	}
	return assignments, nil
}

// ListHistoryByReviewer returns the reviewer's full record, most recent
// review first.
func (r *AssignmentRepository) ListHistoryByReviewer(ctx context.Context, reviewerID int64) ([]models.AssignmentDetail, error) {
	const query = `SELECT PR.P_ID, PR.R_ID, PR.Reviewer_Name, PR.Assignment_Date, PR.Review_Status, PR.Decision, PR.Comments, PR.Review_Date, P.Title
FROM Patent_Reviewers PR
JOIN Patents P ON PR.P_ID = P.P_ID
WHERE PR.R_ID = $1
ORDER BY PR.Review_Date DESC NULLS LAST`
	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, reviewerID); err != nil {
		return nil, wrapStoreErr("list reviewer history", err)
	}
	return assignments, nil
}
