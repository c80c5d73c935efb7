package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

func newAssignmentRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAssignmentRepositoryAssignBatchSkipsExisting(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	// reviewer 1 is new: one row inserted
	mock.ExpectExec("INSERT INTO Patent_Reviewers").
		WithArgs(int64(5), date, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// reviewer 2 is already assigned or inactive: guarded insert matches nothing
	mock.ExpectExec("INSERT INTO Patent_Reviewers").
		WithArgs(int64(5), date, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assigned, err := repo.AssignBatch(context.Background(), 5, []int64{1, 2}, date)
	require.NoError(t, err)
	assert.Equal(t, 1, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryAssignBatchRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Patent_Reviewers").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.AssignBatch(context.Background(), 5, []int64{1}, time.Now())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryCompleteReview(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Status FROM Patents WHERE P_ID = .+ FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Under Review"))
	mock.ExpectQuery("SELECT Review_Status FROM Patent_Reviewers WHERE P_ID = .+ FOR UPDATE").
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"review_status"}).AddRow("Assigned"))
	mock.ExpectExec("UPDATE Patent_Reviewers").
		WithArgs(models.StatusApproved, "looks solid", date, int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE Patents SET Status = .+").
		WithArgs(models.StatusApproved, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CompleteReview(context.Background(), 5, 2, models.StatusApproved, "looks solid", date)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryCompleteReviewAlreadyCompleted(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Status FROM Patents WHERE P_ID = .+ FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Approved"))
	mock.ExpectQuery("SELECT Review_Status FROM Patent_Reviewers WHERE P_ID = .+ FOR UPDATE").
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"review_status"}).AddRow("Completed"))
	mock.ExpectRollback()

	err := repo.CompleteReview(context.Background(), 5, 2, models.StatusRejected, "", time.Now())
	require.ErrorIs(t, err, ErrReviewCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryFindNotAssigned(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("SELECT P_ID, R_ID, Reviewer_Name").
		WithArgs(int64(5), int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), 5, 9)
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryListPendingByReviewer(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	rows := sqlmock.NewRows([]string{"p_id", "r_id", "reviewer_name", "assignment_date", "review_status", "decision", "comments", "review_date", "title"}).
		AddRow(int64(5), int64(2), "Dr. Ray", time.Now(), "Assigned", nil, nil, nil, "Gene Splicer")
	mock.ExpectQuery("SELECT PR.P_ID, .+ FROM Patent_Reviewers PR").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	assignments, err := repo.ListPendingByReviewer(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Gene Splicer", assignments[0].Title)
	assert.Equal(t, models.ReviewAssigned, assignments[0].ReviewStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
