package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestReportRepositoryCountUpcomingRenewals(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Renewals WHERE Expiry_Date > $1 AND Expiry_Date <= $2")).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUpcomingRenewals(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryReviewerWorkloadKeepsIdleReviewers(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"r_id", "name", "email", "completed_reviews", "pending_reviews"}).
		AddRow(int64(1), "Dr. Ray", "ray@example.com", 2, 1).
		AddRow(int64(2), "Dr. Idle", "idle@example.com", 0, 0)
	mock.ExpectQuery("SELECT R.R_ID, R.Name, R.Email").WillReturnRows(rows)

	workload, err := repo.ReviewerWorkload(context.Background())
	require.NoError(t, err)
	require.Len(t, workload, 2)
	assert.Equal(t, 0, workload[1].CompletedReviews)
	assert.Equal(t, 0, workload[1].PendingReviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryQualifyingRenewals(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"p_id", "title", "renewals"}).
		AddRow(int64(4), "Gene Splicer", 3)
	mock.ExpectQuery("SELECT RN.P_ID, P.Title, COUNT").WillReturnRows(rows)

	renewals, err := repo.QualifyingRenewals(context.Background())
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, 3, renewals[0].Renewals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryAssignmentJoinView(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"p_id", "patent", "reviewer_id", "reviewer_name", "review_status"}).
		AddRow(int64(4), "Gene Splicer", int64(1), "Dr. Ray", "Completed")
	mock.ExpectQuery("SELECT PR.P_ID, P.Title AS patent").WillReturnRows(rows)

	view, err := repo.AssignmentJoinView(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "Gene Splicer", view[0].Patent)
	assert.Equal(t, "Dr. Ray", view[0].ReviewerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryDomainDistributionEmpty(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery("SELECT Domain, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"domain", "count"}))

	counts, err := repo.DomainDistribution(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
