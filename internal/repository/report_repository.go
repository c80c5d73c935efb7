package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// ReportRepository exposes the read-only reporting projections. Every query
// tolerates zero rows by returning an empty result set.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CountPatents counts every patent on the register.
func (r *ReportRepository) CountPatents(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM Patents`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, wrapStoreErr("count patents", err)
	}
	return count, nil
}

// CountPatentsByStatus counts patents holding the given status.
func (r *ReportRepository) CountPatentsByStatus(ctx context.Context, status models.Status) (int, error) {
	const query = `SELECT COUNT(*) FROM Patents WHERE Status = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, wrapStoreErr("count patents by status", err)
	}
	return count, nil
}

// CountUpcomingRenewals counts renewal rows expiring within (from, to]. The
// lower bound is exclusive so a renewal expiring today is not "upcoming".
func (r *ReportRepository) CountUpcomingRenewals(ctx context.Context, from, to time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM Renewals WHERE Expiry_Date > $1 AND Expiry_Date <= $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, from, to); err != nil {
		return 0, wrapStoreErr("count upcoming renewals", err)
	}
	return count, nil
}

// DomainDistribution groups the register by domain.
func (r *ReportRepository) DomainDistribution(ctx context.Context) ([]models.DomainCount, error) {
	const query = `SELECT Domain, COUNT(*) AS count FROM Patents GROUP BY Domain`
	var counts []models.DomainCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, wrapStoreErr("group patents by domain", err)
	}
	return counts, nil
}

// TypeDistribution groups the register by patent type.
func (r *ReportRepository) TypeDistribution(ctx context.Context) ([]models.TypeCount, error) {
	const query = `SELECT Patent_Type, COUNT(*) AS count FROM Patents GROUP BY Patent_Type`
	var counts []models.TypeCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, wrapStoreErr("group patents by type", err)
	}
	return counts, nil
}

// AssignmentJoinView joins assignments to patent titles and reviewer names.
func (r *ReportRepository) AssignmentJoinView(ctx context.Context) ([]models.AssignmentJoinRow, error) {
	const query = `SELECT PR.P_ID, P.Title AS patent, PR.R_ID AS reviewer_id, R.Name AS reviewer_name, PR.Review_Status
FROM Patent_Reviewers PR
JOIN Patents P ON PR.P_ID = P.P_ID
JOIN Reviewers R ON PR.R_ID = R.R_ID
ORDER BY P.Title`
	var rows []models.AssignmentJoinRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, wrapStoreErr("assignment join view", err)
	}
	return rows, nil
}

// GrantedReviewers returns the deduplicated set of reviewers holding at least
// one assignment against a granted patent.
func (r *ReportRepository) GrantedReviewers(ctx context.Context) ([]models.GrantedReviewer, error) {
	const query = `SELECT DISTINCT R.R_ID, R.Name, R.Email
FROM Reviewers R
WHERE R.R_ID IN (
    SELECT PR.R_ID FROM Patent_Reviewers PR
    WHERE PR.P_ID IN (
        SELECT P_ID FROM Patents WHERE Status = 'Granted'
    )
)
ORDER BY R.Name`
	var reviewers []models.GrantedReviewer
	if err := r.db.SelectContext(ctx, &reviewers, query); err != nil {
		return nil, wrapStoreErr("granted reviewers", err)
	}
	return reviewers, nil
}

// ReviewerWorkload reports completed versus outstanding reviews per reviewer.
// The outer join keeps reviewers with zero assignments in the result.
func (r *ReportRepository) ReviewerWorkload(ctx context.Context) ([]models.ReviewerWorkload, error) {
	const query = `SELECT R.R_ID, R.Name, R.Email,
  COALESCE(SUM(CASE WHEN PR.Review_Status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed_reviews,
  COALESCE(SUM(CASE WHEN PR.Review_Status <> 'Completed' AND PR.Review_Status IS NOT NULL THEN 1 ELSE 0 END), 0) AS pending_reviews
FROM Reviewers R
LEFT JOIN Patent_Reviewers PR ON R.R_ID = PR.R_ID
GROUP BY R.R_ID, R.Name, R.Email
ORDER BY pending_reviews DESC`
	var workload []models.ReviewerWorkload
	if err := r.db.SelectContext(ctx, &workload, query); err != nil {
		return nil, wrapStoreErr("reviewer workload", err)
	}
	return workload, nil
}

// QualifyingRenewals returns patents holding at least two renewals whose fee
// status contains "Paid" (substring match covers "Partially Paid").
func (r *ReportRepository) QualifyingRenewals(ctx context.Context) ([]models.QualifyingRenewal, error) {
	const query = `SELECT RN.P_ID, P.Title, COUNT(RN.R_No) AS renewals
FROM Renewals RN
JOIN Patents P ON RN.P_ID = P.P_ID
WHERE RN.Fee_Status LIKE '%Paid%'
GROUP BY RN.P_ID, P.Title
HAVING COUNT(RN.R_No) >= 2`
	var renewals []models.QualifyingRenewal
	if err := r.db.SelectContext(ctx, &renewals, query); err != nil {
		return nil, wrapStoreErr("qualifying renewals", err)
	}
	return renewals, nil
}
