package models

// PublicStats aggregates the headline counters shown on public dashboards.
type PublicStats struct {
	TotalPatents     int `json:"total_patents"`
	GrantedPatents   int `json:"granted_patents"`
	ExpiredPatents   int `json:"expired_patents"`
	UpcomingRenewals int `json:"upcoming_renewals"`
}

// DomainCount is a group-count bucket over Patents.Domain.
type DomainCount struct {
	Domain string `db:"domain" json:"domain"`
	Count  int    `db:"count" json:"count"`
}

// TypeCount is a group-count bucket over Patents.Patent_Type.
type TypeCount struct {
	PatentType PatentType `db:"patent_type" json:"patent_type"`
	Count      int        `db:"count" json:"count"`
}

// GrantedReviewer is a reviewer holding at least one assignment against a
// granted patent.
type GrantedReviewer struct {
	ReviewerID int64  `db:"r_id" json:"reviewer_id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"`
}

// ReviewerWorkload reports completed versus outstanding reviews per reviewer.
// Reviewers with no assignments appear with zero counts.
type ReviewerWorkload struct {
	ReviewerID       int64  `db:"r_id" json:"reviewer_id"`
	Name             string `db:"name" json:"name"`
	Email            string `db:"email" json:"email"`
	CompletedReviews int    `db:"completed_reviews" json:"completed_reviews"`
	PendingReviews   int    `db:"pending_reviews" json:"pending_reviews"`
}
