package models

import "time"

// Assignment represents a row in the Patent_Reviewers join table. At most one
// row exists per (patent, reviewer) pair; once Review_Status reaches Completed
// the row is terminal for that reviewer.
type Assignment struct {
	PatentID       int64        `db:"p_id" json:"patent_id"`
	ReviewerID     int64        `db:"r_id" json:"reviewer_id"`
	ReviewerName   string       `db:"reviewer_name" json:"reviewer_name"`
	AssignmentDate time.Time    `db:"assignment_date" json:"assignment_date"`
	ReviewStatus   ReviewStatus `db:"review_status" json:"review_status"`
	Decision       *Status      `db:"decision" json:"decision,omitempty"`
	Comments       *string      `db:"comments" json:"comments,omitempty"`
	ReviewDate     *time.Time   `db:"review_date" json:"review_date,omitempty"`
}

// AssignmentDetail is an Assignment joined to the patent title for worklists.
type AssignmentDetail struct {
	Assignment
	Title string `db:"title" json:"title"`
}

// AssignmentJoinRow is the public join view of assignments with patent and
// reviewer names.
type AssignmentJoinRow struct {
	PatentID     int64        `db:"p_id" json:"patent_id"`
	Patent       string       `db:"patent" json:"patent"`
	ReviewerID   int64        `db:"reviewer_id" json:"reviewer_id"`
	ReviewerName string       `db:"reviewer_name" json:"reviewer_name"`
	ReviewStatus ReviewStatus `db:"review_status" json:"review_status"`
}
