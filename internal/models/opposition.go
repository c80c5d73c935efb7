package models

import "time"

// Opposition represents a row in the Patents_Opposition table. The patent is
// referenced by literal title string, never by foreign key; resolution back to
// a Patent is best-effort reporting only.
type Opposition struct {
	ID          int64     `db:"o_id" json:"id"`
	Email       string    `db:"email" json:"email"`
	PatentTitle string    `db:"patent_title" json:"patent_title"`
	Date        time.Time `db:"o_date" json:"date"`
	Reason      string    `db:"reason" json:"reason"`
}
