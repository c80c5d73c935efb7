package models

import "time"

// Patent represents a row in the Patents table. Column names are mixed-case in
// the DDL but unquoted, so the server reports them folded to lowercase; the db
// tags match the folded form.
type Patent struct {
	ID          int64      `db:"p_id" json:"id"`
	ApplName    string     `db:"appl_name" json:"applicant_name"`
	FilingDate  time.Time  `db:"filing_date" json:"filing_date"`
	Domain      string     `db:"domain" json:"domain"`
	Status      Status     `db:"status" json:"status"`
	PatentType  PatentType `db:"patent_type" json:"patent_type"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
}

// PatentAge is the calendar-aware elapsed age of a filing.
type PatentAge struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}
