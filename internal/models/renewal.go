package models

import "time"

// Renewal represents a row in the Renewals table. Renewals are read-side only
// in this engine; fee processing happens elsewhere.
type Renewal struct {
	PatentID   int64     `db:"p_id" json:"patent_id"`
	Number     int       `db:"r_no" json:"renewal_number"`
	ExpiryDate time.Time `db:"expiry_date" json:"expiry_date"`
	FeeStatus  string    `db:"fee_status" json:"fee_status"`
}

// QualifyingRenewal reports a patent holding at least two paid renewals.
type QualifyingRenewal struct {
	PatentID int64  `db:"p_id" json:"patent_id"`
	Title    string `db:"title" json:"title"`
	Renewals int    `db:"renewals" json:"renewals"`
}
