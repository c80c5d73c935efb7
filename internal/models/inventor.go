package models

// Inventor represents a row in the Inventors table.
type Inventor struct {
	ID           int64  `db:"i_id" json:"id"`
	Name         string `db:"name" json:"name"`
	Organization string `db:"organization" json:"organization"`
	Email        string `db:"email" json:"email"`
	PhoneNo      string `db:"phone_no" json:"phone_no"`
	PasswordHash string `db:"password" json:"-"`
}
