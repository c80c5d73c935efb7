package models

// Reviewer represents a row in the Reviewers table. Inactive reviewers are not
// offered for new assignment.
type Reviewer struct {
	ID           int64  `db:"r_id" json:"id"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	Designation  string `db:"designation" json:"designation"`
	Organisation string `db:"organisation" json:"organisation"`
	Comment      string `db:"comment" json:"comment"`
	PasswordHash string `db:"password" json:"-"`
	IsActive     bool   `db:"is_active" json:"is_active"`
}
