package dto

// RegisterInventorRequest is the public inventor sign-up payload.
type RegisterInventorRequest struct {
	Name            string `json:"name" validate:"required"`
	Organization    string `json:"organization"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// RegisterReviewerRequest is the public reviewer sign-up payload. Reviewers
// register active and become eligible for assignment immediately.
type RegisterReviewerRequest struct {
	Name            string `json:"name" validate:"required"`
	Designation     string `json:"designation" validate:"required"`
	Organisation    string `json:"organisation"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// FileOppositionRequest is the public third-party opposition payload. The
// patent title is free text by design; the filer need not know internal ids.
type FileOppositionRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PatentTitle string `json:"patent_title" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}
