package dto

// CreatePatentRequest is the inventor-facing filing payload. Status is never
// accepted from the caller; new filings always start Pending.
type CreatePatentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Domain      string `json:"domain" validate:"required"`
	PatentType  string `json:"patent_type" validate:"required,oneof=Utility Design Plant"`
	ApplName    string `json:"applicant_name" validate:"required"`
	FilingDate  string `json:"filing_date" validate:"required,datetime=2006-01-02"`
}

// UpdatePatentRequest is the admin full-row replace payload.
type UpdatePatentRequest struct {
	ApplName    string `json:"applicant_name" validate:"required"`
	FilingDate  string `json:"filing_date" validate:"required,datetime=2006-01-02"`
	Domain      string `json:"domain" validate:"required"`
	Status      string `json:"status" validate:"required"`
	PatentType  string `json:"patent_type" validate:"required,oneof=Utility Design Plant"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SetStatusRequest carries an admin status transition.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
