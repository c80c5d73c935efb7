package dto

// AssignReviewersRequest carries the reviewer ids an admin wants attached to a
// patent. Already-assigned or inactive reviewers are skipped, not rejected.
type AssignReviewersRequest struct {
	ReviewerIDs []int64 `json:"reviewer_ids" validate:"required,min=1"`
}

// AssignReviewersResponse reports how many assignments were actually created.
type AssignReviewersResponse struct {
	Assigned int `json:"assigned"`
}

// SubmitReviewRequest carries a reviewer decision for an assigned patent.
type SubmitReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=Approved Rejected 'Needs Revision'"`
	Comments string `json:"comments"`
}
