package models

// Status enumerates the patent lifecycle states.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusUnderReview   Status = "Under Review"
	StatusInProgress    Status = "In Progress"
	StatusApproved      Status = "Approved"
	StatusRejected      Status = "Rejected"
	StatusNeedsRevision Status = "Needs Revision"
	StatusGranted       Status = "Granted"
	StatusExpired       Status = "Expired"
	StatusWithdrawn     Status = "Withdrawn"
)

// AllStatuses lists every legal patent status. Admins may set any of these at
// any time; the engine validates membership, not transition order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusUnderReview,
		StatusInProgress,
		StatusApproved,
		StatusRejected,
		StatusNeedsRevision,
		StatusGranted,
		StatusExpired,
		StatusWithdrawn,
	}
}

// Valid reports whether s is part of the fixed status enumeration.
func (s Status) Valid() bool {
	for _, candidate := range AllStatuses() {
		if s == candidate {
			return true
		}
	}
	return false
}

// Terminal reports whether s is terminal for reporting purposes. Terminal
// patents are excluded from active counts and pending-review worklists.
func (s Status) Terminal() bool {
	switch s {
	case StatusGranted, StatusExpired, StatusWithdrawn, StatusRejected:
		return true
	}
	return false
}

// ValidDecision reports whether s is a status a reviewer may submit as the
// outcome of a review.
func ValidDecision(s Status) bool {
	switch s {
	case StatusApproved, StatusRejected, StatusNeedsRevision:
		return true
	}
	return false
}

// ReviewStatus enumerates assignment review states.
type ReviewStatus string

const (
	ReviewAssigned   ReviewStatus = "Assigned"
	ReviewInProgress ReviewStatus = "In Progress"
	ReviewCompleted  ReviewStatus = "Completed"
)

// PatentType enumerates the legal patent categories.
type PatentType string

const (
	TypeUtility PatentType = "Utility"
	TypeDesign  PatentType = "Design"
	TypePlant   PatentType = "Plant"
)

// Valid reports whether t is a recognised patent type.
func (t PatentType) Valid() bool {
	switch t {
	case TypeUtility, TypeDesign, TypePlant:
		return true
	}
	return false
}
