package models

import "time"

// ClaimStatus defines the lifecycle states of a claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// IsValid reports whether s is one of the three known statuses.
func (s ClaimStatus) IsValid() bool {
	return s == ClaimPending || s == ClaimApproved || s == ClaimRejected
}

// Claim represents a lecturer's work-hour payment claim.
// total_amount is fixed at submission time and never recomputed.
type Claim struct {
	ID              string      `json:"id"`
	LecturerID      string      `json:"lecturer_id"`
	HoursWorked     float64     `json:"hours_worked"`
	HourlyRate      float64     `json:"hourly_rate"`
	TotalAmount     float64     `json:"total_amount"`
	Notes           string      `json:"notes,omitempty"`
	DocumentPath    string      `json:"document_path,omitempty"`
	Status          ClaimStatus `json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	ReviewedBy      *string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time  `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Lecturer        *Profile    `json:"lecturer,omitempty"` // populated in the review queue
}
