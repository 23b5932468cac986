package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Tonii11/aurelius-claim-flow/app/models"
)

// ClaimStore is the persistence surface the lifecycle needs. MarkReviewed
// must apply the status guard and the update as one atomic operation and
// return false when the claim was not pending.
type ClaimStore interface {
	InsertClaim(ctx context.Context, c *models.Claim) error
	ClaimsByLecturer(ctx context.Context, lecturerID string) ([]*models.Claim, error)
	AllClaims(ctx context.Context, status models.ClaimStatus) ([]*models.Claim, error)
	ClaimExists(ctx context.Context, claimID string) (bool, error)
	MarkReviewed(ctx context.Context, claimID, reviewerID string, status models.ClaimStatus, reason string) (bool, error)
}

// ClaimService implements the claim lifecycle: submit, list, approve,
// reject. Caller identity and role are passed in explicitly so tests can
// inject arbitrary callers.
type ClaimService struct {
	store ClaimStore
}

func NewClaimService(store ClaimStore) *ClaimService {
	return &ClaimService{store: store}
}

// Submit validates the form input, computes the total once, and creates a
// pending claim owned by the lecturer. The total is rounded to cents at
// creation and never recomputed.
func (s *ClaimService) Submit(ctx context.Context, lecturerID string, hours, rate float64, notes, documentPath string) (*models.Claim, error) {
	if err := validateAmount("hours worked", hours); err != nil {
		return nil, err
	}
	if err := validateAmount("hourly rate", rate); err != nil {
		return nil, err
	}

	claim := &models.Claim{
		LecturerID:   lecturerID,
		HoursWorked:  hours,
		HourlyRate:   rate,
		TotalAmount:  math.Round(hours*rate*100) / 100,
		Notes:        strings.TrimSpace(notes),
		DocumentPath: documentPath,
		Status:       models.ClaimPending,
	}

	if err := s.store.InsertClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	return claim, nil
}

// ListOwn returns the lecturer's claims, newest first.
func (s *ClaimService) ListOwn(ctx context.Context, lecturerID string) ([]*models.Claim, error) {
	return s.store.ClaimsByLecturer(ctx, lecturerID)
}

// ListAll returns every claim for reviewers, optionally filtered to one
// status. An empty filter means all statuses.
func (s *ClaimService) ListAll(ctx context.Context, reviewer models.Role, status models.ClaimStatus) ([]*models.Claim, error) {
	if !reviewer.IsApprover() {
		return nil, fmt.Errorf("%w: role %q may not review claims", ErrPermission, reviewer)
	}
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.store.AllClaims(ctx, status)
}

// Approve transitions a pending claim to approved.
func (s *ClaimService) Approve(ctx context.Context, claimID, reviewerID string, reviewer models.Role) error {
	return s.review(ctx, claimID, reviewerID, reviewer, models.ClaimApproved, "")
}

// Reject transitions a pending claim to rejected with a reason. The reason
// must be non-empty after trimming whitespace.
func (s *ClaimService) Reject(ctx context.Context, claimID, reviewerID string, reviewer models.Role, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}
	return s.review(ctx, claimID, reviewerID, reviewer, models.ClaimRejected, reason)
}

func (s *ClaimService) review(ctx context.Context, claimID, reviewerID string, reviewer models.Role, status models.ClaimStatus, reason string) error {
	if !reviewer.IsApprover() {
		return fmt.Errorf("%w: role %q may not review claims", ErrPermission, reviewer)
	}

	updated, err := s.store.MarkReviewed(ctx, claimID, reviewerID, status, reason)
	if err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}
	if updated {
		return nil
	}

	// The guard missed: either the claim never existed or another reviewer
	// got there first.
	exists, err := s.store.ClaimExists(ctx, claimID)
	if err != nil {
		return fmt.Errorf("failed to check claim: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, claimID)
	}
	return fmt.Errorf("%w: %s", ErrInvalidState, claimID)
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a number", ErrValidation, field)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	return nil
}
