package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory ClaimStore with the same atomicity contract as
// the SQL implementation: MarkReviewed checks the pending guard and applies
// the update under one lock.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	clock  time.Time
	claims map[string]*models.Claim
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		claims: make(map[string]*models.Claim),
	}
}

func (f *fakeStore) InsertClaim(_ context.Context, c *models.Claim) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	c.ID = fmt.Sprintf("claim-%04d", f.nextID)
	c.CreatedAt = f.clock
	cp := *c
	f.claims[c.ID] = &cp
	return nil
}

func (f *fakeStore) ClaimsByLecturer(_ context.Context, lecturerID string) ([]*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Claim
	for _, c := range f.claims {
		if c.LecturerID == lecturerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeStore) AllClaims(_ context.Context, status models.ClaimStatus) ([]*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Claim
	for _, c := range f.claims {
		if status == "" || c.Status == status {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeStore) ClaimExists(_ context.Context, claimID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.claims[claimID]
	return ok, nil
}

func (f *fakeStore) MarkReviewed(_ context.Context, claimID, reviewerID string, status models.ClaimStatus, reason string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.claims[claimID]
	if !ok || c.Status != models.ClaimPending {
		return false, nil
	}
	now := f.clock.Add(time.Hour)
	c.Status = status
	c.ReviewedBy = &reviewerID
	c.ReviewedAt = &now
	c.RejectionReason = reason
	return true, nil
}

func sortNewestFirst(list []*models.Claim) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}

func (f *fakeStore) get(id string) *models.Claim {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claims[id]
}

func TestSubmitComputesTotal(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 10, 50, "marking scripts", "")
	require.NoError(t, err)

	assert.Equal(t, 500.00, claim.TotalAmount)
	assert.Equal(t, models.ClaimPending, claim.Status)
	assert.Equal(t, "lect-1", claim.LecturerID)
	assert.NotEmpty(t, claim.ID)
	assert.False(t, claim.CreatedAt.IsZero())
}

func TestSubmitRoundsTotalToCents(t *testing.T) {
	svc := NewClaimService(newFakeStore())

	claim, err := svc.Submit(context.Background(), "lect-1", 0.1, 0.2, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0.02, claim.TotalAmount)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		rate  float64
	}{
		{"negative hours", -1, 50},
		{"negative rate", 10, -0.5},
		{"NaN hours", math.NaN(), 50},
		{"infinite rate", 10, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewClaimService(store)

			_, err := svc.Submit(context.Background(), "lect-1", tt.hours, tt.rate, "", "")
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, store.claims, "no claim should be created")
		})
	}
}

func TestSubmitAcceptsZeroValues(t *testing.T) {
	svc := NewClaimService(newFakeStore())

	claim, err := svc.Submit(context.Background(), "lect-1", 0, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0.00, claim.TotalAmount)
}

func TestApproveSetsReviewFields(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)

	err = svc.Approve(context.Background(), claim.ID, "coord-1", models.RoleCoordinator)
	require.NoError(t, err)

	got := store.get(claim.ID)
	assert.Equal(t, models.ClaimApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "coord-1", *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)
	assert.Empty(t, got.RejectionReason)
	assert.Equal(t, 320.00, got.TotalAmount, "review must not touch the total")
}

func TestRejectRequiresReason(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)

	for _, reason := range []string{"", "   ", "\t\n"} {
		err = svc.Reject(context.Background(), claim.ID, "coord-1", models.RoleCoordinator, reason)
		assert.ErrorIs(t, err, ErrValidation)
	}

	got := store.get(claim.ID)
	assert.Equal(t, models.ClaimPending, got.Status, "failed reject must not mutate")
	assert.Nil(t, got.ReviewedBy)
}

func TestRejectSetsReason(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)

	err = svc.Reject(context.Background(), claim.ID, "mgr-1", models.RoleAcademicManager, "  missing timesheet ")
	require.NoError(t, err)

	got := store.get(claim.ID)
	assert.Equal(t, models.ClaimRejected, got.Status)
	assert.Equal(t, "missing timesheet", got.RejectionReason)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "mgr-1", *got.ReviewedBy)
}

func TestReviewTerminalStatesAreImmutable(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(context.Background(), claim.ID, "coord-1", models.RoleCoordinator))

	err = svc.Approve(context.Background(), claim.ID, "coord-2", models.RoleCoordinator)
	assert.ErrorIs(t, err, ErrInvalidState)

	err = svc.Reject(context.Background(), claim.ID, "coord-2", models.RoleCoordinator, "nope")
	assert.ErrorIs(t, err, ErrInvalidState)

	got := store.get(claim.ID)
	assert.Equal(t, models.ClaimApproved, got.Status)
	assert.Equal(t, "coord-1", *got.ReviewedBy, "first reviewer must stick")
}

func TestReviewUnknownClaim(t *testing.T) {
	svc := NewClaimService(newFakeStore())

	err := svc.Approve(context.Background(), "no-such-claim", "coord-1", models.RoleCoordinator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewRequiresApproverRole(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)

	for _, role := range []models.Role{models.RoleLecturer, models.RoleUnknown} {
		err = svc.Approve(context.Background(), claim.ID, "someone", role)
		assert.ErrorIs(t, err, ErrPermission)

		err = svc.Reject(context.Background(), claim.ID, "someone", role, "reason")
		assert.ErrorIs(t, err, ErrPermission)
	}

	assert.Equal(t, models.ClaimPending, store.get(claim.ID).Status)
}

func TestListOwnReturnsOnlyOwnClaimsNewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	first, err := svc.Submit(context.Background(), "lect-1", 1, 10, "", "")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "lect-2", 2, 10, "", "")
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), "lect-1", 3, 10, "", "")
	require.NoError(t, err)

	list, err := svc.ListOwn(context.Background(), "lect-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListAllFilterAndPermission(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	a, err := svc.Submit(context.Background(), "lect-1", 1, 10, "", "")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "lect-2", 2, 10, "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(context.Background(), a.ID, "coord-1", models.RoleCoordinator))

	all, err := svc.ListAll(context.Background(), models.RoleAcademicManager, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.ListAll(context.Background(), models.RoleCoordinator, models.ClaimPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.ClaimPending, pending[0].Status)

	_, err = svc.ListAll(context.Background(), models.RoleLecturer, "")
	assert.ErrorIs(t, err, ErrPermission)

	_, err = svc.ListAll(context.Background(), models.RoleCoordinator, models.ClaimStatus("bogus"))
	assert.ErrorIs(t, err, ErrValidation)
}

// Two reviewers racing on the same pending claim: exactly one wins, the
// loser sees the already-reviewed error, and the winner's fields stick.
func TestConcurrentApprovalSingleWinner(t *testing.T) {
	store := newFakeStore()
	svc := NewClaimService(store)

	claim, err := svc.Submit(context.Background(), "lect-1", 8, 40, "", "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	reviewers := []string{"coord-1", "coord-2"}
	for i := range reviewers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Approve(context.Background(), claim.ID, reviewers[i], models.RoleCoordinator)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrInvalidState)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	got := store.get(claim.ID)
	assert.Equal(t, models.ClaimApproved, got.Status)
	assert.Contains(t, reviewers, *got.ReviewedBy)
}
