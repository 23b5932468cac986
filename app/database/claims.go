package database

import (
	"context"
	"database/sql"

	"github.com/Tonii11/aurelius-claim-flow/app/models"
)

// CreateClaim inserts a new pending claim and fills in the generated id
// and server-side created_at.
func CreateClaim(ctx context.Context, db *sql.DB, c *models.Claim) error {
	query := `INSERT INTO claims (lecturer_id, hours_worked, hourly_rate, total_amount, notes, document_path, status, created_at)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), 'pending', NOW())
			  RETURNING id, created_at`

	return db.QueryRowContext(ctx, query,
		c.LecturerID, c.HoursWorked, c.HourlyRate, c.TotalAmount, c.Notes, c.DocumentPath).
		Scan(&c.ID, &c.CreatedAt)
}

// GetClaimsByLecturer returns the lecturer's own claims, newest first.
// The id tiebreak keeps ordering stable for equal timestamps.
func GetClaimsByLecturer(ctx context.Context, db *sql.DB, lecturerID string) ([]*models.Claim, error) {
	query := `SELECT id, lecturer_id, hours_worked, hourly_rate, total_amount,
			  COALESCE(notes, ''), COALESCE(document_path, ''), status,
			  COALESCE(rejection_reason, ''), reviewed_by, reviewed_at, created_at
			  FROM claims
			  WHERE lecturer_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := db.QueryContext(ctx, query, lecturerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClaims(rows, false)
}

// GetAllClaims returns every claim joined with the submitter's identity,
// optionally restricted to one status.
func GetAllClaims(ctx context.Context, db *sql.DB, status models.ClaimStatus) ([]*models.Claim, error) {
	query := `SELECT c.id, c.lecturer_id, c.hours_worked, c.hourly_rate, c.total_amount,
			  COALESCE(c.notes, ''), COALESCE(c.document_path, ''), c.status,
			  COALESCE(c.rejection_reason, ''), c.reviewed_by, c.reviewed_at, c.created_at,
			  u.first_name || ' ' || u.last_name, u.email
			  FROM claims c
			  JOIN users u ON u.id = c.lecturer_id
			  WHERE ($1 = '' OR c.status = $1)
			  ORDER BY c.created_at DESC, c.id DESC`

	rows, err := db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClaims(rows, true)
}

// ClaimExists reports whether a claim row exists at all. Used to tell a
// missing claim apart from a lost review race.
func ClaimExists(ctx context.Context, db *sql.DB, claimID string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, claimID).Scan(&exists)
	return exists, err
}

// MarkClaimReviewed applies the review decision as a single conditional
// update guarded by status = 'pending', so two concurrent reviewers can
// never both win. Returns false when the guard did not match.
func MarkClaimReviewed(ctx context.Context, db *sql.DB, claimID, reviewerID string, status models.ClaimStatus, reason string) (bool, error) {
	query := `UPDATE claims
			  SET status = $1, reviewed_by = $2, reviewed_at = NOW(), rejection_reason = NULLIF($3, '')
			  WHERE id = $4 AND status = 'pending'`

	result, err := db.ExecContext(ctx, query, string(status), reviewerID, reason, claimID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func scanClaims(rows *sql.Rows, withProfile bool) ([]*models.Claim, error) {
	claims := []*models.Claim{} // empty slice for non-null JSON
	for rows.Next() {
		c := &models.Claim{}
		var reviewedBy sql.NullString
		var reviewedAt sql.NullTime

		dest := []any{
			&c.ID, &c.LecturerID, &c.HoursWorked, &c.HourlyRate, &c.TotalAmount,
			&c.Notes, &c.DocumentPath, &c.Status, &c.RejectionReason,
			&reviewedBy, &reviewedAt, &c.CreatedAt,
		}
		if withProfile {
			c.Lecturer = &models.Profile{}
			dest = append(dest, &c.Lecturer.FullName, &c.Lecturer.Email)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		if reviewedBy.Valid {
			c.ReviewedBy = &reviewedBy.String
		}
		if reviewedAt.Valid {
			t := reviewedAt.Time
			c.ReviewedAt = &t
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// ClaimStore adapts the claim queries to the services.Store interface.
type ClaimStore struct {
	DB *sql.DB
}

func (s *ClaimStore) InsertClaim(ctx context.Context, c *models.Claim) error {
	return CreateClaim(ctx, s.DB, c)
}

func (s *ClaimStore) ClaimsByLecturer(ctx context.Context, lecturerID string) ([]*models.Claim, error) {
	return GetClaimsByLecturer(ctx, s.DB, lecturerID)
}

func (s *ClaimStore) AllClaims(ctx context.Context, status models.ClaimStatus) ([]*models.Claim, error) {
	return GetAllClaims(ctx, s.DB, status)
}

func (s *ClaimStore) ClaimExists(ctx context.Context, claimID string) (bool, error) {
	return ClaimExists(ctx, s.DB, claimID)
}

func (s *ClaimStore) MarkReviewed(ctx context.Context, claimID, reviewerID string, status models.ClaimStatus, reason string) (bool, error) {
	return MarkClaimReviewed(ctx, s.DB, claimID, reviewerID, status, reason)
}
