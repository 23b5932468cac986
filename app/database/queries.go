package database

import (
	"context"
	"database/sql"

	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(ctx context.Context, db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserRole returns the single role assigned to a user. A user without a
// role row comes back as RoleUnknown; user_roles keys on user_id so more
// than one row cannot exist.
func GetUserRole(ctx context.Context, db *sql.DB, userID string) (models.Role, error) {
	var role string
	query := `SELECT role FROM user_roles WHERE user_id = $1`

	err := db.QueryRowContext(ctx, query, userID).Scan(&role)
	if err == sql.ErrNoRows {
		return models.RoleUnknown, nil
	}
	if err != nil {
		return models.RoleUnknown, err
	}
	return models.ParseRole(role), nil
}

// CreateUser inserts a user with a hashed password and assigns the role.
func CreateUser(ctx context.Context, db *sql.DB, user *models.User, role models.Role) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query, user.Email, hashed, user.FirstName, user.LastName).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
		user.ID, string(role))
	if err != nil {
		return err
	}

	user.Role = role
	return tx.Commit()
}

func UpdateUserPassword(ctx context.Context, db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.ExecContext(ctx, query, hashedPassword, userID)
	return err
}
