package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripcraft/models"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const userColumns = `id, email, first_name, last_name, phone, city, country, additional_info,
	password_hash, token_hash, created_at, updated_at`

// PostgresUserRepo implements UserRepository on Postgres.
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo creates a new instance of UserRepository using Postgres.
func NewPostgresUserRepo(db *sql.DB) UserRepository {
	return &PostgresUserRepo{db: db}
}

// withTimeout bounds a query by the given timeout on top of the caller's context.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.City, &u.Country,
		&u.AdditionalInfo, &u.PasswordHash, &u.TokenHash, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row.
func (r *PostgresUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.Phone, user.City, user.Country,
		user.AdditionalInfo, user.PasswordHash, user.TokenHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *PostgresUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return u, err
}

// GetByEmail retrieves a user by its email address.
func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	email = NormalizeEmail(email)
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return u, err
}

// UpdateProfile applies the non-nil fields of the update.
func (r *PostgresUserRepo) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			phone = COALESCE($4, phone),
			city = COALESCE($5, city),
			country = COALESCE($6, country),
			additional_info = COALESCE($7, additional_info),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, update.FirstName, update.LastName, update.Phone, update.City, update.Country, update.AdditionalInfo,
	)
	u, err := scanUser(row)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return u, err
}

// SetTokenHash stores the hash of the user's active token.
func (r *PostgresUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.updateColumn(ctx, id, "token_hash", tokenHash)
}

// GetTokenHash returns the stored token hash.
func (r *PostgresUserRepo) GetTokenHash(ctx context.Context, id string) (string, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT token_hash FROM users WHERE id = $1`, id).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch token hash for user %s: %w", id, err)
	}
	return hash, nil
}

// UpdatePasswordHash replaces the password hash.
func (r *PostgresUserRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	return r.updateColumn(ctx, id, "password_hash", passwordHash)
}

// updateColumn sets a single column; column names are constants from this package.
func (r *PostgresUserRepo) updateColumn(ctx context.Context, id, column, value string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+column+` = $2, updated_at = NOW() WHERE id = $1`, id, value)
	if err != nil {
		return fmt.Errorf("failed to update %s for user %s: %w", column, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
