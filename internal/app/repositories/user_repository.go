package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
)

// UserRepository handles database operations for users, their interest
// categories and their seen-post set.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user together with the interest categories picked at
// signup. Both go into the same transaction.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (email, username, password, profile_photo)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		user.Email, user.Username, user.Password, user.ProfilePhoto).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return 0, apperrors.ErrEmailAlreadyExists
			default:
				return 0, apperrors.ErrUsernameAlreadyTaken
			}
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	for _, category := range user.InterestedCategories {
		_, err = tx.Exec(ctx,
			`INSERT INTO user_interests (user_id, category) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			id, category)
		if err != nil {
			return 0, fmt.Errorf("error inserting interest: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, username, password, profile_photo, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.ProfilePhoto,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, email, username, password, profile_photo, created_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.ProfilePhoto,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// GetInterests returns the user's interest category labels
func (r *UserRepository) GetInterests(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category FROM user_interests WHERE user_id = $1 ORDER BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// UpdateUsername changes the account's unique username
func (r *UserRepository) UpdateUsername(ctx context.Context, userID int64, username string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET username = $1 WHERE id = $2`, username, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrUsernameAlreadyTaken
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateProfilePhoto replaces the stored photo reference. A nil photo clears it.
func (r *UserRepository) UpdateProfilePhoto(ctx context.Context, userID int64, photo *string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET profile_photo = $1 WHERE id = $2`, photo, userID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// MarkPostSeen adds a post to the user's seen set. Re-marking an already
// seen post is a no-op, not an error, so double delivery from the client is
// harmless.
func (r *UserRepository) MarkPostSeen(ctx context.Context, userID, postID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO seen_posts (user_id, post_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, postID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Exists reports whether a user row exists
func (r *UserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	query, args, err := squirrel.Select("1").
		From("users").
		Where("id = ?", userID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}
