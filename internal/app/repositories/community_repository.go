package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
)

// CommunityRepository handles database operations for communities and their
// member sets.
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a community and enrolls the creator as its first member in
// the same transaction, so the creator-is-member invariant holds from the
// start.
func (r *CommunityRepository) Create(ctx context.Context, community *models.Community) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO communities (name, photo, category, description, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		community.Name, community.Photo, community.Category,
		community.Description, community.OwnerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO community_members (community_id, user_id) VALUES ($1, $2)`,
		id, community.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("error enrolling creator: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// GetByID retrieves a community with its member and post counts
func (r *CommunityRepository) GetByID(ctx context.Context, id int64) (*models.Community, error) {
	query := `
		SELECT c.id, c.name, c.photo, c.category, c.description, c.owner_id, c.created_at,
			(SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) AS member_count,
			(SELECT COUNT(*) FROM posts p WHERE p.community_id = c.id) AS post_count
		FROM communities c
		WHERE c.id = $1
	`

	var community models.Community
	err := r.db.QueryRow(ctx, query, id).Scan(
		&community.ID,
		&community.Name,
		&community.Photo,
		&community.Category,
		&community.Description,
		&community.OwnerID,
		&community.CreatedAt,
		&community.MemberCount,
		&community.PostCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &community, nil
}

// AddMember enrolls a user. Joining twice is a no-op; the returned bool
// reports whether a new membership row was created.
func (r *CommunityRepository) AddMember(ctx context.Context, communityID, userID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`INSERT INTO community_members (community_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		communityID, userID)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// RemoveMember removes a user's membership. Returns whether a row was removed.
func (r *CommunityRepository) RemoveMember(ctx context.Context, communityID, userID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM community_members WHERE community_id = $1 AND user_id = $2`,
		communityID, userID)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// IsMember reports whether the user belongs to the community
func (r *CommunityRepository) IsMember(ctx context.Context, communityID, userID int64) (bool, error) {
	var member bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM community_members WHERE community_id = $1 AND user_id = $2)`,
		communityID, userID).Scan(&member)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return member, nil
}

// CountJoined returns how many communities the user has joined
func (r *CommunityRepository) CountJoined(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM community_members WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// GetJoinedByUser lists the communities the user is a member of
func (r *CommunityRepository) GetJoinedByUser(ctx context.Context, userID int64) ([]models.Community, error) {
	query := `
		SELECT c.id, c.name, c.photo, c.category, c.description, c.owner_id, c.created_at,
			(SELECT COUNT(*) FROM community_members m2 WHERE m2.community_id = c.id) AS member_count
		FROM communities c
		JOIN community_members m ON m.community_id = c.id
		WHERE m.user_id = $1
		ORDER BY m.joined_at DESC
	`

	return r.queryCommunities(ctx, query, userID)
}

// GetOwnedByUser lists the communities the user created
func (r *CommunityRepository) GetOwnedByUser(ctx context.Context, userID int64) ([]models.Community, error) {
	query := `
		SELECT c.id, c.name, c.photo, c.category, c.description, c.owner_id, c.created_at,
			(SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) AS member_count
		FROM communities c
		WHERE c.owner_id = $1
		ORDER BY c.created_at DESC
	`

	return r.queryCommunities(ctx, query, userID)
}

// SearchByName finds communities by case-insensitive name fragment. The
// caller is expected to pass an already-escaped LIKE pattern.
func (r *CommunityRepository) SearchByName(ctx context.Context, pattern string) ([]models.Community, error) {
	query := `
		SELECT c.id, c.name, c.photo, c.category, c.description, c.owner_id, c.created_at,
			(SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) AS member_count
		FROM communities c
		WHERE c.name ILIKE $1
		ORDER BY c.name
	`

	return r.queryCommunities(ctx, query, pattern)
}

// GetTopByCategories returns, for every given category, its most-joined
// communities capped to perCategory. Backs the explore view.
func (r *CommunityRepository) GetTopByCategories(ctx context.Context, categories []string, perCategory int) (map[string][]models.Community, error) {
	if len(categories) == 0 {
		return map[string][]models.Community{}, nil
	}

	query := `
		SELECT id, name, photo, category, description, owner_id, created_at, member_count
		FROM (
			SELECT c.id, c.name, c.photo, c.category, c.description, c.owner_id, c.created_at,
				(SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) AS member_count,
				ROW_NUMBER() OVER (
					PARTITION BY c.category
					ORDER BY (SELECT COUNT(*) FROM community_members m WHERE m.community_id = c.id) DESC, c.id
				) AS rank
			FROM communities c
			WHERE c.category = ANY($1)
		) ranked
		WHERE rank <= $2
		ORDER BY category, member_count DESC
	`

	rows, err := r.db.Query(ctx, query, categories, perCategory)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.Community)
	for rows.Next() {
		var c models.Community
		err := rows.Scan(
			&c.ID, &c.Name, &c.Photo, &c.Category, &c.Description,
			&c.OwnerID, &c.CreatedAt, &c.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		grouped[c.Category] = append(grouped[c.Category], c)
	}

	return grouped, rows.Err()
}

// GetMemberCategories returns the distinct categories of the user's joined
// communities
func (r *CommunityRepository) GetMemberCategories(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT DISTINCT c.category
		FROM communities c
		JOIN community_members m ON m.community_id = c.id
		WHERE m.user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
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

// UpdatePhoto replaces the community photo reference
func (r *CommunityRepository) UpdatePhoto(ctx context.Context, communityID int64, photo *string) error {
	sql, args, err := r.sb.Update("communities").
		Set("photo", photo).
		Where(squirrel.Eq{"id": communityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}

	return nil
}

func (r *CommunityRepository) queryCommunities(ctx context.Context, query string, args ...interface{}) ([]models.Community, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	communities := []models.Community{}
	for rows.Next() {
		var c models.Community
		err := rows.Scan(
			&c.ID, &c.Name, &c.Photo, &c.Category, &c.Description,
			&c.OwnerID, &c.CreatedAt, &c.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		communities = append(communities, c)
	}

	return communities, rows.Err()
}
