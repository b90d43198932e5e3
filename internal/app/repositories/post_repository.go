package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/db"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
	"github.com/kaan/socialsphere/internal/pkg/logger"
)

// EnrichedPost is a post row joined with the author and community display
// fields and the viewer's like state, so feed responses need no second
// round trip. AuthorUsername is nil when the author record is gone.
type EnrichedPost struct {
	models.Post
	AuthorUsername *string
	AuthorPhoto    *string
	CommunityName  string
	CommunityPhoto *string
	LikedByViewer  bool
}

// PostRepository handles database operations for posts, including the home
// feed candidate queries.
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// enrichedSelect is the shared projection for feed-shaped queries.
// $1 is always the viewer id for the liked-by-viewer probe.
const enrichedSelect = `
	SELECT p.id, p.community_id, p.user_id, p.description, p.media, p.likes, p.upload_time,
		u.username, u.profile_photo,
		c.name, c.photo,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count,
		EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = $1) AS liked_by_viewer
	FROM posts p
	LEFT JOIN users u ON u.id = p.user_id
	JOIN communities c ON c.id = p.community_id
`

// Create inserts a post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (community_id, user_id, description, media)
		VALUES ($1, $2, $3, $4)
		RETURNING id, upload_time
	`

	err := r.db.QueryRow(ctx, query,
		post.CommunityID, post.UserID, post.Description, post.Media).
		Scan(&post.ID, &post.UploadTime)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return post.ID, nil
}

// GetByID retrieves a bare post row
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, community_id, user_id, description, media, likes, upload_time
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.CommunityID,
		&post.UserID,
		&post.Description,
		&post.Media,
		&post.Likes,
		&post.UploadTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &post, nil
}

// Exists reports whether a post row exists
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// FeedForJoined returns the newest unseen posts from the viewer's joined
// communities, capped to limit.
func (r *PostRepository) FeedForJoined(ctx context.Context, viewerID int64, limit int) ([]EnrichedPost, error) {
	query := enrichedSelect + `
		WHERE p.community_id IN (
			SELECT community_id FROM community_members WHERE user_id = $1
		)
		AND NOT EXISTS (
			SELECT 1 FROM seen_posts s WHERE s.user_id = $1 AND s.post_id = p.id
		)
		ORDER BY p.upload_time DESC
		LIMIT $2
	`

	return r.queryEnriched(ctx, query, viewerID, limit)
}

// FeedForInterests returns the most-liked unseen posts from communities
// matching the viewer's interest categories. This is the cold-start path for
// viewers who joined nothing: there is no recency signal they opted into, so
// popularity orders the page.
func (r *PostRepository) FeedForInterests(ctx context.Context, viewerID int64, limit int) ([]EnrichedPost, error) {
	query := enrichedSelect + `
		WHERE c.category IN (
			SELECT category FROM user_interests WHERE user_id = $1
		)
		AND NOT EXISTS (
			SELECT 1 FROM seen_posts s WHERE s.user_id = $1 AND s.post_id = p.id
		)
		ORDER BY p.likes DESC, p.upload_time DESC
		LIMIT $2
	`

	return r.queryEnriched(ctx, query, viewerID, limit)
}

// GetByCommunity returns a page of a community's posts, newest first
func (r *PostRepository) GetByCommunity(ctx context.Context, communityID, viewerID int64, offset uint64, limit int) ([]EnrichedPost, int64, error) {
	query := enrichedSelect + `
		WHERE p.community_id = $2
		ORDER BY p.upload_time DESC
		LIMIT $3 OFFSET $4
	`

	posts, err := r.queryEnriched(ctx, query, viewerID, communityID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE community_id = $1`, communityID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	return posts, total, nil
}

// GetByAuthor returns a page of the user's own posts, newest first
func (r *PostRepository) GetByAuthor(ctx context.Context, authorID int64, offset uint64, limit int) ([]EnrichedPost, int64, error) {
	query := enrichedSelect + `
		WHERE p.user_id = $1
		ORDER BY p.upload_time DESC
		LIMIT $2 OFFSET $3
	`

	posts, err := r.queryEnriched(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE user_id = $1`, authorID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	return posts, total, nil
}

// GetLikedBy returns a page of the posts the user has liked, newest first
func (r *PostRepository) GetLikedBy(ctx context.Context, userID int64, offset uint64, limit int) ([]EnrichedPost, int64, error) {
	query := enrichedSelect + `
		WHERE EXISTS (
			SELECT 1 FROM post_likes pl2 WHERE pl2.post_id = p.id AND pl2.user_id = $1
		)
		ORDER BY p.upload_time DESC
		LIMIT $2 OFFSET $3
	`

	posts, err := r.queryEnriched(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting likes: %w", err)
	}

	return posts, total, nil
}

// GetCommentedBy returns a page of the posts the user has commented on
func (r *PostRepository) GetCommentedBy(ctx context.Context, userID int64, offset uint64, limit int) ([]EnrichedPost, int64, error) {
	query := enrichedSelect + `
		WHERE EXISTS (
			SELECT 1 FROM comments cm2 WHERE cm2.post_id = p.id AND cm2.user_id = $1
		)
		ORDER BY p.upload_time DESC
		LIMIT $2 OFFSET $3
	`

	posts, err := r.queryEnriched(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT post_id) FROM comments WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting commented posts: %w", err)
	}

	return posts, total, nil
}

// Search finds posts whose description matches a case-insensitive fragment.
// The caller passes an already-escaped LIKE pattern.
func (r *PostRepository) Search(ctx context.Context, viewerID int64, pattern string) ([]EnrichedPost, error) {
	query := enrichedSelect + `
		WHERE p.description ILIKE $2
		ORDER BY p.upload_time DESC
	`

	return r.queryEnriched(ctx, query, viewerID, pattern)
}

// IsLikedBy reports whether the user is in the post's likedBy set
func (r *PostRepository) IsLikedBy(ctx context.Context, postID, userID int64) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return liked, nil
}

// Delete removes a post and everything hanging off it. Children go first
// (reply likes, replies, comment likes, comments, post likes, seen rows)
// so an interrupted cascade leaves at most orphaned children, never a
// parent pointing at missing rows.
func (r *PostRepository) Delete(ctx context.Context, postID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		steps := []struct {
			name  string
			query string
		}{
			{"reply likes", `DELETE FROM reply_likes WHERE reply_id IN (
				SELECT rp.id FROM replies rp
				JOIN comments cm ON cm.id = rp.comment_id
				WHERE cm.post_id = $1)`},
			{"replies", `DELETE FROM replies WHERE comment_id IN (
				SELECT id FROM comments WHERE post_id = $1)`},
			{"comment likes", `DELETE FROM comment_likes WHERE comment_id IN (
				SELECT id FROM comments WHERE post_id = $1)`},
			{"comments", `DELETE FROM comments WHERE post_id = $1`},
			{"post likes", `DELETE FROM post_likes WHERE post_id = $1`},
			{"seen rows", `DELETE FROM seen_posts WHERE post_id = $1`},
		}

		for _, step := range steps {
			if _, err := tx.Exec(ctx, step.query, postID); err != nil {
				logger.Error().Err(err).Str("step", step.name).Int64("postID", postID).
					Msg("Post cascade step failed")
				return fmt.Errorf("error deleting %s: %w", step.name, err)
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
		if err != nil {
			return fmt.Errorf("error deleting post: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrPostNotFound
		}

		return nil
	})
}

func (r *PostRepository) queryEnriched(ctx context.Context, query string, args ...interface{}) ([]EnrichedPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := []EnrichedPost{}
	for rows.Next() {
		var p EnrichedPost
		err := rows.Scan(
			&p.ID,
			&p.CommunityID,
			&p.UserID,
			&p.Description,
			&p.Media,
			&p.Likes,
			&p.UploadTime,
			&p.AuthorUsername,
			&p.AuthorPhoto,
			&p.CommunityName,
			&p.CommunityPhoto,
			&p.CommentCount,
			&p.LikedByViewer,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}
