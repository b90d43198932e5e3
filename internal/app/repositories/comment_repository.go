package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/db"
	"github.com/kaan/socialsphere/internal/pkg/apperrors"
)

// EnrichedComment is a comment row joined with author display fields and the
// viewer's like state. AuthorUsername is nil when the author record is gone.
type EnrichedComment struct {
	models.Comment
	AuthorUsername *string
	AuthorPhoto    *string
	LikedByViewer  bool
}

// EnrichedReply is the reply equivalent of EnrichedComment.
type EnrichedReply struct {
	models.Reply
	AuthorUsername *string
	AuthorPhoto    *string
	LikedByViewer  bool
}

// CommentRepository handles database operations for comments and their
// embedded reply lists.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return comment.ID, nil
}

// GetByID retrieves a bare comment row
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT id, post_id, user_id, text, likes, created_at
		FROM comments
		WHERE id = $1
	`

	var comment models.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.UserID,
		&comment.Text,
		&comment.Likes,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &comment, nil
}

// GetByPost returns the post's comments in creation order, enriched with
// author fields and the viewer's like state. Ranking (viewer first, then by
// popularity) happens in the service, on top of this stable base order.
func (r *CommentRepository) GetByPost(ctx context.Context, postID, viewerID int64) ([]EnrichedComment, error) {
	query := `
		SELECT cm.id, cm.post_id, cm.user_id, cm.text, cm.likes, cm.created_at,
			u.username, u.profile_photo,
			EXISTS(SELECT 1 FROM comment_likes cl WHERE cl.comment_id = cm.id AND cl.user_id = $2) AS liked_by_viewer
		FROM comments cm
		LEFT JOIN users u ON u.id = cm.user_id
		WHERE cm.post_id = $1
		ORDER BY cm.created_at, cm.id
	`

	rows, err := r.db.Query(ctx, query, postID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	comments := []EnrichedComment{}
	for rows.Next() {
		var c EnrichedComment
		err := rows.Scan(
			&c.ID, &c.PostID, &c.UserID, &c.Text, &c.Likes, &c.CreatedAt,
			&c.AuthorUsername, &c.AuthorPhoto, &c.LikedByViewer,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// GetRepliesByComments returns every reply of the given comments in creation
// order, grouped by parent comment id.
func (r *CommentRepository) GetRepliesByComments(ctx context.Context, commentIDs []int64, viewerID int64) (map[int64][]EnrichedReply, error) {
	if len(commentIDs) == 0 {
		return map[int64][]EnrichedReply{}, nil
	}

	query := `
		SELECT rp.id, rp.comment_id, rp.user_id, rp.text, rp.likes, rp.created_at,
			u.username, u.profile_photo,
			EXISTS(SELECT 1 FROM reply_likes rl WHERE rl.reply_id = rp.id AND rl.user_id = $2) AS liked_by_viewer
		FROM replies rp
		LEFT JOIN users u ON u.id = rp.user_id
		WHERE rp.comment_id = ANY($1)
		ORDER BY rp.created_at, rp.id
	`

	rows, err := r.db.Query(ctx, query, commentIDs, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]EnrichedReply)
	for rows.Next() {
		var rep EnrichedReply
		err := rows.Scan(
			&rep.ID, &rep.CommentID, &rep.UserID, &rep.Text, &rep.Likes, &rep.CreatedAt,
			&rep.AuthorUsername, &rep.AuthorPhoto, &rep.LikedByViewer,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		grouped[rep.CommentID] = append(grouped[rep.CommentID], rep)
	}

	return grouped, rows.Err()
}

// CreateReply appends a reply to a comment's reply list
func (r *CommentRepository) CreateReply(ctx context.Context, reply *models.Reply) (int64, error) {
	query := `
		INSERT INTO replies (comment_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		reply.CommentID, reply.UserID, reply.Text).
		Scan(&reply.ID, &reply.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return reply.ID, nil
}

// GetReply retrieves a reply addressed by its (commentID, replyID) pair.
// Replies have no top-level address.
func (r *CommentRepository) GetReply(ctx context.Context, commentID, replyID int64) (*models.Reply, error) {
	query := `
		SELECT id, comment_id, user_id, text, likes, created_at
		FROM replies
		WHERE comment_id = $1 AND id = $2
	`

	var reply models.Reply
	err := r.db.QueryRow(ctx, query, commentID, replyID).Scan(
		&reply.ID,
		&reply.CommentID,
		&reply.UserID,
		&reply.Text,
		&reply.Likes,
		&reply.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReplyNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &reply, nil
}

// DeleteReply splices a reply out of its parent's list, its like rows first
func (r *CommentRepository) DeleteReply(ctx context.Context, commentID, replyID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM reply_likes WHERE reply_id = $1`, replyID); err != nil {
			return fmt.Errorf("error deleting reply likes: %w", err)
		}

		result, err := tx.Exec(ctx,
			`DELETE FROM replies WHERE comment_id = $1 AND id = $2`, commentID, replyID)
		if err != nil {
			return fmt.Errorf("error deleting reply: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrReplyNotFound
		}

		return nil
	})
}

// Delete removes a comment with its replies and like rows, children first
func (r *CommentRepository) Delete(ctx context.Context, commentID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM reply_likes WHERE reply_id IN (SELECT id FROM replies WHERE comment_id = $1)`,
			commentID); err != nil {
			return fmt.Errorf("error deleting reply likes: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM replies WHERE comment_id = $1`, commentID); err != nil {
			return fmt.Errorf("error deleting replies: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM comment_likes WHERE comment_id = $1`, commentID); err != nil {
			return fmt.Errorf("error deleting comment likes: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
		if err != nil {
			return fmt.Errorf("error deleting comment: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrCommentNotFound
		}

		return nil
	})
}
