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

// LikeResult reports the outcome of a like or unlike: whether the set
// actually changed, the resulting count, and who owns the liked entity.
type LikeResult struct {
	Changed   bool
	LikeCount int
	OwnerID   int64
}

// likeTarget maps an entity kind to its like table and counter column
type likeTarget struct {
	parentTable string
	likesTable  string
	fkColumn    string
}

func targetFor(kind models.LikeableKind) (likeTarget, error) {
	switch kind {
	case models.LikeablePost:
		return likeTarget{parentTable: "posts", likesTable: "post_likes", fkColumn: "post_id"}, nil
	case models.LikeableComment:
		return likeTarget{parentTable: "comments", likesTable: "comment_likes", fkColumn: "comment_id"}, nil
	case models.LikeableReply:
		return likeTarget{parentTable: "replies", likesTable: "reply_likes", fkColumn: "reply_id"}, nil
	}
	return likeTarget{}, apperrors.NewBadRequestError(fmt.Sprintf("unknown likeable kind %q", kind))
}

// LikeRepository is the like ledger: one likedBy row per (entity, user) and
// a denormalized counter on the entity that always equals the row count.
// The set row and the counter only ever change inside the same transaction,
// so the pair cannot drift apart.
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Like adds the user to the entity's likedBy set. Liking an already-liked
// entity is a no-op that reports the current state, which makes client
// retries safe.
func (r *LikeRepository) Like(ctx context.Context, kind models.LikeableKind, entityID, userID int64) (*LikeResult, error) {
	target, err := targetFor(kind)
	if err != nil {
		return nil, err
	}

	result := &LikeResult{}
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		owner, likes, err := r.lockParent(ctx, tx, target, entityID)
		if err != nil {
			return err
		}
		result.OwnerID = owner
		result.LikeCount = likes

		tag, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (%s, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				target.likesTable, target.fkColumn),
			entityID, userID)
		if err != nil {
			return fmt.Errorf("error inserting like: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return nil // already liked
		}

		result.Changed = true
		return tx.QueryRow(ctx,
			fmt.Sprintf(`UPDATE %s SET likes = likes + 1 WHERE id = $1 RETURNING likes`, target.parentTable),
			entityID).Scan(&result.LikeCount)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Unlike removes the user from the entity's likedBy set. Unliking an entity
// the user never liked is a no-op that reports the current state.
func (r *LikeRepository) Unlike(ctx context.Context, kind models.LikeableKind, entityID, userID int64) (*LikeResult, error) {
	target, err := targetFor(kind)
	if err != nil {
		return nil, err
	}

	result := &LikeResult{}
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		owner, likes, err := r.lockParent(ctx, tx, target, entityID)
		if err != nil {
			return err
		}
		result.OwnerID = owner
		result.LikeCount = likes

		tag, err := tx.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`,
				target.likesTable, target.fkColumn),
			entityID, userID)
		if err != nil {
			return fmt.Errorf("error deleting like: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return nil // was not liked
		}

		result.Changed = true
		return tx.QueryRow(ctx,
			fmt.Sprintf(`UPDATE %s SET likes = likes - 1 WHERE id = $1 RETURNING likes`, target.parentTable),
			entityID).Scan(&result.LikeCount)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockParent row-locks the liked entity for the duration of the transaction
// and returns its owner and current count. Concurrent duplicate requests
// from a double-click serialize here instead of double counting.
func (r *LikeRepository) lockParent(ctx context.Context, tx pgx.Tx, target likeTarget, entityID int64) (int64, int, error) {
	var ownerID int64
	var likes int
	err := tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT user_id, likes FROM %s WHERE id = $1 FOR UPDATE`, target.parentTable),
		entityID).Scan(&ownerID, &likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.ErrResourceNotFound
		}
		return 0, 0, fmt.Errorf("error locking %s: %w", target.parentTable, err)
	}
	return ownerID, likes, nil
}
