package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/repositories"
)

func makeComment(id, userID int64, likes int, createdAt time.Time) repositories.EnrichedComment {
	return repositories.EnrichedComment{
		Comment: models.Comment{
			ID:        id,
			PostID:    1,
			UserID:    userID,
			Likes:     likes,
			CreatedAt: createdAt,
		},
	}
}

func commentIDs(comments []repositories.EnrichedComment) []int64 {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRankComments_ViewerCommentsFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	viewerID := int64(42)

	// Input arrives in creation order. The viewer wrote comments 2 and 4.
	comments := []repositories.EnrichedComment{
		makeComment(1, 7, 10, base),
		makeComment(2, viewerID, 0, base.Add(1*time.Minute)),
		makeComment(3, 8, 25, base.Add(2*time.Minute)),
		makeComment(4, viewerID, 3, base.Add(3*time.Minute)),
		makeComment(5, 9, 10, base.Add(4*time.Minute)),
	}

	ranked := rankComments(comments, viewerID)

	// Viewer's comments lead in creation order, then others by likes
	// descending. Comments 1 and 5 tie on likes, so creation order holds.
	assert.Equal(t, []int64{2, 4, 3, 1, 5}, commentIDs(ranked))
}

func TestRankComments_NoViewerComments(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	comments := []repositories.EnrichedComment{
		makeComment(1, 7, 2, base),
		makeComment(2, 8, 9, base.Add(1*time.Minute)),
		makeComment(3, 9, 5, base.Add(2*time.Minute)),
	}

	ranked := rankComments(comments, 42)

	assert.Equal(t, []int64{2, 3, 1}, commentIDs(ranked))
}

func TestRankComments_TiesKeepCreationOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	comments := []repositories.EnrichedComment{
		makeComment(1, 7, 4, base),
		makeComment(2, 8, 4, base.Add(1*time.Minute)),
		makeComment(3, 9, 4, base.Add(2*time.Minute)),
	}

	ranked := rankComments(comments, 42)

	assert.Equal(t, []int64{1, 2, 3}, commentIDs(ranked))
}

func TestRankComments_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	viewerID := int64(42)

	comments := []repositories.EnrichedComment{
		makeComment(1, 7, 1, base),
		makeComment(2, viewerID, 0, base.Add(1*time.Minute)),
	}

	_ = rankComments(comments, viewerID)

	assert.Equal(t, []int64{1, 2}, commentIDs(comments))
}

func TestRankComments_Empty(t *testing.T) {
	ranked := rankComments(nil, 42)
	assert.Empty(t, ranked)
}
