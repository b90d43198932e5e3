package services

import (
	"github.com/kaan/socialsphere/internal/app/models"
	"github.com/kaan/socialsphere/internal/app/models/dto"
	"github.com/kaan/socialsphere/internal/app/repositories"
)

// authorSummary builds the embedded author shape. A missing author record
// degrades to a placeholder instead of failing the enclosing response.
func authorSummary(userID int64, username, photo *string) dto.UserSummary {
	if username == nil {
		return dto.UserSummary{
			ID:       userID,
			Username: dto.PlaceholderUsername,
		}
	}
	return dto.UserSummary{
		ID:           userID,
		Username:     *username,
		ProfilePhoto: photo,
	}
}

func mapEnrichedPost(p repositories.EnrichedPost) dto.PostResponse {
	return dto.PostResponse{
		ID:            p.ID,
		Description:   p.Description,
		Media:         p.Media,
		Likes:         p.Likes,
		LikedByViewer: p.LikedByViewer,
		CommentCount:  p.CommentCount,
		UploadTime:    p.UploadTime,
		Author:        authorSummary(p.UserID, p.AuthorUsername, p.AuthorPhoto),
		Community: dto.CommunitySummary{
			ID:    p.CommunityID,
			Name:  p.CommunityName,
			Photo: p.CommunityPhoto,
		},
	}
}

func mapEnrichedPosts(posts []repositories.EnrichedPost) []dto.PostResponse {
	responses := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, mapEnrichedPost(p))
	}
	return responses
}

func mapCommunity(c *models.Community) dto.CommunityResponse {
	return dto.CommunityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Photo:       c.Photo,
		Category:    c.Category,
		Description: c.Description,
		OwnerID:     c.OwnerID,
		MemberCount: c.MemberCount,
		PostCount:   c.PostCount,
		CreatedAt:   c.CreatedAt,
	}
}

func mapNotification(n models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Seen:      n.Seen,
		Date:      n.CreatedAt,
		PostID:    n.PostID,
		CommentID: n.CommentID,
		ReplyID:   n.ReplyID,
	}
}
