package dto

import (
	"time"

	"github.com/postboard-simple/models"
)

// CreatePostRequest represents the body of a post creation
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostAuthor is the expanded author reference returned with every post
type PostAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostResponse represents a post with its author expanded
type PostResponse struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewPostResponse builds a post response from a post with a preloaded author
func NewPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:      p.ID,
		Content: p.Content,
		Author: PostAuthor{
			Name:  p.Author.Name,
			Email: p.Author.Email,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPostResponses maps a slice of posts, preserving order
func NewPostResponses(posts []models.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, NewPostResponse(&posts[i]))
	}
	return responses
}
