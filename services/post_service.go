package services

import (
	"errors"

	"github.com/postboard-simple/models"
	"github.com/postboard-simple/repositories"
	"gorm.io/gorm"
)

// PostService handles post creation, feeds and ownership-checked deletion
type PostService struct {
	posts *repositories.PostRepository
}

// NewPostService creates a new post service instance
func NewPostService(posts *repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create stores a new post authored by the given user and returns it with
// the author expanded. Content length is enforced by the column type, not
// validated here.
func (s *PostService) Create(authorID, content string) (*models.Post, error) {
	post := models.Post{
		AuthorID: authorID,
		Content:  content,
	}
	post, err := s.posts.Create(post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PublicFeed returns the most recent posts, newest first, capped at 100
func (s *PostService) PublicFeed() ([]models.Post, error) {
	return s.posts.FindRecent()
}

// PostsByAuthor returns every post by one author, newest first
func (s *PostService) PostsByAuthor(authorID string) ([]models.Post, error) {
	return s.posts.FindByAuthorID(authorID)
}

// Delete removes a post after verifying the caller is its author.
// Admins have no override here; ownership is strict id equality.
func (s *PostService) Delete(postID, callerID string) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.AuthorID != callerID {
		return ErrNotPostAuthor
	}

	return s.posts.Delete(postID)
}
