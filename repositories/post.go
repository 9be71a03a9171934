package repositories

import (
	"github.com/postboard-simple/models"
	"gorm.io/gorm"
)

// publicFeedLimit caps the public feed query. The per-author feed is
// deliberately unbounded, matching the documented asymmetry.
const publicFeedLimit = 100

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// FindRecent retrieves the newest posts for the public feed, author
// preloaded, newest first, capped at the feed limit.
func (r *PostRepository) FindRecent() ([]models.Post, error) {
	var posts []models.Post
	result := r.db.Preload("Author").
		Order("created_at DESC").
		Limit(publicFeedLimit).
		Find(&posts)
	return posts, result.Error
}

// FindByAuthorID retrieves all posts by one author, newest first
func (r *PostRepository) FindByAuthorID(authorID string) ([]models.Post, error) {
	var posts []models.Post
	result := r.db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts)
	return posts, result.Error
}

// FindByID retrieves a post by its ID with the author preloaded
func (r *PostRepository) FindByID(id string) (models.Post, error) {
	var post models.Post
	result := r.db.Preload("Author").First(&post, "id = ?", id)
	return post, result.Error
}

// Create inserts a new post and reloads it with the author expanded
func (r *PostRepository) Create(post models.Post) (models.Post, error) {
	if err := r.db.Create(&post).Error; err != nil {
		return post, err
	}
	return r.FindByID(post.ID)
}

// Delete removes a post from the database
func (r *PostRepository) Delete(id string) error {
	result := r.db.Delete(&models.Post{}, "id = ?", id)
	return result.Error
}
