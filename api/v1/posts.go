package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/dto"
	"github.com/postboard-simple/middleware"
	"github.com/postboard-simple/services"
)

// PostController handles the public feed and the authenticated post endpoints
type PostController struct {
	postService *services.PostService
	authService *services.AuthService
}

// NewPostController creates a new post controller
func NewPostController(postService *services.PostService, authService *services.AuthService) *PostController {
	return &PostController{
		postService: postService,
		authService: authService,
	}
}

// RegisterRoutes registers post routes. The public feed needs no auth;
// everything else runs behind the auth middleware.
func (pc *PostController) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.GET("", pc.PublicFeed)

		authed := posts.Group("")
		authed.Use(middleware.AuthMiddleware(pc.authService))
		{
			authed.POST("", pc.CreatePost)
			authed.GET("/mine", pc.MyPosts)
			authed.DELETE("/:id", pc.DeletePost)
		}
	}
}

// PublicFeed returns up to the 100 most recent posts, newest first
func (pc *PostController) PublicFeed(c *gin.Context) {
	posts, err := pc.postService.PublicFeed()
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponses(posts))
}

// CreatePost stores a new post authored by the caller
func (pc *PostController) CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required"})
		return
	}

	post, err := pc.postService.Create(user.ID, req.Content)
	if err != nil {
		serverError(c, err)
		return
	}

	response := dto.NewPostResponse(post)
	c.JSON(http.StatusOK, response)
}

// MyPosts returns every post by the caller, newest first
func (pc *PostController) MyPosts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	posts, err := pc.postService.PostsByAuthor(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponses(posts))
}

// DeletePost removes a post if the caller is its author
func (pc *PostController) DeletePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	err := pc.postService.Delete(c.Param("id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		case errors.Is(err, services.ErrNotPostAuthor):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed"})
}
