package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

type BlogHandler struct {
	store storage.Store
}

func NewBlogHandler(s storage.Store) *BlogHandler {
	return &BlogHandler{store: s}
}

// List serves the public blog index: published posts only.
func (h *BlogHandler) List(c *gin.Context) {
	published := true
	posts, err := h.store.GetBlogPosts(c.Request.Context(), &published)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListAll serves the editorial view, drafts included. The optional published
// param narrows to one state; omitting it lists everything.
func (h *BlogHandler) ListAll(c *gin.Context) {
	published, ok := parseBoolQuery(c, "published")
	if !ok {
		return
	}

	posts, err := h.store.GetBlogPosts(c.Request.Context(), published)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.store.GetBlogPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var input domain.NewBlogPost
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	post, err := h.store.CreateBlogPost(c.Request.Context(), input)
	if err != nil {
		if isDuplicateSlug(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Blog post slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}
