package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

type TestimonialHandler struct {
	store storage.Store
}

func NewTestimonialHandler(s storage.Store) *TestimonialHandler {
	return &TestimonialHandler{store: s}
}

// List serves the public wall: approved testimonials only.
func (h *TestimonialHandler) List(c *gin.Context) {
	approved := true
	testimonials, err := h.store.GetTestimonials(c.Request.Context(), &approved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// ListAll serves the moderation view. The optional approved param narrows to
// one state; omitting it lists everything.
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	approved, ok := parseBoolQuery(c, "approved")
	if !ok {
		return
	}

	testimonials, err := h.store.GetTestimonials(c.Request.Context(), approved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Create accepts a public testimonial submission. Submissions always enter
// the moderation queue unapproved, whatever the payload says.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var input domain.NewTestimonial
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	input.IsApproved = false

	testimonial, err := h.store.CreateTestimonial(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}
