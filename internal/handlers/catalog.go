package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

type CategoryHandler struct {
	store storage.Store
}

func NewCategoryHandler(s storage.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.store.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input domain.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	category, err := h.store.CreateCategory(c.Request.Context(), input)
	if err != nil {
		if isDuplicateSlug(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

type BrandHandler struct {
	store storage.Store
}

func NewBrandHandler(s storage.Store) *BrandHandler {
	return &BrandHandler{store: s}
}

func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.store.GetBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var input domain.NewBrand
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	brand, err := h.store.CreateBrand(c.Request.Context(), input)
	if err != nil {
		if isDuplicateSlug(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
		return
	}
	c.JSON(http.StatusCreated, brand)
}
