package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

type ProductHandler struct {
	store storage.Store
}

func NewProductHandler(s storage.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// parseBoolQuery reads an optional boolean query parameter. A missing
// parameter yields nil, which the filter treats as "no predicate".
func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid boolean parameter: " + name})
		return nil, false
	}
	return &v, true
}

func (h *ProductHandler) List(c *gin.Context) {
	filter := domain.ProductFilter{
		CategoryID: c.Query("category_id"),
		BrandID:    c.Query("brand_id"),
		Search:     c.Query("search"),
	}

	var ok bool
	if filter.IsNew, ok = parseBoolQuery(c, "is_new"); !ok {
		return
	}
	if filter.IsBestseller, ok = parseBoolQuery(c, "is_bestseller"); !ok {
		return
	}
	if filter.IsOnSale, ok = parseBoolQuery(c, "is_on_sale"); !ok {
		return
	}

	offset, errO := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, errL := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if errO != nil || errL != nil || offset < 0 || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}
	filter.Offset = offset
	filter.Limit = limit

	products, err := h.store.GetProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input domain.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, err := h.store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	deleted, err := h.store.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func isDuplicateSlug(err error) bool {
	return errors.Is(err, storage.ErrDuplicateSlug)
}
