// Package storage defines the contract shared by the in-memory and
// PostgreSQL-backed stores. Handlers depend on this interface only, so the
// backend is swappable through configuration.
package storage

import (
	"context"
	"errors"

	"github.com/safsequence/Meow/internal/domain"
)

// ErrDuplicateSlug is returned when a create would reuse a slug that already
// exists for the same entity type.
var ErrDuplicateSlug = errors.New("slug already exists")

// Store is the full storage contract.
//
// Single-record lookups return (nil, nil) when no record matches; an error
// always means the operation itself failed. List operations that gate on a
// soft flag (is_active, is_published, is_approved) never return records with
// the flag unset unless the caller asks for them explicitly.
type Store interface {
	// Users.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, input domain.NewUser) (*domain.User, error)

	// Categories. GetCategories returns active categories only.
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input domain.NewCategory) (*domain.Category, error)

	// Brands. GetBrands returns active brands only.
	GetBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	CreateBrand(ctx context.Context, input domain.NewBrand) (*domain.Brand, error)

	// Products. GetProducts considers active products only and applies the
	// filter predicates with AND semantics. UpdateProduct returns (nil, nil)
	// when the id does not exist. DeleteProduct reports whether a row was
	// actually removed, so a second delete of the same id returns false.
	GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input domain.NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	// Blog posts, newest first (published_at falling back to created_at).
	// A nil published flag lists everything.
	GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, input domain.NewBlogPost) (*domain.BlogPost, error)

	// Testimonials, newest first. A nil approved flag lists everything.
	GetTestimonials(ctx context.Context, approved *bool) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error)
}
