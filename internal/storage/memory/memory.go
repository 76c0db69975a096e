// Package memory implements the storage contract with plain maps. It backs
// local development and tests when no database is around.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

// Store keeps every entity in an id-keyed map, with a parallel slice of ids
// preserving insertion order for list results. Handlers run on concurrent
// goroutines, so all access goes through the mutex.
type Store struct {
	mu sync.RWMutex

	users map[string]domain.User

	categories    map[string]domain.Category
	categoryOrder []string

	brands     map[string]domain.Brand
	brandOrder []string

	products     map[string]domain.Product
	productOrder []string

	posts        map[string]domain.BlogPost
	testimonials map[string]domain.Testimonial
}

var _ storage.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		categories:   make(map[string]domain.Category),
		brands:       make(map[string]domain.Brand),
		products:     make(map[string]domain.Product),
		posts:        make(map[string]domain.BlogPost),
		testimonials: make(map[string]domain.Testimonial),
	}
}

// NewSeeded returns a store pre-populated with demo catalog data.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u := domain.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateCategory(ctx context.Context, input domain.NewCategory) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == input.Slug {
			return nil, storage.ErrDuplicateSlug
		}
	}

	now := time.Now().UTC()
	c := domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    input.IsActive,
		ParentID:    input.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	return &c, nil
}

func (s *Store) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Brand, 0, len(s.brandOrder))
	for _, id := range s.brandOrder {
		if b := s.brands[id]; b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) GetBrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.Slug == slug {
			return &b, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateBrand(ctx context.Context, input domain.NewBrand) (*domain.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.brands {
		if b.Slug == input.Slug {
			return nil, storage.ErrDuplicateSlug
		}
	}

	now := time.Now().UTC()
	b := domain.Brand{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.brands[b.ID] = b
	s.brandOrder = append(s.brandOrder, b.ID)
	return &b, nil
}

func (s *Store) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		p := s.products[id]
		if matchesFilter(p, filter) {
			p.Tags = cloneTags(p.Tags)
			out = append(out, p)
		}
	}

	// Offset before limit, both ignored unless positive.
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []domain.Product{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchesFilter(p domain.Product, f domain.ProductFilter) bool {
	if !p.IsActive {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.BrandID != "" && p.BrandID != f.BrandID {
		return false
	}
	if f.IsNew != nil && p.IsNew != *f.IsNew {
		return false
	}
	if f.IsBestseller != nil && p.IsBestseller != *f.IsBestseller {
		return false
	}
	if f.IsOnSale != nil && p.IsOnSale != *f.IsOnSale {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.products[id]; ok {
		p.Tags = cloneTags(p.Tags)
		return &p, nil
	}
	return nil, nil
}

// cloneTags copies a tag slice so callers never alias stored state.
func cloneTags(tags []string) []string {
	return append([]string(nil), tags...)
}

func (s *Store) CreateProduct(ctx context.Context, input domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p := domain.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		BrandID:       input.BrandID,
		InStock:       input.InStock,
		StockQuantity: input.StockQuantity,
		Rating:        input.Rating,
		Tags:          cloneTags(input.Tags),
		IsNew:         input.IsNew,
		IsBestseller:  input.IsBestseller,
		IsOnSale:      input.IsOnSale,
		Discount:      input.Discount,
		IsActive:      input.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)

	out := p
	out.Tags = cloneTags(p.Tags)
	return &out, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.BrandID != nil {
		p.BrandID = *patch.BrandID
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Tags != nil {
		p.Tags = cloneTags(patch.Tags)
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
	if patch.IsBestseller != nil {
		p.IsBestseller = *patch.IsBestseller
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.Discount != nil {
		p.Discount = *patch.Discount
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	s.products[id] = p

	out := p
	out.Tags = cloneTags(p.Tags)
	return &out, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *Store) GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if published != nil && p.IsPublished != *published {
			continue
		}
		p.Tags = cloneTags(p.Tags)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return postTime(out[i]).After(postTime(out[j]))
	})
	return out, nil
}

// postTime orders posts by publication date, falling back to creation date
// for drafts.
func postTime(p domain.BlogPost) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			p.Tags = cloneTags(p.Tags)
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, input domain.NewBlogPost) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Slug == input.Slug {
			return nil, storage.ErrDuplicateSlug
		}
	}

	now := time.Now().UTC()
	p := domain.BlogPost{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Author:      input.Author,
		PublishedAt: input.PublishedAt,
		Tags:        cloneTags(input.Tags),
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.posts[p.ID] = p

	out := p
	out.Tags = cloneTags(p.Tags)
	return &out, nil
}

func (s *Store) GetTestimonials(ctx context.Context, approved *bool) ([]domain.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		if approved != nil && t.IsApproved != *approved {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t := domain.Testimonial{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Role:       input.Role,
		Location:   input.Location,
		Text:       input.Text,
		Rating:     input.Rating,
		IsApproved: input.IsApproved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.testimonials[t.ID] = t
	return &t, nil
}
