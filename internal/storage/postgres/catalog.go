package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safsequence/Meow/internal/domain"
)

const categoryColumns = "id, name, slug, description, is_active, parent_id, created_at, updated_at"

func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.ParentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE is_active = TRUE ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categories WHERE slug = $1", slug)
	c, err := scanCategory(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, input domain.NewCategory) (*domain.Category, error) {
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

	_, err := s.pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug, description, is_active, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Slug, c.Description, c.IsActive, c.ParentID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

const brandColumns = "id, name, slug, description, is_active, created_at, updated_at"

func scanBrand(row interface{ Scan(dest ...any) error }) (*domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+brandColumns+" FROM brands WHERE is_active = TRUE ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, *b)
	}
	return brands, rows.Err()
}

func (s *Store) GetBrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+brandColumns+" FROM brands WHERE slug = $1", slug)
	b, err := scanBrand(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return b, nil
}

func (s *Store) CreateBrand(ctx context.Context, input domain.NewBrand) (*domain.Brand, error) {
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

	_, err := s.pool.Exec(ctx,
		`INSERT INTO brands (id, name, slug, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Name, b.Slug, b.Description, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}
