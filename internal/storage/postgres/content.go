package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safsequence/Meow/internal/domain"
)

const postColumns = `id, title, slug, excerpt, content, author, published_at, tags,
	is_published, created_at, updated_at`

func scanPost(row interface{ Scan(dest ...any) error }) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author,
		&p.PublishedAt, &p.Tags, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetBlogPosts(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	query := "SELECT " + postColumns + " FROM blog_posts"
	args := []any{}
	if published != nil {
		query += " WHERE is_published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY COALESCE(published_at, created_at) DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.BlogPost{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+postColumns+" FROM blog_posts WHERE slug = $1", slug)
	p, err := scanPost(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}
	return p, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, input domain.NewBlogPost) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	p := domain.BlogPost{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Author:      input.Author,
		PublishedAt: input.PublishedAt,
		Tags:        input.Tags,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, author, published_at,
			tags, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Author, p.PublishedAt,
		p.Tags, p.IsPublished, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

const testimonialColumns = "id, name, role, location, text, rating, is_approved, created_at, updated_at"

func scanTestimonial(row interface{ Scan(dest ...any) error }) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Location, &t.Text, &t.Rating,
		&t.IsApproved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTestimonials(ctx context.Context, approved *bool) ([]domain.Testimonial, error) {
	query := "SELECT " + testimonialColumns + " FROM testimonials"
	args := []any{}
	if approved != nil {
		query += " WHERE is_approved = $1"
		args = append(args, *approved)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []domain.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, *t)
	}
	return testimonials, rows.Err()
}

func (s *Store) CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error) {
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

	_, err := s.pool.Exec(ctx,
		`INSERT INTO testimonials (id, name, role, location, text, rating, is_approved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Name, t.Role, t.Location, t.Text, t.Rating, t.IsApproved, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return &t, nil
}
