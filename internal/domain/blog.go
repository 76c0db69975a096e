package domain

import "time"

type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type NewBlogPost struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" binding:"required"`
	Author      string     `json:"author"`
	PublishedAt *time.Time `json:"published_at"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"is_published"`
}
