package domain

import "time"

type Testimonial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Location   string    `json:"location"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NewTestimonial struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	Location   string `json:"location"`
	Text       string `json:"text" binding:"required"`
	Rating     int    `json:"rating" binding:"gte=1,lte=5"`
	IsApproved bool   `json:"is_approved"`
}
