package memory

import (
	"context"
	"time"

	"github.com/safsequence/Meow/internal/domain"
)

// seed loads the demo catalog used when the backend runs without a database.
func (s *Store) seed() {
	ctx := context.Background()

	catFood, _ := s.CreateCategory(ctx, domain.NewCategory{
		Name:        "Cat Food",
		Slug:        "cat-food",
		Description: "Dry and wet food for cats of every age",
		IsActive:    true,
	})
	dogFood, _ := s.CreateCategory(ctx, domain.NewCategory{
		Name:        "Dog Food",
		Slug:        "dog-food",
		Description: "Kibble, treats and more for dogs",
		IsActive:    true,
	})

	pawPrime, _ := s.CreateBrand(ctx, domain.NewBrand{
		Name:        "PawPrime",
		Slug:        "pawprime",
		Description: "Premium pet nutrition",
		IsActive:    true,
	})

	s.CreateProduct(ctx, domain.NewProduct{
		Name:          "Premium Dry Cat Food",
		Description:   "Complete nutrition for adult cats",
		Price:         "18.50",
		ImageURL:      "https://images.unsplash.com/photo-1589924691995-400dc9ecc119?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:    catFood.ID,
		BrandID:       pawPrime.ID,
		InStock:       true,
		StockQuantity: 50,
		Rating:        4.8,
		Tags:          []string{"cat", "dry-food"},
		IsBestseller:  true,
		IsActive:      true,
	})
	s.CreateProduct(ctx, domain.NewProduct{
		Name:          "Premium Dog Kibble",
		Description:   "Grain-free kibble for active dogs",
		Price:         "21.00",
		ImageURL:      "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:    dogFood.ID,
		BrandID:       pawPrime.ID,
		InStock:       true,
		StockQuantity: 30,
		Rating:        4.7,
		Tags:          []string{"dog", "dry-food"},
		IsNew:         true,
		IsActive:      true,
	})

	published := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s.CreateBlogPost(ctx, domain.NewBlogPost{
		Title:       "Choosing the Right Food for Your Cat",
		Slug:        "choosing-the-right-food-for-your-cat",
		Excerpt:     "What to look for on the label before you buy.",
		Content:     "Protein first, fillers last. Here is how to read a cat food label...",
		Author:      "Meow Team",
		PublishedAt: &published,
		Tags:        []string{"cats", "nutrition"},
		IsPublished: true,
	})

	s.CreateTestimonial(ctx, domain.NewTestimonial{
		Name:       "Sarah M.",
		Role:       "Cat owner",
		Location:   "Portland, OR",
		Text:       "My picky tabby finally finishes her bowl. Delivery was quick too.",
		Rating:     5,
		IsApproved: true,
	})
}
