package domain

import "time"

// Product is a catalog item. Price is a decimal string ("18.50") so no
// precision is lost between the API and the database NUMERIC column.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	ImageURL      string    `json:"image_url"`
	CategoryID    string    `json:"category_id"`
	BrandID       string    `json:"brand_id"`
	InStock       bool      `json:"in_stock"`
	StockQuantity int       `json:"stock_quantity"`
	Rating        float64   `json:"rating"`
	Tags          []string  `json:"tags"`
	IsNew         bool      `json:"is_new"`
	IsBestseller  bool      `json:"is_bestseller"`
	IsOnSale      bool      `json:"is_on_sale"`
	Discount      int       `json:"discount"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NewProduct struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         string   `json:"price" binding:"required"`
	ImageURL      string   `json:"image_url"`
	CategoryID    string   `json:"category_id" binding:"required"`
	BrandID       string   `json:"brand_id"`
	InStock       bool     `json:"in_stock"`
	StockQuantity int      `json:"stock_quantity" binding:"gte=0"`
	Rating        float64  `json:"rating" binding:"gte=0,lte=5"`
	Tags          []string `json:"tags"`
	IsNew         bool     `json:"is_new"`
	IsBestseller  bool     `json:"is_bestseller"`
	IsOnSale      bool     `json:"is_on_sale"`
	Discount      int      `json:"discount" binding:"gte=0,lte=100"`
	IsActive      bool     `json:"is_active"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *string  `json:"price"`
	ImageURL      *string  `json:"image_url"`
	CategoryID    *string  `json:"category_id"`
	BrandID       *string  `json:"brand_id"`
	InStock       *bool    `json:"in_stock"`
	StockQuantity *int     `json:"stock_quantity"`
	Rating        *float64 `json:"rating"`
	Tags          []string `json:"tags"`
	IsNew         *bool    `json:"is_new"`
	IsBestseller  *bool    `json:"is_bestseller"`
	IsOnSale      *bool    `json:"is_on_sale"`
	Discount      *int     `json:"discount"`
	IsActive      *bool    `json:"is_active"`
}

// ProductFilter narrows GetProducts results. All set predicates are combined
// with AND; only active products are considered regardless of the filter.
//
// The boolean flags are tri-state: a nil pointer means "do not filter",
// which is not the same as filtering for false.
type ProductFilter struct {
	// CategoryID and BrandID match exactly when non-empty.
	CategoryID string
	BrandID    string
	// IsNew, IsBestseller and IsOnSale filter by exact flag value when set.
	IsNew        *bool
	IsBestseller *bool
	IsOnSale     *bool
	// Search matches name or description, case-insensitively, as a substring.
	Search string
	// Offset and Limit paginate the result. Both are ignored unless > 0, so
	// a zero limit means "no limit" rather than "empty page".
	Offset int
	Limit  int
}
