package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safsequence/Meow/internal/domain"
)

// price is NUMERIC in the table but a decimal string in the domain, hence the
// cast in both directions.
const productColumns = `id, name, description, price::text, image_url, category_id, brand_id,
	in_stock, stock_quantity, rating, tags, is_new, is_bestseller, is_on_sale,
	discount, is_active, created_at, updated_at`

// likeEscaper neutralizes LIKE metacharacters so a search term matches as a
// literal substring. Backslash is Postgres's default ESCAPE character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID,
		&p.BrandID, &p.InStock, &p.StockQuantity, &p.Rating, &p.Tags, &p.IsNew,
		&p.IsBestseller, &p.IsOnSale, &p.Discount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	where := []string{"is_active = TRUE"}
	args := []any{}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.CategoryID != "" {
		add("category_id = $%d", filter.CategoryID)
	}
	if filter.BrandID != "" {
		add("brand_id = $%d", filter.BrandID)
	}
	if filter.IsNew != nil {
		add("is_new = $%d", *filter.IsNew)
	}
	if filter.IsBestseller != nil {
		add("is_bestseller = $%d", *filter.IsBestseller)
	}
	if filter.IsOnSale != nil {
		add("is_on_sale = $%d", *filter.IsOnSale)
	}
	if filter.Search != "" {
		args = append(args, searchPattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := "SELECT " + productColumns + " FROM products WHERE " +
		strings.Join(where, " AND ") + " ORDER BY created_at, id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, input domain.NewProduct) (*domain.Product, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO products (id, name, description, price, image_url, category_id, brand_id,
			in_stock, stock_quantity, rating, tags, is_new, is_bestseller, is_on_sale,
			discount, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING `+productColumns,
		id, input.Name, input.Description, input.Price, input.ImageURL, input.CategoryID,
		input.BrandID, input.InStock, input.StockQuantity, input.Rating, tags, input.IsNew,
		input.IsBestseller, input.IsOnSale, input.Discount, input.IsActive, now, now)

	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	set := []string{}
	args := []any{}

	add := func(clause string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf(clause, len(args)))
	}

	if patch.Name != nil {
		add("name = $%d", *patch.Name)
	}
	if patch.Description != nil {
		add("description = $%d", *patch.Description)
	}
	if patch.Price != nil {
		add("price = $%d::numeric", *patch.Price)
	}
	if patch.ImageURL != nil {
		add("image_url = $%d", *patch.ImageURL)
	}
	if patch.CategoryID != nil {
		add("category_id = $%d", *patch.CategoryID)
	}
	if patch.BrandID != nil {
		add("brand_id = $%d", *patch.BrandID)
	}
	if patch.InStock != nil {
		add("in_stock = $%d", *patch.InStock)
	}
	if patch.StockQuantity != nil {
		add("stock_quantity = $%d", *patch.StockQuantity)
	}
	if patch.Rating != nil {
		add("rating = $%d", *patch.Rating)
	}
	if patch.Tags != nil {
		add("tags = $%d", patch.Tags)
	}
	if patch.IsNew != nil {
		add("is_new = $%d", *patch.IsNew)
	}
	if patch.IsBestseller != nil {
		add("is_bestseller = $%d", *patch.IsBestseller)
	}
	if patch.IsOnSale != nil {
		add("is_on_sale = $%d", *patch.IsOnSale)
	}
	if patch.Discount != nil {
		add("discount = $%d", *patch.Discount)
	}
	if patch.IsActive != nil {
		add("is_active = $%d", *patch.IsActive)
	}

	add("updated_at = $%d", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns)

	row := s.pool.QueryRow(ctx, query, args...)
	p, err := scanProduct(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
