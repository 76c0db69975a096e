//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/safsequence/Meow/internal/domain"
	"github.com/safsequence/Meow/internal/storage"
)

func boolPtr(b bool) *bool { return &b }

// setupStore starts a disposable PostgreSQL container and returns a connected
// store with the schema applied.
func setupStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("meow_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Connect(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.InitSchema(ctx))
	return store
}

func TestPostgresStore_ProductLifecycle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, domain.NewProduct{
		Name:          "Premium Dry Cat Food",
		Description:   "Complete nutrition for adult cats",
		Price:         "18.50",
		CategoryID:    "cat-food",
		BrandID:       "pawprime",
		InStock:       true,
		StockQuantity: 50,
		Rating:        4.8,
		Tags:          []string{"cat", "dry-food"},
		IsBestseller:  true,
		IsActive:      true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "18.50", created.Price)
	assert.Equal(t, []string{"cat", "dry-food"}, created.Tags)

	got, err := store.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Name, got.Name)

	price := "16.99"
	onSale := true
	updated, err := store.UpdateProduct(ctx, created.ID, domain.ProductPatch{
		Price:    &price,
		IsOnSale: &onSale,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "16.99", updated.Price)
	assert.True(t, updated.IsOnSale)
	assert.Equal(t, created.Name, updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	missing, err := store.UpdateProduct(ctx, "no-such-id", domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := store.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgresStore_ProductFilters(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.CreateProduct(ctx, domain.NewProduct{
		Name: "Premium Dry Cat Food", Price: "18.50", CategoryID: "cat-food",
		IsBestseller: true, IsActive: true,
	})
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, domain.NewProduct{
		Name: "Premium Dog Kibble", Price: "21.00", CategoryID: "dog-food", IsActive: true,
	})
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, domain.NewProduct{
		Name: "Retired Cat Bed", Price: "30.00", CategoryID: "cat-food",
	})
	require.NoError(t, err)

	results, err := store.GetProducts(ctx, domain.ProductFilter{Search: "cat"})
	require.NoError(t, err)
	require.Len(t, results, 1, "inactive products must not match")
	assert.Equal(t, "Premium Dry Cat Food", results[0].Name)

	results, err = store.GetProducts(ctx, domain.ProductFilter{IsBestseller: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Premium Dog Kibble", results[0].Name)

	results, err = store.GetProducts(ctx, domain.ProductFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Premium Dog Kibble", results[0].Name)
}

func TestPostgresStore_SearchMatchesLiterally(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.CreateProduct(ctx, domain.NewProduct{
		Name: "Chow 100% Natural", Price: "12.00", CategoryID: "cat-food", IsActive: true,
	})
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, domain.NewProduct{
		Name: "Chow 1000 Calorie", Price: "14.00", CategoryID: "cat-food", IsActive: true,
	})
	require.NoError(t, err)

	// "%" and "_" in the search term are literal characters, not wildcards.
	results, err := store.GetProducts(ctx, domain.ProductFilter{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chow 100% Natural", results[0].Name)

	results, err = store.GetProducts(ctx, domain.ProductFilter{Search: "100_"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPostgresStore_Categories(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	active, err := store.CreateCategory(ctx, domain.NewCategory{
		Name: "Cat Food", Slug: "cat-food", IsActive: true,
	})
	require.NoError(t, err)
	_, err = store.CreateCategory(ctx, domain.NewCategory{
		Name: "Discontinued", Slug: "discontinued",
	})
	require.NoError(t, err)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, active.ID, categories[0].ID)

	bySlug, err := store.GetCategoryBySlug(ctx, "cat-food")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, active.ID, bySlug.ID)

	missing, err := store.GetCategoryBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = store.CreateCategory(ctx, domain.NewCategory{
		Name: "Cat Food Again", Slug: "cat-food", IsActive: true,
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateSlug)
}

func TestPostgresStore_BlogOrdering(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	january := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := store.CreateBlogPost(ctx, domain.NewBlogPost{
		Title: "January Post", Slug: "january", Content: "...",
		PublishedAt: &january, IsPublished: true,
	})
	require.NoError(t, err)
	_, err = store.CreateBlogPost(ctx, domain.NewBlogPost{
		Title: "March Post", Slug: "march", Content: "...",
		PublishedAt: &march, IsPublished: true,
	})
	require.NoError(t, err)

	posts, err := store.GetBlogPosts(ctx, boolPtr(true))
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "March Post", posts[0].Title)
}

func TestPostgresStore_UsersAndTestimonials(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	u, err := store.CreateUser(ctx, domain.NewUser{
		Username: "whiskers", Email: "whiskers@example.com", Password: "secret", Role: "admin",
	})
	require.NoError(t, err)

	byEmail, err := store.GetUserByEmail(ctx, "whiskers@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = store.CreateTestimonial(ctx, domain.NewTestimonial{
		Name: "Sarah", Text: "Great shop", Rating: 5, IsApproved: true,
	})
	require.NoError(t, err)
	_, err = store.CreateTestimonial(ctx, domain.NewTestimonial{
		Name: "Pending Pete", Text: "Waiting", Rating: 4,
	})
	require.NoError(t, err)

	approved, err := store.GetTestimonials(ctx, boolPtr(true))
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "Sarah", approved[0].Name)
}
