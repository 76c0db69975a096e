// Package handlers wires the HTTP surface. Every handler holds a
// storage.Store and does nothing beyond calling one store method and
// serializing the result.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/auth"
	"github.com/safsequence/Meow/internal/storage"
)

// NewRouter assembles the gin engine. Admin routes are gated on a Supabase
// access token carrying role "admin" in its user metadata.
func NewRouter(store storage.Store, authClient *auth.Client, jwtSecret string) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	products := NewProductHandler(store)
	categories := NewCategoryHandler(store)
	brands := NewBrandHandler(store)
	blog := NewBlogHandler(store)
	testimonials := NewTestimonialHandler(store)
	authHandler := NewAuthHandler(authClient)

	adminOnly := auth.RequireRole(jwtSecret, "admin")

	api := router.Group("/api")

	api.GET("/products", products.List)
	api.GET("/products/:id", products.Get)
	api.POST("/products", adminOnly, products.Create)
	api.PUT("/products/:id", adminOnly, products.Update)
	api.DELETE("/products/:id", adminOnly, products.Delete)

	api.GET("/categories", categories.List)
	api.POST("/categories", adminOnly, categories.Create)

	api.GET("/brands", brands.List)
	api.POST("/brands", adminOnly, brands.Create)

	api.GET("/blog", blog.List)
	api.GET("/blog/:slug", blog.Get)
	api.POST("/blog", adminOnly, blog.Create)
	api.GET("/admin/blog", adminOnly, blog.ListAll)

	api.GET("/testimonials", testimonials.List)
	api.POST("/testimonials", testimonials.Create)
	api.GET("/admin/testimonials", adminOnly, testimonials.ListAll)

	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.POST("/auth/signout", authHandler.SignOut)
	api.GET("/auth/user", authHandler.User)

	api.GET("/placeholder/:width/:height", Placeholder)

	return router
}
