package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read-only feed and the admin CRUD surface.
// The two groups share the repositories but never a handler: the public
// accessors are published-only by construction, not by flag.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	// Public feed
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/posts", handlers.blogPostHandler.listPublished())
		r.Get("/post/{postRef}", handlers.blogPostHandler.getPublished())
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/category/{categoryID}", handlers.categoryHandler.getCategory())
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/tag/{tagID}", handlers.tagHandler.getTag())
	})

	// Admin surface
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/posts", handlers.blogPostHandler.listAll())
		r.Get("/post/{blogPostID}", handlers.blogPostHandler.getAny())
		r.Post("/post", handlers.blogPostHandler.createBlogPost())
		r.Put("/post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Post("/tag", handlers.tagHandler.createTag())
		r.Put("/tag/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())
	})
}
