package api

import (
	"github.com/quillstack/blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo()),
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		tagHandler:      newTagHandler(database.TagRepo()),
	}
}
