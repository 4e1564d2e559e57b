package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quillstack/blog-backend/database"
	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// BlogPostCollection represents a page of blog posts
type BlogPostCollection struct {
	BlogPosts []*models.BlogPost `json:"blogPosts"`
	Total     int                `json:"total"`
}

// listPublished serves the public feed: published posts only, filterable by
// category and tag, newest first.
func (h blogPostHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := filterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		published := true
		filter.Published = &published

		posts, err := h.blogPostRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blog_posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: posts, Total: len(posts)})
	}
}

// listAll serves the admin feed: every post regardless of published state,
// with an optional published override in the query string.
func (h blogPostHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := filterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if raw := r.URL.Query().Get("published"); raw != "" {
			published, parseErr := strconv.ParseBool(raw)
			if parseErr != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("published", "must be a boolean"))
				return
			}
			filter.Published = &published
		}

		posts, err := h.blogPostRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blog_posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: posts, Total: len(posts)})
	}
}

// getPublished resolves a post by numeric id or by slug, published posts only.
func (h blogPostHandler) getPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "postRef")
		if ref == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing post reference"))
			return
		}

		// A numeric ref is tried as an id and as a slug at once, so posts
		// with all-digit slugs stay reachable.
		lookup := database.PostLookup{Slug: &ref}
		if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
			postID := uint(id)
			lookup.ID = &postID
		}

		post, err := h.blogPostRepo.Find(lookup)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog_post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getAny is the admin single-post accessor; it ignores the published flag.
func (h blogPostHandler) getAny() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.FindAnyByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog_post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost creates a new blog post with its initial tag set
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.CreateBlogPostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validatePostCreate(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updateBlogPost applies a partial update to an existing blog post
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.UpdateBlogPostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		input.ID = postID

		if err := validatePostUpdate(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.Update(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deleteBlogPost deletes a blog post by ID. Deleting a post that does not
// exist reports deleted=false rather than failing.
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.blogPostRepo.Delete(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": deleted,
		})
	}
}

// validatePostCreate checks the required fields and the slug shape before the
// repository is touched.
func validatePostCreate(input models.CreateBlogPostInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"content", input.Content},
		{"author", input.Author},
	}
	for _, field := range required {
		if field.value == "" {
			return errs.NewMissingRequiredFieldError(field.name)
		}
	}
	if !slugPattern.MatchString(input.Slug) {
		return errs.NewInvalidFieldError("slug", "must be a non-empty URL-safe string")
	}
	return nil
}

// validatePostUpdate rejects nulls on fields whose columns are non-nullable.
func validatePostUpdate(input models.UpdateBlogPostInput) error {
	required := map[string]models.Optional[string]{
		"slug":    input.Slug,
		"title":   input.Title,
		"content": input.Content,
		"author":  input.Author,
	}
	for field, opt := range required {
		if !opt.IsSet() {
			continue
		}
		v, ok := opt.Value()
		if !ok || v == "" {
			return errs.NewInvalidFieldError(field, "cannot be null or empty")
		}
	}
	if input.Published.IsSet() {
		if _, ok := input.Published.Value(); !ok {
			return errs.NewInvalidFieldError("published", "cannot be null")
		}
	}
	if v, ok := input.Slug.Value(); ok && !slugPattern.MatchString(v) {
		return errs.NewInvalidFieldError("slug", "must be a non-empty URL-safe string")
	}
	return nil
}

// filterFromQuery translates listing query parameters into a PostFilter.
func filterFromQuery(r *http.Request) (database.PostFilter, error) {
	var filter database.PostFilter
	query := r.URL.Query()

	if raw := query.Get("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errs.NewInvalidFieldError("category_id", "must be a positive integer")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if raw := query.Get("tag_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errs.NewInvalidFieldError("tag_id", "must be a positive integer")
		}
		tagID := uint(id)
		filter.TagID = &tagID
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, errs.NewInvalidFieldError("limit", "must be a positive integer")
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, errs.NewInvalidFieldError("offset", "must be a non-negative integer")
		}
		filter.Offset = offset
	}
	return filter, nil
}

// pathID parses a numeric id path parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
