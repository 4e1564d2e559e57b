package api

import (
	"encoding/json"
	"net/http"

	"github.com/quillstack/blog-backend/database"
	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// getAllCategories retrieves all categories
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

// getCategory retrieves a single category by ID
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := pathID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

// createCategory creates a new category
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.CreateCategoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if input.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if !slugPattern.MatchString(input.Slug) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("slug", "must be a non-empty URL-safe string"))
			return
		}

		category, err := h.categoryRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateCategory applies a partial update to an existing category
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := pathID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.UpdateCategoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		input.ID = categoryID

		if v, ok := input.Slug.Value(); input.Slug.IsSet() && (!ok || !slugPattern.MatchString(v)) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("slug", "must be a non-empty URL-safe string"))
			return
		}
		if v, ok := input.Name.Value(); input.Name.IsSet() && (!ok || v == "") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("name", "cannot be null or empty"))
			return
		}

		category, err := h.categoryRepo.Update(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory deletes a category by ID. Posts keep their category_id; the
// reference dangles and readers treat it as uncategorized.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := pathID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.categoryRepo.Delete(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": deleted,
		})
	}
}
