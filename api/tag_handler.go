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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// getAllTags retrieves all tags
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tags", err))
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

// getTag retrieves a single tag by ID
func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}
		h.responder.WriteJSON(w, tag)
	}
}

// createTag creates a new tag
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.CreateTagInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
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

		tag, err := h.tagRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// updateTag applies a partial update to an existing tag
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.UpdateTagInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		input.ID = tagID

		if v, ok := input.Slug.Value(); input.Slug.IsSet() && (!ok || !slugPattern.MatchString(v)) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("slug", "must be a non-empty URL-safe string"))
			return
		}
		if v, ok := input.Name.Value(); input.Name.IsSet() && (!ok || v == "") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("name", "cannot be null or empty"))
			return
		}

		tag, err := h.tagRepo.Update(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tag", err))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag deletes a tag and cascades away its post associations. Unlike
// category and post deletes, a missing tag is a 404, not a no-op.
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tag", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": true,
		})
	}
}
