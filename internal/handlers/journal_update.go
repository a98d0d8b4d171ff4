package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/middlewares"
	"github.com/sbilibin2017/voyagehub/internal/models"
	"github.com/sbilibin2017/voyagehub/internal/services"
)

// JournalUpdater defines the interface that the service must implement.
type JournalUpdater interface {
	Update(ctx context.Context, userID, journalID uuid.UUID, upd models.JournalUpdate) (*models.JournalDB, error)
}

// NewUpdateJournalHandler returns an HTTP handler applying a partial
// update to an entry owned by the authenticated user. An entry owned by
// another user resolves as not found.
// @Summary Update a journal entry
// @Description Overwrites only the supplied fields. The owner is immutable.
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path string true "Journal entry id"
// @Param updateJournalRequest body models.JournalUpdate true "Fields to update"
// @Success 200 {object} models.JournalDB "Updated entry"
// @Failure 400 {object} handlers.JournalErrorResponse "Invalid request"
// @Failure 401 {object} handlers.JournalErrorResponse "Missing token"
// @Failure 403 {object} handlers.JournalErrorResponse "Invalid token"
// @Failure 404 {object} handlers.JournalErrorResponse "Journal not found"
// @Failure 500 {object} handlers.JournalErrorResponse "Internal server error"
// @Router /api/journals/{journalID} [put]
// @Security BearerAuth
func NewUpdateJournalHandler(svc JournalUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(JournalErrorResponse{
				Error: "Access token required",
			})
			return
		}

		journalID, err := uuid.Parse(chi.URLParam(r, "journalID"))
		if err != nil {
			// An unparseable id cannot name an existing entry.
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(JournalErrorResponse{
				Error: "Journal not found",
			})
			return
		}

		var upd models.JournalUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JournalErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		journal, err := svc.Update(ctx, claims.UserID, journalID, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJournalNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Journal not found",
				})
			case errors.Is(err, services.ErrTitleAndContentRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Title and content are required",
				})
			default:
				logger.Log.Errorw("failed to update journal", "userID", claims.UserID, "journalID", journalID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(journal)
	}
}
