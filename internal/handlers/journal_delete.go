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
	"github.com/sbilibin2017/voyagehub/internal/services"
)

// JournalDeleter defines the interface that the service must implement.
type JournalDeleter interface {
	Delete(ctx context.Context, userID, journalID uuid.UUID) error
}

// DeleteJournalResponse represents a successful deletion response
// swagger:model DeleteJournalResponse
type DeleteJournalResponse struct {
	// Success message
	// default: Journal deleted successfully
	Message string `json:"message"`
}

// NewDeleteJournalHandler returns an HTTP handler deleting an entry
// owned by the authenticated user. An entry owned by another user
// resolves as not found.
// @Summary Delete a journal entry
// @Description Deletes the entry matching both the id and the authenticated owner
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal entry id"
// @Success 200 {object} handlers.DeleteJournalResponse "Entry deleted"
// @Failure 401 {object} handlers.JournalErrorResponse "Missing token"
// @Failure 403 {object} handlers.JournalErrorResponse "Invalid token"
// @Failure 404 {object} handlers.JournalErrorResponse "Journal not found"
// @Failure 500 {object} handlers.JournalErrorResponse "Internal server error"
// @Router /api/journals/{journalID} [delete]
// @Security BearerAuth
func NewDeleteJournalHandler(svc JournalDeleter) http.HandlerFunc {
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

		if err := svc.Delete(ctx, claims.UserID, journalID); err != nil {
			switch {
			case errors.Is(err, services.ErrJournalNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Journal not found",
				})
			default:
				logger.Log.Errorw("failed to delete journal", "userID", claims.UserID, "journalID", journalID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteJournalResponse{
			Message: "Journal deleted successfully",
		})
	}
}
