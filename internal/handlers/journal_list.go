package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/middlewares"
	"github.com/sbilibin2017/voyagehub/internal/models"
)

// JournalLister defines the interface that the service must implement.
type JournalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.JournalDB, error)
}

// JournalErrorResponse represents an error response for journal operations
// swagger:model JournalErrorResponse
type JournalErrorResponse struct {
	// Error message
	// default: Journal not found
	Error string `json:"error"`
}

// NewListJournalsHandler returns an HTTP handler listing the
// authenticated user's journal entries, newest first.
// @Summary List journal entries
// @Description Returns all journal entries owned by the authenticated user, ordered by creation time descending
// @Tags journals
// @Produce json
// @Success 200 {array} models.JournalDB "Journal entries"
// @Failure 401 {object} handlers.JournalErrorResponse "Missing token"
// @Failure 403 {object} handlers.JournalErrorResponse "Invalid token"
// @Failure 500 {object} handlers.JournalErrorResponse "Internal server error"
// @Router /api/journals [get]
// @Security BearerAuth
func NewListJournalsHandler(svc JournalLister) http.HandlerFunc {
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

		journals, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list journals", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(JournalErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(journals)
	}
}
