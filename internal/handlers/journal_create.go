package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/middlewares"
	"github.com/sbilibin2017/voyagehub/internal/models"
	"github.com/sbilibin2017/voyagehub/internal/services"
)

// JournalCreator defines the interface that the service must implement.
type JournalCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, content, location string, images []string) (*models.JournalDB, error)
}

// CreateJournalRequest represents the JSON body for creating a journal entry.
// Any owner field in the body is ignored; the owner always comes from
// the verified token.
// swagger:model CreateJournalRequest
type CreateJournalRequest struct {
	// Title
	// required: true
	// default: Day 1
	Title string `json:"title"`

	// Content
	// required: true
	// default: Arrived in Lisbon
	Content string `json:"content"`

	// Location
	// default: Lisbon, Portugal
	Location string `json:"location"`

	// Image references
	Images []string `json:"images"`
}

// NewCreateJournalHandler returns an HTTP handler creating a journal
// entry owned by the authenticated user.
// @Summary Create a journal entry
// @Description Creates a journal entry. Title and content are required. The entry date is stamped at creation.
// @Tags journals
// @Accept json
// @Produce json
// @Param createJournalRequest body handlers.CreateJournalRequest true "Journal entry"
// @Success 201 {object} models.JournalDB "Created entry"
// @Failure 400 {object} handlers.JournalErrorResponse "Missing title or content / invalid request"
// @Failure 401 {object} handlers.JournalErrorResponse "Missing token"
// @Failure 403 {object} handlers.JournalErrorResponse "Invalid token"
// @Failure 500 {object} handlers.JournalErrorResponse "Internal server error"
// @Router /api/journals [post]
// @Security BearerAuth
func NewCreateJournalHandler(svc JournalCreator) http.HandlerFunc {
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

		var req CreateJournalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JournalErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		journal, err := svc.Create(ctx, claims.UserID, req.Title, req.Content, req.Location, req.Images)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTitleAndContentRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Title and content are required",
				})
			default:
				logger.Log.Errorw("failed to create journal", "userID", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JournalErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(journal)
	}
}
