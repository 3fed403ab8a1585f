package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/enum"
	mw "github.com/cyclebees/estimates-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const maxNoteLen = 1000

// NoteStore defines the database methods needed by note handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type NoteStore interface {
	ListRequestNotes(ctx context.Context, requestID uuid.UUID) ([]database.RequestNote, error)
	CreateRequestNote(ctx context.Context, arg database.CreateRequestNoteParams) (database.RequestNote, error)
	UpdateRequestNote(ctx context.Context, arg database.UpdateRequestNoteParams) (database.RequestNote, error)
	DeleteRequestNote(ctx context.Context, arg database.DeleteRequestNoteParams) (int64, error)
}

// NoteHandler handles internal staff notes on a request. Notes are editable
// whatever the request status.
type NoteHandler struct {
	store NoteStore
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(store NoteStore) *NoteHandler {
	return &NoteHandler{store: store}
}

// RegisterRoutes registers note endpoints on the given Chi router.
// Expected to be mounted at /requests/{id}/notes.
func (h *NoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{noteId}", h.Update)
	r.Delete("/{noteId}", h.Delete)
}

// --- Request / Response types ---

type noteRequest struct {
	NoteText string `json:"note_text"`
}

type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	NoteText  string    `json:"note_text"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(n database.RequestNote) noteResponse {
	return noteResponse{
		ID:        n.ID,
		RequestID: n.RequestID,
		NoteText:  n.NoteText,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// --- Helpers ---

func validateNoteText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n > 0 && n <= maxNoteLen
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// --- Handlers ---

// List handles GET /requests/{id}/notes, newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	notes, err := h.store.ListRequestNotes(r.Context(), requestID)
	if err != nil {
		writeInternalError(w, "list notes", err)
		return
	}

	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = toNoteResponse(n)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /requests/{id}/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	text, valid := validateNoteText(req.NoteText)
	if !valid {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "note_text must be 1-1000 characters"})
		return
	}

	note, err := h.store.CreateRequestNote(r.Context(), database.CreateRequestNoteParams{
		RequestID: requestID,
		NoteText:  text,
		CreatedBy: mw.AdminUsername(r.Context(), enum.NoteAuthorAdmin),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "request not found"})
			return
		}
		writeInternalError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Update handles PUT /requests/{id}/notes/{noteId}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}
	noteID, ok := parseUUIDParam(w, r, "noteId", "note ID")
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	text, valid := validateNoteText(req.NoteText)
	if !valid {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "note_text must be 1-1000 characters"})
		return
	}

	note, err := h.store.UpdateRequestNote(r.Context(), database.UpdateRequestNoteParams{
		ID:        noteID,
		RequestID: requestID,
		NoteText:  text,
	})
	if err != nil {
		writeNotFoundOrInternal(w, "update note", "note not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /requests/{id}/notes/{noteId}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}
	noteID, ok := parseUUIDParam(w, r, "noteId", "note ID")
	if !ok {
		return
	}

	n, err := h.store.DeleteRequestNote(r.Context(), database.DeleteRequestNoteParams{
		ID:        noteID,
		RequestID: requestID,
	})
	if err != nil {
		writeInternalError(w, "delete note", err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "note deleted"})
}
