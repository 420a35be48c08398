package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/briitney/daybook-backend/internal/apperror"
	"github.com/briitney/daybook-backend/internal/models"
	"github.com/briitney/daybook-backend/internal/services"
)

// maxFormBytes caps the whole multipart body at 10MB; the image part itself
// is capped at 5MB by the service.
const maxFormBytes = 10 << 20

type entryResponse struct {
	Success bool          `json:"success"`
	Entry   *models.Entry `json:"entry"`
}

type entriesResponse struct {
	Entries []models.Entry `json:"entries"`
}

// Journal exposes the journal entry endpoints over the injected service.
type Journal struct {
	service *services.JournalService
}

func NewJournal(service *services.JournalService) *Journal {
	return &Journal{service: service}
}

// Create handles POST /api/journal/entries.
func (h *Journal) Create(w http.ResponseWriter, r *http.Request) {
	in, img, err := parseEntryForm(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Create(r.Context(), services.CreateEntryInput{
		Date:    in.date,
		Mood:    in.mood,
		Content: in.content,
		UserID:  in.userID,
		Image:   img,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entryResponse{Success: true, Entry: entry})
}

// List handles GET /api/journal/entries?userId=<id>. The result is unsorted;
// ordering is the frontend's concern.
func (h *Journal) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entriesResponse{Entries: entries})
}

// Update handles PUT /api/journal/entries/{entryID}.
func (h *Journal) Update(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	in, img, err := parseEntryForm(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Update(r.Context(), entryID, services.UpdateEntryInput{
		Date:    in.date,
		Mood:    in.mood,
		Content: in.content,
		Image:   img,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entryResponse{Success: true, Entry: entry})
}

type entryForm struct {
	date    string
	mood    string
	content string
	userID  string
}

// parseEntryForm reads the multipart fields shared by create and update and
// extracts the optional image part.
func parseEntryForm(w http.ResponseWriter, r *http.Request) (entryForm, *services.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		return entryForm{}, nil, apperror.ValidationFailed("Failed to parse form data")
	}

	form := entryForm{
		date:    r.FormValue("date"),
		mood:    r.FormValue("mood"),
		content: r.FormValue("content"),
		userID:  r.FormValue("userId"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil, nil
		}
		return entryForm{}, nil, apperror.ValidationFailed("Failed to read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return entryForm{}, nil, apperror.ValidationFailed("Failed to read image file")
	}

	return form, &services.ImageUpload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
