package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/briitney/daybook-backend/internal/apperror"
	"github.com/briitney/daybook-backend/internal/models"
)

// MaxImageBytes caps uploaded images at 5MB, checked before any store call.
const MaxImageBytes = 5 << 20

// EntryStore persists journal entry records.
type EntryStore interface {
	Insert(ctx context.Context, entry *models.Entry) error
	FindByUser(ctx context.Context, userID string) ([]models.Entry, error)
	UpdateFields(ctx context.Context, entryID string, upd models.EntryUpdate) (*models.Entry, error)
}

// ImageStore holds uploaded image blobs and returns a retrievable URL.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// ImageUpload carries an image file extracted from a multipart request.
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
	Size        int64
}

type CreateEntryInput struct {
	Date    string
	Mood    string
	Content string
	UserID  string
	Image   *ImageUpload
}

// UpdateEntryInput carries a partial update; empty fields are left untouched.
type UpdateEntryInput struct {
	Date    string
	Mood    string
	Content string
	Image   *ImageUpload
}

// JournalService validates entry data, assigns identifiers and timestamps,
// and composes the entry and image stores. Both stores are injected; the
// service keeps no package state.
type JournalService struct {
	entries EntryStore
	images  ImageStore
}

func NewJournalService(entries EntryStore, images ImageStore) *JournalService {
	return &JournalService{entries: entries, images: images}
}

// Create validates the input, stores the image first (when present), then
// persists the record referencing it. A record write failure after a
// successful upload leaves an orphaned blob; accepted, see DESIGN.md.
func (s *JournalService) Create(ctx context.Context, in CreateEntryInput) (*models.Entry, error) {
	if err := requireFields(in.Date, in.Mood, in.Content); err != nil {
		return nil, err
	}
	if err := s.validateImage(in.Image); err != nil {
		return nil, err
	}

	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		userID = models.DefaultUserID
	}

	var imageURL *string
	if in.Image != nil {
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.UploadFailed("Failed to upload image"), err)
		}
		imageURL = &url
	}

	now := time.Now().UTC()
	entry := &models.Entry{
		EntryID:   uuid.NewString(),
		UserID:    userID,
		Date:      in.Date,
		Mood:      in.Mood,
		Content:   in.Content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.PersistenceFailed("Failed to create journal entry"), err)
	}
	return entry, nil
}

// List returns every entry owned by userID. No ordering is guaranteed;
// sorting is a presentation concern.
func (s *JournalService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	if strings.TrimSpace(userID) == "" {
		userID = models.DefaultUserID
	}

	entries, err := s.entries.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.PersistenceFailed("Failed to fetch journal entries"), err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// Update replaces the submitted fields of an existing entry and refreshes
// updatedAt. At least one field or a new image is required. A previously
// stored image blob is never deleted when replaced.
func (s *JournalService) Update(ctx context.Context, entryID string, in UpdateEntryInput) (*models.Entry, error) {
	if strings.TrimSpace(entryID) == "" {
		return nil, apperror.ValidationFailed("entryId is required")
	}
	if in.Date == "" && in.Mood == "" && in.Content == "" && in.Image == nil {
		return nil, apperror.ValidationFailed("At least one field must be provided")
	}
	if err := s.validateImage(in.Image); err != nil {
		return nil, err
	}

	upd := models.EntryUpdate{UpdatedAt: time.Now().UTC()}
	if in.Date != "" {
		upd.Date = &in.Date
	}
	if in.Mood != "" {
		upd.Mood = &in.Mood
	}
	if in.Content != "" {
		upd.Content = &in.Content
	}

	if in.Image != nil {
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.UploadFailed("Failed to upload image"), err)
		}
		upd.ImageURL = &url
	}

	entry, err := s.entries.UpdateFields(ctx, entryID, upd)
	if err != nil {
		if isAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperror.PersistenceFailed("Failed to update journal entry"), err)
	}
	return entry, nil
}

func (s *JournalService) validateImage(img *ImageUpload) error {
	if img == nil {
		return nil
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return apperror.ValidationFailed("Only image files are allowed")
	}
	if img.Size > MaxImageBytes {
		return apperror.ValidationFailed("Image must be 5MB or smaller")
	}
	if s.images == nil {
		return apperror.UploadFailed("Image uploads are not available")
	}
	return nil
}

// isAppError reports whether the store already returned a typed error
// (e.g. NotFound) that should pass through unchanged.
func isAppError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}

func requireFields(date, mood, content string) error {
	switch {
	case strings.TrimSpace(date) == "":
		return apperror.ValidationFailed("date is required")
	case strings.TrimSpace(mood) == "":
		return apperror.ValidationFailed("mood is required")
	case strings.TrimSpace(content) == "":
		return apperror.ValidationFailed("content is required")
	}
	return nil
}
