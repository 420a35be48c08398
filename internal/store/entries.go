// Package store implements entry persistence on top of MongoDB.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/briitney/daybook-backend/internal/apperror"
	"github.com/briitney/daybook-backend/internal/models"
)

const opTimeout = 5 * time.Second

// Entries persists journal entries in a single MongoDB collection, one
// document per entry keyed by entry_id.
type Entries struct {
	coll *mongo.Collection
}

func NewEntries(coll *mongo.Collection) *Entries {
	return &Entries{coll: coll}
}

func (s *Entries) Insert(ctx context.Context, entry *models.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.coll.InsertOne(ctx, entry)
	return err
}

// FindByUser returns all entries owned by userID, exact match. The result is
// never nil; callers serialize it as an empty array when no entries exist.
func (s *Entries) FindByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateFields applies a partial update to the entry with entryID and returns
// the updated document. No upsert: a missing entryID is a NotFound error,
// never a silently created partial record.
func (s *Entries) UpdateFields(ctx context.Context, entryID string, upd models.EntryUpdate) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Mood != nil {
		set["mood"] = *upd.Mood
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := s.coll.FindOneAndUpdate(ctx, bson.M{"entry_id": entryID}, bson.M{"$set": set}, opts)

	var entry models.Entry
	if err := result.Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("journal entry", entryID)
		}
		return nil, err
	}
	return &entry, nil
}
