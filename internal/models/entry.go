package models

import "time"

// DefaultUserID is used when a request carries no userId. There is no real
// multi-tenant isolation; the owner is whatever the client claims.
const DefaultUserID = "anonymous"

// Entry represents a single journal entry. JSON field names match the
// frontend contract; ImageURL is a pointer so entries without an image
// serialize as null.
type Entry struct {
	EntryID   string    `bson:"entry_id" json:"entryId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"`
	Mood      string    `bson:"mood" json:"mood"`
	Content   string    `bson:"content" json:"content"`
	ImageURL  *string   `bson:"image_url,omitempty" json:"imageUrl"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// EntryUpdate describes a partial update. Nil fields are left untouched;
// UpdatedAt is always written.
type EntryUpdate struct {
	Date      *string
	Mood      *string
	Content   *string
	ImageURL  *string
	UpdatedAt time.Time
}
