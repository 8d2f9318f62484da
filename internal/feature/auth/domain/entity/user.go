// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered user in the system.
// Besides the authentication credentials it carries the owned-set: the
// ordered list of Tool ids this user has added. The owned-set is the
// user-side half of the bidirectional User/Tool reference and is only ever
// mutated together with the tool table, inside one transaction.
type User struct {
	// ID is the unique identifier for the user.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the display name shown to other users.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:255;not null"`

	// ToolIDs is the owned-set, serialized as a JSON array.
	ToolIDs []string `gorm:"serializer:json"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a server-side identifier when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// OwnsTool reports whether the owned-set contains the given tool id.
func (u *User) OwnsTool(toolID string) bool {
	for _, id := range u.ToolIDs {
		if id == toolID {
			return true
		}
	}
	return false
}

// AppendTool adds a tool id to the end of the owned-set.
func (u *User) AppendTool(toolID string) {
	u.ToolIDs = append(u.ToolIDs, toolID)
}

// RemoveTool deletes every occurrence of the given tool id from the
// owned-set. Removing an id that is not present is a no-op.
func (u *User) RemoveTool(toolID string) {
	kept := u.ToolIDs[:0]
	for _, id := range u.ToolIDs {
		if id != toolID {
			kept = append(kept, id)
		}
	}
	u.ToolIDs = kept
}
