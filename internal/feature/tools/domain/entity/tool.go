// Package entity defines the domain entities for the tools feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tool represents a bookmarked tool owned by exactly one user.
// OwnerID is the tool-side half of the bidirectional User/Tool reference;
// the owner's owned-set holds the other half.
type Tool struct {
	// ID is the server-assigned unique identifier.
	ID string `gorm:"primaryKey;size:36"`

	// OwnerID references the user that added this tool.
	OwnerID string `gorm:"index;size:36;not null"`

	// Title is the display name of the tool.
	Title string `gorm:"size:255;not null"`

	// Link is the URL of the tool.
	Link string `gorm:"size:2048;not null"`

	// Description is a short free-text description, 1 to 1024 characters.
	Description string `gorm:"size:1024;not null"`

	// Tags is the set of tag strings, serialized as a JSON array.
	Tags []string `gorm:"serializer:json"`

	// CreatedAt is the timestamp when the tool was added.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the tool was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a server-side identifier when none is set.
func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// HasTag reports whether the tool carries the given tag (exact match).
func (t *Tool) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
