// Package adapters provides the gorm-backed store for the tools feature,
// including the transactional mutations that keep the tool table and the
// owner's owned-set consistent.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "vuttr_backend/internal/feature/auth/domain/entity"
	"vuttr_backend/internal/feature/tools/domain/entity"
	"vuttr_backend/internal/feature/tools/usecase"
)

// toolGorm is the gorm implementation of the ToolStore interface.
type toolGorm struct {
	db *gorm.DB
}

// Compile-time check that toolGorm implements ToolStore.
var _ usecase.ToolStore = (*toolGorm)(nil)

// NewToolGorm creates a new toolGorm with the given gorm.DB connection.
func NewToolGorm(db *gorm.DB) *toolGorm {
	return &toolGorm{db: db}
}

// FindByID retrieves a tool by id.
// It returns usecase.ErrToolNotFound when no such tool exists.
func (r *toolGorm) FindByID(ctx context.Context, id string) (*entity.Tool, error) {
	var t entity.Tool
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrToolNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListOwned loads the owner and resolves its owned-set to tool records,
// preserving owned-set order. An owner without tools yields an empty
// slice; a missing owner yields usecase.ErrOwnerNotFound.
func (r *toolGorm) ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error) {
	var owner authentity.User
	if err := r.db.WithContext(ctx).Where("id = ?", ownerID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOwnerNotFound
		}
		return nil, err
	}

	if len(owner.ToolIDs) == 0 {
		return []entity.Tool{}, nil
	}

	var tools []entity.Tool
	if err := r.db.WithContext(ctx).Where("id IN ?", owner.ToolIDs).Find(&tools).Error; err != nil {
		return nil, err
	}

	// Re-order to match the owned-set
	byID := make(map[string]entity.Tool, len(tools))
	for _, t := range tools {
		byID[t.ID] = t
	}
	ordered := make([]entity.Tool, 0, len(tools))
	for _, id := range owner.ToolIDs {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// ListByOwnerAndTag returns the owner's tools carrying the given tag.
// The tag list is a serialized JSON column, so membership is checked here
// rather than in SQL; owner-scoped result sets are small.
func (r *toolGorm) ListByOwnerAndTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error) {
	var tools []entity.Tool
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&tools).Error; err != nil {
		return nil, err
	}

	matched := make([]entity.Tool, 0, len(tools))
	for _, t := range tools {
		if t.HasTag(tag) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
