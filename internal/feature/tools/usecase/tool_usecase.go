package usecase

import (
	"context"

	"vuttr_backend/internal/feature/tools/domain/entity"
)

// ToolStore abstracts the persistence layer for tools, including the
// cross-entity mutations that keep the tool table and the owner's
// owned-set consistent. Following Go convention, the interface is defined
// by the consumer (usecase), not the provider (adapters).
type ToolStore interface {
	// AddOwnedTool persists the tool and appends its id to the owner's
	// owned-set as one atomic unit. It returns ErrOwnerNotFound when the
	// owner does not exist; on any other failure neither side is applied.
	AddOwnedTool(ctx context.Context, tool *entity.Tool) error

	// RemoveOwnedTool deletes the tool and removes its id from the owner's
	// owned-set as one atomic unit. It returns ErrToolNotFound when the tool
	// does not exist and ErrOwnedSetCorrupted when the tool's owner is missing.
	RemoveOwnedTool(ctx context.Context, toolID string) error

	// FindByID retrieves a tool by id, returning ErrToolNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Tool, error)

	// ListOwned returns the tools in the owner's owned-set, in owned-set
	// order. It returns ErrOwnerNotFound when the owner does not exist.
	ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error)

	// ListByOwnerAndTag returns the owner's tools carrying the given tag
	// (exact match). No match yields an empty slice, not an error.
	ListByOwnerAndTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error)
}

// ToolUsecase provides the business logic for tool operations.
type ToolUsecase struct {
	store ToolStore
}

// NewToolUsecase creates a new ToolUsecase with the given store.
func NewToolUsecase(s ToolStore) *ToolUsecase {
	return &ToolUsecase{store: s}
}

// AddTool creates a tool owned by ownerID and registers it in the owner's
// owned-set. The returned tool carries the server-assigned id.
func (u *ToolUsecase) AddTool(ctx context.Context, ownerID, title, link, description string, tags []string) (*entity.Tool, error) {
	tool := &entity.Tool{
		OwnerID:     ownerID,
		Title:       title,
		Link:        link,
		Description: description,
		Tags:        tags,
	}
	if err := u.store.AddOwnedTool(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// RemoveTool deletes the tool and its owned-set entry.
func (u *ToolUsecase) RemoveTool(ctx context.Context, toolID string) error {
	return u.store.RemoveOwnedTool(ctx, toolID)
}

// ListOwned returns every tool owned by ownerID.
func (u *ToolUsecase) ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error) {
	return u.store.ListOwned(ctx, ownerID)
}

// ListByTag returns the owner's tools carrying the given tag.
func (u *ToolUsecase) ListByTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error) {
	return u.store.ListByOwnerAndTag(ctx, ownerID, tag)
}
