package usecase

import (
	"context"
	"errors"
	"testing"

	"vuttr_backend/internal/feature/tools/domain/entity"
)

// mockToolStore is a mock implementation of the ToolStore interface.
type mockToolStore struct {
	AddOwnedToolFunc      func(ctx context.Context, tool *entity.Tool) error
	RemoveOwnedToolFunc   func(ctx context.Context, toolID string) error
	FindByIDFunc          func(ctx context.Context, id string) (*entity.Tool, error)
	ListOwnedFunc         func(ctx context.Context, ownerID string) ([]entity.Tool, error)
	ListByOwnerAndTagFunc func(ctx context.Context, ownerID, tag string) ([]entity.Tool, error)
}

func (m *mockToolStore) AddOwnedTool(ctx context.Context, tool *entity.Tool) error {
	if m.AddOwnedToolFunc != nil {
		return m.AddOwnedToolFunc(ctx, tool)
	}
	tool.ID = "generated-id"
	return nil
}

func (m *mockToolStore) RemoveOwnedTool(ctx context.Context, toolID string) error {
	if m.RemoveOwnedToolFunc != nil {
		return m.RemoveOwnedToolFunc(ctx, toolID)
	}
	return nil
}

func (m *mockToolStore) FindByID(ctx context.Context, id string) (*entity.Tool, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrToolNotFound
}

func (m *mockToolStore) ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error) {
	if m.ListOwnedFunc != nil {
		return m.ListOwnedFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockToolStore) ListByOwnerAndTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error) {
	if m.ListByOwnerAndTagFunc != nil {
		return m.ListByOwnerAndTagFunc(ctx, ownerID, tag)
	}
	return nil, nil
}

func TestToolUsecase_AddTool(t *testing.T) {
	t.Run("successful add returns tool with server-assigned id", func(t *testing.T) {
		store := &mockToolStore{
			AddOwnedToolFunc: func(ctx context.Context, tool *entity.Tool) error {
				if tool.OwnerID != "user-1" {
					t.Errorf("expected owner user-1, got %q", tool.OwnerID)
				}
				if tool.ID != "" {
					t.Errorf("id must be assigned by the store, got %q", tool.ID)
				}
				tool.ID = "tool-1"
				return nil
			},
		}

		uc := NewToolUsecase(store)
		tool, err := uc.AddTool(context.Background(), "user-1", "jq", "https://stedolan.github.io/jq", "cli json", []string{"cli", "json"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tool.ID != "tool-1" {
			t.Errorf("expected server-assigned id, got %q", tool.ID)
		}
		if !tool.HasTag("json") {
			t.Error("expected tags to be preserved")
		}
	})

	t.Run("missing owner passes through", func(t *testing.T) {
		store := &mockToolStore{
			AddOwnedToolFunc: func(ctx context.Context, tool *entity.Tool) error {
				return ErrOwnerNotFound
			},
		}

		uc := NewToolUsecase(store)
		_, err := uc.AddTool(context.Background(), "missing", "jq", "https://x", "d", nil)

		if !errors.Is(err, ErrOwnerNotFound) {
			t.Errorf("expected ErrOwnerNotFound, got %v", err)
		}
	})
}

func TestToolUsecase_RemoveTool(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
	}{
		{"success", nil},
		{"tool missing", ErrToolNotFound},
		{"owner missing is a consistency fault", ErrOwnedSetCorrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockToolStore{
				RemoveOwnedToolFunc: func(ctx context.Context, toolID string) error {
					return tt.storeErr
				},
			}

			uc := NewToolUsecase(store)
			err := uc.RemoveTool(context.Background(), "tool-1")

			if !errors.Is(err, tt.storeErr) {
				t.Errorf("expected %v, got %v", tt.storeErr, err)
			}
		})
	}
}

func TestToolUsecase_ListByTag(t *testing.T) {
	store := &mockToolStore{
		ListByOwnerAndTagFunc: func(ctx context.Context, ownerID, tag string) ([]entity.Tool, error) {
			if tag != "cli" {
				return []entity.Tool{}, nil
			}
			return []entity.Tool{{ID: "tool-1", OwnerID: ownerID, Tags: []string{"cli"}}}, nil
		},
	}

	uc := NewToolUsecase(store)

	matched, err := uc.ListByTag(context.Background(), "user-1", "cli")
	if err != nil || len(matched) != 1 {
		t.Errorf("expected one match, got %v (%v)", matched, err)
	}

	empty, err := uc.ListByTag(context.Background(), "user-1", "gui")
	if err != nil {
		t.Errorf("no match must not be an error, got %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty result, got %v", empty)
	}
}
