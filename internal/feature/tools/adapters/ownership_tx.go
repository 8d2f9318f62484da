package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "vuttr_backend/internal/feature/auth/domain/entity"
	"vuttr_backend/internal/feature/tools/domain/entity"
	"vuttr_backend/internal/feature/tools/usecase"
)

// The two mutations below are the only writers of the User/Tool
// relationship. Each runs inside a single database transaction and takes
// a row lock on the owner before reading its owned-set, so concurrent
// adds and removes against the same owner serialize instead of losing
// updates. If any step fails the whole unit rolls back: no orphan tool
// rows, no dangling owned-set entries.

// forUpdate adds a SELECT ... FOR UPDATE clause on dialects that support
// it. sqlite has no row locks; its single-writer transaction already
// serializes writers, and the clause would be a syntax error there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AddOwnedTool persists the tool and appends its id to the owner's
// owned-set atomically. It returns usecase.ErrOwnerNotFound when the
// owner does not exist.
func (r *toolGorm) AddOwnedTool(ctx context.Context, t *entity.Tool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner authentity.User
		if err := forUpdate(tx).Where("id = ?", t.OwnerID).First(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrOwnerNotFound
			}
			return err
		}

		if err := tx.Create(t).Error; err != nil {
			return err
		}

		owner.AppendTool(t.ID)
		if err := tx.Save(&owner).Error; err != nil {
			return err
		}

		return nil
	})
}

// RemoveOwnedTool removes the tool's id from the owner's owned-set and
// deletes the tool record atomically. A missing tool yields
// usecase.ErrToolNotFound; an existing tool whose owner row is missing
// yields usecase.ErrOwnedSetCorrupted.
func (r *toolGorm) RemoveOwnedTool(ctx context.Context, toolID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t entity.Tool
		if err := tx.Where("id = ?", toolID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrToolNotFound
			}
			return err
		}

		var owner authentity.User
		if err := forUpdate(tx).Where("id = ?", t.OwnerID).First(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrOwnedSetCorrupted
			}
			return err
		}

		owner.RemoveTool(t.ID)
		if err := tx.Save(&owner).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.Tool{}, "id = ?", t.ID).Error; err != nil {
			return err
		}

		return nil
	})
}
