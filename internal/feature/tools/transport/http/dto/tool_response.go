package dto

import "vuttr_backend/internal/feature/tools/domain/entity"

// ToolItem is the wire representation of a tool record.
type ToolItem struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// FromEntity maps a tool entity to its wire representation.
func FromEntity(t *entity.Tool) ToolItem {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return ToolItem{
		ID:          t.ID,
		UserID:      t.OwnerID,
		Title:       t.Title,
		Link:        t.Link,
		Description: t.Description,
		Tags:        tags,
	}
}

// FromEntities maps a slice of tool entities, always yielding a non-nil
// slice so that empty listings serialize as [] and not null.
func FromEntities(tools []entity.Tool) []ToolItem {
	out := make([]ToolItem, 0, len(tools))
	for i := range tools {
		out = append(out, FromEntity(&tools[i]))
	}
	return out
}
