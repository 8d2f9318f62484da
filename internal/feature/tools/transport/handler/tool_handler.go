// Package handler provides the HTTP handlers for the tools feature.
// Every route here sits behind the bearer-token middleware; the handlers
// orchestrate usecase calls and map domain failures to status codes.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vuttr_backend/internal/app/api"
	"vuttr_backend/internal/feature/tools/domain/entity"
	"vuttr_backend/internal/feature/tools/transport/http/dto"
	"vuttr_backend/internal/feature/tools/usecase"
)

// ToolUsecase defines the usecase operations the handlers depend on.
type ToolUsecase interface {
	AddTool(ctx context.Context, ownerID, title, link, description string, tags []string) (*entity.Tool, error)
	RemoveTool(ctx context.Context, toolID string) error
	ListOwned(ctx context.Context, ownerID string) ([]entity.Tool, error)
	ListByTag(ctx context.Context, ownerID, tag string) ([]entity.Tool, error)
}

// ToolHandler handles HTTP requests for tool operations.
type ToolHandler struct {
	tools ToolUsecase
}

// NewToolHandler creates a new ToolHandler with the injected usecase.
func NewToolHandler(tools ToolUsecase) *ToolHandler {
	return &ToolHandler{tools: tools}
}

// Add handles POST /tools.
// - 470 when the request body fails validation
// - 404 when the owning user does not exist
// - 500 on storage failure
// - 201 with the created tool record on success
func (h *ToolHandler) Add(c *gin.Context) {
	var req dto.AddToolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add tool validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid parameters. Please check the data you informed."})
		return
	}

	tool, err := h.tools.AddTool(c.Request.Context(), req.UserID, req.Title, req.Link, req.Description, req.Tags)
	switch {
	case errors.Is(err, usecase.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Current user not found in database."})
		return
	case err != nil:
		slog.Error("add tool failed", "error", err, "owner_id", req.UserID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Database access error. Please try again."})
		return
	}

	slog.Info("tool added", "tool_id", tool.ID, "owner_id", tool.OwnerID)
	c.JSON(http.StatusCreated, dto.FromEntity(tool))
}

// ListOwned handles GET /tools/all/:userId.
// - 404 when the owner does not exist
// - 200 with the (possibly empty) tool array otherwise
func (h *ToolHandler) ListOwned(c *gin.Context) {
	ownerID := c.Param("userId")
	if ownerID == "" {
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid user id parameter. Please check the data you informed."})
		return
	}

	tools, err := h.tools.ListOwned(c.Request.Context(), ownerID)
	switch {
	case errors.Is(err, usecase.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "User not found."})
		return
	case err != nil:
		slog.Error("tool listing failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Database access error. Please try again."})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntities(tools))
}

// ListByTag handles GET /tools?tag=<tag>&userId=<id>.
// - 470 when either query parameter is missing
// - 200 with the (possibly empty) matching tool array otherwise
func (h *ToolHandler) ListByTag(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid tag parameter. Please check the data you informed."})
		return
	}
	ownerID := c.Query("userId")
	if ownerID == "" {
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid user id parameter. Please check the data you informed."})
		return
	}

	tools, err := h.tools.ListByTag(c.Request.Context(), ownerID, tag)
	if err != nil {
		slog.Error("tool tag search failed", "error", err, "owner_id", ownerID, "tag", tag)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Database access error. Please try again."})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntities(tools))
}

// Remove handles DELETE /tools/:id.
// - 404 when the tool does not exist
// - 500 when the tool exists but its owner is missing (consistency fault)
// - 204 on success
func (h *ToolHandler) Remove(c *gin.Context) {
	toolID := c.Param("id")
	if toolID == "" {
		c.JSON(api.StatusInvalidParameters, api.MessageResponse{Message: "Invalid tool id parameter. Please check the data you informed."})
		return
	}

	err := h.tools.RemoveTool(c.Request.Context(), toolID)
	switch {
	case errors.Is(err, usecase.ErrToolNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Found no tool with the specified id."})
		return
	case errors.Is(err, usecase.ErrOwnedSetCorrupted):
		slog.Error("referential invariant violated", "tool_id", toolID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Could not remove tool. Did not find the user."})
		return
	case err != nil:
		slog.Error("remove tool failed", "error", err, "tool_id", toolID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Database access error. Please try again."})
		return
	}

	slog.Info("tool removed", "tool_id", toolID)
	c.Status(http.StatusNoContent)
}
