package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/draftline/draftline/internal/engine"
	"github.com/draftline/draftline/internal/models"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools registers the six draft lifecycle tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "create_linkedin_post",
			Description: "Create a LinkedIn post draft with content validation and best practice suggestions. Draft is saved for manual posting.",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args CreatePostInput) (*mcp.CallToolResult, any, error) {
			return s.handleCreatePost(ctx, args)
		},
	)

	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "save_linkedin_draft",
			Description: "Save a LinkedIn post draft without immediate posting intent. Same as create_linkedin_post but semantic difference.",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args SaveDraftInput) (*mcp.CallToolResult, any, error) {
			return s.handleSaveDraft(ctx, args)
		},
	)

	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "get_draft_status",
			Description: "Get the status and details of a LinkedIn post draft by ID",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args GetStatusInput) (*mcp.CallToolResult, any, error) {
			return s.handleGetStatus(ctx, args)
		},
	)

	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "list_linkedin_drafts",
			Description: "List all LinkedIn post drafts, optionally filtered by status",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args ListDraftsInput) (*mcp.CallToolResult, any, error) {
			return s.handleListDrafts(ctx, args)
		},
	)

	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "validate_linkedin_content",
			Description: "Validate LinkedIn post content and get suggestions without creating a draft",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args ValidateInput) (*mcp.CallToolResult, any, error) {
			return s.handleValidate(ctx, args)
		},
	)

	mcp.AddTool(s.mcpServer,
		&mcp.Tool{
			Name:        "get_posting_recommendations",
			Description: "Get best posting time recommendations and engagement tips",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args RecommendationsInput) (*mcp.CallToolResult, any, error) {
			return s.handleRecommendations(ctx)
		},
	)
}

// CreatePostInput represents input for create_linkedin_post.
type CreatePostInput struct {
	Content      string   `json:"content" jsonschema:"required" jsonschema_description:"The post content (max 3000 characters)"`
	ScheduleTime string   `json:"schedule_time,omitempty" jsonschema_description:"Optional: Suggested posting time (ISO 8601 format)"`
	Tags         []string `json:"tags,omitempty" jsonschema_description:"Optional: Custom tags for organizing drafts"`
}

// SaveDraftInput represents input for save_linkedin_draft.
type SaveDraftInput struct {
	Content string `json:"content" jsonschema:"required" jsonschema_description:"The draft content"`
	Notes   string `json:"notes,omitempty" jsonschema_description:"Optional: Notes about this draft"`
}

// GetStatusInput represents input for get_draft_status.
type GetStatusInput struct {
	DraftID string `json:"draft_id" jsonschema:"required" jsonschema_description:"The draft ID to look up"`
}

// ListDraftsInput represents input for list_linkedin_drafts.
type ListDraftsInput struct {
	Status string `json:"status,omitempty" jsonschema_description:"Optional: Filter by status (draft, posted, archived)"`
}

// ValidateInput represents input for validate_linkedin_content.
type ValidateInput struct {
	Content string `json:"content" jsonschema:"required" jsonschema_description:"Content to validate"`
}

// RecommendationsInput represents input for get_posting_recommendations.
type RecommendationsInput struct{}

// GetDraftResult wraps a full draft record with its storage key.
type GetDraftResult struct {
	Draft *models.Draft `json:"draft"`
	Path  string        `json:"path"`
}

// ListDraftsResult is the list_linkedin_drafts payload.
type ListDraftsResult struct {
	Count  int             `json:"count"`
	Drafts []*models.Draft `json:"drafts"`
}

func (s *Server) handleCreatePost(ctx context.Context, args CreatePostInput) (*mcp.CallToolResult, any, error) {
	if args.Content == "" {
		return toolError("content is required")
	}

	summary, err := s.manager.Create(ctx, args.Content, models.CallerMetadata{
		ScheduleTime: args.ScheduleTime,
		Tags:         args.Tags,
	})
	if err != nil {
		return s.toolFailure(err)
	}
	return toolSuccess(summary)
}

func (s *Server) handleSaveDraft(ctx context.Context, args SaveDraftInput) (*mcp.CallToolResult, any, error) {
	if args.Content == "" {
		return toolError("content is required")
	}

	summary, err := s.manager.Create(ctx, args.Content, models.CallerMetadata{
		Notes: args.Notes,
		Type:  "draft",
	})
	if err != nil {
		return s.toolFailure(err)
	}
	return toolSuccess(summary)
}

func (s *Server) handleGetStatus(ctx context.Context, args GetStatusInput) (*mcp.CallToolResult, any, error) {
	if args.DraftID == "" {
		return toolError("draft_id is required")
	}

	draft, err := s.manager.Get(ctx, args.DraftID)
	if err != nil {
		return s.toolFailure(err)
	}
	return toolSuccess(GetDraftResult{
		Draft: draft,
		Path:  fmt.Sprintf("drafts/%s.json", draft.ID),
	})
}

func (s *Server) handleListDrafts(ctx context.Context, args ListDraftsInput) (*mcp.CallToolResult, any, error) {
	drafts, err := s.manager.List(ctx, args.Status)
	if err != nil {
		return s.toolFailure(err)
	}
	return toolSuccess(ListDraftsResult{
		Count:  len(drafts),
		Drafts: drafts,
	})
}

func (s *Server) handleValidate(ctx context.Context, args ValidateInput) (*mcp.CallToolResult, any, error) {
	if args.Content == "" {
		return toolError("content is required")
	}
	return toolSuccess(s.manager.ValidateOnly(args.Content))
}

func (s *Server) handleRecommendations(ctx context.Context) (*mcp.CallToolResult, any, error) {
	advice, err := s.manager.Recommendations(ctx)
	if err != nil {
		return s.toolFailure(err)
	}
	return toolSuccess(advice)
}

// toolFailure maps engine errors to structured tool failures. The transport
// never sees a raw error for expected failure modes; the text tells the
// caller whether to correct input, wait, or give up.
func (s *Server) toolFailure(err error) (*mcp.CallToolResult, any, error) {
	var validationErr *engine.ValidationError
	var rateErr *engine.RateLimitError

	switch {
	case errors.As(err, &validationErr):
		return toolError("Invalid content: " + strings.Join(validationErr.Violations, ", "))
	case errors.As(err, &rateErr):
		msg := rateErr.Reason
		if !rateErr.ResetTime.IsZero() {
			msg += fmt.Sprintf(" Try again after %s.", rateErr.ResetTime.Format(time.RFC3339))
		}
		return toolError(msg)
	case errors.Is(err, engine.ErrNotFound):
		return toolError(err.Error())
	default:
		s.log.WithError(err).Error("Tool execution failed")
		return toolError(fmt.Sprintf("Operation failed: %v", err))
	}
}

// toolError returns an error result for a tool call.
func toolError(message string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}, nil, nil
}

// toolSuccess returns a success result carrying the payload both as pretty
// JSON text and as structured content.
func toolSuccess(result any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, result, nil
}
