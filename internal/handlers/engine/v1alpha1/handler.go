// Package v1alpha1 handles the engine grpc service interface
package v1alpha1

import (
	"context"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/orchestrators/resolution"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ResolutionService resolution.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ResolutionService == nil {
		return errors.InvalidArgument("resolution service is required")
	}
	return nil
}

// Handler implements the engine gRPC service
type Handler struct {
	resolutionService resolution.Service
}

var _ EngineServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		resolutionService: cfg.ResolutionService,
	}, nil
}

// ResolveAttribute returns one effective attribute with its breakdown
func (h *Handler) ResolveAttribute(
	ctx context.Context,
	req *ResolveAttributeRequest,
) (*ResolveAttributeResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Attribute == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attribute is required"))
	}

	output, err := h.resolutionService.ResolveAttribute(ctx, &resolution.ResolveAttributeInput{
		CharacterID: req.CharacterID,
		Attribute:   req.Attribute,
		Mode:        req.Mode,
		Precomputed: req.Precomputed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResolveAttributeResponse{Resolution: output.Resolution}, nil
}

// ResolveCharacter returns every attribute of a character in both modes
func (h *Handler) ResolveCharacter(
	ctx context.Context,
	req *ResolveCharacterRequest,
) (*ResolveCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.resolutionService.ResolveCharacter(ctx, &resolution.ResolveCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResolveCharacterResponse{Sheet: output.Sheet}, nil
}

// TestAction measures an action without rolling
func (h *Handler) TestAction(
	ctx context.Context,
	req *TestActionRequest,
) (*TestActionResponse, error) {
	output, err := h.resolutionService.TestAction(ctx, testActionInput(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TestActionResponse{Result: output.Result}, nil
}

// AttemptAction measures an action and rolls for it
func (h *Handler) AttemptAction(
	ctx context.Context,
	req *AttemptActionRequest,
) (*AttemptActionResponse, error) {
	in := testActionInput(&req.TestActionRequest)
	output, err := h.resolutionService.AttemptAction(ctx, &resolution.AttemptActionInput{
		ActionID:          in.ActionID,
		SourceCharacterID: in.SourceCharacterID,
		TargetCharacterID: in.TargetCharacterID,
		TargetObjectID:    in.TargetObjectID,
		Mode:              in.Mode,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AttemptActionResponse{
		AttemptID:   output.AttemptID,
		AttemptedAt: output.AttemptedAt,
		Result:      output.Result,
		Attempt:     output.Attempt,
	}, nil
}

// ListAttempts returns a character's recent attempts
func (h *Handler) ListAttempts(
	ctx context.Context,
	req *ListAttemptsRequest,
) (*ListAttemptsResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.resolutionService.ListAttempts(ctx, &resolution.ListAttemptsInput{
		CharacterID: req.CharacterID,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListAttemptsResponse{Attempts: output.Attempts}, nil
}

func testActionInput(req *TestActionRequest) *resolution.TestActionInput {
	return &resolution.TestActionInput{
		ActionID:          req.ActionID,
		SourceCharacterID: req.SourceCharacterID,
		TargetCharacterID: req.TargetCharacterID,
		TargetObjectID:    req.TargetObjectID,
		Mode:              req.Mode,
	}
}
