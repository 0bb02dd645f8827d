// Package resolution loads records and runs them through the stat engine
package resolution

//go:generate mockgen -destination=mock/mock_service.go -package=resolutionmock github.com/phnks/webfg-app-sub004/internal/orchestrators/resolution Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/pkg/clock"
	"github.com/phnks/webfg-app-sub004/internal/pkg/idgen"
	"github.com/phnks/webfg-app-sub004/internal/repositories/attempts"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
)

// Service defines the interface for resolution operations
type Service interface {
	ResolveAttribute(ctx context.Context, input *ResolveAttributeInput) (*ResolveAttributeOutput, error)
	ResolveCharacter(ctx context.Context, input *ResolveCharacterInput) (*ResolveCharacterOutput, error)
	TestAction(ctx context.Context, input *TestActionInput) (*TestActionOutput, error)
	AttemptAction(ctx context.Context, input *AttemptActionInput) (*AttemptActionOutput, error)
	ListAttempts(ctx context.Context, input *ListAttemptsInput) (*ListAttemptsOutput, error)
}

// Config holds the dependencies for the resolution orchestrator
type Config struct {
	Repository  records.Repository
	Attempts    attempts.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// AttemptTTL overrides the attempt history's default expiry
	AttemptTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Attempts == nil {
		vb.RequiredField("Attempts")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	repo     records.Repository
	attempts attempts.Repository
	engine   engine.Engine
	idGen    idgen.Generator
	clock    clock.Clock
	ttl      time.Duration
}

// NewOrchestrator creates a new resolution orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:     cfg.Repository,
		attempts: cfg.Attempts,
		engine:   cfg.Engine,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		ttl:      cfg.AttemptTTL,
	}, nil
}

func (o *orchestrator) ResolveAttribute(
	ctx context.Context,
	input *ResolveAttributeInput,
) (*ResolveAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("attribute", input.Attribute, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	loadout, err := o.loadLoadout(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.ResolveAttribute(&engine.ResolveAttributeInput{
		Loadout:     loadout,
		Attribute:   input.Attribute,
		Mode:        entities.Mode(input.Mode),
		Precomputed: input.Precomputed,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s for character %s", input.Attribute, input.CharacterID)
	}

	if out.Resolution.Corrected {
		slog.WarnContext(ctx, "Replaced implausible precomputed grouped value",
			"character_id", input.CharacterID,
			"attribute", out.Resolution.Attribute,
			"precomputed", *input.Precomputed,
			"computed", out.Resolution.Value)
	}

	return &ResolveAttributeOutput{Resolution: out.Resolution}, nil
}

func (o *orchestrator) ResolveCharacter(
	ctx context.Context,
	input *ResolveCharacterInput,
) (*ResolveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character_id is required")
	}

	loadout, err := o.loadLoadout(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.ResolveCharacter(&engine.ResolveCharacterInput{Loadout: loadout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve character %s", input.CharacterID)
	}

	slog.DebugContext(ctx, "Character sheet resolved",
		"character_id", input.CharacterID,
		"attributes", len(out.Sheet.Attributes))

	return &ResolveCharacterOutput{Sheet: out.Sheet}, nil
}

func (o *orchestrator) TestAction(ctx context.Context, input *TestActionInput) (*TestActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engineInput, err := o.prepareAction(ctx, input)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.TestAction(engineInput)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to test action %s", input.ActionID)
	}

	return &TestActionOutput{Result: out}, nil
}

func (o *orchestrator) AttemptAction(ctx context.Context, input *AttemptActionInput) (*AttemptActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engineInput, err := o.prepareAction(ctx, &TestActionInput{
		ActionID:          input.ActionID,
		SourceCharacterID: input.SourceCharacterID,
		TargetCharacterID: input.TargetCharacterID,
		TargetObjectID:    input.TargetObjectID,
		Mode:              input.Mode,
	})
	if err != nil {
		return nil, err
	}

	out, err := o.engine.AttemptAction(&engine.AttemptActionInput{TestActionInput: *engineInput})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to attempt action %s", input.ActionID)
	}

	attemptID := o.idGen.Generate()
	attemptedAt := o.clock.Now()

	slog.InfoContext(ctx, "Action attempted",
		"attempt_id", attemptID,
		"action_id", input.ActionID,
		"source_character_id", input.SourceCharacterID,
		"difficulty", out.Test.Evaluation.Difficulty,
		"face", out.Attempt.Face,
		"success", out.Attempt.Success)

	// History is best effort
	if _, err := o.attempts.Append(ctx, attempts.AppendInput{Record: &attempts.Record{
		AttemptID:         attemptID,
		AttemptedAt:       attemptedAt,
		ActionID:          out.Test.Evaluation.ActionID,
		ActionName:        out.Test.Evaluation.ActionName,
		SourceCharacterID: input.SourceCharacterID,
		TargetCharacterID: input.TargetCharacterID,
		TargetObjectID:    input.TargetObjectID,
		Difficulty:        out.Test.Evaluation.Difficulty,
		Band:              out.Test.Evaluation.Band,
		Rolled:            out.Attempt.Rolled,
		Face:              out.Attempt.Face,
		Success:           out.Attempt.Success,
		Description:       out.Attempt.Description,
	}, TTL: o.ttl}); err != nil {
		slog.WarnContext(ctx, "Failed to record attempt",
			"attempt_id", attemptID,
			"source_character_id", input.SourceCharacterID,
			"error", err)
	}

	return &AttemptActionOutput{
		AttemptID:   attemptID,
		AttemptedAt: attemptedAt,
		Result:      out.Test,
		Attempt:     out.Attempt,
	}, nil
}

func (o *orchestrator) ListAttempts(ctx context.Context, input *ListAttemptsInput) (*ListAttemptsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character_id is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit cannot be negative: %d", input.Limit)
	}

	out, err := o.attempts.List(ctx, attempts.ListInput{CharacterID: input.CharacterID, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list attempts of character %s", input.CharacterID)
	}

	return &ListAttemptsOutput{Attempts: out.Records}, nil
}

// prepareAction loads the action, its chain, the source and the target
func (o *orchestrator) prepareAction(ctx context.Context, input *TestActionInput) (*engine.TestActionInput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("action_id", input.ActionID, vb)
	errors.ValidateRequired("source_character_id", input.SourceCharacterID, vb)
	errors.ValidateExactlyOne("target", map[string]string{
		"target_character_id": input.TargetCharacterID,
		"target_object_id":    input.TargetObjectID,
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	actOut, err := o.repo.GetAction(ctx, records.GetActionInput{ID: input.ActionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get action %s", input.ActionID)
	}
	root := actOut.Action

	var (
		arena  []*entities.Action
		source *engine.Loadout
		target = &engine.Target{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		arena, err = o.loadArena(gctx, root)
		return err
	})
	g.Go(func() error {
		var err error
		source, err = o.loadLoadout(gctx, input.SourceCharacterID)
		return err
	})
	g.Go(func() error {
		var err error
		if input.TargetObjectID != "" {
			target.Object, err = o.loadObject(gctx, input.TargetObjectID)
			return err
		}
		target.Character, err = o.loadLoadout(gctx, input.TargetCharacterID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &engine.TestActionInput{
		Action:  root,
		Actions: arena,
		Source:  source,
		Target:  target,
		Mode:    entities.Mode(input.Mode),
	}, nil
}
