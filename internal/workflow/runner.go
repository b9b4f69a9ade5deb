// Package workflow drives the generation checkpoints: it snapshots the
// session state a stage depends on, calls the completion service, and
// writes the result into exactly one stage artifact.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/careers2017uae-bot/SmartDiago/internal/llm"
	"github.com/careers2017uae-bot/SmartDiago/internal/prompt"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

// Completer is the completion client the runner calls.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Result is the outcome of one successful (or degraded) generation.
type Result struct {
	Stage   session.Stage
	Content string
	// RawFallback is set when the service answered 2xx but without the
	// expected text field; Content then holds the raw response body so
	// the operator can inspect what came back.
	RawFallback bool
}

// Runner executes generate(stage) against a session.
type Runner struct {
	client Completer
	log    *zap.Logger
}

// NewRunner builds a runner. A nil logger is replaced with a nop.
func NewRunner(client Completer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{client: client, log: log}
}

// Generate runs the stage's fixed prompt against the completion
// service and stores the answer. On failure the stage's prior content
// and provenance are left untouched and the error is returned for the
// action boundary to surface. Empty dependencies are interpolated as
// empty text; generation is never blocked on them.
func (r *Runner) Generate(ctx context.Context, sess *session.Session, stage session.Stage) (Result, error) {
	sp, ok := prompt.For(stage)
	if !ok {
		return Result{}, fmt.Errorf("stage %q does not support generation", stage)
	}

	text, err := r.client.Complete(ctx, llm.Request{
		System:      sp.System,
		Prompt:      sp.Build(sess),
		Temperature: sp.Temperature,
		MaxTokens:   sp.MaxTokens,
	})

	var malformed *llm.MalformedResponseError
	if errors.As(err, &malformed) {
		// Degrade: keep the raw body as the stage's result so the call
		// is not lost, and tell the caller it is a fallback.
		r.log.Warn("malformed completion response, storing raw body",
			zap.String("stage", string(stage)))
		if err := sess.Stages.SetGenerated(stage, malformed.RawBody); err != nil {
			return Result{}, err
		}
		return Result{Stage: stage, Content: malformed.RawBody, RawFallback: true}, nil
	}
	if err != nil {
		r.log.Warn("generation failed", zap.String("stage", string(stage)), zap.Error(err))
		return Result{}, err
	}

	if err := sess.Stages.SetGenerated(stage, text); err != nil {
		return Result{}, err
	}
	r.log.Info("stage generated",
		zap.String("stage", string(stage)),
		zap.Int("chars", len(text)))
	return Result{Stage: stage, Content: text}, nil
}
