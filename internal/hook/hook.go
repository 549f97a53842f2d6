// FILE: internal/hook/hook.go
// Before/after interception pipeline threaded through every operation.
//
// Each operation runs as: before hook -> main action -> after hook. A before
// hook may rewrite the input, short-circuit with a fixed result, or abort
// with an error; an error always short-circuits regardless of Skip. An after
// hook may replace the result or override it with an error. Precedence:
// after-hook error > after-hook data > action result.
package hook

import (
	"context"

	"featuregate-be/internal/apperror"
	"featuregate-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// Op identifies one of the gated operations. Hooks attach per Op.
type Op string

const (
	OpCreateFeature     Op = "feature.create"
	OpListFeatures      Op = "feature.list"
	OpUpdateFeature     Op = "feature.update"
	OpDeleteFeature     Op = "feature.delete"
	OpToggleFeature     Op = "feature.toggle"
	OpSetFlag           Op = "flag.set"
	OpRemoveFlag        Op = "flag.remove"
	OpListFlags         Op = "flag.list"
	OpAvailableFeatures Op = "feature.available"
)

// Context is handed to every hook alongside the operation input. Values is
// an open extension point for callers wiring custom hooks.
type Context struct {
	Session *entity.Session
	Values  map[string]interface{}
}

// Error is a hook-reported failure. Status zero means "use the pipeline
// default": 400 for before hooks, 500 for after hooks.
type Error struct {
	Message string
	Status  int
}

// Outcome tags the main action's result for after hooks.
type Outcome[T any] struct {
	Data T
	Err  error
}

func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

// BeforeResult is the normalized return of a before hook.
type BeforeResult[In, Out any] struct {
	Skip   bool
	Input  *In  // rewritten input, forwarded to the action when not skipping
	Result *Out // fixed result returned when skipping without error
	Err    *Error
}

// AfterResult is the normalized return of an after hook.
type AfterResult[Out any] struct {
	Result *Out
	Err    *Error
}

type Before[In, Out any] func(ctx context.Context, hc *Context, in In) BeforeResult[In, Out]

type After[In, Out any] func(ctx context.Context, hc *Context, outcome Outcome[Out], in In) AfterResult[Out]

// Hooks is the optional before/after pair for one operation.
type Hooks[In, Out any] struct {
	Before Before[In, Out]
	After  After[In, Out]
}

// Run wraps action with the hook pair. Side effects belong to the action
// only; when the before hook short-circuits, the action never runs.
func Run[In, Out any](ctx context.Context, hc *Context, h Hooks[In, Out], in In, action func(ctx context.Context, in In) (Out, error)) (Out, error) {
	var zero Out

	if h.Before != nil {
		br := h.Before(ctx, hc, in)
		if br.Err != nil {
			// An error always short-circuits, even without Skip.
			status := br.Err.Status
			if status == 0 {
				status = fiber.StatusBadRequest
			}
			return zero, apperror.Hook(br.Err.Message, status)
		}
		if br.Skip {
			if br.Result != nil {
				return *br.Result, nil
			}
			return zero, nil
		}
		if br.Input != nil {
			in = *br.Input
		}
	}

	out, err := action(ctx, in)

	if h.After != nil {
		ar := h.After(ctx, hc, Outcome[Out]{Data: out, Err: err}, in)
		if ar.Err != nil {
			status := ar.Err.Status
			if status == 0 {
				status = fiber.StatusInternalServerError
			}
			return zero, apperror.Hook(ar.Err.Message, status)
		}
		if ar.Result != nil {
			return *ar.Result, nil
		}
	}

	return out, err
}
