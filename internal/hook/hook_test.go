// FILE: internal/hook/hook_test.go
package hook

import (
	"context"
	"errors"
	"testing"

	"featuregate-be/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func echoAction(calls *int) func(ctx context.Context, in string) (string, error) {
	return func(ctx context.Context, in string) (string, error) {
		*calls++
		return "echo:" + in, nil
	}
}

func TestRunWithoutHooks(t *testing.T) {
	calls := 0
	out, err := Run(context.Background(), &Context{}, Hooks[string, string]{}, "hello", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "echo:hello", out)
	assert.Equal(t, 1, calls)
}

func TestBeforeSkipWithResult(t *testing.T) {
	calls := 0
	fixed := "cached"
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Skip: true, Result: &fixed}
		},
	}

	out, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "cached", out)
	assert.Zero(t, calls, "action must not run when the before hook skips")
}

func TestBeforeSkipWithoutResult(t *testing.T) {
	calls := 0
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Skip: true}
		},
	}

	out, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Zero(t, calls)
}

func TestBeforeErrorDefaultsTo400(t *testing.T) {
	calls := 0
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Err: &Error{Message: "rejected"}}
		},
	}

	_, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.EqualError(t, err, "rejected")
	assert.Equal(t, 400, apperror.StatusOf(err))
	assert.Zero(t, calls, "an error must short-circuit even without Skip")
}

func TestBeforeErrorCustomStatus(t *testing.T) {
	calls := 0
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Err: &Error{Message: "quota exceeded", Status: 429}}
		},
	}

	_, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.Equal(t, 429, apperror.StatusOf(err))
	assert.Zero(t, calls)
}

func TestBeforeRewritesInput(t *testing.T) {
	calls := 0
	rewritten := "patched"
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Input: &rewritten}
		},
	}

	out, err := Run(context.Background(), &Context{}, h, "original", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "echo:patched", out)
	assert.Equal(t, 1, calls)
}

func TestAfterErrorDefaultsTo500(t *testing.T) {
	calls := 0
	h := Hooks[string, string]{
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			return AfterResult[string]{Err: &Error{Message: "veto"}}
		},
	}

	out, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.EqualError(t, err, "veto")
	assert.Equal(t, 500, apperror.StatusOf(err))
	assert.Equal(t, "", out, "after-hook error discards the action result")
	assert.Equal(t, 1, calls)
}

func TestAfterErrorWinsOverData(t *testing.T) {
	replacement := "replaced"
	h := Hooks[string, string]{
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			return AfterResult[string]{Result: &replacement, Err: &Error{Message: "veto", Status: 409}}
		},
	}

	_, err := Run(context.Background(), &Context{}, h, "hello", func(ctx context.Context, in string) (string, error) {
		return "ok", nil
	})

	assert.EqualError(t, err, "veto")
	assert.Equal(t, 409, apperror.StatusOf(err))
}

func TestAfterReplacesResult(t *testing.T) {
	replacement := "replaced"
	h := Hooks[string, string]{
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			assert.Equal(t, "echo:hello", outcome.Data)
			return AfterResult[string]{Result: &replacement}
		},
	}

	calls := 0
	out, err := Run(context.Background(), &Context{}, h, "hello", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "replaced", out)
}

func TestAfterReplacesFailureWithResult(t *testing.T) {
	fallback := "fallback"
	h := Hooks[string, string]{
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			assert.True(t, outcome.Failed())
			return AfterResult[string]{Result: &fallback}
		},
	}

	out, err := Run(context.Background(), &Context{}, h, "hello", func(ctx context.Context, in string) (string, error) {
		return "", errors.New("boom")
	})

	assert.NoError(t, err, "an after-hook result overrides the action error")
	assert.Equal(t, "fallback", out)
}

func TestAfterObservesActionError(t *testing.T) {
	var seen error
	h := Hooks[string, string]{
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			seen = outcome.Err
			return AfterResult[string]{}
		},
	}

	_, err := Run(context.Background(), &Context{}, h, "hello", func(ctx context.Context, in string) (string, error) {
		return "", errors.New("boom")
	})

	assert.EqualError(t, err, "boom", "a pass-through after hook keeps the action error")
	assert.EqualError(t, seen, "boom")
}

func TestBeforeAndAfterCompose(t *testing.T) {
	rewritten := "rewritten"
	suffix := func(s string) *string { v := s + "+after"; return &v }
	h := Hooks[string, string]{
		Before: func(ctx context.Context, hc *Context, in string) BeforeResult[string, string] {
			return BeforeResult[string, string]{Input: &rewritten}
		},
		After: func(ctx context.Context, hc *Context, outcome Outcome[string], in string) AfterResult[string] {
			// The after hook sees the rewritten input, not the original.
			assert.Equal(t, "rewritten", in)
			return AfterResult[string]{Result: suffix(outcome.Data)}
		},
	}

	calls := 0
	out, err := Run(context.Background(), &Context{}, h, "original", echoAction(&calls))

	assert.NoError(t, err)
	assert.Equal(t, "echo:rewritten+after", out)
}
