package engine

import (
	"context"
	"sync/atomic"
)

// ctxKey namespaces engine-internal context values away from any key a host
// application or a registered callable's own context.WithValue calls might
// use.
type ctxKey string

const ctxKeyStopFlag ctxKey = "engine.stopFlag"

// withStopFlag is called once by the worker runner at spawn time (§4.5's
// task-local slot). It is the only place this key is ever written.
func withStopFlag(parent context.Context, flag *atomic.Bool) context.Context {
	return context.WithValue(parent, ctxKeyStopFlag, flag)
}

// CurrentStopFlag returns the atomic stop flag belonging to the task record
// whose worker is executing ctx, and true. If ctx did not originate from a
// worker spawned by an Engine, it returns (nil, false).
//
// A registered callable calls this on the context.Context it always
// receives as its first parameter; it never needs the record itself.
func CurrentStopFlag(ctx context.Context) (*atomic.Bool, bool) {
	v := ctx.Value(ctxKeyStopFlag)
	if v == nil {
		return nil, false
	}
	flag, ok := v.(*atomic.Bool)
	return flag, ok
}
