package engine

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
)

// DefaultStopTimeout is applied to a registration that does not specify one.
const DefaultStopTimeout = 1000 * time.Millisecond

// invoker is the erased call wrapper built once at registration time. It
// accepts the frozen argument list of a dispatched task and returns its
// boxed result. ctx carries the dispatched record's stop flag (see
// context.go) so a callable can observe CurrentStopFlag.
type invoker func(ctx context.Context, args []Box) (Box, error)

// descriptor is a registered task type's immutable-until-unregister entry.
type descriptor struct {
	taskType    int
	group       int
	stopTimeout time.Duration
	paramTypes  []reflect.Type
	invoke      invoker
}

// registerOptions collects the functional options accepted by Register.
type registerOptions struct {
	group       int
	stopTimeout time.Duration
	hasTimeout  bool
}

// RegisterOption customises a Register call.
type RegisterOption func(*registerOptions)

// WithGroup selects the exclusion class a task type's invocations compete
// within. The default group is 0.
func WithGroup(group int) RegisterOption {
	return func(o *registerOptions) { o.group = group }
}

// WithStopTimeout overrides the cooperative-stop grace period. The default
// is DefaultStopTimeout.
func WithStopTimeout(d time.Duration) RegisterOption {
	return func(o *registerOptions) {
		o.stopTimeout = d
		o.hasTimeout = true
	}
}

// registry stores, keyed by task type, the erased callable plus its group
// and stop-timeout. It is guarded by its own mutex independent of the
// engine's serialising loop: registration does not need to serialise with
// dispatch admission, only with itself.
type registry struct {
	mu      sync.RWMutex
	entries map[int]*descriptor
}

func newRegistry() *registry {
	return &registry{entries: make(map[int]*descriptor)}
}

// register builds an adapter closure around callable via reflection,
// performed once here rather than per dispatch, and stores it under
// taskType. callable must be a func; its return shape is resolved per the
// coercion priority documented in SPEC_FULL.md §4.2.
func (r *registry) register(taskType int, callable any, opts ...RegisterOption) error {
	options := registerOptions{group: 0, stopTimeout: DefaultStopTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[taskType]; exists {
		return apperrors.New(apperrors.AlreadyRegistered, fmt.Sprintf("task type %d는 이미 등록되어 있습니다", taskType))
	}

	fn := reflect.ValueOf(callable)
	if fn.Kind() != reflect.Func {
		return apperrors.New(apperrors.Unconvertible, "callable은 함수여야 합니다")
	}
	fnType := fn.Type()

	// Every registered callable's first parameter must be a context.Context,
	// the vehicle through which CurrentStopFlag is made available to it.
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if fnType.NumIn() == 0 || !fnType.In(0).Implements(ctxType) {
		return apperrors.New(apperrors.Unconvertible, "callable의 첫 번째 인자는 context.Context여야 합니다")
	}

	paramTypes := make([]reflect.Type, fnType.NumIn()-1)
	for i := 1; i < fnType.NumIn(); i++ {
		paramTypes[i-1] = fnType.In(i)
	}

	resultWrap, err := buildResultWrapper(fnType)
	if err != nil {
		return err
	}

	inv := func(ctx context.Context, args []Box) (Box, error) {
		callArgs := make([]reflect.Value, fnType.NumIn())
		callArgs[0] = reflect.ValueOf(ctx)
		for i, pt := range paramTypes {
			v, err := unwrapInto(args[i], pt)
			if err != nil {
				return Box{}, err
			}
			callArgs[i+1] = v
		}
		out := fn.Call(callArgs)
		return resultWrap(out)
	}

	r.entries[taskType] = &descriptor{
		taskType:    taskType,
		group:       options.group,
		stopTimeout: options.stopTimeout,
		paramTypes:  paramTypes,
		invoke:      inv,
	}
	return nil
}

// buildResultWrapper resolves, once at registration, how a callable's return
// value(s) are boxed. A trailing error return is split off first: when it is
// non-nil the call fails with that error. Of the remaining returns: nothing
// -> Empty; a single primitive-convertible return -> wrapped directly; a
// single opaque-registered struct return -> wrapped by token. Anything else
// fails Unconvertible immediately so the error surfaces at Register, not at
// first dispatch.
func buildResultWrapper(fnType reflect.Type) (func([]reflect.Value) (Box, error), error) {
	numOut := fnType.NumOut()
	hasErr := numOut > 0 && fnType.Out(numOut-1) == reflect.TypeOf((*error)(nil)).Elem()
	if hasErr {
		numOut--
	}
	var wrap func([]reflect.Value) (Box, error)
	switch numOut {
	case 0:
		wrap = func([]reflect.Value) (Box, error) { return Empty(), nil }
	case 1:
		outType := fnType.Out(0)
		if token, ok := tokenForType(outType); ok {
			wrap = func(out []reflect.Value) (Box, error) {
				return WrapOpaque(token, out[0].Interface())
			}
			break
		}
		// Probe primitive convertibility with the zero value; Wrap only
		// accepts the concrete kinds it documents, so a truly unconvertible
		// return type fails here at registration time.
		if _, err := Wrap(reflect.Zero(outType).Interface()); err != nil {
			return nil, apperrors.New(apperrors.Unconvertible, fmt.Sprintf("반환 타입 %s을(를) box로 변환할 수 없습니다", outType))
		}
		wrap = func(out []reflect.Value) (Box, error) {
			return Wrap(out[0].Interface())
		}
	default:
		return nil, apperrors.New(apperrors.Unconvertible, "콜러블은 error 외에 최대 하나의 반환값만 가질 수 있습니다")
	}
	if !hasErr {
		return wrap, nil
	}
	return func(out []reflect.Value) (Box, error) {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return Empty(), errVal.Interface().(error)
		}
		return wrap(out)
	}, nil
}

// tokenForType reports the opaque registration token for a reflect.Type, if
// any type was registered via RegisterType for exactly that type.
func tokenForType(t reflect.Type) (string, bool) {
	found := ""
	ok := false
	opaqueTokens.Range(func(_, value any) bool {
		ot := value.(opaqueType)
		if ot.typ == t {
			found, ok = ot.token, true
			return false
		}
		return true
	})
	return found, ok
}

// unwrapInto coerces a single argument box into a reflect.Value assignable
// to paramType, using the opaque token registry when paramType is not one
// of Box's native kinds.
func unwrapInto(b Box, paramType reflect.Type) (reflect.Value, error) {
	if token, ok := tokenForType(paramType); ok {
		if b.kind != KindOpaque || b.token != token {
			return reflect.Value{}, apperrors.New(apperrors.ArgMismatch, fmt.Sprintf("인자가 %s 타입(token=%s)이 아닙니다", paramType, token))
		}
		return reflect.ValueOf(b.opaque), nil
	}

	zero := reflect.Zero(paramType).Interface()
	converted, err := wrapThenConvert(b, paramType)
	if err != nil {
		return reflect.Value{}, apperrors.New(apperrors.ArgMismatch, fmt.Sprintf("인자를 %T로 변환할 수 없습니다: %v", zero, err))
	}
	return converted, nil
}

// wrapThenConvert dispatches to the right Unwrap instantiation based on
// paramType's kind, since Go generics cannot be instantiated dynamically
// from a reflect.Type at runtime.
func wrapThenConvert(b Box, paramType reflect.Type) (reflect.Value, error) {
	switch paramType.Kind() {
	case reflect.Int:
		v, err := Unwrap[int](b)
		return reflect.ValueOf(v), err
	case reflect.Int8:
		v, err := Unwrap[int8](b)
		return reflect.ValueOf(v), err
	case reflect.Int16:
		v, err := Unwrap[int16](b)
		return reflect.ValueOf(v), err
	case reflect.Int32:
		v, err := Unwrap[int32](b)
		return reflect.ValueOf(v), err
	case reflect.Int64:
		v, err := Unwrap[int64](b)
		return reflect.ValueOf(v), err
	case reflect.Uint:
		v, err := Unwrap[uint](b)
		return reflect.ValueOf(v), err
	case reflect.Uint32:
		v, err := Unwrap[uint32](b)
		return reflect.ValueOf(v), err
	case reflect.Uint64:
		v, err := Unwrap[uint64](b)
		return reflect.ValueOf(v), err
	case reflect.Float32:
		v, err := Unwrap[float32](b)
		return reflect.ValueOf(v), err
	case reflect.Float64:
		v, err := Unwrap[float64](b)
		return reflect.ValueOf(v), err
	case reflect.Bool:
		v, err := Unwrap[bool](b)
		return reflect.ValueOf(v), err
	case reflect.String:
		v, err := Unwrap[string](b)
		return reflect.ValueOf(v), err
	case reflect.Slice:
		if paramType.Elem().Kind() == reflect.Uint8 {
			v, err := Unwrap[[]byte](b)
			return reflect.ValueOf(v), err
		}
	}
	return reflect.Value{}, apperrors.New(apperrors.Type, fmt.Sprintf("지원하지 않는 파라미터 타입입니다: %s", paramType))
}

// coerceArgs validates arity and per-position types against d's frozen
// invoker signature, without yet invoking anything. Used by AddTask so
// ArgMismatch is raised before any record is created.
func (d *descriptor) coerceArgs(args []Box) error {
	if len(args) != len(d.paramTypes) {
		return apperrors.New(apperrors.ArgMismatch, fmt.Sprintf("task type %d는 인자 %d개를 기대하지만 %d개가 전달되었습니다", d.taskType, len(d.paramTypes), len(args)))
	}
	for i, pt := range d.paramTypes {
		if _, err := unwrapInto(args[i], pt); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) unregister(taskType int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[taskType]; !ok {
		return false
	}
	delete(r.entries, taskType)
	return true
}

func (r *registry) isRegistered(taskType int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[taskType]
	return ok
}

func (r *registry) groupOf(taskType int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[taskType]
	if !ok {
		return 0, false
	}
	return d.group, true
}

func (r *registry) lookup(taskType int) (*descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[taskType]
	return d, ok
}
