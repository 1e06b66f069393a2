package engine

import (
	"fmt"
	"reflect"
	"sync"

	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
)

// Kind identifies the concrete shape a Box carries.
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindString
	KindList
	KindMap
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindBytes:
		return "Bytes"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// Box is the uniform dynamic wrapper for every argument and result value that
// crosses the task registration boundary. It is intentionally a flat struct
// rather than an interface so that zero-value Box (Empty) is usable directly
// and equality stays structural (see Equal).
type Box struct {
	kind  Kind
	i     int64
	f     float64
	b     bool
	bytes []byte
	s     string
	list  []Box
	m     map[string]Box

	// opaque holds a user-registered type; token names the registration it was
	// wrapped under, so Unwrap can refuse a box wrapped under the wrong token.
	opaque any
	token  string
}

// opaqueType pairs a stable string token with the reflect.Type it denotes, so
// that RegisterType and Unwrap can validate round-trips without re-deriving
// the type from a live value.
type opaqueType struct {
	token string
	typ   reflect.Type
}

var opaqueTokens sync.Map // string -> opaqueType

// RegisterType associates a stable token with Go type T so that values of
// that type may be boxed with WrapOpaque and safely recovered with
// Unwrap[T]. Registration is expected at program init time, not per-dispatch.
func RegisterType[T any](token string) {
	var zero T
	opaqueTokens.Store(token, opaqueType{
		token: token,
		typ:   reflect.TypeOf(zero),
	})
}

// Empty returns the distinguished "no value" box.
func Empty() Box {
	return Box{kind: KindEmpty}
}

// IsEmpty reports whether b carries no value.
func (b Box) IsEmpty() bool {
	return b.kind == KindEmpty
}

// Kind reports the concrete shape carried by b.
func (b Box) Kind() Kind {
	return b.kind
}

// Wrap boxes an arbitrary Go value using the registration coercion priority
// described in the task registry: primitives wrap directly, []Box and
// map[string]Box wrap as List/Map, and anything else is attempted as an
// opaque type only via WrapOpaque (Wrap itself never guesses a token). Other
// slice and map types are not converted element by element; they fail with
// Unconvertible.
func Wrap(x any) (Box, error) {
	switch v := x.(type) {
	case nil:
		return Empty(), nil
	case Box:
		return v, nil
	case int:
		return Box{kind: KindInt, i: int64(v)}, nil
	case int8:
		return Box{kind: KindInt, i: int64(v)}, nil
	case int16:
		return Box{kind: KindInt, i: int64(v)}, nil
	case int32:
		return Box{kind: KindInt, i: int64(v)}, nil
	case int64:
		return Box{kind: KindInt, i: v}, nil
	case uint:
		return Box{kind: KindInt, i: int64(v)}, nil
	case uint32:
		return Box{kind: KindInt, i: int64(v)}, nil
	case uint64:
		return Box{kind: KindInt, i: int64(v)}, nil
	case float32:
		return Box{kind: KindFloat, f: float64(v)}, nil
	case float64:
		return Box{kind: KindFloat, f: v}, nil
	case bool:
		return Box{kind: KindBool, b: v}, nil
	case []byte:
		return Box{kind: KindBytes, bytes: append([]byte(nil), v...)}, nil
	case string:
		return Box{kind: KindString, s: v}, nil
	case []Box:
		return Box{kind: KindList, list: append([]Box(nil), v...)}, nil
	case map[string]Box:
		cp := make(map[string]Box, len(v))
		for k, val := range v {
			cp[k] = val
		}
		return Box{kind: KindMap, m: cp}, nil
	}

	return Box{}, apperrors.New(apperrors.Unconvertible, fmt.Sprintf("%T을(를) box로 변환할 수 없습니다", x))
}

// WrapOpaque boxes v as the opaque type registered under token. It fails
// Unconvertible if token was never registered, or if v's type does not
// match the type RegisterType recorded for that token.
func WrapOpaque(token string, v any) (Box, error) {
	entry, ok := opaqueTokens.Load(token)
	if !ok {
		return Box{}, apperrors.New(apperrors.Unconvertible, fmt.Sprintf("등록되지 않은 타입 토큰입니다: %s", token))
	}
	ot := entry.(opaqueType)
	if reflect.TypeOf(v) != ot.typ {
		return Box{}, apperrors.New(apperrors.Unconvertible, fmt.Sprintf("토큰 %s에 등록된 타입과 일치하지 않습니다", token))
	}
	return Box{kind: KindOpaque, opaque: v, token: token}, nil
}

// Unwrap recovers a typed value from b. It fails with apperrors.Type when
// b's contents do not match T (including an opaque box unwrapped against
// the wrong token, or one built from an unregistered token).
func Unwrap[T any](b Box) (T, error) {
	var zero T
	target := reflect.TypeOf(zero)

	switch b.kind {
	case KindOpaque:
		if v, ok := b.opaque.(T); ok {
			return v, nil
		}
		return zero, apperrors.New(apperrors.Type, fmt.Sprintf("box(token=%s)는 %T로 변환할 수 없습니다", b.token, zero))
	case KindInt:
		if v, ok := any(b.i).(T); ok {
			return v, nil
		}
		return coerceNumericInt[T](b.i, target)
	case KindFloat:
		if v, ok := any(b.f).(T); ok {
			return v, nil
		}
		return zero, apperrors.New(apperrors.Type, "box(Float)는 요청한 타입으로 변환할 수 없습니다")
	case KindBool:
		if v, ok := any(b.b).(T); ok {
			return v, nil
		}
	case KindBytes:
		if v, ok := any(b.bytes).(T); ok {
			return v, nil
		}
	case KindString:
		if v, ok := any(b.s).(T); ok {
			return v, nil
		}
	case KindList:
		if v, ok := any(b.list).(T); ok {
			return v, nil
		}
	case KindMap:
		if v, ok := any(b.m).(T); ok {
			return v, nil
		}
	case KindEmpty:
		if v, ok := any(nil).(T); ok {
			return v, nil
		}
	}

	return zero, apperrors.New(apperrors.Type, fmt.Sprintf("box(%s)는 %T로 변환할 수 없습니다", b.kind, zero))
}

// coerceNumericInt widens/narrows a boxed int64 into whichever numeric type
// T actually is, via reflection, so registered callables may declare e.g.
// int or int32 parameters without every caller needing to box exactly
// int64. Returns the converted value and a nil error on success.
func coerceNumericInt[T any](i int64, target reflect.Type) (T, error) {
	var zero T
	if target == nil {
		return zero, apperrors.New(apperrors.Type, "box(Int)는 요청한 타입으로 변환할 수 없습니다")
	}
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		converted := reflect.ValueOf(i).Convert(target)
		if v, ok := converted.Interface().(T); ok {
			return v, nil
		}
	}
	return zero, apperrors.New(apperrors.Type, "box(Int)는 요청한 타입으로 변환할 수 없습니다")
}

// Equal reports whether two boxes are structurally equal.
func (b Box) Equal(other Box) bool {
	if b.kind != other.kind {
		return false
	}
	switch b.kind {
	case KindEmpty:
		return true
	case KindInt:
		return b.i == other.i
	case KindFloat:
		return b.f == other.f
	case KindBool:
		return b.b == other.b
	case KindBytes:
		return string(b.bytes) == string(other.bytes)
	case KindString:
		return b.s == other.s
	case KindList:
		if len(b.list) != len(other.list) {
			return false
		}
		for i := range b.list {
			if !b.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(b.m) != len(other.m) {
			return false
		}
		for k, v := range b.m {
			ov, ok := other.m[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	case KindOpaque:
		return b.token == other.token && reflect.DeepEqual(b.opaque, other.opaque)
	default:
		return false
	}
}

// String renders b for logging/debugging; it is not meant to round-trip.
func (b Box) String() string {
	switch b.kind {
	case KindEmpty:
		return "Empty"
	case KindInt:
		return fmt.Sprintf("Int(%d)", b.i)
	case KindFloat:
		return fmt.Sprintf("Float(%v)", b.f)
	case KindBool:
		return fmt.Sprintf("Bool(%v)", b.b)
	case KindBytes:
		return fmt.Sprintf("Bytes(%d bytes)", len(b.bytes))
	case KindString:
		return fmt.Sprintf("String(%q)", b.s)
	case KindList:
		return fmt.Sprintf("List(%d)", len(b.list))
	case KindMap:
		return fmt.Sprintf("Map(%d)", len(b.m))
	case KindOpaque:
		return fmt.Sprintf("Opaque(%s)", b.token)
	default:
		return "Unknown"
	}
}
