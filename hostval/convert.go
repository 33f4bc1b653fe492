package hostval

import (
	"fmt"
	"math"

	"github.com/scriptkit/bridgegen/guest"
)

// Pull reads the positional argument at pos (1-based) from the call and
// converts it from the guest's native representation. Conversion failures
// surface as errors wrapping guest.ErrConversionFailed so the translation
// layer can classify them.
func Pull(call guest.Call, pos int) (Value, error) {
	if pos < 1 || pos > call.ArgCount() {
		return Value{}, fmt.Errorf("%w: argument %d out of range (have %d)",
			guest.ErrInvalidArgument, pos, call.ArgCount())
	}
	return fromGuest(call.Arg(pos), pos)
}

// Push converts v back into the guest's native representation and places it
// on the call's return stack.
func Push(call guest.Call, v Value) error {
	gv, err := toGuest(v)
	if err != nil {
		return err
	}
	call.Push(gv)
	return nil
}

func fromGuest(gv guest.Value, pos int) (Value, error) {
	switch x := gv.(type) {
	case nil:
		return Nil(), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case float64:
		// Guest engines commonly carry one numeric type. Preserve exact
		// integers as ints so host implementations can switch on kind.
		// The upper bound must be exclusive: 2^63 is representable as a
		// float64 but int64(2^63) overflows.
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.Ldexp(1, 63) {
			return Int(int64(x)), nil
		}
		return Float(x), nil
	case string:
		return String(x), nil
	case []guest.Value:
		list := make([]Value, 0, len(x))
		for i, e := range x {
			hv, err := fromGuest(e, pos)
			if err != nil {
				ReleaseAll(list)
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			list = append(list, hv)
		}
		return List(list...), nil
	case map[string]guest.Value:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			hv, err := fromGuest(e, pos)
			if err != nil {
				for mk := range m {
					rv := m[mk]
					rv.Release()
				}
				return Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			m[k] = hv
		}
		return Map(m), nil
	default:
		return Value{}, fmt.Errorf("%w: argument %d has unsupported guest type %T",
			guest.ErrConversionFailed, pos, gv)
	}
}

func toGuest(v Value) (guest.Value, error) {
	switch v.kind {
	case KindNil:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		return v.f, nil
	case KindString:
		return v.s, nil
	case KindList:
		out := make([]guest.Value, len(v.list))
		for i, e := range v.list {
			gv, err := toGuest(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = gv
		}
		return out, nil
	case KindMap:
		out := make(map[string]guest.Value, len(v.m))
		for k, e := range v.m {
			gv, err := toGuest(e)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: result has invalid kind %s",
			guest.ErrConversionFailed, v.kind)
	}
}
