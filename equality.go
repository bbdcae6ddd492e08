package reactor

import "reflect"

// valuesEqual decides whether a write actually changes a slot: NaN compares
// equal to NaN (unlike ==), and two aggregates compare by identity of their
// backing map/slice/pointer rather than by deep structural equality, since a
// Map/Seq write stores that identity, not a snapshot of it.
func valuesEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok2 := toFloat(b); ok2 {
			if af != af && bf != bf {
				return true
			}
		}
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() && av.Kind() == bv.Kind() {
		switch av.Kind() {
		case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Chan, reflect.Func:
			if av.Kind() != reflect.Ptr && (av.IsNil() || bv.IsNil()) {
				return av.IsNil() == bv.IsNil()
			}
			return av.Pointer() == bv.Pointer()
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	return 0, false
}

// wrapIfAggregate deep-wraps v into a reactive Map/Seq if it is a raw
// map[any]any or []any, matching the Cell write rule "deeply wrapping the
// new value if it is an aggregate". Any other value passes through.
func wrapIfAggregate(v any) any {
	switch v.(type) {
	case map[any]any, []any:
		return Reactive(v)
	default:
		return v
	}
}
