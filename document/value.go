// Package document models the hierarchical values decoded from input records
// and fed to the Flattener and collectors: a general-purpose
// object/array/scalar/null sum type capable of representing any JSON value.
package document

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies which alternative of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindObject
	KindArray
)

// Value is a hierarchical document value: an object, an array, a scalar, or null.
type Value struct {
	Kind   Kind
	Scalar string
	Object map[string]Value
	Array  []Value
}

// FromAny converts a value produced by encoding/json.Unmarshal (into `any`)
// into a document.Value. JSON numbers and booleans are canonicalized to their
// textual form so that scalar equality in the collectors reduces to string
// equality.
func FromAny(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case string:
		return Value{Kind: KindScalar, Scalar: v}, nil
	case bool:
		return Value{Kind: KindScalar, Scalar: strconv.FormatBool(v)}, nil
	case float64:
		return Value{Kind: KindScalar, Scalar: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for k, child := range v {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, fmt.Errorf("decoding field %q: %w", k, err)
			}
			obj[k] = cv
		}
		return Value{Kind: KindObject, Object: obj}, nil
	case []any:
		arr := make([]Value, len(v))
		for i, child := range v {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, fmt.Errorf("decoding array element %d: %w", i, err)
			}
			arr[i] = cv
		}
		return Value{Kind: KindArray, Array: arr}, nil
	default:
		return Value{}, fmt.Errorf("unsupported decoded type %T", v)
	}
}

// IsEmpty reports whether v is an object or array with no members.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindObject:
		return len(v.Object) == 0
	case KindArray:
		return len(v.Array) == 0
	}
	return false
}

// SortedKeys returns v's object keys in lexicographic order, for traversal
// order that does not depend on Go's randomized map iteration.
func (v Value) SortedKeys() []string {
	keys := make([]string, 0, len(v.Object))
	for k := range v.Object {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
