// Package decode reads typed fields off raw browser event objects.
//
// A raw event is the JSON object the browser side ships for one native event
// occurrence. Field access is duck-typed on the browser side, so every read
// here is checked: a missing field or a value of the wrong type is a
// *FieldError, and composite decoders treat any field failure as fatal for
// the whole event (no partial records).
package decode

import (
	"fmt"
	"math"
	"strconv"
)

// Raw is a read-only view of one native event object. The layer above never
// mutates it.
type Raw map[string]any

// FieldError is the single error kind produced by this package: a field was
// absent or held a value of the wrong type.
type FieldError struct {
	Field string
	Want  string
	Got   any
}

func (e *FieldError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("field %q missing (want %s)", e.Field, e.Want)
	}
	return fmt.Sprintf("field %q is %T, want %s", e.Field, e.Got, e.Want)
}

func fail(field, want string, got any) error {
	return &FieldError{Field: field, Want: want, Got: got}
}

// asFloat widens any numeric value. encoding/json hands us float64, but raw
// events built in Go (tests, embedded hosts) may carry native integer kinds.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Float reads a numeric field.
func (r Raw) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, fail(field, "number", nil)
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, fail(field, "number", v)
	}
	return f, nil
}

// Int reads a numeric field that must hold a whole number.
func (r Raw) Int(field string) (int, error) {
	f, err := r.Float(field)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fail(field, "integer", f)
	}
	return int(f), nil
}

// Bool reads a boolean field. There is no defaulting: absence is a failure,
// not false.
func (r Raw) Bool(field string) (bool, error) {
	v, ok := r[field]
	if !ok {
		return false, fail(field, "bool", nil)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fail(field, "bool", v)
	}
	return b, nil
}

// String reads a string field.
func (r Raw) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", fail(field, "string", nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", fail(field, "string", v)
	}
	return s, nil
}

// Object reads a nested object field.
func (r Raw) Object(field string) (Raw, error) {
	v, ok := r[field]
	if !ok {
		return nil, fail(field, "object", nil)
	}
	switch o := v.(type) {
	case Raw:
		return o, nil
	case map[string]any:
		return Raw(o), nil
	}
	return nil, fail(field, "object", v)
}

// Pair reads two numeric fields as one coordinate pair. Either field failing
// fails the pair.
func (r Raw) Pair(xField, yField string) (x, y float64, err error) {
	if x, err = r.Float(xField); err != nil {
		return 0, 0, err
	}
	if y, err = r.Float(yField); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// List decodes an array-like collection stored under field. Browser
// collections like TouchList and FileList are not real arrays: they expose an
// integer "length" and index keys "0".."length-1". The walk fails closed if
// length is missing or any index key is absent, and preserves index order.
func List[T any](r Raw, field string, item func(Raw) (T, error)) ([]T, error) {
	coll, n, err := r.arrayLike(field)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		el, err := coll.Object(strconv.Itoa(i))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		v, err := item(el)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// StringList decodes an array-like collection of strings (a DOMStringList
// such as dataTransfer.types).
func (r Raw) StringList(field string) ([]string, error) {
	coll, n, err := r.arrayLike(field)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := coll.String(strconv.Itoa(i))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r Raw) arrayLike(field string) (Raw, int, error) {
	coll, err := r.Object(field)
	if err != nil {
		return nil, 0, err
	}
	n, err := coll.Int("length")
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", field, err)
	}
	if n < 0 {
		return nil, 0, fmt.Errorf("%s: %w", field, fail("length", "non-negative integer", n))
	}
	return coll, n, nil
}
