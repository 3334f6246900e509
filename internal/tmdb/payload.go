package tmdb

import (
	"encoding/json"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Payload is a decoded TMDB JSON object. Numbers are kept as json.Number so
// large budgets and revenues survive decoding.
type Payload map[string]any

func DecodePayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "failed to decode TMDB response")
	}
	if p == nil {
		return nil, errors.New("failed to decode TMDB response: body is null")
	}
	return p, nil
}

// Fields returns a reader over p. Accessors on the reader return zero values
// once an error has been recorded; check Err after the last read.
func (p Payload) Fields() *FieldReader {
	return &FieldReader{p: p}
}

// FieldReader reads typed values from a Payload and keeps the first error.
type FieldReader struct {
	p   Payload
	err error
}

func (r *FieldReader) Err() error {
	return r.err
}

func (r *FieldReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *FieldReader) value(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.p[key]
	if !ok {
		r.fail(&MissingKeyError{Key: key})
		return nil, false
	}
	return v, true
}

// String treats null as the empty string: TMDB sends null imdb_id and
// release_date for unreleased titles.
func (r *FieldReader) String(key string) string {
	v, ok := r.value(key)
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(&FieldTypeError{Key: key, Want: "string", Got: v})
		return ""
	}
	return s
}

// OptionalString maps null and "" to nil. The key itself must be present.
func (r *FieldReader) OptionalString(key string) *string {
	s := r.String(key)
	if s == "" {
		return nil
	}
	return &s
}

func (r *FieldReader) Int64(key string) int64 {
	v, ok := r.value(key)
	if !ok {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		r.fail(&FieldTypeError{Key: key, Want: "integer", Got: v})
	}
	return n
}

func (r *FieldReader) Int(key string) int {
	return int(r.Int64(key))
}

func (r *FieldReader) OptionalInt(key string) *int {
	v, ok := r.value(key)
	if !ok || v == nil {
		return nil
	}
	n, ok := toInt64(v)
	if !ok {
		r.fail(&FieldTypeError{Key: key, Want: "integer", Got: v})
		return nil
	}
	i := int(n)
	return &i
}

func (r *FieldReader) Float(key string) float64 {
	v, ok := r.value(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			r.fail(&FieldTypeError{Key: key, Want: "number", Got: v})
		}
		return f
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	r.fail(&FieldTypeError{Key: key, Want: "number", Got: v})
	return 0
}

func (r *FieldReader) Bool(key string) bool {
	v, ok := r.value(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(&FieldTypeError{Key: key, Want: "bool", Got: v})
	}
	return b
}

// List returns the objects of an array field. null yields an empty list.
func (r *FieldReader) List(key string) []Payload {
	v, ok := r.value(key)
	if !ok || v == nil {
		return nil
	}

	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []Payload:
		return l
	case []map[string]any:
		out := make([]Payload, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out
	default:
		r.fail(&FieldTypeError{Key: key, Want: "array", Got: v})
		return nil
	}

	out := make([]Payload, 0, len(items))
	for _, item := range items {
		switch m := item.(type) {
		case map[string]any:
			out = append(out, m)
		case Payload:
			out = append(out, m)
		default:
			r.fail(&FieldTypeError{Key: key, Want: "array of objects", Got: item})
			return nil
		}
	}
	return out
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// floatToInt64 accepts whole numbers inside the int64 range only. 2^63 is
// exactly representable as a float64, so the upper bound is exclusive.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}
