package alldressed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// Attributes is the raw attribute map of an entity.
type Attributes map[string]any

// Entity is the attribute bag shared by every resource. Relations that have a
// typed form live on the embedding struct instead of in the bag.
type Entity struct {
	attributes Attributes
	present    map[string]bool
}

// NewEntity returns an entity holding a copy of attrs.
func NewEntity(attrs Attributes) Entity {
	return Entity{attributes: maps.Clone(attrs)}
}

// ID returns the id attribute.
func (e *Entity) ID() string {
	return e.String("id")
}

// Get returns the attribute at key. Dotted keys walk nested maps.
func (e *Entity) Get(key string) any {
	value, _ := lookup(e.attributes, key)

	return value
}

// Has reports whether key was present in the decoded payload, even when null.
func (e *Entity) Has(key string) bool {
	if e.present[key] {
		return true
	}

	_, ok := lookup(e.attributes, key)

	return ok
}

// Missing is the negation of Has.
func (e *Entity) Missing(key string) bool {
	return !e.Has(key)
}

// Set stores value at key. The id of an entity never changes once set.
func (e *Entity) Set(key string, value any) {
	if key == "id" && e.ID() != "" {
		return
	}

	if e.attributes == nil {
		e.attributes = Attributes{}
	}

	e.attributes[key] = value
}

// String returns the attribute at key as a string.
func (e *Entity) String(key string) string {
	switch value := e.Get(key).(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		return ""
	}
}

// Int returns the attribute at key as an int.
func (e *Entity) Int(key string) int {
	switch value := e.Get(key).(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		n, _ := strconv.Atoi(value)

		return n
	default:
		return 0
	}
}

// Float returns the attribute at key as a float64.
func (e *Entity) Float(key string) float64 {
	switch value := e.Get(key).(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		f, _ := strconv.ParseFloat(value, 64)

		return f
	default:
		return 0
	}
}

// Bool returns the attribute at key as a bool. Numbers are true when non
// zero.
func (e *Entity) Bool(key string) bool {
	switch value := e.Get(key).(type) {
	case bool:
		return value
	case float64:
		return value != 0
	case int:
		return value != 0
	case string:
		b, _ := strconv.ParseBool(value)

		return b
	default:
		return false
	}
}

// Time returns the attribute at key parsed as a timestamp in UTC.
func (e *Entity) Time(key string) time.Time {
	switch value := e.Get(key).(type) {
	case time.Time:
		return value.UTC()
	case string:
		t, _ := ParseTime(value)

		return t
	default:
		return time.Time{}
	}
}

// Attributes returns a copy of the bag.
func (e *Entity) Attributes() Attributes {
	return maps.Clone(e.attributes)
}

// UnmarshalJSON decodes an object into the bag.
func (e *Entity) UnmarshalJSON(data []byte) error {
	return e.decode(data, nil)
}

// MarshalJSON encodes the bag.
func (e Entity) MarshalJSON() ([]byte, error) {
	return e.encode(nil)
}

// relations maps payload keys to the typed fields they hydrate.
type relations map[string]any

func (e *Entity) decode(data []byte, rel relations) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.attributes = make(Attributes, len(raw))
	e.present = make(map[string]bool, len(rel))

	for key, value := range raw {
		target, ok := rel[key]
		if !ok {
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}

			e.attributes[key] = v

			continue
		}

		e.present[key] = true

		if isBlank(value) {
			continue
		}

		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}
	}

	return nil
}

func (e Entity) encode(rel relations) ([]byte, error) {
	out := make(map[string]any, len(e.attributes)+len(rel))
	maps.Copy(out, e.attributes)

	for key, target := range rel {
		encoded, err := json.Marshal(target)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", key, err)
		}

		if string(encoded) == "null" {
			continue
		}

		out[key] = json.RawMessage(encoded)
	}

	return json.Marshal(out)
}

// Decode hydrates a T from a JSON object.
func Decode[T any](data []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeAttributes hydrates a T from an attribute map.
func DecodeAttributes[T any](attrs Attributes) (*T, error) {
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}

	return Decode[T](data)
}

// ParseTime parses the timestamp layouts the API emits and returns the result
// in UTC.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("parsing time %q: unsupported layout", value)
}

// isBlank reports whether a relation payload carries nothing to hydrate.
func isBlank(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)

	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("[]")) ||
		bytes.Equal(trimmed, []byte("{}"))
}

func lookup(attrs Attributes, key string) (any, bool) {
	if value, ok := attrs[key]; ok {
		return value, true
	}

	head, rest, found := strings.Cut(key, ".")
	if !found {
		return nil, false
	}

	switch nested := attrs[head].(type) {
	case map[string]any:
		return lookup(nested, rest)
	case Attributes:
		return lookup(nested, rest)
	default:
		return nil, false
	}
}
