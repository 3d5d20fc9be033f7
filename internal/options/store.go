// Package options holds the dotted-key option store used by the builders.
package options

import "strings"

// Store maps dotted keys to values. Writing "a.b" nests b inside a map stored
// at a. A Store has a single owner and is not safe for concurrent use.
type Store struct {
	values map[string]any
}

// New returns an empty store.
func New() *Store {
	return &Store{values: map[string]any{}}
}

// Set stores value at key, creating intermediate maps as needed. An
// intermediate value that is not a map is replaced.
func (s *Store) Set(key string, value any) {
	segments := strings.Split(key, ".")
	current := s.values

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}

		current = next
	}

	current[segments[len(segments)-1]] = value
}

// Get returns the value at key, or nil.
func (s *Store) Get(key string) any {
	value, _ := s.Lookup(key)

	return value
}

// Lookup returns the value at key and whether it was set.
func (s *Store) Lookup(key string) (any, bool) {
	if value, ok := s.values[key]; ok {
		return value, true
	}

	current := s.values
	segments := strings.Split(key, ".")

	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}

		if i == len(segments)-1 {
			return value, true
		}

		if current, ok = value.(map[string]any); !ok {
			return nil, false
		}
	}

	return nil, false
}

// Has reports whether key holds a non-nil value.
func (s *Store) Has(key string) bool {
	return s.Get(key) != nil
}

// String returns the value at key when it is a string.
func (s *Store) String(key string) string {
	value, _ := s.Get(key).(string)

	return value
}

// Bool returns the value at key when it is a bool.
func (s *Store) Bool(key string) bool {
	value, _ := s.Get(key).(bool)

	return value
}

// Append adds value to the slice stored at key.
func (s *Store) Append(key string, value any) {
	existing, _ := s.Get(key).([]any)
	s.Set(key, append(existing, value))
}
