package signature

import "encoding/json"

// Flag is one entry of a signature's flag map.
type Flag struct {
	Name        string    `json:"name"`
	Type        NamedType `json:"type"`
	Description string    `json:"description"`
}

// FlagMap is an insertion-order-preserving map from flag name to flag entry.
// Inserting an existing name replaces the entry in place, keeping its
// original position. All operations copy; a FlagMap value is never mutated
// once handed out, so signatures sharing a map stay independent.
//
// JSON-encodes as an ordered array of entries, keeping help-text ordering
// stable across serialization.
type FlagMap struct {
	entries []Flag
}

// Insert returns a copy of the map with the flag set. An existing name is
// replaced in place; a new name is appended.
func (m FlagMap) Insert(flag Flag) FlagMap {
	out := make([]Flag, len(m.entries), len(m.entries)+1)
	copy(out, m.entries)

	for i, e := range out {
		if e.Name == flag.Name {
			out[i] = flag
			return FlagMap{entries: out}
		}
	}
	return FlagMap{entries: append(out, flag)}
}

// Remove returns a copy of the map without the named flag. Removing an
// absent name is a no-op.
func (m FlagMap) Remove(name string) FlagMap {
	out := make([]Flag, 0, len(m.entries))
	for _, e := range m.entries {
		if e.Name != name {
			out = append(out, e)
		}
	}
	return FlagMap{entries: out}
}

// Get returns the named flag entry.
func (m FlagMap) Get(name string) (Flag, bool) {
	for _, e := range m.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Flag{}, false
}

// Has reports whether the named flag exists.
func (m FlagMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of flags.
func (m FlagMap) Len() int { return len(m.entries) }

// Entries returns the flags in insertion order. The returned slice is a
// copy; callers may not reach the map's internals through it.
func (m FlagMap) Entries() []Flag {
	out := make([]Flag, len(m.entries))
	copy(out, m.entries)
	return out
}

// Names returns the flag names in insertion order.
func (m FlagMap) Names() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Name
	}
	return out
}

// MarshalJSON encodes the map as an ordered array of entries.
func (m FlagMap) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.entries)
}

// UnmarshalJSON decodes an ordered array of entries.
func (m *FlagMap) UnmarshalJSON(data []byte) error {
	var entries []Flag
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.entries = entries
	return nil
}
