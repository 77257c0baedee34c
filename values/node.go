package values

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Kind int

const (
	ScalarKind Kind = iota
	MappingKind
	SequenceKind
)

// Node is the tagged variant over the three shapes the subset grammar can
// produce: a scalar string, an insertion-ordered mapping or a sequence
// (which the grammar only ever leaves empty).
type Node interface {
	Kind() Kind
}

// Scalar holds a single string value.
type Scalar struct {
	Value string
}

func (n *Scalar) Kind() Kind { return ScalarKind }

func (n *Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// Sequence holds list items. The subset grammar recognises the `[]` token
// but never populates a sequence further.
type Sequence struct {
	Items []Node
}

func (n *Sequence) Kind() Kind { return SequenceKind }

func (n *Sequence) MarshalJSON() ([]byte, error) {
	if len(n.Items) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(n.Items)
}

// Entry is a single key/value pair inside a Mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping is a string-keyed map that iterates in insertion order. A later
// Set with an existing key overwrites the value but keeps the key's
// original position.
type Mapping struct {
	entries []*Entry
	index   map[string]int
}

func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

func (m *Mapping) Kind() Kind { return MappingKind }

// Set inserts key/value, or overwrites the value when the key is already
// present (last write wins).
func (m *Mapping) Set(key string, value Node) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, &Entry{Key: key, Value: value})
}

// Get returns the node stored under key. Safe on a nil receiver so that
// lookups can chain through absent intermediates.
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Child returns the nested mapping under key, or nil when the key is
// absent or holds a non-mapping value.
func (m *Mapping) Child(key string) *Mapping {
	node, ok := m.Get(key)
	if !ok {
		return nil
	}
	child, _ := node.(*Mapping)
	return child
}

// Scalar returns the scalar value under key; ok is false when the key is
// absent or holds a container.
func (m *Mapping) Scalar(key string) (string, bool) {
	node, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := node.(*Scalar)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the mapping keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries exposes the ordered key/value pairs. Callers must treat the
// returned slice as read-only.
func (m *Mapping) Entries() []*Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

// MarshalJSON emits the mapping as a JSON object in insertion order,
// which encoding/json's native maps would not preserve.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lookup resolves a dotted path such as "secrets.data.SMTP_URL" to the
// scalar at its end. Any absent segment or non-mapping intermediate makes
// the whole path absent; no error is ever raised.
func Lookup(root *Mapping, path string) (string, bool) {
	segments := strings.Split(path, ".")
	m := root
	for _, segment := range segments[:len(segments)-1] {
		m = m.Child(segment)
	}
	return m.Scalar(segments[len(segments)-1])
}

// MappingAt resolves a dotted path to a nested mapping, nil when any
// segment is absent or not a mapping.
func MappingAt(root *Mapping, path string) *Mapping {
	m := root
	for _, segment := range strings.Split(path, ".") {
		m = m.Child(segment)
	}
	return m
}
