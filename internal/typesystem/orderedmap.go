package typesystem

// OrderedMap is an insertion-ordered map, used everywhere the GraphQL spec
// requires response order or introspection order to be preserved (field
// maps, enum value maps, argument maps, the schema's typeMap). It mirrors
// the teacher's resolvable.Pool[T] generic container: a slice for order
// plus a map for O(1) lookup, kept in sync behind a small method set.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set inserts or overwrites the value for key. On overwrite, the key's
// original position is preserved (last-write-wins on the value, first
// position wins on order) — this is what gives the builder's "duplicate
// field name later wins" rule (§3 Ordering rules) its exact semantics.
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// MustGet panics if key is absent; used where the caller has already
// established the key must be present (e.g. after a successful lookup of
// the same name in two collections that should be kept consistent).
func (m *OrderedMap[V]) MustGet(key string) V {
	v, ok := m.values[key]
	if !ok {
		panic("typesystem: ordered map key not found: " + key)
	}
	return v
}

func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *OrderedMap[V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The caller must not mutate it.
func (m *OrderedMap[V]) Keys() []string { return m.keys }

// Values returns the values in insertion (key) order, a fresh slice.
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// Clone returns a shallow copy: a new backing slice/map, same element
// values. Used by the builder to copy an existing enum's value map without
// mutating the one it started from (§3 "extension purity").
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	c := &OrderedMap[V]{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]V, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
