package introspect

// Mapping is an insertion-ordered name→value mapping, the result shape of
// every Map* query. Go's built-in maps do not preserve order, and the
// map/name/get equivalence requires that keys appear exactly in resolver
// order, so Map* results carry their own order.
type Mapping struct {
	keys   []string
	byName map[string]any
}

func newMapping(members []Member) *Mapping {
	mp := &Mapping{byName: make(map[string]any, len(members))}
	for _, m := range members {
		if _, ok := mp.byName[m.Name]; !ok {
			mp.keys = append(mp.keys, m.Name)
		}
		mp.byName[m.Name] = m.Value
	}
	return mp
}

// Keys returns the names in resolver order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in the same order as Keys.
func (m *Mapping) Values() []any {
	out := make([]any, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.byName[k])
	}
	return out
}

// Get returns the value for a name and a presence flag.
func (m *Mapping) Get(name string) (any, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Has reports whether every given name is present. An empty name set is
// vacuously true.
func (m *Mapping) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := m.byName[n]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }
