package introspect

import "reflect"

// Module is an explicit, registration-built namespace. Go exposes no
// runtime reflection over packages, so a module subject is a descriptor
// the caller assembles once: each Register call appends one named member,
// and registration order is the enumeration order every query sees.
//
// Member values may be anything; funcs classify as functions,
// reflect.Type values as classes, nested *Module values as submodules,
// and everything else as variables.
type Module struct {
	name   string
	names  []string
	byName map[string]any
}

// NewModule returns an empty module descriptor with the given name.
func NewModule(name string) *Module {
	return &Module{name: name, byName: make(map[string]any)}
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// Register adds a named member. Registering an existing name replaces
// its value in place without changing its position.
func (m *Module) Register(name string, value any) *Module {
	if _, ok := m.byName[name]; !ok {
		m.names = append(m.names, name)
	}
	m.byName[name] = value
	return m
}

// RegisterType is shorthand for registering a class member.
func RegisterType[T any](m *Module, name string) *Module {
	return m.Register(name, reflect.TypeOf((*T)(nil)).Elem())
}

// Get returns a member value and a presence flag.
func (m *Module) Get(name string) (any, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Len returns the number of registered members.
func (m *Module) Len() int { return len(m.names) }

func (m *Module) members() []Member {
	out := make([]Member, 0, len(m.names))
	for _, n := range m.names {
		out = append(out, Member{Name: n, Value: m.byName[n]})
	}
	return out
}
