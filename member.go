package introspect

import "reflect"

// Member is one raw entry found on a subject: a name, unique within a
// single enumeration pass, and whatever value the runtime returned for
// it. Members are produced and consumed within one query; nothing
// retains them afterward.
type Member struct {
	Name  string
	Value any
}

// enumerate lists the raw members of a subject in the order the backing
// runtime exposes them. The core never re-sorts this sequence.
func enumerate(s *subject) []Member {
	switch s.kind {
	case KindModule:
		return s.module.members()
	case KindType:
		if s.class != nil {
			return s.class.members()
		}
		return typeMembers(s.typ)
	case KindInstance:
		return instanceMembers(s.val)
	}
	return nil
}

// typeMembers enumerates a reflect-backed type: struct fields in
// declaration order, then methods in the order reflect exposes them.
// Field members carry the reflect.StructField descriptor as their value;
// method members carry the reflect.Method descriptor.
func typeMembers(t reflect.Type) []Member {
	var out []Member
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			out = append(out, Member{Name: f.Name, Value: f})
		}
	}
	mt := t
	if mt.Kind() != reflect.Pointer && mt.Kind() != reflect.Interface {
		mt = reflect.PointerTo(mt)
	}
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		out = append(out, Member{Name: m.Name, Value: m})
	}
	return out
}

// instanceMembers enumerates a live value: exported field values, then
// bound methods. Unexported fields cannot be read through reflection and
// are dropped silently, per the ignore-unknowns policy.
func instanceMembers(v reflect.Value) []Member {
	var out []Member
	sv := v
	if sv.Kind() == reflect.Pointer && !sv.IsNil() {
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		t := sv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			out = append(out, Member{Name: f.Name, Value: sv.Field(i).Interface()})
		}
	}
	vt := v.Type()
	for i := 0; i < v.NumMethod(); i++ {
		out = append(out, Member{Name: vt.Method(i).Name, Value: v.Method(i).Interface()})
	}
	return out
}
