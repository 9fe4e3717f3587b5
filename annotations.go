package introspect

import "reflect"

// annotationMembers lists the declared types of a subject's members:
// struct field types for type and instance subjects, annotated
// assignment types for source classes, and value types for registered
// module members. Members without a declared type are skipped.
func annotationMembers(s *subject) []Member {
	switch s.kind {
	case KindModule:
		var out []Member
		for _, m := range s.module.members() {
			if ann, ok := annotationOf(m.Value); ok {
				out = append(out, Member{Name: m.Name, Value: ann})
			}
		}
		return out
	case KindType:
		if s.class != nil {
			return sourceAnnotations(s.class)
		}
		return structAnnotations(s.typ)
	case KindInstance:
		return structAnnotations(s.val.Type())
	}
	return nil
}

func structAnnotations(t reflect.Type) []Member {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []Member
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		out = append(out, Member{Name: f.Name, Value: f.Type.String()})
	}
	return out
}

func sourceAnnotations(c *SourceClass) []Member {
	var out []Member
	for _, m := range c.memberList {
		if sym, ok := m.Value.(*SourceSymbol); ok && sym.Type != "" {
			out = append(out, Member{Name: m.Name, Value: sym.Type})
		}
	}
	return out
}

func annotationOf(v any) (string, bool) {
	switch t := v.(type) {
	case reflect.Type:
		return t.String(), true
	case *SourceClass:
		return "", false
	case *Module:
		return "", false
	case *SourceSymbol:
		if t.Type != "" {
			return t.Type, true
		}
		return "", false
	case nil:
		return "", false
	}
	return reflect.TypeOf(v).String(), true
}
