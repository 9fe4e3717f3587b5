package introspect

import (
	"reflect"
	"strings"
)

// classifyMember decides which categories one raw member belongs to.
// The returned slice is ordered by rule precedence, most specific first.
// Sibling members are consulted for accessor-pair detection; privacy is
// never considered here, it is a separate filtering stage.
//
// Members that fit no rule produce nil, and the resolver drops them
// silently rather than erroring.
func classifyMember(kind SubjectKind, m Member, siblings map[string]Member) []Category {
	switch kind {
	case KindModule:
		return classifyModuleMember(m)
	case KindType, KindInstance:
		return classifyTypeMember(m, siblings)
	}
	return nil
}

func classifyModuleMember(m Member) []Category {
	switch v := m.Value.(type) {
	case reflect.Type:
		return []Category{Class, Attribute}
	case *Module:
		return []Category{ModuleRef, Attribute}
	case *SourceClass:
		return []Category{Class, Attribute}
	case *SourceSymbol:
		switch v.Kind {
		case Function:
			return []Category{Function, Attribute}
		case Variable:
			return []Category{Variable, Attribute}
		}
		return nil
	}
	if isCallable(m.Value) {
		return []Category{Function, Attribute}
	}
	return []Category{Variable, Attribute}
}

func classifyTypeMember(m Member, siblings map[string]Member) []Category {
	switch v := m.Value.(type) {
	case reflect.StructField:
		return []Category{Field, Variable, Attribute}
	case *SourceSymbol:
		switch v.Kind {
		case Method:
			return []Category{Method, ClassAttribute, Attribute}
		case Property:
			return []Category{Property, ClassAttribute, Attribute}
		case Field:
			return []Category{Field, Variable, Attribute}
		case Variable:
			return []Category{Variable, ClassAttribute, Attribute}
		}
		return nil
	}
	if isCallable(m.Value) {
		if isAccessorGetter(m.Name, m.Value, siblings) {
			return []Category{Property, ClassAttribute, Attribute}
		}
		return []Category{Method, ClassAttribute, Attribute}
	}
	return []Category{Field, Variable, Attribute}
}

// isCallable reports whether a member value can be invoked: a bound or
// unbound method descriptor, or any func-kinded value.
func isCallable(v any) bool {
	switch s := v.(type) {
	case reflect.Method:
		return true
	case reflect.StructField:
		return false
	case *SourceSymbol:
		return s.Kind == Function || s.Kind == Method
	case nil:
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// isAccessorGetter reports whether a callable member is the getter half
// of a managed accessor pair: X (or GetX) taking no arguments, returning
// one value, with a matching callable SetX sibling. The getter classifies
// as a property; the setter remains an ordinary method.
func isAccessorGetter(name string, v any, siblings map[string]Member) bool {
	if strings.HasPrefix(name, "Set") {
		return false
	}
	base := name
	if strings.HasPrefix(name, "Get") && len(name) > 3 {
		base = name[3:]
	}
	sib, ok := siblings["Set"+base]
	if !ok || !isCallable(sib.Value) {
		return false
	}
	in, out := callableArity(v)
	return in == 0 && out == 1
}

// callableArity returns the parameter and result counts of a callable,
// not counting the receiver of an unbound method descriptor.
func callableArity(v any) (in, out int) {
	var ft reflect.Type
	switch m := v.(type) {
	case reflect.Method:
		ft = m.Type
		if ft.NumIn() > 0 {
			return ft.NumIn() - 1, ft.NumOut()
		}
		return 0, ft.NumOut()
	default:
		ft = reflect.TypeOf(v)
		if ft == nil || ft.Kind() != reflect.Func {
			return 0, 0
		}
		return ft.NumIn(), ft.NumOut()
	}
}

func hasCategory(cats []Category, want Category) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}
