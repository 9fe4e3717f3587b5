package introspect

import "reflect"

// SubjectKind discriminates what is being inspected. The kind decides
// which query suffixes are even meaningful: classes live in modules,
// methods live on types and instances, file paths live under folders.
type SubjectKind string

const (
	KindModule   SubjectKind = "module"
	KindType     SubjectKind = "type"
	KindInstance SubjectKind = "instance"
	KindPath     SubjectKind = "path"
)

// subject is the resolved form of a caller-supplied item. It holds a
// non-owning reference for the duration of one query only.
type subject struct {
	kind   SubjectKind
	module *Module
	typ    reflect.Type
	class  *SourceClass
	val    reflect.Value
	path   string
}

// Type returns the reflect.Type for T, the canonical way to pass a type
// (rather than an instance) as the subject of a query.
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// subjectOf decides what kind of subject an item is, mirroring the way
// callers hand in whatever they have: a *Module, a reflect.Type or
// source class, a directory path string, or a live value.
func subjectOf(op string, item any) (*subject, error) {
	switch v := item.(type) {
	case nil:
		return nil, configErr(op, "nil subject")
	case *Module:
		if v == nil {
			return nil, configErr(op, "nil module subject")
		}
		return &subject{kind: KindModule, module: v}, nil
	case reflect.Type:
		return &subject{kind: KindType, typ: v}, nil
	case *SourceClass:
		if v == nil {
			return nil, configErr(op, "nil source class subject")
		}
		return &subject{kind: KindType, class: v}, nil
	case string:
		return &subject{kind: KindPath, path: v}, nil
	default:
		return &subject{kind: KindInstance, val: reflect.ValueOf(item)}, nil
	}
}
