package introspect

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/phobologic/introspect/internal/srcmod"
)

// Single-member predicates. The simple ones classify an item on its own;
// the ones whose category depends on where the member lives (a callable
// is a method on a type but a function in a module) require an owner and
// fail with a ConfigurationError without one.
//
// item may be a member name, looked up on the owner with full sibling
// context, or a raw value, classified directly. A bare callable value
// carries no accessor construct, so value-based checks never report a
// property; name them to get pair detection.

// IsClass reports whether item is a type reference: a reflect.Type or a
// parsed source class.
func IsClass(item any) bool {
	switch item.(type) {
	case reflect.Type, *SourceClass:
		return true
	}
	return false
}

// IsInstance reports whether item is a live value rather than a module,
// type reference or path.
func IsInstance(item any) bool {
	if item == nil || IsClass(item) {
		return false
	}
	switch item.(type) {
	case *Module, string:
		return false
	}
	return true
}

// IsModule reports whether item is a module descriptor or a path to a
// source file of a supported language.
func IsModule(item any) bool {
	switch v := item.(type) {
	case *Module:
		return v != nil
	case string:
		info, err := os.Stat(v)
		return err == nil && !info.IsDir() && srcmod.SupportedExt(filepath.Ext(v))
	}
	return false
}

// IsPath reports whether the path exists on disk.
func IsPath(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFilePath reports whether the path exists and is a file.
func IsFilePath(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFolderPath reports whether the path exists and is a directory.
func IsFolderPath(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func IsAttribute(item any, owner any) (bool, error) {
	return ownerPredicate("is_attribute", item, owner, Attribute)
}

func IsClassAttribute(item any, owner any) (bool, error) {
	return ownerPredicate("is_class_attribute", item, owner, ClassAttribute)
}

func IsField(item any, owner any) (bool, error) {
	return ownerPredicate("is_field", item, owner, Field)
}

func IsFunction(item any, owner any) (bool, error) {
	return ownerPredicate("is_function", item, owner, Function)
}

func IsMethod(item any, owner any) (bool, error) {
	return ownerPredicate("is_method", item, owner, Method)
}

func IsProperty(item any, owner any) (bool, error) {
	return ownerPredicate("is_property", item, owner, Property)
}

func IsVariable(item any, owner any) (bool, error) {
	return ownerPredicate("is_variable", item, owner, Variable)
}

func ownerPredicate(op string, item, owner any, cat Category) (bool, error) {
	if owner == nil {
		return false, configErr(op, "owner is required to classify the member")
	}
	s, err := subjectOf(op, owner)
	if err != nil {
		return false, err
	}
	spec, ok := suffixTable[cat]
	if !ok || !spec.kinds[s.kind] {
		return false, configErr(op, "%s check is not legal for a %s owner", cat, s.kind)
	}
	ms := enumerate(s)
	siblings := siblingIndex(ms)
	if name, ok := item.(string); ok {
		m, found := siblings[name]
		if !found {
			return false, nil
		}
		return hasCategory(classifyMember(s.kind, m, siblings), cat), nil
	}
	cats := classifyMember(s.kind, Member{Value: item}, siblings)
	return hasCategory(cats, cat), nil
}
