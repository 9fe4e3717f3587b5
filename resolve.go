package introspect

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/phobologic/introspect/internal/config"
	"github.com/phobologic/introspect/internal/disk"
	"github.com/phobologic/introspect/internal/srcmod"
)

// memberSource names where a suffix's members come from.
type memberSource int

const (
	fromMembers memberSource = iota
	fromAnnotations
	fromSignatures
	fromDisk
)

type kindSet map[SubjectKind]bool

// suffixSpec is one row of the dispatch table: the subject kinds a
// category is legal for, and the member source that feeds it. The whole
// query grid is generated from this table plus one generic resolver, so
// the cross-cutting invariants hold for every cell uniformly.
type suffixSpec struct {
	kinds  kindSet
	source memberSource
}

var suffixTable = map[Category]suffixSpec{
	Annotation:     {kindSet{KindModule: true, KindType: true, KindInstance: true}, fromAnnotations},
	Attribute:      {kindSet{KindModule: true, KindType: true, KindInstance: true}, fromMembers},
	Class:          {kindSet{KindModule: true}, fromMembers},
	ClassAttribute: {kindSet{KindType: true, KindInstance: true}, fromMembers},
	Field:          {kindSet{KindType: true, KindInstance: true}, fromMembers},
	FilePath:       {kindSet{KindPath: true}, fromDisk},
	FolderPath:     {kindSet{KindPath: true}, fromDisk},
	Function:       {kindSet{KindModule: true}, fromMembers},
	Method:         {kindSet{KindType: true, KindInstance: true}, fromMembers},
	ModuleRef:      {kindSet{KindModule: true, KindPath: true}, fromMembers},
	Path:           {kindSet{KindPath: true}, fromDisk},
	Property:       {kindSet{KindType: true, KindInstance: true}, fromMembers},
	SignatureOf:    {kindSet{KindModule: true, KindType: true, KindInstance: true}, fromSignatures},
	Variable:       {kindSet{KindModule: true, KindType: true, KindInstance: true}, fromMembers},
}

// resolve produces the ordered matching members for a (subject,
// category) pair: enumerate, classify, filter by category, filter by
// privacy, preserving relative enumeration order throughout.
func resolve(op string, item any, cat Category, includePrivates bool) ([]Member, error) {
	s, err := subjectOf(op, item)
	if err != nil {
		return nil, err
	}
	spec, ok := suffixTable[cat]
	if !ok {
		return nil, configErr(op, "unknown category %q", cat)
	}
	if !spec.kinds[s.kind] {
		return nil, configErr(op, "%s query is not legal for a %s subject", cat, s.kind)
	}

	if s.kind == KindPath {
		return diskResolve(op, s.path, cat, includePrivates)
	}

	switch spec.source {
	case fromAnnotations:
		return filterPrivates(annotationMembers(s), includePrivates), nil
	case fromSignatures:
		return signatureResolve(s, includePrivates), nil
	default:
		return memberResolve(op, s, cat, includePrivates)
	}
}

func memberResolve(op string, s *subject, cat Category, includePrivates bool) ([]Member, error) {
	if cat == Field && !isRecordSubject(s) {
		return nil, configErr(op, "subject is not a record type")
	}
	ms := enumerate(s)
	siblings := siblingIndex(ms)
	var out []Member
	for _, m := range ms {
		if !keep(m.Name, includePrivates) {
			continue
		}
		if hasCategory(classifyMember(s.kind, m, siblings), cat) {
			out = append(out, m)
		}
	}
	return out, nil
}

// signatureResolve pairs each callable member with its declared
// signature: functions for module subjects, methods for types and
// instances. Members whose signature cannot be read are dropped.
func signatureResolve(s *subject, includePrivates bool) []Member {
	want := Method
	if s.kind == KindModule {
		want = Function
	}
	ms := enumerate(s)
	siblings := siblingIndex(ms)
	var out []Member
	for _, m := range ms {
		if !keep(m.Name, includePrivates) {
			continue
		}
		if !hasCategory(classifyMember(s.kind, m, siblings), want) {
			continue
		}
		sig, err := ReadSignature(m.Value)
		if err != nil {
			continue
		}
		out = append(out, Member{Name: m.Name, Value: sig})
	}
	return out
}

func diskResolve(op, root string, cat Category, includePrivates bool) ([]Member, error) {
	cfg := config.Get()
	entries, err := disk.List(root, disk.Options{
		Recursive:     cfg.Recursive,
		RespectIgnore: cfg.RespectIgnore,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: listing %s: %w", op, root, err)
	}
	var out []Member
	for _, e := range entries {
		if !keepPath(e.Rel, includePrivates) {
			continue
		}
		switch cat {
		case FilePath:
			if e.IsDir {
				continue
			}
		case FolderPath:
			if !e.IsDir {
				continue
			}
		case ModuleRef:
			if e.IsDir || !srcmod.SupportedExt(filepath.Ext(e.Rel)) {
				continue
			}
		}
		out = append(out, Member{Name: e.Rel, Value: e.Abs})
	}
	return out, nil
}

// keepPath applies the privacy rule to every segment of a relative
// path, so entries under a private folder stay hidden with it.
func keepPath(rel string, includePrivates bool) bool {
	for _, seg := range strings.Split(rel, "/") {
		if !keep(seg, includePrivates) {
			return false
		}
	}
	return true
}

func filterPrivates(ms []Member, includePrivates bool) []Member {
	var out []Member
	for _, m := range ms {
		if keep(m.Name, includePrivates) {
			out = append(out, m)
		}
	}
	return out
}

func siblingIndex(ms []Member) map[string]Member {
	idx := make(map[string]Member, len(ms))
	for _, m := range ms {
		idx[m.Name] = m
	}
	return idx
}

// isRecordSubject reports whether a type or instance subject is backed
// by a record-style declaration (a Go struct or a parsed source class),
// the only subjects the field suffix is legal against.
func isRecordSubject(s *subject) bool {
	if s.class != nil {
		return true
	}
	t := s.typ
	if s.kind == KindInstance {
		t = s.val.Type()
	}
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// lookup resolves a singular suffix to exactly one member. The search
// matches the enumerated name first and falls back to base-name matching
// for disk entries; zero matches is a NotFoundError, several is an
// AmbiguousResultError. Explicit-name lookups bypass the privacy filter:
// naming a private member is explicit intent to reach it.
func lookup(op string, item any, cat Category, name string) (any, error) {
	ms, err := resolve(op, item, cat, true)
	if err != nil {
		return nil, err
	}
	var hits []Member
	for _, m := range ms {
		if m.Name == name {
			hits = append(hits, m)
		}
	}
	if _, isPath := item.(string); isPath && len(hits) == 0 {
		for _, m := range ms {
			base := filepath.Base(m.Name)
			if base == name || strings.TrimSuffix(base, filepath.Ext(base)) == name {
				hits = append(hits, m)
			}
		}
	}
	switch len(hits) {
	case 0:
		return nil, &NotFoundError{Op: op, Name: name}
	case 1:
		return hits[0].Value, nil
	default:
		return nil, &AmbiguousResultError{Op: op, Name: name, Count: len(hits)}
	}
}
