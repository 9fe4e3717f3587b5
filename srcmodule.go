package introspect

import (
	"fmt"

	"github.com/phobologic/introspect/internal/srcmod"
)

// SourceSymbol is a member extracted from a parsed source file: a
// function, method, property, field or variable known only by its
// declaration, not by a live runtime value.
type SourceSymbol struct {
	Name      string
	Kind      Category
	Line      int
	Signature string
	// Type holds the declared type text of an annotated assignment,
	// empty when the declaration carries no annotation.
	Type string
}

// SourceClass is a class extracted from a parsed source file. It is a
// valid type subject: its enumerable members are the methods, properties
// and class-level assignments found in the class body, in source order.
type SourceClass struct {
	Name      string
	Line      int
	Signature string

	memberList []Member
}

func (c *SourceClass) members() []Member { return c.memberList }

// LoadModule parses a source file and returns a module descriptor whose
// members are the file's top-level symbols: classes (as *SourceClass),
// functions and variables (as *SourceSymbol), in source order. Parsing
// goes through a bounded, modification-time-keyed cache; query results
// themselves are never cached.
func LoadModule(path string) (*Module, error) {
	f, err := srcmod.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading module %s: %w", path, err)
	}
	m := NewModule(f.Name)
	for _, sym := range f.Symbols {
		m.Register(sym.Name, convertSymbol(sym))
	}
	return m, nil
}

func convertSymbol(sym srcmod.Symbol) any {
	if sym.Kind == srcmod.KindClass {
		c := &SourceClass{Name: sym.Name, Line: sym.Line, Signature: sym.Signature}
		// A name may be defined more than once in a class body; the last
		// definition wins and keeps the first position, matching
		// Module.Register for top-level symbols.
		index := make(map[string]int)
		for _, child := range sym.Children {
			m := Member{Name: child.Name, Value: convertSymbol(child)}
			if i, ok := index[child.Name]; ok {
				c.memberList[i] = m
				continue
			}
			index[child.Name] = len(c.memberList)
			c.memberList = append(c.memberList, m)
		}
		return c
	}
	return &SourceSymbol{
		Name:      sym.Name,
		Kind:      symbolCategory(sym.Kind),
		Line:      sym.Line,
		Signature: sym.Signature,
		Type:      sym.TypeAnnot,
	}
}

func symbolCategory(k srcmod.Kind) Category {
	switch k {
	case srcmod.KindFunction:
		return Function
	case srcmod.KindMethod:
		return Method
	case srcmod.KindProperty:
		return Property
	case srcmod.KindField:
		return Field
	default:
		return Variable
	}
}
