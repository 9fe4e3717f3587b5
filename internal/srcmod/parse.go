package srcmod

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

var captureKinds = map[string]Kind{
	"definition.class":      KindClass,
	"definition.function":   KindFunction,
	"definition.method":     KindMethod,
	"definition.assignment": KindVariable,
}

// rawCapture is one query match before classification.
type rawCapture struct {
	kind Kind
	name string
	node *sitter.Node
	line int
}

// Extract parses source and returns its top-level symbols in source
// order. Class members (methods, properties, fields, class-level
// assignments) appear as children of their class; locals declared
// inside function bodies are dropped.
func Extract(l *Language, source []byte) ([]Symbol, error) {
	if len(source) == 0 {
		return nil, nil
	}

	parser := l.NewParser()
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	defer tree.Close()

	query, err := l.GetTagQuery()
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var raw []rawCapture
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		var nameNode, defNode *sitter.Node
		var kind Kind
		var kindOK bool
		for _, c := range match.Captures {
			cname := query.CaptureNameForId(c.Index)
			if cname == "name" {
				nameNode = c.Node
			} else if k, ok := captureKinds[cname]; ok {
				kind = k
				kindOK = true
				defNode = c.Node
			}
		}
		if nameNode == nil || defNode == nil || !kindOK {
			continue
		}
		raw = append(raw, rawCapture{
			kind: kind,
			name: NodeText(nameNode, source),
			node: defNode,
			line: int(nameNode.StartPoint().Row) + 1,
		})
	}

	// Query cursors interleave matches from different patterns; restore
	// document order.
	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].node.StartByte() < raw[j].node.StartByte()
	})

	return assemble(l, raw, source), nil
}

// classEntry tracks a class symbol while its members accumulate.
type classEntry struct {
	sym      *Symbol
	isRecord bool
}

// topEntry pairs a top-level symbol with its source position, so the
// final listing can restore declaration order after the class-first
// registration pass.
type topEntry struct {
	pos uint32
	sym *Symbol
}

func assemble(l *Language, raw []rawCapture, source []byte) []Symbol {
	var top []topEntry
	classes := map[string]*classEntry{}

	// Classes first, so members declared before their type (legal in Go)
	// still find a home.
	for _, rc := range raw {
		if rc.kind != KindClass {
			continue
		}
		if insideCallable(l, rc.node) || enclosingClass(l, rc.node, source) != "" {
			continue
		}
		sym := &Symbol{
			Name:      rc.name,
			Kind:      KindClass,
			Line:      rc.line,
			Signature: signature(l, rc.node, KindClass, source),
		}
		isRecord := l.IsRecordClass != nil && l.IsRecordClass(rc.node, source)
		if isRecord && l.RecordFields != nil {
			sym.Children = append(sym.Children, l.RecordFields(rc.node, source)...)
		}
		top = append(top, topEntry{pos: rc.node.StartByte(), sym: sym})
		classes[rc.name] = &classEntry{sym: sym, isRecord: isRecord}
	}

	for _, rc := range raw {
		switch rc.kind {
		case KindClass:
			// handled above

		case KindFunction:
			if insideCallable(l, rc.node) {
				continue
			}
			if owner := enclosingClass(l, rc.node, source); owner != "" {
				entry, ok := classes[owner]
				if !ok {
					continue
				}
				kind := KindMethod
				if l.IsPropertyDef != nil && l.IsPropertyDef(rc.node, source) {
					kind = KindProperty
				}
				entry.sym.Children = append(entry.sym.Children, Symbol{
					Name:      rc.name,
					Kind:      kind,
					Line:      rc.line,
					Signature: signature(l, rc.node, kind, source),
				})
				continue
			}
			top = append(top, topEntry{pos: rc.node.StartByte(), sym: &Symbol{
				Name:      rc.name,
				Kind:      KindFunction,
				Line:      rc.line,
				Signature: signature(l, rc.node, KindFunction, source),
			}})

		case KindMethod:
			// Detached method declarations (Go style) attach by receiver
			// type; methods of types declared elsewhere are dropped.
			if l.ReceiverType == nil {
				continue
			}
			recv := l.ReceiverType(rc.node, source)
			entry, ok := classes[recv]
			if !ok {
				continue
			}
			entry.sym.Children = append(entry.sym.Children, Symbol{
				Name:      rc.name,
				Kind:      KindMethod,
				Line:      rc.line,
				Signature: signature(l, rc.node, KindMethod, source),
			})

		case KindVariable:
			if insideCallable(l, rc.node) {
				continue
			}
			annot := ""
			if l.TypeAnnotation != nil {
				annot = l.TypeAnnotation(rc.node, source)
			}
			if owner := enclosingClass(l, rc.node, source); owner != "" {
				entry, ok := classes[owner]
				if !ok {
					continue
				}
				kind := KindVariable
				if entry.isRecord {
					kind = KindField
				}
				entry.sym.Children = append(entry.sym.Children, Symbol{
					Name:      rc.name,
					Kind:      kind,
					Line:      rc.line,
					TypeAnnot: annot,
				})
				continue
			}
			top = append(top, topEntry{pos: rc.node.StartByte(), sym: &Symbol{
				Name:      rc.name,
				Kind:      KindVariable,
				Line:      rc.line,
				TypeAnnot: annot,
			}})
		}
	}

	// Restore declaration order across the two passes.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].pos < top[j].pos
	})

	out := make([]Symbol, len(top))
	for i, e := range top {
		out[i] = *e.sym
	}
	return out
}

func insideCallable(l *Language, node *sitter.Node) bool {
	return l.InsideCallable != nil && l.InsideCallable(node)
}

func enclosingClass(l *Language, node *sitter.Node, source []byte) string {
	if l.EnclosingClass == nil {
		return ""
	}
	return l.EnclosingClass(node, source)
}

func signature(l *Language, node *sitter.Node, kind Kind, source []byte) string {
	if l.ExtractSignature == nil {
		return ""
	}
	return l.ExtractSignature(node, kind, source)
}
