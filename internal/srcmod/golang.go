package srcmod

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

func init() {
	Languages["go"] = &Language{
		Name:             "go",
		Extensions:       []string{".go"},
		lang:             golang.GetLanguage(),
		InsideCallable:   goInsideCallable,
		IsRecordClass:    goIsRecordClass,
		ReceiverType:     goReceiverType,
		RecordFields:     goRecordFields,
		ExtractSignature: goExtractSignature,
		TypeAnnotation:   goTypeAnnotation,
	}
}

func goInsideCallable(node *sitter.Node) bool {
	for cur := node.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "function_declaration", "method_declaration", "func_literal":
			return true
		}
	}
	return false
}

// goIsRecordClass reports whether a type_spec declares a struct.
func goIsRecordClass(node *sitter.Node, source []byte) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "struct_type" {
			return true
		}
	}
	return false
}

// goReceiverType extracts the receiver type name from a method_declaration node.
// Navigates: method_declaration → parameter_list (receiver) → parameter_declaration → type.
func goReceiverType(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "parameter_list" {
			continue
		}
		if !isReceiverList(node, child) {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			param := child.Child(j)
			if param.Type() == "parameter_declaration" {
				return goExtractTypeName(param, source)
			}
		}
	}
	return ""
}

// goExtractTypeName extracts the type name from a parameter_declaration,
// unwrapping pointer_type if present.
func goExtractTypeName(param *sitter.Node, source []byte) string {
	for i := 0; i < int(param.ChildCount()); i++ {
		child := param.Child(i)
		switch child.Type() {
		case "type_identifier":
			return NodeText(child, source)
		case "pointer_type":
			for k := 0; k < int(child.ChildCount()); k++ {
				inner := child.Child(k)
				if inner.Type() == "type_identifier" {
					return NodeText(inner, source)
				}
			}
		}
	}
	return ""
}

// goRecordFields lists the field declarations of a struct type_spec in
// declaration order.
func goRecordFields(node *sitter.Node, source []byte) []Symbol {
	var st *sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "struct_type" {
			st = node.Child(i)
			break
		}
	}
	if st == nil {
		return nil
	}
	var fields []Symbol
	for i := 0; i < int(st.ChildCount()); i++ {
		list := st.Child(i)
		if list.Type() != "field_declaration_list" {
			continue
		}
		for j := 0; j < int(list.ChildCount()); j++ {
			decl := list.Child(j)
			if decl.Type() != "field_declaration" {
				continue
			}
			typeText := ""
			if t := decl.ChildByFieldName("type"); t != nil {
				typeText = CollapseWhitespace(NodeText(t, source))
			}
			for k := 0; k < int(decl.ChildCount()); k++ {
				id := decl.Child(k)
				if id.Type() != "field_identifier" {
					continue
				}
				fields = append(fields, Symbol{
					Name:      NodeText(id, source),
					Kind:      KindField,
					Line:      int(id.StartPoint().Row) + 1,
					TypeAnnot: typeText,
				})
			}
		}
	}
	return fields
}

func goExtractSignature(defNode *sitter.Node, kind Kind, source []byte) string {
	if kind == KindClass {
		for i := 0; i < int(defNode.ChildCount()); i++ {
			child := defNode.Child(i)
			if child.Type() == "type_identifier" {
				return NodeText(child, source)
			}
		}
		return ""
	}

	var name, params, result string
	for i := 0; i < int(defNode.ChildCount()); i++ {
		child := defNode.Child(i)
		switch child.Type() {
		case "identifier", "field_identifier":
			name = NodeText(child, source)
		case "parameter_list":
			// For methods, the first parameter_list is the receiver — skip it
			if kind == KindMethod && params == "" && isReceiverList(defNode, child) {
				continue
			}
			params = CollapseWhitespace(NodeText(child, source))
		case "simple_type", "pointer_type", "qualified_type",
			"slice_type", "map_type", "channel_type",
			"interface_type", "struct_type", "function_type",
			"type_identifier":
			result = CollapseWhitespace(NodeText(child, source))
		}
	}

	sig := name + params
	if result != "" {
		sig += " " + result
	}
	return sig
}

// isReceiverList checks if a parameter_list is the receiver (appears before the method name).
func isReceiverList(parent, paramList *sitter.Node) bool {
	if parent.Type() != "method_declaration" {
		return false
	}
	foundList := false
	for i := 0; i < int(parent.ChildCount()); i++ {
		child := parent.Child(i)
		if child == paramList {
			foundList = true
			continue
		}
		if foundList && child.Type() == "field_identifier" {
			return true
		}
	}
	return false
}

func goTypeAnnotation(node *sitter.Node, source []byte) string {
	if t := node.ChildByFieldName("type"); t != nil {
		return CollapseWhitespace(NodeText(t, source))
	}
	return ""
}
