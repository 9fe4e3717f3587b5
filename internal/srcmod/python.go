package srcmod

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

func init() {
	Languages["python"] = &Language{
		Name:             "python",
		Extensions:       []string{".py"},
		lang:             python.GetLanguage(),
		EnclosingClass:   pythonEnclosingClass,
		InsideCallable:   pythonInsideCallable,
		IsPropertyDef:    pythonIsPropertyDef,
		IsRecordClass:    pythonIsRecordClass,
		ExtractSignature: pythonExtractSignature,
		TypeAnnotation:   pythonTypeAnnotation,
	}
}

// pythonFindEnclosingClass walks from a definition or assignment node
// to the class body containing it, if any. A function boundary in
// between means the node is a local, not a class member.
func pythonFindEnclosingClass(node *sitter.Node) *sitter.Node {
	for cur := node.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "function_definition", "lambda":
			return nil
		case "class_definition":
			return cur
		}
	}
	return nil
}

func pythonEnclosingClass(node *sitter.Node, source []byte) string {
	classNode := pythonFindEnclosingClass(node)
	if classNode == nil {
		return ""
	}
	return pythonClassName(classNode, source)
}

func pythonClassName(classNode *sitter.Node, source []byte) string {
	for i := 0; i < int(classNode.ChildCount()); i++ {
		child := classNode.Child(i)
		if child.Type() == "identifier" {
			return NodeText(child, source)
		}
	}
	return ""
}

func pythonInsideCallable(node *sitter.Node) bool {
	for cur := node.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "function_definition", "lambda":
			return true
		case "class_definition":
			return false
		}
	}
	return false
}

// pythonIsPropertyDef reports whether a function definition is wrapped
// in a @property (or @x.setter style accessor) decorator.
func pythonIsPropertyDef(node *sitter.Node, source []byte) bool {
	parent := node.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return false
	}
	for i := 0; i < int(parent.ChildCount()); i++ {
		child := parent.Child(i)
		if child.Type() != "decorator" {
			continue
		}
		text := NodeText(child, source)
		if text == "@property" || text == "@cached_property" || text == "@functools.cached_property" {
			return true
		}
	}
	return false
}

// pythonIsRecordClass reports whether a class definition carries a
// dataclass-style decorator, which turns its annotated class-level
// assignments into record fields.
func pythonIsRecordClass(node *sitter.Node, source []byte) bool {
	parent := node.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return false
	}
	for i := 0; i < int(parent.ChildCount()); i++ {
		child := parent.Child(i)
		if child.Type() != "decorator" {
			continue
		}
		text := NodeText(child, source)
		if text == "@dataclass" || text == "@dataclasses.dataclass" ||
			text == "@dataclass()" || text == "@dataclasses.dataclass()" ||
			text == "@attr.s" || text == "@attrs.define" {
			return true
		}
	}
	return false
}

func pythonExtractSignature(node *sitter.Node, kind Kind, source []byte) string {
	if kind == KindClass {
		var name, args string
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			switch child.Type() {
			case "identifier":
				name = NodeText(child, source)
			case "argument_list":
				args = NodeText(child, source)
			}
		}
		if args != "" {
			return name + args
		}
		return name
	}

	var name, params, returnType string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			name = NodeText(child, source)
		case "parameters":
			params = CollapseWhitespace(NodeText(child, source))
		case "type":
			returnType = NodeText(child, source)
		}
	}
	sig := name + params
	if returnType != "" {
		sig += " -> " + returnType
	}
	return sig
}

func pythonTypeAnnotation(node *sitter.Node, source []byte) string {
	if t := node.ChildByFieldName("type"); t != nil {
		return CollapseWhitespace(NodeText(t, source))
	}
	return ""
}
