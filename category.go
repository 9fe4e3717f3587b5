package introspect

// Category is the semantic kind a member can be classified as.
// A single member may satisfy several categories (a struct field is a
// Field, a Variable and an Attribute at once); each query suffix selects
// exactly one category, so results within one query never overlap.
type Category string

const (
	Annotation     Category = "annotation"
	Attribute      Category = "attribute"
	Class          Category = "class"
	ClassAttribute Category = "class_attribute"
	Field          Category = "field"
	FilePath       Category = "file_path"
	FolderPath     Category = "folder_path"
	Function       Category = "function"
	Method         Category = "method"
	ModuleRef      Category = "module"
	Path           Category = "path"
	Property       Category = "property"
	SignatureOf    Category = "signature"
	Variable       Category = "variable"
)
