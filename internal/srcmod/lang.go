// Package srcmod parses source files into module symbol listings using
// tree-sitter. A parsed file yields its top-level classes, functions and
// assignments in source order; classes carry their methods, properties
// and class-level assignments as children.
package srcmod

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
)

//go:embed queries/*.scm
var queryFS embed.FS

var whitespaceRe = regexp.MustCompile(`\s+`)

// Kind is the extraction kind of a symbol.
type Kind string

const (
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
	KindProperty Kind = "property"
	KindField    Kind = "field"
	KindVariable Kind = "variable"
)

// Symbol is one extracted declaration.
type Symbol struct {
	Name      string
	Kind      Kind
	Line      int
	Signature string
	// TypeAnnot is the declared type text of an annotated assignment or
	// record field, empty when absent.
	TypeAnnot string
	// Children holds class members in source order.
	Children []Symbol
}

// Language holds tree-sitter configuration for a supported language.
type Language struct {
	Name       string
	Extensions []string
	lang       *sitter.Language
	queryOnce  sync.Once
	query      *sitter.Query
	queryErr   error

	// EnclosingClass returns the name of the class containing a
	// definition node, or "" at module level.
	EnclosingClass func(node *sitter.Node, source []byte) string

	// InsideCallable reports whether a node sits inside a function
	// body, so local declarations can be dropped.
	InsideCallable func(node *sitter.Node) bool

	// IsPropertyDef reports whether a function definition is declared
	// as a managed accessor (e.g. a decorated Python property).
	IsPropertyDef func(node *sitter.Node, source []byte) bool

	// IsRecordClass reports whether a class is a record-style
	// declaration, making its data members fields rather than
	// variables.
	IsRecordClass func(node *sitter.Node, source []byte) bool

	// ReceiverType returns the receiver type name of a detached method
	// declaration (Go style). Returns "" if not applicable.
	ReceiverType func(node *sitter.Node, source []byte) string

	// RecordFields lists the record fields declared inside a class
	// definition node (Go struct fields). May be nil.
	RecordFields func(node *sitter.Node, source []byte) []Symbol

	// ExtractSignature returns a signature string for a definition node.
	ExtractSignature func(node *sitter.Node, kind Kind, source []byte) string

	// TypeAnnotation returns the declared type text of an assignment
	// node, or "".
	TypeAnnotation func(node *sitter.Node, source []byte) string
}

// GetLanguage returns the tree-sitter Language pointer.
func (l *Language) GetLanguage() *sitter.Language {
	return l.lang
}

// NewParser creates a fresh tree-sitter parser for this language.
// Each goroutine must use its own parser (not thread-safe).
func (l *Language) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(l.lang)
	return p
}

// GetTagQuery returns the compiled tree-sitter query (safe to share across goroutines).
func (l *Language) GetTagQuery() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		data, err := queryFS.ReadFile(fmt.Sprintf("queries/%s.scm", l.Name))
		if err != nil {
			l.queryErr = fmt.Errorf("reading query file: %w", err)
			return
		}
		q, err := sitter.NewQuery(data, l.lang)
		if err != nil {
			l.queryErr = fmt.Errorf("compiling query: %w", err)
			return
		}
		l.query = q
	})
	return l.query, l.queryErr
}

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language for a file extension, or nil if
// unsupported.
func ForExtension(ext string) *Language {
	name := getExtensionMap()[ext]
	if name == "" {
		return nil
	}
	return Languages[name]
}

// SupportedExt reports whether files with the extension parse as source
// modules.
func SupportedExt(ext string) bool {
	return getExtensionMap()[ext] != ""
}

// NodeText returns the source text of a tree-sitter node.
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
