// Package introspect is a uniform query layer over Go reflection and
// source inspection: given a subject — a module descriptor, a type, an
// instance, or a directory path — it answers structured questions such
// as "what functions does it expose", "does it have these members", or
// "is this member a method".
//
// The surface is a grid. Five prefixes select the result shape:
//
//	Name*  ordered member names
//	Get*   member values, in the same order
//	Map*   ordered name→value mapping (always the zip of the two above)
//	Has*   whether every given name is present
//	Is*    single-member category predicates
//
// crossed with suffixes that select a member category: functions,
// methods, fields, properties, classes, variables, annotations,
// signatures, modules, and the path family. Each cell dispatches through
// one shared resolver, so ordering, privacy filtering and error behavior
// are identical everywhere.
//
// Members whose names begin with a single underscore are private and
// excluded unless the query's includePrivates flag is set; names bounded
// by double underscores are runtime machinery and always excluded.
//
// Go has no runtime reflection over packages, so module subjects are
// explicit descriptors: build them with NewModule and Register, or parse
// a source file into one with LoadModule.
//
// All queries are read-only, stateless and safe for concurrent use;
// results are recomputed on every call.
package introspect
