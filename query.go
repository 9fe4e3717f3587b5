package introspect

// The public query surface is a grid: five prefixes crossed with the
// suffix table in resolve.go. Name* returns member names, Get* the
// values in the same order, Map* the zip of the two, Has* membership of
// a caller-supplied name set. Every cell goes through the one generic
// resolver, so ordering and privacy behave identically everywhere.
//
// The includePrivates flag is the only per-query option; false excludes
// leading-underscore names, and dunder-style reserved names are excluded
// either way.

func nameQuery(op string, item any, cat Category, includePrivates bool) ([]string, error) {
	ms, err := resolve(op, item, cat, includePrivates)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out, nil
}

func getQuery(op string, item any, cat Category, includePrivates bool) ([]any, error) {
	ms, err := resolve(op, item, cat, includePrivates)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Value)
	}
	return out, nil
}

func mapQuery(op string, item any, cat Category, includePrivates bool) (*Mapping, error) {
	ms, err := resolve(op, item, cat, includePrivates)
	if err != nil {
		return nil, err
	}
	return newMapping(ms), nil
}

func hasQuery(op string, item any, cat Category, names []string, includePrivates bool) (bool, error) {
	ms, err := resolve(op, item, cat, includePrivates)
	if err != nil {
		return false, err
	}
	present := make(map[string]bool, len(ms))
	for _, m := range ms {
		present[m.Name] = true
	}
	for _, n := range names {
		if !present[n] {
			return false, nil
		}
	}
	return true, nil
}

// Annotations: declared types of a subject's members.

func NameAnnotations(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_annotations", item, Annotation, includePrivates)
}

func GetAnnotations(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_annotations", item, Annotation, includePrivates)
}

func MapAnnotations(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_annotations", item, Annotation, includePrivates)
}

func HasAnnotations(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_annotations", item, Annotation, names, includePrivates)
}

// Attributes: every member of a subject, regardless of finer category.

func NameAttributes(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_attributes", item, Attribute, includePrivates)
}

func GetAttributes(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_attributes", item, Attribute, includePrivates)
}

func MapAttributes(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_attributes", item, Attribute, includePrivates)
}

func HasAttributes(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_attributes", item, Attribute, names, includePrivates)
}

// Classes: type members of a module subject.

func NameClasses(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_classes", item, Class, includePrivates)
}

func GetClasses(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_classes", item, Class, includePrivates)
}

func MapClasses(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_classes", item, Class, includePrivates)
}

func HasClasses(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_classes", item, Class, names, includePrivates)
}

// ClassAttributes: members backed by the type definition rather than
// per-instance storage.

func NameClassAttributes(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_class_attributes", item, ClassAttribute, includePrivates)
}

func GetClassAttributes(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_class_attributes", item, ClassAttribute, includePrivates)
}

func MapClassAttributes(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_class_attributes", item, ClassAttribute, includePrivates)
}

func HasClassAttributes(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_class_attributes", item, ClassAttribute, names, includePrivates)
}

// Fields: record-declared data members.

func NameFields(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_fields", item, Field, includePrivates)
}

func GetFields(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_fields", item, Field, includePrivates)
}

func MapFields(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_fields", item, Field, includePrivates)
}

func HasFields(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_fields", item, Field, names, includePrivates)
}

// FilePaths: files under a folder subject.

func NameFilePaths(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_file_paths", item, FilePath, includePrivates)
}

func GetFilePaths(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_file_paths", item, FilePath, includePrivates)
}

func MapFilePaths(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_file_paths", item, FilePath, includePrivates)
}

func HasFilePaths(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_file_paths", item, FilePath, names, includePrivates)
}

// FolderPaths: directories under a folder subject.

func NameFolderPaths(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_folder_paths", item, FolderPath, includePrivates)
}

func GetFolderPaths(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_folder_paths", item, FolderPath, includePrivates)
}

func MapFolderPaths(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_folder_paths", item, FolderPath, includePrivates)
}

func HasFolderPaths(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_folder_paths", item, FolderPath, names, includePrivates)
}

// Functions: callable members of a module subject.

func NameFunctions(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_functions", item, Function, includePrivates)
}

func GetFunctions(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_functions", item, Function, includePrivates)
}

func MapFunctions(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_functions", item, Function, includePrivates)
}

func HasFunctions(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_functions", item, Function, names, includePrivates)
}

// Methods: callable members of a type or instance subject.

func NameMethods(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_methods", item, Method, includePrivates)
}

func GetMethods(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_methods", item, Method, includePrivates)
}

func MapMethods(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_methods", item, Method, includePrivates)
}

func HasMethods(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_methods", item, Method, names, includePrivates)
}

// Modules: submodule members of a module subject, or source-module files
// under a folder subject.

func NameModules(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_modules", item, ModuleRef, includePrivates)
}

func GetModules(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_modules", item, ModuleRef, includePrivates)
}

func MapModules(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_modules", item, ModuleRef, includePrivates)
}

func HasModules(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_modules", item, ModuleRef, names, includePrivates)
}

// Paths: every entry under a folder subject.

func NamePaths(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_paths", item, Path, includePrivates)
}

func GetPaths(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_paths", item, Path, includePrivates)
}

func MapPaths(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_paths", item, Path, includePrivates)
}

func HasPaths(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_paths", item, Path, names, includePrivates)
}

// Properties: managed accessor members.

func NameProperties(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_properties", item, Property, includePrivates)
}

func GetProperties(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_properties", item, Property, includePrivates)
}

func MapProperties(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_properties", item, Property, includePrivates)
}

func HasProperties(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_properties", item, Property, names, includePrivates)
}

// Signatures: declared signatures of a subject's callables.

func NameSignatures(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_signatures", item, SignatureOf, includePrivates)
}

func GetSignatures(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_signatures", item, SignatureOf, includePrivates)
}

func MapSignatures(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_signatures", item, SignatureOf, includePrivates)
}

func HasSignatures(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_signatures", item, SignatureOf, names, includePrivates)
}

// Variables: plain, non-callable data members.

func NameVariables(item any, includePrivates bool) ([]string, error) {
	return nameQuery("name_variables", item, Variable, includePrivates)
}

func GetVariables(item any, includePrivates bool) ([]any, error) {
	return getQuery("get_variables", item, Variable, includePrivates)
}

func MapVariables(item any, includePrivates bool) (*Mapping, error) {
	return mapQuery("map_variables", item, Variable, includePrivates)
}

func HasVariables(item any, names []string, includePrivates bool) (bool, error) {
	return hasQuery("has_variables", item, Variable, names, includePrivates)
}
