package introspect

// Singular lookups resolve exactly one member. Zero matches is a
// NotFoundError; more than one (possible for duplicate source
// definitions and base-name path matches) is an AmbiguousResultError.
// An explicitly named member is returned whether or not it is private.

func GetAttribute(item any, name string) (any, error) {
	return lookup("get_attribute", item, Attribute, name)
}

func GetClass(item any, name string) (any, error) {
	return lookup("get_class", item, Class, name)
}

func GetClassAttribute(item any, name string) (any, error) {
	return lookup("get_class_attribute", item, ClassAttribute, name)
}

func GetField(item any, name string) (any, error) {
	return lookup("get_field", item, Field, name)
}

func GetFilePath(item any, name string) (any, error) {
	return lookup("get_file_path", item, FilePath, name)
}

func GetFolderPath(item any, name string) (any, error) {
	return lookup("get_folder_path", item, FolderPath, name)
}

func GetFunction(item any, name string) (any, error) {
	return lookup("get_function", item, Function, name)
}

func GetMethod(item any, name string) (any, error) {
	return lookup("get_method", item, Method, name)
}

func GetModule(item any, name string) (any, error) {
	return lookup("get_module", item, ModuleRef, name)
}

func GetPath(item any, name string) (any, error) {
	return lookup("get_path", item, Path, name)
}

func GetProperty(item any, name string) (any, error) {
	return lookup("get_property", item, Property, name)
}

func GetVariable(item any, name string) (any, error) {
	return lookup("get_variable", item, Variable, name)
}
