// introspect prints a TOON report of a folder or source module.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/phobologic/introspect"
	"github.com/phobologic/introspect/internal/config"
	"github.com/phobologic/introspect/internal/toon"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("introspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		privates    bool
		recursive   bool
		noIgnore    bool
		showVersion bool
	)

	fs.BoolVar(&privates, "p", false, "include private (underscore-prefixed) members")
	fs.BoolVar(&privates, "private", false, "include private (underscore-prefixed) members")
	fs.BoolVar(&recursive, "r", false, "descend into subfolders")
	fs.BoolVar(&recursive, "recursive", false, "descend into subfolders")
	fs.BoolVar(&noIgnore, "no-ignore", false, "do not honor .gitignore")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "introspect %s\n", version)
		return nil
	}

	settings := config.Get()
	if recursive {
		settings.Recursive = true
	}
	if noIgnore {
		settings.RespectIgnore = false
	}
	config.Set(settings)

	target := "."
	if fs.NArg() > 0 {
		target = fs.Arg(0)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving target: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("target path: %w", err)
	}

	var report *toon.Report
	if info.IsDir() {
		report, err = folderReport(abs, privates)
	} else {
		report, err = moduleReport(abs, privates)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(stdout, toon.Encode(report))
	return nil
}

func folderReport(path string, privates bool) (*toon.Report, error) {
	folders, err := introspect.NameFolderPaths(path, privates)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	files, err := introspect.NameFilePaths(path, privates)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	modules, err := introspect.NameModules(path, privates)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	return &toon.Report{
		Subject: filepath.Base(path),
		Kind:    "folder",
		Sections: []toon.Section{
			{Name: "folders", Columns: []string{"path"}, Rows: nameRows(folders)},
			{Name: "files", Columns: []string{"path"}, Rows: nameRows(files)},
			{Name: "modules", Columns: []string{"path"}, Rows: nameRows(modules)},
		},
	}, nil
}

func moduleReport(path string, privates bool) (*toon.Report, error) {
	mod, err := introspect.LoadModule(path)
	if err != nil {
		return nil, err
	}

	classes, err := introspect.MapClasses(mod, privates)
	if err != nil {
		return nil, err
	}
	functions, err := introspect.MapFunctions(mod, privates)
	if err != nil {
		return nil, err
	}
	variables, err := introspect.MapVariables(mod, privates)
	if err != nil {
		return nil, err
	}

	var classRows, memberRows, funcRows, varRows [][]string

	for _, name := range classes.Keys() {
		cls, _ := classes.Get(name)
		sc, ok := cls.(*introspect.SourceClass)
		if !ok {
			continue
		}
		classRows = append(classRows, []string{name, strconv.Itoa(sc.Line), sc.Signature})

		rows, err := classMemberRows(name, sc, privates)
		if err != nil {
			return nil, err
		}
		memberRows = append(memberRows, rows...)
	}

	for _, name := range functions.Keys() {
		fn, _ := functions.Get(name)
		funcRows = append(funcRows, symbolRow(name, fn))
	}
	for _, name := range variables.Keys() {
		v, _ := variables.Get(name)
		varRows = append(varRows, symbolRow(name, v))
	}

	return &toon.Report{
		Subject: mod.Name(),
		Kind:    "module",
		Sections: []toon.Section{
			{Name: "classes", Columns: []string{"name", "line", "signature"}, Rows: classRows},
			{Name: "members", Columns: []string{"class", "name", "kind", "line", "signature"}, Rows: memberRows},
			{Name: "functions", Columns: []string{"name", "line", "signature"}, Rows: funcRows},
			{Name: "variables", Columns: []string{"name", "line", "type"}, Rows: varRows},
		},
	}, nil
}

func classMemberRows(className string, cls *introspect.SourceClass, privates bool) ([][]string, error) {
	members, err := introspect.MapClassAttributes(cls, privates)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, name := range members.Keys() {
		v, _ := members.Get(name)
		sym, ok := v.(*introspect.SourceSymbol)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			className,
			name,
			string(sym.Kind),
			strconv.Itoa(sym.Line),
			sym.Signature,
		})
	}
	return rows, nil
}

func symbolRow(name string, v any) []string {
	sym, ok := v.(*introspect.SourceSymbol)
	if !ok {
		return []string{name, "", ""}
	}
	detail := sym.Signature
	if sym.Kind == introspect.Variable {
		detail = sym.Type
	}
	return []string{name, strconv.Itoa(sym.Line), detail}
}

func nameRows(names []string) [][]string {
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{n}
	}
	return rows
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
