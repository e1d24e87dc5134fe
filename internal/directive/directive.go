// Package directive parses zosmf endpoint directives from Go source files.
//
// A directive is a line comment in the doc comment of a builder type:
//
//	//zosmf:endpoint GET /zosmf/restfiles/ds/{datasetName}
//	//zosmf:endpoint PUT /zosmf/restfiles/ds/{datasetName} target=Write
//
// The method and path template are required. target names the response
// type of a builder that has no shape type parameter.
package directive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

const prefix = "//zosmf:"

// Directive represents a parsed endpoint directive.
type Directive struct {
	Method   string         // HTTP method, upper case
	Path     string         // path template
	Target   string         // response type, empty for generic builders
	TypeName string         // name of the annotated type
	Pos      token.Position // source location
}

// Result contains all directives found in a package.
type Result struct {
	Endpoints []Directive

	// PackagePath is the import path of the parsed package.
	PackagePath string

	// Name is the package name.
	Name string

	// Dir is the directory containing the package.
	Dir string
}

// Parse scans a Go package for endpoint directives.
//
// The pattern follows go command semantics:
//   - "." for current directory
//   - Import path like "github.com/foo/bar"
//   - Absolute or relative directory path
//
// Returns an error if:
//   - The package cannot be loaded
//   - A directive is malformed or unknown
//   - A directive is not immediately followed by a type declaration
func Parse(pattern string) (*Result, error) {
	return ParseDir(pattern, "")
}

// ParseDir is like Parse but allows specifying a working directory.
// If dir is empty, the current directory is used.
func ParseDir(pattern, dir string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", pattern)
	}

	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found matching %q; specify a single package", pattern)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkg.Errors[0])
	}

	result := &Result{
		PackagePath: pkg.PkgPath,
		Name:        pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		result.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	fset := token.NewFileSet()
	for _, filename := range pkg.GoFiles {
		f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filename, err)
		}

		directives, err := ParseFile(fset, f)
		if err != nil {
			return nil, err
		}
		result.Endpoints = append(result.Endpoints, directives...)
	}

	return result, nil
}

// ParseFile extracts directives from a single parsed file, in source order.
func ParseFile(fset *token.FileSet, f *ast.File) ([]Directive, error) {
	// Directives are keyed by the end of their comment group so they can
	// be matched to the type declaration that group documents.
	pending := make(map[token.Pos]Directive)

	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, prefix) {
				continue
			}

			pos := fset.Position(c.Pos())
			parts := strings.Fields(strings.TrimPrefix(c.Text, prefix))
			if len(parts) == 0 {
				return nil, fmt.Errorf("%s: empty %s directive", pos, prefix)
			}
			if parts[0] != "endpoint" {
				return nil, fmt.Errorf("%s: unknown directive %s%s", pos, prefix, parts[0])
			}
			if _, dup := pending[cg.End()]; dup {
				return nil, fmt.Errorf("%s: multiple %sendpoint directives on one declaration", pos, prefix)
			}
			d, err := parseEndpoint(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pos, err)
			}
			d.Pos = pos
			pending[cg.End()] = d
		}
	}

	var directives []Directive
	match := func(doc *ast.CommentGroup, name string) {
		if doc == nil {
			return
		}
		if d, ok := pending[doc.End()]; ok {
			d.TypeName = name
			directives = append(directives, d)
			delete(pending, doc.End())
		}
	}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			match(ts.Doc, ts.Name.Name)
			if len(gen.Specs) == 1 {
				match(gen.Doc, ts.Name.Name)
			}
		}
	}

	// Check for unmatched directives
	for _, d := range pending {
		return nil, fmt.Errorf("%s: %sendpoint directive must document a type declaration", d.Pos, prefix)
	}

	return directives, nil
}

func parseEndpoint(args []string) (Directive, error) {
	if len(args) < 2 {
		return Directive{}, fmt.Errorf("%sendpoint needs a method and a path template", prefix)
	}
	d := Directive{
		Method: strings.ToUpper(args[0]),
		Path:   args[1],
	}
	for _, opt := range args[2:] {
		key, value, ok := strings.Cut(opt, "=")
		if !ok || value == "" {
			return Directive{}, fmt.Errorf("malformed option %q, want key=value", opt)
		}
		switch key {
		case "target":
			d.Target = value
		default:
			return Directive{}, fmt.Errorf("unknown option %q", key)
		}
	}
	return d, nil
}
