// Package provider builds endpoint schemas for the generator, either from
// annotated Go builder types or from CUE schema files.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/wmcgee3/zosmf/internal/directive"
	"github.com/wmcgee3/zosmf/zosmfgen/ir"
	"golang.org/x/tools/go/packages"
)

// EndpointPackage is the import path of the runtime package that defines
// endpoint.Base and endpoint.Target.
const EndpointPackage = "github.com/wmcgee3/zosmf/endpoint"

// SourceProvider extracts endpoint schemas from Go source code.
type SourceProvider struct{}

// SourceInputOptions configures source-based schema extraction.
type SourceInputOptions struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// Dir is the working directory for resolving patterns.
	// If empty, the current directory is used.
	Dir string
}

// BuildSchemas loads the packages and returns one schema per package that
// declares at least one endpoint, sorted by import path.
//
// Type errors are tolerated: the builder types must resolve, but the rest
// of the package may still refer to generated code that does not exist yet.
func (p *SourceProvider) BuildSchemas(ctx context.Context, opts SourceInputOptions) ([]*ir.Schema, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	var schemas []*ir.Schema
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind != packages.TypeError {
				return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
			}
		}
		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		b := &schemaBuilder{pkg: pkg, schema: &ir.Schema{}}
		if err := b.build(); err != nil {
			return nil, err
		}
		if len(b.schema.Endpoints) > 0 {
			schemas = append(schemas, b.schema)
		}
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Package.Path < schemas[j].Package.Path
	})
	return schemas, nil
}

// schemaBuilder extracts the endpoints of one package.
type schemaBuilder struct {
	pkg    *packages.Package
	schema *ir.Schema

	// fieldDocs maps the position of a struct field name to its doc
	// comment. Documented fields use it as their setter doc.
	fieldDocs map[token.Pos]string
}

func (b *schemaBuilder) collectFieldDocs() {
	b.fieldDocs = make(map[token.Pos]string)
	for _, f := range b.pkg.Syntax {
		ast.Inspect(f, func(n ast.Node) bool {
			st, ok := n.(*ast.StructType)
			if !ok {
				return true
			}
			for _, field := range st.Fields.List {
				if field.Doc == nil {
					continue
				}
				doc := strings.TrimSpace(field.Doc.Text())
				for _, name := range field.Names {
					b.fieldDocs[name.Pos()] = doc
				}
			}
			return true
		})
	}
}

func (b *schemaBuilder) build() error {
	b.schema.Package = ir.PackageInfo{
		Path: b.pkg.PkgPath,
		Name: b.pkg.Name,
	}
	if len(b.pkg.GoFiles) > 0 {
		b.schema.Package.Dir = filepath.Dir(b.pkg.GoFiles[0])
	}

	b.collectFieldDocs()
	for _, f := range b.pkg.Syntax {
		directives, err := directive.ParseFile(b.pkg.Fset, f)
		if err != nil {
			return err
		}
		for _, d := range directives {
			e, err := b.extractEndpoint(d)
			if err != nil {
				return fmt.Errorf("%s: %w", d.Pos, err)
			}
			b.schema.AddEndpoint(e)
		}
	}
	return nil
}

func (b *schemaBuilder) qualifier(p *types.Package) string {
	if p == b.pkg.Types {
		return ""
	}
	return p.Name()
}

func (b *schemaBuilder) extractEndpoint(d directive.Directive) (*ir.Endpoint, error) {
	obj, ok := b.pkg.Types.Scope().Lookup(d.TypeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %s not found", d.TypeName)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s is not a defined type", d.TypeName)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s must be a struct type", d.TypeName)
	}

	e := &ir.Endpoint{
		Name:   d.TypeName,
		Method: d.Method,
		Path:   d.Path,
		Target: d.Target,
		Source: b.source(obj.Pos()),
	}
	for i := 0; i < named.TypeParams().Len(); i++ {
		tp := named.TypeParams().At(i)
		e.TypeParams = append(e.TypeParams, ir.TypeParam{
			Name:       tp.Obj().Name(),
			Constraint: types.TypeString(tp.Constraint(), b.qualifier),
		})
	}

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		f := ir.Field{
			Name:   v.Name(),
			Type:   b.typeRef(v.Type()),
			Doc:    b.fieldDocs[v.Pos()],
			Source: b.source(v.Pos()),
		}
		tag, hasTag := reflect.StructTag(st.Tag(i)).Lookup("endpoint")
		if hasTag {
			if err := parseTag(tag, &f); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", d.TypeName, v.Name(), err)
			}
		}
		if f.Type.Pointer {
			f.Optional = true
		}
		e.Fields = append(e.Fields, f)
	}
	return e, nil
}

func (b *schemaBuilder) source(pos token.Pos) *ir.Source {
	p := b.pkg.Fset.Position(pos)
	if !p.IsValid() {
		return nil
	}
	return &ir.Source{File: p.Filename, Line: p.Line, Column: p.Column}
}

// typeRef describes t as it is spelled inside the builder's package.
func (b *schemaBuilder) typeRef(t types.Type) ir.TypeRef {
	ref := ir.TypeRef{Expr: types.TypeString(t, b.qualifier)}

	inner := t
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		ref.Pointer = true
		inner = ptr.Elem()
	}
	ref.Inner = types.TypeString(inner, b.qualifier)

	if named, ok := types.Unalias(inner).(*types.Named); ok {
		ref.Named = true
		obj := named.Obj()
		ref.Base = obj.Pkg() != nil && obj.Pkg().Path() == EndpointPackage && obj.Name() == "Base"
	}

	switch u := inner.Underlying().(type) {
	case *types.Basic:
		ref.Shape = basicShape(u)
	case *types.Struct:
		ref.Shape = ir.ShapeStruct
	case *types.Slice:
		if elem, ok := u.Elem().Underlying().(*types.Basic); ok && elem.Kind() == types.Byte {
			// Byte slices are opaque payloads, not lists.
			ref.Shape = ir.ShapeOther
			break
		}
		ref.Shape = ir.ShapeSlice
		ref.Elem = types.TypeString(u.Elem(), b.qualifier)
	case *types.Map:
		ref.Shape = ir.ShapeMap
	default:
		ref.Shape = ir.ShapeOther
	}
	return ref
}

func basicShape(t *types.Basic) ir.Shape {
	info := t.Info()
	switch {
	case info&types.IsString != 0:
		return ir.ShapeString
	case info&types.IsBoolean != 0:
		return ir.ShapeBool
	case info&types.IsUnsigned != 0:
		return ir.ShapeUint
	case info&types.IsInteger != 0:
		return ir.ShapeInt
	case info&types.IsFloat != 0:
		return ir.ShapeFloat
	default:
		return ir.ShapeOther
	}
}
