package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
	"github.com/wmcgee3/zosmf/zosmfgen/ir"
)

// cueDefinitions constrain endpoint schema files. Definitions are closed,
// so misspelled keys are reported instead of ignored.
const cueDefinitions = `
#Field: {
	name:         string & =~"^[A-Za-z_][A-Za-z0-9_]*$"
	type:         string
	shape?:       "string" | "int" | "uint" | "float" | "bool" | "struct"
	doc?:         string
	path?:        bool
	query?:       string
	header?:      string
	body?:        bool
	optional?:    bool
	skip_setter?: bool
	setter?:      string
	builder?:     string
}

#Endpoint: {
	name:     string
	method:   "GET" | "PUT" | "POST" | "DELETE" | "PATCH" | "HEAD"
	path:     string
	doc?:     string
	generic?: bool
	target?:  string
	fields:   [...#Field] | *[]
}

#File: {
	endpoints: [...#Endpoint]
	...
}
`

// CUEProvider builds a schema from a CUE file listing endpoints.
// The emitted code includes the builder struct declarations.
type CUEProvider struct{}

// CUEInputOptions configures CUE-based schema extraction.
type CUEInputOptions struct {
	// File is the CUE schema file. Ignored when Source is set.
	File string

	// Source is CUE source text.
	Source []byte

	// Package is the Go package the builders are generated into.
	Package ir.PackageInfo
}

type cueField struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Shape      string `json:"shape"`
	Doc        string `json:"doc"`
	Path       bool   `json:"path"`
	Query      string `json:"query"`
	Header     string `json:"header"`
	Body       bool   `json:"body"`
	Optional   bool   `json:"optional"`
	SkipSetter bool   `json:"skip_setter"`
	Setter     string `json:"setter"`
	Builder    string `json:"builder"`
}

type cueEndpoint struct {
	Name    string     `json:"name"`
	Method  string     `json:"method"`
	Path    string     `json:"path"`
	Doc     string     `json:"doc"`
	Generic bool       `json:"generic"`
	Target  string     `json:"target"`
	Fields  []cueField `json:"fields"`
}

// BuildSchema compiles the CUE schema and converts every endpoint, in
// list order.
func (p *CUEProvider) BuildSchema(ctx context.Context, opts CUEInputOptions) (*ir.Schema, error) {
	if opts.Package.Name == "" {
		return nil, fmt.Errorf("no target package name specified")
	}

	src, filename := opts.Source, "<input>"
	if src == nil {
		if opts.File == "" {
			return nil, fmt.Errorf("no CUE file specified")
		}
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("read CUE schema: %w", err)
		}
		src, filename = data, opts.File
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cctx := cuecontext.New()
	defs := cctx.CompileString(cueDefinitions, cue.Filename("zosmfgen.cue"))
	if defs.Err() != nil {
		return nil, fmt.Errorf("compile definitions: %w", defs.Err())
	}
	val := cctx.CompileBytes(src, cue.Filename(filename))
	if val.Err() != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, val.Err())
	}
	positions := endpointPositions(val)
	val = defs.LookupPath(cue.ParsePath("#File")).Unify(val)
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filename, err)
	}

	schema := &ir.Schema{Package: opts.Package}
	list := val.LookupPath(cue.ParsePath("endpoints"))
	if list.Err() != nil {
		return nil, fmt.Errorf("no endpoints in %s: %w", filename, list.Err())
	}
	iter, err := list.List()
	if err != nil {
		return nil, fmt.Errorf("endpoints in %s: %w", filename, err)
	}
	for i := 0; iter.Next(); i++ {
		var ce cueEndpoint
		if err := iter.Value().Decode(&ce); err != nil {
			return nil, fmt.Errorf("decode endpoint: %w", err)
		}
		e, err := convertCUEEndpoint(ce)
		if err != nil {
			return nil, fmt.Errorf("%s: endpoint %s: %w", filename, ce.Name, err)
		}
		if i < len(positions) && positions[i].IsValid() {
			pos := positions[i]
			e.Source = &ir.Source{File: pos.Filename(), Line: pos.Line(), Column: pos.Column()}
		}
		schema.AddEndpoint(e)
	}
	return schema, nil
}

// endpointPositions returns where each endpoint is written in the user's
// file. Positions must be read before unification with the definitions,
// which would otherwise report the definition's location.
func endpointPositions(val cue.Value) []token.Pos {
	iter, err := val.LookupPath(cue.ParsePath("endpoints")).List()
	if err != nil {
		return nil
	}
	var positions []token.Pos
	for iter.Next() {
		positions = append(positions, iter.Value().Pos())
	}
	return positions
}

func convertCUEEndpoint(ce cueEndpoint) (*ir.Endpoint, error) {
	e := &ir.Endpoint{
		Name:    ce.Name,
		Method:  ce.Method,
		Path:    ce.Path,
		Target:  ce.Target,
		Doc:     ce.Doc,
		Declare: true,
	}
	if ce.Generic {
		e.TypeParams = []ir.TypeParam{{Name: "T", Constraint: "endpoint.Target[T]"}}
	}

	base, err := exprTypeRef("endpoint.Base")
	if err != nil {
		return nil, err
	}
	e.Fields = append(e.Fields, ir.Field{Name: "base", Type: base})

	for _, cf := range ce.Fields {
		ref, err := exprTypeRef(cf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", cf.Name, err)
		}
		if cf.Shape != "" {
			ref.Shape = shapeNamed(cf.Shape)
		}
		f := ir.Field{
			Name:             ir.CamelCase(cf.Name),
			Type:             ref,
			Optional:         cf.Optional || ref.Pointer,
			SkipSetter:       cf.SkipSetter,
			SetterOverride:   cf.Setter,
			AssemblyOverride: cf.Builder,
			Doc:              cf.Doc,
		}
		roles := 0
		if cf.Path {
			f.Role, roles = ir.RolePath, roles+1
		}
		if cf.Query != "" {
			f.Role, f.Key, roles = ir.RoleQuery, cf.Query, roles+1
		}
		if cf.Header != "" {
			f.Role, f.Key, roles = ir.RoleHeader, cf.Header, roles+1
		}
		if cf.Body {
			f.Role, roles = ir.RoleBody, roles+1
		}
		if roles > 1 {
			return nil, fmt.Errorf("field %s has more than one role", cf.Name)
		}
		e.Fields = append(e.Fields, f)
	}
	return e, nil
}

var builtinShapes = map[string]ir.Shape{
	"string":  ir.ShapeString,
	"bool":    ir.ShapeBool,
	"int":     ir.ShapeInt,
	"int8":    ir.ShapeInt,
	"int16":   ir.ShapeInt,
	"int32":   ir.ShapeInt,
	"int64":   ir.ShapeInt,
	"rune":    ir.ShapeInt,
	"uint":    ir.ShapeUint,
	"uint8":   ir.ShapeUint,
	"uint16":  ir.ShapeUint,
	"uint32":  ir.ShapeUint,
	"uint64":  ir.ShapeUint,
	"byte":    ir.ShapeUint,
	"float32": ir.ShapeFloat,
	"float64": ir.ShapeFloat,
}

func shapeNamed(name string) ir.Shape {
	if name == "struct" {
		return ir.ShapeStruct
	}
	return builtinShapes[name]
}

// exprTypeRef describes a Go type expression written in a CUE schema.
// Without type information, defined types have ShapeOther unless the
// schema names their shape.
func exprTypeRef(expr string) (ir.TypeRef, error) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return ir.TypeRef{}, fmt.Errorf("invalid type %q: %w", expr, err)
	}
	ref := ir.TypeRef{Expr: types.ExprString(x)}
	if star, ok := x.(*ast.StarExpr); ok {
		ref.Pointer = true
		x = star.X
	}
	ref.Inner = types.ExprString(x)

	switch t := x.(type) {
	case *ast.Ident:
		if shape, ok := builtinShapes[t.Name]; ok {
			ref.Shape = shape
		} else {
			ref.Named = true
		}
	case *ast.SelectorExpr:
		ref.Named = true
		if ref.Inner == "endpoint.Base" {
			ref.Base = true
			ref.Shape = ir.ShapeStruct
		}
	case *ast.ArrayType:
		elem := types.ExprString(t.Elt)
		switch {
		case t.Len != nil:
			ref.Shape = ir.ShapeOther
		case elem == "byte":
			ref.Shape = ir.ShapeOther
		default:
			ref.Shape = ir.ShapeSlice
			ref.Elem = elem
		}
	case *ast.MapType:
		ref.Shape = ir.ShapeMap
	case *ast.StructType:
		ref.Shape = ir.ShapeStruct
	default:
		if strings.TrimSpace(expr) == "" {
			return ir.TypeRef{}, fmt.Errorf("empty type")
		}
	}
	return ref, nil
}
