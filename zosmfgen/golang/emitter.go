// Package golang emits Go request builders from endpoint schemas.
package golang

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/wmcgee3/zosmf/zosmfgen/ir"
	"golang.org/x/tools/imports"
)

// Header is the first line of every generated file.
const Header = "// Code generated by zosmfgen. DO NOT EDIT."

// Emit renders every builder in schema as one Go source file. filename is
// the path the file will be written to; it is used to resolve imports.
// The output is formatted and byte-for-byte stable for a given schema.
func Emit(schema *ir.Schema, filename string) ([]byte, error) {
	if errs := checkNames(schema); len(errs) > 0 {
		return nil, errs[0]
	}

	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.WriteString("\n\npackage ")
	buf.WriteString(schema.Package.Name)
	buf.WriteString("\n\n")
	writeImports(&buf, schema)

	for _, e := range schema.Endpoints {
		b := newBuilder(e, schema.Package.Name)
		b.emit(&buf)
	}

	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}

func writeImports(buf *bytes.Buffer, schema *ir.Schema) {
	std := []string{"context", "net/http"}
	var usesSlices, usesMaps bool
	for _, e := range schema.Endpoints {
		for _, f := range e.Fields {
			if !f.HasSetter() || f.SetterOverride != "" {
				continue
			}
			switch f.Type.Shape {
			case ir.ShapeSlice:
				usesSlices = usesSlices || !f.Type.Pointer
			case ir.ShapeMap:
				usesMaps = usesMaps || !f.Type.Pointer
			}
		}
	}
	if usesMaps {
		std = append(std, "maps")
	}
	if usesSlices {
		std = append(std, "slices")
	}

	buf.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString("\n\t\"github.com/wmcgee3/zosmf/endpoint\"\n)\n")
}

// builder emits the code of one endpoint.
type builder struct {
	e    *ir.Endpoint
	pkg  string
	name string // builder type name
	tp   string // shape type parameter, empty for non-generic builders
	recv string // receiver type, e.g. "ListBuilder[T]"
	base string // name of the endpoint.Base field
}

func newBuilder(e *ir.Endpoint, pkg string) *builder {
	b := &builder{e: e, pkg: pkg, name: e.Name, recv: e.Name}
	if e.Generic() {
		b.tp = e.TypeParams[0].Name
		b.recv = e.Name + "[" + b.tp + "]"
	}
	if f, ok := e.BaseField(); ok {
		b.base = f.Name
	}
	return b
}

// target is the type Build decodes into.
func (b *builder) target() string {
	if b.tp != "" {
		return b.tp
	}
	return b.e.Target
}

func (b *builder) emit(buf *bytes.Buffer) {
	if b.e.Declare {
		b.emitDeclaration(buf)
	}
	b.emitConstructor(buf)
	for _, f := range b.e.Fields {
		if f.HasSetter() {
			b.emitSetter(buf, f)
		}
	}
	if b.tp != "" {
		b.emitNarrow(buf)
	}
	b.emitPath(buf)
	b.emitRequest(buf)
	b.emitFinalize(buf)
}

func writeDoc(buf *bytes.Buffer, doc string) {
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		buf.WriteString("//")
		if line = strings.TrimRight(line, " \t"); line != "" {
			buf.WriteString(" ")
			buf.WriteString(line)
		}
		buf.WriteString("\n")
	}
}

func (b *builder) typeParamDecl() string {
	if b.tp == "" {
		return ""
	}
	return "[" + b.tp + " endpoint.Target[" + b.tp + "]]"
}

func (b *builder) emitDeclaration(buf *bytes.Buffer) {
	if b.e.Doc != "" {
		writeDoc(buf, b.e.Doc)
	}
	fmt.Fprintf(buf, "type %s%s struct {\n", b.name, b.typeParamDecl())
	for i, f := range b.e.Fields {
		fmt.Fprintf(buf, "\t%s %s\n", f.Name, f.Type.Expr)
		if f.Type.Base && i < len(b.e.Fields)-1 {
			buf.WriteString("\n")
		}
	}
	buf.WriteString("}\n\n")
}

func (b *builder) emitConstructor(buf *bytes.Buffer) {
	fields := b.e.ConstructorFields()
	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = f.Name + " " + f.Type.Expr
	}

	fmt.Fprintf(buf, "// new%s returns %s %s with its required fields bound.\n", b.name, article(b.name), b.name)
	fmt.Fprintf(buf, "func new%s%s(%s) %s {\n", b.name, b.typeParamDecl(), strings.Join(params, ", "), b.recv)
	fmt.Fprintf(buf, "\treturn %s{\n", b.recv)
	for _, f := range fields {
		fmt.Fprintf(buf, "\t\t%s: %s,\n", f.Name, f.Name)
	}
	buf.WriteString("\t}\n}\n\n")
}

func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}

func setterDoc(f ir.Field) string {
	name := ir.Exported(f.Name)
	if f.Doc != "" {
		return f.Doc
	}
	switch f.Role {
	case ir.RoleQuery:
		return fmt.Sprintf("%s sets the %q query parameter.", name, f.Key)
	case ir.RoleHeader:
		return fmt.Sprintf("%s sets the %s header.", name, f.Key)
	case ir.RolePath:
		return fmt.Sprintf("%s sets the {%s} path segment.", name, f.Name)
	case ir.RoleBody:
		return fmt.Sprintf("%s sets the request body.", name)
	default:
		return fmt.Sprintf("%s sets %s.", name, f.Name)
	}
}

func (b *builder) emitSetter(buf *bytes.Buffer, f ir.Field) {
	param, arg := "value "+f.Type.Inner, "value"
	if f.Type.Shape == ir.ShapeSlice && !f.Type.Pointer {
		param, arg = "values ..."+f.Type.Elem, "values"
	}

	writeDoc(buf, setterDoc(f))
	fmt.Fprintf(buf, "func (b %s) %s(%s) %s {\n", b.recv, ir.Exported(f.Name), param, b.recv)
	switch {
	case f.SetterOverride != "":
		fmt.Fprintf(buf, "\treturn %s(b, %s)\n}\n\n", f.SetterOverride, arg)
		return
	case f.Type.Pointer:
		fmt.Fprintf(buf, "\tb.%s = &value\n", f.Name)
	case f.Type.Shape == ir.ShapeSlice:
		fmt.Fprintf(buf, "\tb.%s = slices.Clone(values)\n", f.Name)
	case f.Type.Shape == ir.ShapeMap:
		fmt.Fprintf(buf, "\tb.%s = maps.Clone(value)\n", f.Name)
	default:
		fmt.Fprintf(buf, "\tb.%s = value\n", f.Name)
	}
	buf.WriteString("\treturn b\n}\n\n")
}

// narrowTypeParam picks the name of the destination shape parameter.
func (b *builder) narrowTypeParam() string {
	if b.tp == "U" {
		return "V"
	}
	return "U"
}

func (b *builder) emitNarrow(buf *bytes.Buffer) {
	u := b.narrowTypeParam()
	fmt.Fprintf(buf, "// narrow%s moves the field values of b into a builder of another\n", b.name)
	buf.WriteString("// shape. b is consumed.\n")
	fmt.Fprintf(buf, "func narrow%s[%s endpoint.Target[%s], %s endpoint.Target[%s]](b %s) %s[%s] {\n",
		b.name, u, u, b.tp, b.tp, b.recv, b.name, u)
	fmt.Fprintf(buf, "\treturn %s[%s]{\n", b.name, u)
	for _, f := range b.e.Fields {
		if f.Type.Base {
			fmt.Fprintf(buf, "\t\t%s: b.%s.Narrow(),\n", f.Name, f.Name)
			continue
		}
		fmt.Fprintf(buf, "\t\t%s: b.%s,\n", f.Name, f.Name)
	}
	buf.WriteString("\t}\n}\n\n")
}

// wireValue renders expr, a value of type t, as header or query text.
func wireValue(t ir.TypeRef, expr string) string {
	if t.Shape == ir.ShapeString && !t.Named {
		return expr
	}
	return "endpoint.Format(" + expr + ")"
}

func (b *builder) emitPath(buf *bytes.Buffer) {
	// Path templates were validated before emission.
	parts, _ := ir.ParsePath(b.e.Path)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Field == "" {
			terms = append(terms, strconv.Quote(p.Literal))
			continue
		}
		f, _ := b.e.Field(p.Field)
		switch {
		case f.AssemblyOverride != "":
			terms = append(terms, f.AssemblyOverride+"(&b)")
		default:
			terms = append(terms, wireValue(f.Type, "b."+f.Name))
		}
	}
	fmt.Fprintf(buf, "func (b %s) path() string {\n", b.recv)
	fmt.Fprintf(buf, "\treturn %s\n}\n\n", strings.Join(terms, " + "))
}

// presence returns the condition under which an optional field is set.
func presence(f ir.Field) string {
	x := "b." + f.Name
	switch {
	case f.Type.Pointer:
		return x + " != nil"
	case f.Type.Shape == ir.ShapeSlice || f.Type.Shape == ir.ShapeMap:
		return "len(" + x + ") > 0"
	case f.Type.Shape == ir.ShapeString:
		return x + ` != ""`
	case f.Type.Shape == ir.ShapeBool:
		return x
	default:
		return x + " != 0"
	}
}

func httpMethod(m string) string {
	switch m {
	case "GET":
		return "http.MethodGet"
	case "PUT":
		return "http.MethodPut"
	case "POST":
		return "http.MethodPost"
	case "DELETE":
		return "http.MethodDelete"
	case "PATCH":
		return "http.MethodPatch"
	case "HEAD":
		return "http.MethodHead"
	default:
		return strconv.Quote(m)
	}
}

func (b *builder) emitRequest(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "func (b %s) request() endpoint.Request {\n", b.recv)
	fmt.Fprintf(buf, "\tr := endpoint.NewRequest(%q, %s, b.path())\n", b.e.QualifiedName(b.pkg), httpMethod(b.e.Method))
	for _, f := range b.e.Fields {
		if f.Type.Base || f.Role == ir.RolePath {
			continue
		}
		if f.AssemblyOverride != "" {
			fmt.Fprintf(buf, "\tr = %s(r, &b)\n", f.AssemblyOverride)
			continue
		}
		var with string
		switch f.Role {
		case ir.RoleQuery:
			with = "WithQuery"
		case ir.RoleHeader:
			with = "WithHeader"
		default:
			continue
		}
		b.emitPlacement(buf, f, with)
	}
	buf.WriteString("\treturn r\n}\n\n")
}

func (b *builder) emitPlacement(buf *bytes.Buffer, f ir.Field, with string) {
	x := "b." + f.Name
	indent := "\t"
	closing := ""
	if f.Optional && !(f.Type.Shape == ir.ShapeSlice && f.Role == ir.RoleQuery && !f.Type.Pointer) {
		fmt.Fprintf(buf, "\tif %s {\n", presence(f))
		indent, closing = "\t\t", "\t}\n"
	}
	if f.Type.Pointer {
		x = "*" + x
	}

	switch {
	case f.Type.Shape == ir.ShapeSlice && f.Role == ir.RoleQuery:
		fmt.Fprintf(buf, "%sfor _, v := range %s {\n", indent, x)
		fmt.Fprintf(buf, "%s\tr = r.%s(%q, endpoint.Format(v))\n", indent, with, f.Key)
		fmt.Fprintf(buf, "%s}\n", indent)
	case f.Type.Shape == ir.ShapeSlice:
		fmt.Fprintf(buf, "%sr = r.%s(%q, endpoint.FormatList(%s, \",\"))\n", indent, with, f.Key, x)
	default:
		fmt.Fprintf(buf, "%sr = r.%s(%q, %s)\n", indent, with, f.Key, wireValue(f.Type, x))
	}
	buf.WriteString(closing)
}

func (b *builder) emitFinalize(buf *bytes.Buffer) {
	buf.WriteString("// HTTPRequest assembles the request Build would send, without sending it.\n")
	fmt.Fprintf(buf, "func (b %s) HTTPRequest(ctx context.Context) (*http.Request, error) {\n", b.recv)
	fmt.Fprintf(buf, "\treturn b.%s.Prepare(ctx, b.request())\n}\n\n", b.base)

	fmt.Fprintf(buf, "// Build sends the request and decodes the response as %s.\n", b.target())
	fmt.Fprintf(buf, "func (b %s) Build(ctx context.Context) (%s, error) {\n", b.recv, b.target())
	fmt.Fprintf(buf, "\treturn endpoint.Finalize[%s](ctx, b.%s, b.request())\n}\n\n", b.target(), b.base)
}
