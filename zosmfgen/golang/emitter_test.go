package golang

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wmcgee3/zosmf/zosmfgen/ir"
)

func baseField() ir.Field {
	return ir.Field{Name: "base", Type: ir.TypeRef{Expr: "endpoint.Base", Inner: "endpoint.Base", Shape: ir.ShapeStruct, Named: true, Base: true}}
}

func stringType() ir.TypeRef {
	return ir.TypeRef{Expr: "string", Inner: "string", Shape: ir.ShapeString}
}

func ptrType(inner string, shape ir.Shape, named bool) ir.TypeRef {
	return ir.TypeRef{Expr: "*" + inner, Inner: inner, Shape: shape, Named: named, Pointer: true}
}

func sliceType(elem string) ir.TypeRef {
	return ir.TypeRef{Expr: "[]" + elem, Inner: "[]" + elem, Elem: elem, Shape: ir.ShapeSlice}
}

func testSchema() *ir.Schema {
	return &ir.Schema{
		Package: ir.PackageInfo{Path: "example.com/datasets", Name: "datasets"},
		Endpoints: []*ir.Endpoint{
			{
				Name:       "ReadBuilder",
				Method:     "GET",
				Path:       "/zosmf/restfiles/ds/{volume}{datasetName}{member}",
				TypeParams: []ir.TypeParam{{Name: "T", Constraint: "endpoint.Target[T]"}},
				Fields: []ir.Field{
					baseField(),
					{Name: "volume", Type: ptrType("string", ir.ShapeString, false), Role: ir.RolePath, Optional: true, SetterOverride: "setVolume", AssemblyOverride: "volumeSegment"},
					{Name: "datasetName", Type: stringType(), Role: ir.RolePath},
					{Name: "member", Type: ptrType("string", ir.ShapeString, false), Role: ir.RolePath, Optional: true, AssemblyOverride: "memberSegment"},
					{Name: "search", Type: ptrType("string", ir.ShapeString, false), Role: ir.RoleQuery, Key: "search", Optional: true},
					{Name: "maxReturn", Type: ptrType("int", ir.ShapeInt, false), Role: ir.RoleQuery, Key: "maxreturnsize", Optional: true},
					{Name: "fields", Type: sliceType("string"), Role: ir.RoleQuery, Key: "field", Optional: true},
					{Name: "tags", Type: sliceType("Tag"), Role: ir.RoleHeader, Key: "X-IBM-Tags", Optional: true},
					{Name: "etag", Type: stringType(), Role: ir.RoleHeader, Key: "If-None-Match", Optional: true},
					{Name: "dataType", Type: ir.TypeRef{Expr: "DataType", Inner: "DataType", Shape: ir.ShapeString, Named: true}, Role: ir.RoleHeader, Key: "X-IBM-Data-Type", Optional: true, SkipSetter: true, AssemblyOverride: "dataTypeHeader"},
					{Name: "migrated", Type: ir.TypeRef{Expr: "bool", Inner: "bool", Shape: ir.ShapeBool}, Role: ir.RoleQuery, Key: "migrated", Optional: true, Doc: "Migrated includes migrated data sets."},
					{Name: "labels", Type: ir.TypeRef{Expr: "map[string]string", Inner: "map[string]string", Shape: ir.ShapeMap}, Role: ir.RoleInert, Optional: true},
					{Name: "hidden", Type: stringType(), Role: ir.RoleInert, Optional: true, SkipSetter: true},
				},
			},
			{
				Name:   "DeleteBuilder",
				Method: "DELETE",
				Path:   "/zosmf/restfiles/ds/{datasetName}",
				Target: "Deleted",
				Fields: []ir.Field{
					baseField(),
					{Name: "datasetName", Type: stringType(), Role: ir.RolePath},
					{Name: "force", Type: ir.TypeRef{Expr: "Force", Inner: "Force", Shape: ir.ShapeString, Named: true}, Role: ir.RoleHeader, Key: "X-IBM-Option"},
				},
			},
		},
	}
}

func emit(t *testing.T, schema *ir.Schema) string {
	t.Helper()
	out, err := Emit(schema, filepath.Join(t.TempDir(), "zz_endpoints.go"))
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	return string(out)
}

func TestEmit(t *testing.T) {
	got := emit(t, testSchema())

	want := []string{
		Header + "\n\npackage datasets\n",
		"\t\"context\"\n\t\"maps\"\n\t\"net/http\"\n\t\"slices\"\n\n\t\"github.com/wmcgee3/zosmf/endpoint\"\n",
		// constructor
		"func newReadBuilder[T endpoint.Target[T]](base endpoint.Base, datasetName string) ReadBuilder[T] {",
		"\t\tbase:        base,\n\t\tdatasetName: datasetName,\n",
		// setters
		"// Volume sets the {volume} path segment.\nfunc (b ReadBuilder[T]) Volume(value string) ReadBuilder[T] {\n\treturn setVolume(b, value)\n}",
		"// Member sets the {member} path segment.\nfunc (b ReadBuilder[T]) Member(value string) ReadBuilder[T] {\n\tb.member = &value\n\treturn b\n}",
		"// Search sets the \"search\" query parameter.",
		"func (b ReadBuilder[T]) Fields(values ...string) ReadBuilder[T] {\n\tb.fields = slices.Clone(values)\n",
		"func (b ReadBuilder[T]) Tags(values ...Tag) ReadBuilder[T] {",
		"// Etag sets the If-None-Match header.\nfunc (b ReadBuilder[T]) Etag(value string) ReadBuilder[T] {\n\tb.etag = value\n",
		"// Migrated includes migrated data sets.\nfunc (b ReadBuilder[T]) Migrated(value bool)",
		"\tb.labels = maps.Clone(value)\n",
		// narrowing
		"func narrowReadBuilder[U endpoint.Target[U], T endpoint.Target[T]](b ReadBuilder[T]) ReadBuilder[U] {",
		"\t\tbase:        b.base.Narrow(),\n\t\tvolume:      b.volume,\n",
		// assembly
		"\treturn \"/zosmf/restfiles/ds/\" + volumeSegment(&b) + b.datasetName + memberSegment(&b)\n",
		"\tr := endpoint.NewRequest(\"datasets.Read\", http.MethodGet, b.path())\n",
		"\tif b.search != nil {\n\t\tr = r.WithQuery(\"search\", *b.search)\n\t}\n",
		"\tif b.maxReturn != nil {\n\t\tr = r.WithQuery(\"maxreturnsize\", endpoint.Format(*b.maxReturn))\n\t}\n",
		"\tfor _, v := range b.fields {\n\t\tr = r.WithQuery(\"field\", endpoint.Format(v))\n\t}\n",
		"\tif len(b.tags) > 0 {\n\t\tr = r.WithHeader(\"X-IBM-Tags\", endpoint.FormatList(b.tags, \",\"))\n\t}\n",
		"\tif b.etag != \"\" {\n\t\tr = r.WithHeader(\"If-None-Match\", b.etag)\n\t}\n",
		"\tr = dataTypeHeader(r, &b)\n",
		"\tif b.migrated {\n\t\tr = r.WithQuery(\"migrated\", endpoint.Format(b.migrated))\n\t}\n",
		"func (b ReadBuilder[T]) HTTPRequest(ctx context.Context) (*http.Request, error) {\n\treturn b.base.Prepare(ctx, b.request())\n}",
		"func (b ReadBuilder[T]) Build(ctx context.Context) (T, error) {\n\treturn endpoint.Finalize[T](ctx, b.base, b.request())\n}",
		// non-generic
		"func newDeleteBuilder(base endpoint.Base, datasetName string, force Force) DeleteBuilder {",
		"\tr := endpoint.NewRequest(\"datasets.Delete\", http.MethodDelete, b.path())\n\tr = r.WithHeader(\"X-IBM-Option\", endpoint.Format(b.force))\n\treturn r\n",
		"// Build sends the request and decodes the response as Deleted.\nfunc (b DeleteBuilder) Build(ctx context.Context) (Deleted, error) {\n\treturn endpoint.Finalize[Deleted](ctx, b.base, b.request())\n}",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q\n\n%s", w, got)
		}
	}

	notWant := []string{
		"Hidden(",
		"Labels\", ",
		"func narrowDeleteBuilder",
		"type ReadBuilder",
		"r = r.WithQuery(\"volume\"",
	}
	for _, w := range notWant {
		if strings.Contains(got, w) {
			t.Errorf("output unexpectedly contains %q", w)
		}
	}
}

func TestEmit_Deterministic(t *testing.T) {
	first := emit(t, testSchema())
	for range 5 {
		if got := emit(t, testSchema()); got != first {
			t.Fatal("Emit() output differs between runs")
		}
	}
}

func TestEmit_Declare(t *testing.T) {
	schema := &ir.Schema{
		Package: ir.PackageInfo{Name: "zosmf"},
		Endpoints: []*ir.Endpoint{{
			Name:    "InfoBuilder",
			Method:  "GET",
			Path:    "/zosmf/info",
			Target:  "Info",
			Declare: true,
			Doc:     "InfoBuilder retrieves the z/OSMF server description.",
			Fields: []ir.Field{
				baseField(),
				{Name: "locale", Type: ptrType("string", ir.ShapeString, false), Role: ir.RoleHeader, Key: "Accept-Language", Optional: true},
			},
		}},
	}
	got := emit(t, schema)

	want := "// InfoBuilder retrieves the z/OSMF server description.\ntype InfoBuilder struct {\n\tbase endpoint.Base\n\n\tlocale *string\n}\n"
	if !strings.Contains(got, want) {
		t.Errorf("output missing declaration %q\n\n%s", want, got)
	}
	if strings.Contains(got, "\"slices\"") || strings.Contains(got, "\"maps\"") {
		t.Errorf("output imports unused packages\n\n%s", got)
	}
}

func TestEmit_NameCollisions(t *testing.T) {
	tests := []struct {
		name   string
		fields []ir.Field
	}{
		{
			name: "build setter",
			fields: []ir.Field{
				baseField(),
				{Name: "build", Type: stringType(), Role: ir.RoleQuery, Key: "build", Optional: true},
			},
		},
		{
			name: "http request setter",
			fields: []ir.Field{
				baseField(),
				{Name: "hTTPRequest", Type: stringType(), Role: ir.RoleInert, Optional: true},
			},
		},
		{
			name: "duplicate setters",
			fields: []ir.Field{
				baseField(),
				{Name: "name", Type: stringType(), Role: ir.RoleQuery, Key: "a", Optional: true},
				{Name: "Name", Type: stringType(), Role: ir.RoleQuery, Key: "b", Optional: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := &ir.Schema{
				Package: ir.PackageInfo{Name: "p"},
				Endpoints: []*ir.Endpoint{{
					Name: "XBuilder", Method: "GET", Path: "/x", Target: "X", Fields: tt.fields,
				}},
			}
			_, err := Emit(schema, "zz_endpoints.go")
			var verr *ir.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Emit() error = %v, want *ir.ValidationError", err)
			}
			if verr.Code != "reserved_name" {
				t.Errorf("Code = %q, want reserved_name", verr.Code)
			}
		})
	}
}

func TestEmit_SkipsEmptyFieldList(t *testing.T) {
	schema := &ir.Schema{
		Package: ir.PackageInfo{Name: "p"},
		Endpoints: []*ir.Endpoint{{
			Name: "PingBuilder", Method: "HEAD", Path: "/ping", Target: "endpoint.None",
			Fields: []ir.Field{baseField()},
		}},
	}
	got := emit(t, schema)
	for _, w := range []string{
		"func newPingBuilder(base endpoint.Base) PingBuilder {",
		"endpoint.NewRequest(\"p.Ping\", http.MethodHead, b.path())",
		"func (b PingBuilder) path() string {\n\treturn \"/ping\"\n}",
		"(endpoint.None, error)",
	} {
		if !bytes.Contains([]byte(got), []byte(w)) {
			t.Errorf("output missing %q\n\n%s", w, got)
		}
	}
}
