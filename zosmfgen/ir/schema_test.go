package ir

import (
	"errors"
	"slices"
	"testing"
)

func baseField() Field {
	return Field{Name: "base", Type: TypeRef{Expr: "endpoint.Base", Inner: "endpoint.Base", Shape: ShapeStruct, Named: true, Base: true}}
}

func stringType() TypeRef {
	return TypeRef{Expr: "string", Inner: "string", Shape: ShapeString}
}

func ptrStringType() TypeRef {
	return TypeRef{Expr: "*string", Inner: "string", Shape: ShapeString, Pointer: true}
}

// readEndpoint is a valid dataset read schema; test cases break it.
func readEndpoint() *Endpoint {
	return &Endpoint{
		Name:       "ReadBuilder",
		Method:     "GET",
		Path:       "/ds/{volume}{name}{member}",
		TypeParams: []TypeParam{{Name: "T", Constraint: "endpoint.Target[T]"}},
		Fields: []Field{
			baseField(),
			{Name: "volume", Type: stringType(), Role: RolePath, Optional: true, SetterOverride: "setVolume"},
			{Name: "name", Type: stringType(), Role: RolePath},
			{Name: "member", Type: stringType(), Role: RolePath, Optional: true, SetterOverride: "setMember"},
			{Name: "encoding", Type: ptrStringType(), Role: RoleHeader, Key: "X-IBM-Data-Type", Optional: true, AssemblyOverride: "buildDataType"},
			{Name: "search", Type: ptrStringType(), Role: RoleQuery, Key: "search", Optional: true},
		},
	}
}

func codes(errs []error) []string {
	var out []string
	for _, err := range errs {
		var ve *ValidationError
		if errors.As(err, &ve) {
			out = append(out, ve.Code)
		}
	}
	return out
}

func TestValidateValid(t *testing.T) {
	s := &Schema{}
	s.AddEndpoint(readEndpoint())
	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateDefects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(e *Endpoint)
		want   string
	}{
		{
			name:   "placeholder without field",
			modify: func(e *Endpoint) { e.Path = "/ds/{volume}{name}{member}{extra}" },
			want:   "unknown_placeholder",
		},
		{
			name:   "path field missing from template",
			modify: func(e *Endpoint) { e.Path = "/ds/{volume}{name}" },
			want:   "unbound_path_field",
		},
		{
			name:   "placeholder names a query field",
			modify: func(e *Endpoint) { e.Path = "/ds/{volume}{name}{member}/{search}" },
			want:   "not_path_field",
		},
		{
			name:   "unclosed placeholder",
			modify: func(e *Endpoint) { e.Path = "/ds/{volume}{name}{member" },
			want:   "malformed_template",
		},
		{
			name:   "relative template",
			modify: func(e *Endpoint) { e.Path = "ds/{volume}{name}{member}" },
			want:   "malformed_template",
		},
		{
			name:   "repeated placeholder",
			modify: func(e *Endpoint) { e.Path = "/ds/{volume}{name}{member}{name}" },
			want:   "malformed_template",
		},
		{
			name:   "unknown method",
			modify: func(e *Endpoint) { e.Method = "FETCH" },
			want:   "invalid_method",
		},
		{
			name: "duplicate field",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "search", Type: ptrStringType(), Role: RoleQuery, Key: "research", Optional: true})
			},
			want: "duplicate_field",
		},
		{
			name: "reserved field name",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "ctx", Type: ptrStringType(), Optional: true})
			},
			want: "reserved_name",
		},
		{
			name: "field shadows method",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "path", Type: ptrStringType(), Role: RoleQuery, Key: "path"})
			},
			want: "reserved_name",
		},
		{
			name:   "missing base",
			modify: func(e *Endpoint) { e.Fields = e.Fields[1:] },
			want:   "missing_base",
		},
		{
			name:   "non-generic without target",
			modify: func(e *Endpoint) { e.TypeParams = nil },
			want:   "missing_target",
		},
		{
			name:   "wrong constraint",
			modify: func(e *Endpoint) { e.TypeParams[0].Constraint = "any" },
			want:   "invalid_type_params",
		},
		{
			name:   "required field with setter override",
			modify: func(e *Endpoint) { e.Fields[2].SetterOverride = "setName" },
			want:   "required_setter",
		},
		{
			name: "body without builder",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "data", Type: TypeRef{Expr: "[]byte", Inner: "[]byte", Elem: "byte", Shape: ShapeSlice}, Role: RoleBody, Optional: true})
			},
			want: "body_without_builder",
		},
		{
			name:   "query without key",
			modify: func(e *Endpoint) { e.Fields[5].Key = "" },
			want:   "missing_key",
		},
		{
			name: "struct header",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "range", Type: TypeRef{Expr: "*Range", Inner: "Range", Shape: ShapeStruct, Named: true, Pointer: true}, Role: RoleHeader, Key: "X-IBM-Record-Range", Optional: true})
			},
			want: "unplaceable_field",
		},
		{
			name: "optional struct without presence",
			modify: func(e *Endpoint) {
				e.Fields = append(e.Fields, Field{Name: "when", Type: TypeRef{Expr: "time.Time", Inner: "time.Time", Shape: ShapeOther, Named: true}, Role: RoleQuery, Key: "since", Optional: true})
			},
			want: "unplaceable_field",
		},
		{
			name: "pointer path segment",
			modify: func(e *Endpoint) {
				e.Fields[2].Type = ptrStringType()
			},
			want: "unplaceable_field",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := readEndpoint()
			tt.modify(e)
			s := &Schema{Endpoints: []*Endpoint{e}}
			got := codes(s.Validate())
			if !slices.Contains(got, tt.want) {
				t.Errorf("Validate() codes = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateOverridesAllowUnplaceable(t *testing.T) {
	e := readEndpoint()
	e.Fields = append(e.Fields,
		Field{Name: "data", Type: TypeRef{Expr: "[]byte", Inner: "[]byte", Elem: "byte", Shape: ShapeSlice}, Role: RoleBody, Optional: true, SkipSetter: true, AssemblyOverride: "buildData"},
		Field{Name: "symbols", Type: TypeRef{Expr: "map[string]string", Inner: "map[string]string", Shape: ShapeMap}, Role: RoleHeader, Key: "X-IBM-JCL-Symbol", Optional: true, AssemblyOverride: "buildSymbols"},
	)
	s := &Schema{Endpoints: []*Endpoint{e}}
	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateDuplicateEndpoint(t *testing.T) {
	s := &Schema{Endpoints: []*Endpoint{readEndpoint(), readEndpoint()}}
	if got := codes(s.Validate()); !slices.Contains(got, "duplicate_endpoint") {
		t.Errorf("codes = %v, want duplicate_endpoint", got)
	}
}

func TestValidateReportsAll(t *testing.T) {
	e := readEndpoint()
	e.Method = "FETCH"
	e.TypeParams = nil
	e.Path = "/ds/{nope}"
	s := &Schema{Endpoints: []*Endpoint{e}}
	got := codes(s.Validate())
	for _, want := range []string{"invalid_method", "missing_target", "unknown_placeholder", "unbound_path_field"} {
		if !slices.Contains(got, want) {
			t.Errorf("codes = %v, missing %s", got, want)
		}
	}
}

func TestConstructorFields(t *testing.T) {
	e := readEndpoint()
	e.Fields = append(e.Fields, Field{Name: "flag", Type: TypeRef{Expr: "bool", Inner: "bool", Shape: ShapeBool}})
	var names []string
	for _, f := range e.ConstructorFields() {
		names = append(names, f.Name)
	}
	if want := []string{"base", "name", "flag"}; !slices.Equal(names, want) {
		t.Errorf("ConstructorFields() = %v, want %v", names, want)
	}
}

func TestQualifiedName(t *testing.T) {
	e := &Endpoint{Name: "ListBuilder"}
	if got := e.QualifiedName("datasets"); got != "datasets.List" {
		t.Errorf("QualifiedName() = %q", got)
	}
}

func TestLint(t *testing.T) {
	e := readEndpoint()
	e.Fields = append(e.Fields,
		Field{Name: "unused", Type: ptrStringType(), Optional: true, SkipSetter: true},
		Field{Name: "shadowed", Type: ptrStringType(), Role: RoleQuery, Key: "s", Optional: true, SkipSetter: true, SetterOverride: "setShadowed"},
	)
	s := &Schema{Endpoints: []*Endpoint{e}}
	s.Lint()
	var got []string
	for _, w := range s.Warnings {
		got = append(got, w.Code)
	}
	if want := []string{"dead_field", "ignored_setter"}; !slices.Equal(got, want) {
		t.Errorf("warnings = %v, want %v", got, want)
	}
}
