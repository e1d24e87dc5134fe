package ir

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Schema is the set of endpoint builders generated into one package.
type Schema struct {
	// Package is the package the builders live in.
	Package PackageInfo

	// Endpoints in declaration order. Output follows this order.
	Endpoints []*Endpoint

	// Warnings contains non-fatal issues encountered during schema building.
	Warnings []Warning
}

// TypeParam is a type parameter of a builder.
type TypeParam struct {
	Name       string
	Constraint string
}

// Endpoint is the schema of one request builder.
type Endpoint struct {
	// Name is the builder type name, e.g. "ListBuilder".
	Name string `validate:"required"`

	Method string `validate:"required,oneof=GET PUT POST DELETE PATCH HEAD"`

	// Path is the path template, e.g. "/zosmf/restfiles/ds/{volume}{datasetName}".
	Path string `validate:"required"`

	// TypeParams of a generic builder. A generic builder has exactly one,
	// constrained by endpoint.Target; it selects the response shape.
	TypeParams []TypeParam

	// Target is the response type of a non-generic builder.
	Target string

	// Declare requests that the emitter also writes the struct declaration,
	// for schemas that do not come from Go source.
	Declare bool

	Fields []Field `validate:"dive"`

	Doc    string
	Source *Source
}

// Generic reports whether the builder selects its shape by type parameter.
func (e *Endpoint) Generic() bool {
	return len(e.TypeParams) > 0
}

// Field looks up a field by name.
func (e *Endpoint) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// BaseField returns the endpoint.Base handle field.
func (e *Endpoint) BaseField() (Field, bool) {
	for _, f := range e.Fields {
		if f.Type.Base {
			return f, true
		}
	}
	return Field{}, false
}

// ConstructorFields returns the fields bound by the constructor, base
// first and the rest in declaration order.
func (e *Endpoint) ConstructorFields() []Field {
	var fields []Field
	if base, ok := e.BaseField(); ok {
		fields = append(fields, base)
	}
	for _, f := range e.Fields {
		if f.Required() && !f.Type.Base {
			fields = append(fields, f)
		}
	}
	return fields
}

// QualifiedName is the name requests report to interceptors and errors:
// the package name and the builder name without its Builder suffix.
func (e *Endpoint) QualifiedName(pkg string) string {
	return pkg + "." + strings.TrimSuffix(e.Name, "Builder")
}

// AddEndpoint adds an endpoint to the schema.
func (s *Schema) AddEndpoint(e *Endpoint) {
	s.Endpoints = append(s.Endpoints, e)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindEndpoint looks up an endpoint by builder name. Returns nil if not found.
func (s *Schema) FindEndpoint(name string) *Endpoint {
	for _, e := range s.Endpoints {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// ValidationError represents a schema defect that prevents generation.
type ValidationError struct {
	Code     string
	Endpoint string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks every endpoint for generation-time defects.
// Returns all validation errors found (not just the first).
func (s *Schema) Validate() []error {
	var errs []*ValidationError

	names := make(map[string]bool)
	for _, e := range s.Endpoints {
		if names[e.Name] {
			errs = append(errs, &ValidationError{
				Code:     "duplicate_endpoint",
				Endpoint: e.Name,
				Message:  "duplicate endpoint builder: " + e.Name,
			})
		}
		names[e.Name] = true
		errs = append(errs, e.validate()...)
	}

	var result []error
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}

// reservedNames are identifiers used by generated method bodies, and the
// unexported methods every builder gets.
var reservedNames = map[string]bool{
	"b": true, "r": true, "ctx": true, "value": true, "values": true,
	"path": true, "request": true,
}

func (e *Endpoint) validate() []*ValidationError {
	var errs []*ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, &ValidationError{
			Code:     code,
			Endpoint: e.Name,
			Message:  e.Name + ": " + fmt.Sprintf(format, args...),
		})
	}

	if err := validate.Struct(e); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			add("invalid_schema", "%v", err)
		}
		for _, fe := range fieldErrs {
			switch fe.StructField() {
			case "Method":
				add("invalid_method", "unsupported method %q", e.Method)
			case "Path":
				add("malformed_template", "missing path template")
			default:
				add("invalid_schema", "%s failed %q", fe.Namespace(), fe.Tag())
			}
		}
	}

	switch len(e.TypeParams) {
	case 0:
		if e.Target == "" {
			add("missing_target", "non-generic builder needs a target response type")
		}
	case 1:
		tp := e.TypeParams[0]
		if want := "endpoint.Target[" + tp.Name + "]"; tp.Constraint != want {
			add("invalid_type_params", "type parameter %s must be constrained by %s, got %s", tp.Name, want, tp.Constraint)
		}
		if e.Target != "" {
			add("invalid_type_params", "generic builder cannot also name target %s", e.Target)
		}
	default:
		add("invalid_type_params", "builder has %d type parameters, want at most 1", len(e.TypeParams))
	}

	fields := make(map[string]Field)
	bases := 0
	for _, f := range e.Fields {
		if _, dup := fields[f.Name]; dup {
			add("duplicate_field", "duplicate field %s", f.Name)
		}
		fields[f.Name] = f
		if reservedNames[f.Name] || token.IsKeyword(f.Name) {
			add("reserved_name", "field name %s is reserved", f.Name)
		}
		if f.Type.Base {
			bases++
			continue
		}
		errs = append(errs, e.validateField(f)...)
	}
	if bases != 1 {
		add("missing_base", "builder needs exactly one endpoint.Base field, found %d", bases)
	}

	if e.Path == "" {
		return errs
	}
	parts, err := ParsePath(e.Path)
	if err != nil {
		add("malformed_template", "%v", err)
		return errs
	}
	placed := make(map[string]bool)
	for _, name := range Placeholders(parts) {
		if placed[name] {
			add("malformed_template", "placeholder {%s} appears more than once", name)
			continue
		}
		placed[name] = true
		f, ok := fields[name]
		switch {
		case !ok:
			add("unknown_placeholder", "path template references unknown field %s", name)
		case f.Role != RolePath:
			add("not_path_field", "path template references %s field %s", f.Role, name)
		}
	}
	for _, f := range e.Fields {
		if f.Role == RolePath && !placed[f.Name] {
			add("unbound_path_field", "path field %s does not appear in template %s", f.Name, e.Path)
		}
	}
	return errs
}

func (e *Endpoint) validateField(f Field) []*ValidationError {
	var errs []*ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, &ValidationError{
			Code:     code,
			Endpoint: e.Name,
			Message:  e.Name + "." + f.Name + ": " + fmt.Sprintf(format, args...),
		})
	}

	if f.Required() && f.SetterOverride != "" {
		add("required_setter", "required fields are bound by the constructor and cannot declare setter %s", f.SetterOverride)
	}

	hooked := f.AssemblyOverride != ""
	switch f.Role {
	case RolePath:
		if !hooked && (f.Type.Pointer || !f.Type.Shape.Scalar() && f.Type.Shape != ShapeOther) {
			add("unplaceable_field", "%s value cannot be a path segment without an assembly override", f.Type.Expr)
		}
	case RoleQuery, RoleHeader:
		if f.Key == "" {
			add("missing_key", "%s role needs a key", f.Role)
		}
		if hooked {
			break
		}
		switch {
		case f.Type.Shape == ShapeStruct || f.Type.Shape == ShapeMap:
			add("unplaceable_field", "%s value cannot be placed as a %s without an assembly override", f.Type.Expr, f.Role)
		case f.Optional && !f.Type.HasPresence():
			add("unplaceable_field", "optional %s value has no unset state; use a pointer or an assembly override", f.Type.Expr)
		}
	case RoleBody:
		if !hooked {
			add("body_without_builder", "body fields need an assembly override")
		}
	}
	return errs
}

// Lint records warnings for fields that validate but look unintended.
func (s *Schema) Lint() {
	for _, e := range s.Endpoints {
		for _, f := range e.Fields {
			if f.Type.Base {
				continue
			}
			if f.Optional && f.Role == RoleInert && f.SkipSetter && f.SetterOverride == "" && f.AssemblyOverride == "" {
				s.AddWarning(Warning{
					Code:     "dead_field",
					Message:  e.Name + "." + f.Name + " has no setter and is never placed",
					Source:   f.Source,
					Endpoint: e.Name,
				})
			}
			if f.SkipSetter && f.SetterOverride != "" {
				s.AddWarning(Warning{
					Code:     "ignored_setter",
					Message:  e.Name + "." + f.Name + " skips its setter, so setter " + f.SetterOverride + " is unused",
					Source:   f.Source,
					Endpoint: e.Name,
				})
			}
		}
	}
}
