package ir

// Role is where a field's value is placed in the outgoing request.
type Role int

const (
	RoleInert  Role = iota // Never placed; read by override hooks
	RolePath               // Interpolated into the path template
	RoleQuery              // Query parameter
	RoleHeader             // Request header
	RoleBody               // Contributes to the body through an assembly override
)

func (r Role) String() string {
	switch r {
	case RoleInert:
		return "inert"
	case RolePath:
		return "path"
	case RoleQuery:
		return "query"
	case RoleHeader:
		return "header"
	case RoleBody:
		return "body"
	default:
		return "unknown"
	}
}

// Shape is the underlying kind of a field value, after one pointer
// indirection is removed.
type Shape int

const (
	ShapeOther Shape = iota
	ShapeString
	ShapeInt
	ShapeUint
	ShapeFloat
	ShapeBool
	ShapeStruct
	ShapeSlice
	ShapeMap
)

func (s Shape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeInt:
		return "int"
	case ShapeUint:
		return "uint"
	case ShapeFloat:
		return "float"
	case ShapeBool:
		return "bool"
	case ShapeStruct:
		return "struct"
	case ShapeSlice:
		return "slice"
	case ShapeMap:
		return "map"
	default:
		return "other"
	}
}

// Scalar reports whether values of the shape render as a single token.
func (s Shape) Scalar() bool {
	switch s {
	case ShapeString, ShapeInt, ShapeUint, ShapeFloat, ShapeBool:
		return true
	}
	return false
}

// TypeRef describes a field's Go type as it is spelled in the builder
// struct, qualified relative to the builder's own package.
type TypeRef struct {
	// Expr is the full type expression, e.g. "*int" or "[]NotificationEvent".
	Expr string

	// Inner is Expr without a leading pointer.
	Inner string

	// Elem is the element type of a slice, e.g. "NotificationEvent".
	Elem string

	Shape Shape

	// Named is set for defined types such as enumerated tokens, whose
	// wire text comes from their String method.
	Named bool

	Pointer bool

	// Base marks the endpoint.Base handle.
	Base bool
}

// PlainString reports whether the value is a bare string used verbatim.
func (t TypeRef) PlainString() bool {
	return t.Shape == ShapeString && !t.Named && !t.Pointer
}

// Field is the descriptor of one builder field.
type Field struct {
	Name string `validate:"required"`
	Type TypeRef
	Role Role

	// Key is the query parameter name or header name.
	Key string

	// Optional fields are set through setters; all others are bound
	// by the constructor.
	Optional bool

	SkipSetter bool

	// SetterOverride names func(b Builder, value V) Builder.
	SetterOverride string

	// AssemblyOverride names func(b *Builder) string for path fields and
	// func(r endpoint.Request, b *Builder) endpoint.Request for the rest.
	AssemblyOverride string

	Doc    string
	Source *Source
}

// Required reports whether the constructor binds the field.
func (f Field) Required() bool {
	return !f.Optional
}

// HasSetter reports whether a fluent setter is generated for the field.
func (f Field) HasSetter() bool {
	return f.Optional && !f.SkipSetter && !f.Type.Base
}

// HasPresence reports whether an unset optional value can be told apart
// from a set one.
func (t TypeRef) HasPresence() bool {
	if t.Pointer {
		return true
	}
	return t.Shape.Scalar() || t.Shape == ShapeSlice || t.Shape == ShapeMap
}
