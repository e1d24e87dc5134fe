package ir

import "strconv"

// Source identifies a location in a schema file.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

func (s Source) String() string {
	if s.IsZero() {
		return ""
	}
	return s.File + ":" + strconv.Itoa(s.Line) + ":" + strconv.Itoa(s.Column)
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Source is the location that triggered the warning, if applicable.
	Source *Source

	// Endpoint is the builder that triggered the warning, if applicable.
	Endpoint string
}

// PackageInfo contains metadata about the package builders are generated into.
type PackageInfo struct {
	// Path is the import path (e.g., "github.com/wmcgee3/zosmf/datasets").
	Path string

	// Name is the package name (e.g., "datasets").
	Name string

	// Dir is the filesystem directory, if known.
	Dir string
}

// IsZero returns true if the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Path == "" && p.Name == "" && p.Dir == ""
}
