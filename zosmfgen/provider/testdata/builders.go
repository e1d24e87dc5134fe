// Package testdata holds annotated builders for provider tests.
package testdata

import "github.com/wmcgee3/zosmf/endpoint"

// Volume is a volume serial.
type Volume string

func (v Volume) String() string { return string(v) }

// ReadBuilder reads a data set member.
//
//zosmf:endpoint GET /ds/{volume}{name}{member}
type ReadBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	volume   string   `endpoint:"path,optional,setter=setVolume"`
	name     string   `endpoint:"path"`
	member   string   `endpoint:"path,optional,setter=setMember"`
	encoding *string  `endpoint:"header=X-IBM-Data-Type,builder=buildDataType"`
	// Search finds records containing value.
	search   *string  `endpoint:"query=search"`
	count    *int     `endpoint:"query=maxreturnsize"`
	serial   *Volume  `endpoint:"header=X-IBM-Volume"`
	tags     []string `endpoint:"query=tag,optional"`
	data     []byte   `endpoint:"body,optional,skip_setter,builder=buildData"`
	flag     bool
}

// DeleteBuilder deletes a data set.
//
//zosmf:endpoint DELETE /ds/{name} target=endpoint.None
type DeleteBuilder struct {
	base endpoint.Base
	name string `endpoint:"path"`
}

// Unannotated is ignored by the provider.
type Unannotated struct {
	name string
}
