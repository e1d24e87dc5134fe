package datasets

import "github.com/wmcgee3/zosmf/endpoint"

// CopyBuilder copies a data set or members into another data set.
//
//zosmf:endpoint PUT /zosmf/restfiles/ds/{volume}{datasetName}{member} target=Result
type CopyBuilder struct {
	base endpoint.Base

	// Volume copies into the uncataloged data set on the given volume.
	volume      string `endpoint:"path,optional,setter=setCopyVolume"`
	datasetName string `endpoint:"path"`
	// Member copies into one member of a partitioned data set.
	member string `endpoint:"path,optional,setter=setCopyMember"`

	fromDataset string `endpoint:"body,builder=copyBody"`
	// FromMember copies one member of the source data set, or every
	// member for "*".
	fromMember *string
	// FromVolume reads an uncataloged source data set from the given
	// volume.
	fromVolume *string
	// Alias also copies the aliases of the copied members.
	alias bool `endpoint:"optional"`
	// Enqueue sets the ENQ z/OSMF takes on the target data set.
	enqueue *Enqueue
	// Replace overwrites members of the same name.
	replace bool `endpoint:"optional"`
}

type sourceDataset struct {
	Name   string  `json:"dsn"`
	Member *string `json:"member,omitempty"`
	Volume *string `json:"volser,omitempty"`
	Alias  bool    `json:"alias,omitempty"`
}

type copyRequest struct {
	Request string        `json:"request"`
	From    sourceDataset `json:"from-dataset"`
	Enqueue *Enqueue      `json:"enq,omitempty"`
	Replace bool          `json:"replace,omitempty"`
}

func setCopyVolume(b CopyBuilder, volume string) CopyBuilder {
	b.volume = volumeSegment(volume)
	return b
}

func setCopyMember(b CopyBuilder, member string) CopyBuilder {
	b.member = memberSegment(member)
	return b
}

func copyBody(r endpoint.Request, b *CopyBuilder) endpoint.Request {
	return r.WithJSON(copyRequest{
		Request: "copy",
		From: sourceDataset{
			Name:   b.fromDataset,
			Member: b.fromMember,
			Volume: b.fromVolume,
			Alias:  b.alias,
		},
		Enqueue: b.enqueue,
		Replace: b.replace,
	})
}

// RenameBuilder renames a data set or a member.
//
//zosmf:endpoint PUT /zosmf/restfiles/ds/{datasetName}{member} target=Result
type RenameBuilder struct {
	base endpoint.Base

	datasetName string `endpoint:"path"`
	// Member sets the new name of a renamed member.
	member string `endpoint:"path,optional,setter=setRenameMember"`

	fromDataset string `endpoint:"body,builder=renameBody"`
	// FromMember renames one member of the data set.
	fromMember *string
	// Enqueue sets the ENQ z/OSMF takes on the data set.
	enqueue *Enqueue
}

type renameRequest struct {
	Request string        `json:"request"`
	From    sourceDataset `json:"from-dataset"`
	Enqueue *Enqueue      `json:"enq,omitempty"`
}

func setRenameMember(b RenameBuilder, member string) RenameBuilder {
	b.member = memberSegment(member)
	return b
}

func renameBody(r endpoint.Request, b *RenameBuilder) endpoint.Request {
	return r.WithJSON(renameRequest{
		Request: "rename",
		From:    sourceDataset{Name: b.fromDataset, Member: b.fromMember},
		Enqueue: b.enqueue,
	})
}

// HSMBuilder migrates or recalls a data set through DFSMShsm.
//
//zosmf:endpoint PUT /zosmf/restfiles/ds/{datasetName} target=Result
type HSMBuilder struct {
	base endpoint.Base

	datasetName string `endpoint:"path"`
	action      string `endpoint:"inert"`
	// Wait replies only once HSM has finished.
	wait bool `endpoint:"body,optional,builder=hsmBody"`
}

func hsmBody(r endpoint.Request, b *HSMBuilder) endpoint.Request {
	return r.WithJSON(struct {
		Request string `json:"request"`
		Wait    bool   `json:"wait"`
	}{b.action, b.wait})
}
