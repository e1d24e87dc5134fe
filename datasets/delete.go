package datasets

import "github.com/wmcgee3/zosmf/endpoint"

// DeleteBuilder deletes a data set or a member.
//
//zosmf:endpoint DELETE /zosmf/restfiles/ds/{volume}{datasetName}{member} target=Result
type DeleteBuilder struct {
	base endpoint.Base

	// Volume deletes the uncataloged data set on the given volume.
	volume      string `endpoint:"path,optional,setter=setDeleteVolume"`
	datasetName string `endpoint:"path"`
	// Member deletes one member instead of the whole data set.
	member string `endpoint:"path,optional,setter=setDeleteMember"`

	dsnameEncoding *string `endpoint:"header=X-IBM-Dsname-Encoding"`
}

func setDeleteVolume(b DeleteBuilder, volume string) DeleteBuilder {
	b.volume = volumeSegment(volume)
	return b
}

func setDeleteMember(b DeleteBuilder, member string) DeleteBuilder {
	b.member = memberSegment(member)
	return b
}
