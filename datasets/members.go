package datasets

import "github.com/wmcgee3/zosmf/endpoint"

// MemberName is a member listed without attributes.
type MemberName struct {
	Name string `json:"member"`
}

// Member is a member listed with its ISPF statistics. Members without
// statistics carry only their name.
type Member struct {
	Name               string `json:"member"`
	Version            int    `json:"vers,omitempty"`
	Modification       int    `json:"mod,omitempty"`
	CreationDate       string `json:"c4date,omitempty"`
	ModificationDate   string `json:"m4date,omitempty"`
	CurrentRecords     int    `json:"cnorc,omitempty"`
	InitialRecords     int    `json:"inorc,omitempty"`
	ModifiedRecords    int    `json:"mnorc,omitempty"`
	ModificationTime   string `json:"mtime,omitempty"`
	ModificationSecond string `json:"msec,omitempty"`
	User               string `json:"user,omitempty"`
	SCLM               Flag   `json:"sclm"`
}

// MembersBuilder lists the members of a partitioned data set.
//
//zosmf:endpoint GET /zosmf/restfiles/ds/{datasetName}/member
type MembersBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	datasetName string  `endpoint:"path"`
	start       *string `endpoint:"query=start"`
	pattern     *string `endpoint:"query=pattern"`
	maxItems    *int    `endpoint:"header=X-IBM-Max-Items"`
	attributes  string  `endpoint:"header=X-IBM-Attributes,optional,skip_setter,builder=memberAttributes"`

	// IncludeTotal asks for the total number of matching members.
	includeTotal   bool            `endpoint:"optional"`
	migratedRecall *MigratedRecall `endpoint:"header=X-IBM-Migrated-Recall"`
}

// AttributesBase lists every member with its statistics.
func (b MembersBuilder[T]) AttributesBase() MembersBuilder[List[Member]] {
	n := narrowMembersBuilder[List[Member]](b)
	n.attributes = "base"
	return n
}

// AttributesName lists member names only.
func (b MembersBuilder[T]) AttributesName() MembersBuilder[List[MemberName]] {
	n := narrowMembersBuilder[List[MemberName]](b)
	n.attributes = "member"
	return n
}

func memberAttributes[T endpoint.Target[T]](r endpoint.Request, b *MembersBuilder[T]) endpoint.Request {
	return attributesHeader(r, b.attributes, "member", b.includeTotal)
}
