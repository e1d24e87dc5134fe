package datasets

import (
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
)

// List is one page of a data set or member listing.
type List[T any] struct {
	Items        []T   `json:"items"`
	ReturnedRows int   `json:"returnedRows"`
	MoreRows     *bool `json:"moreRows,omitempty"`
	TotalRows    *int  `json:"totalRows,omitempty"`
	JSONVersion  int   `json:"JSONversion"`

	TransactionID string `json:"-"`
}

func (List[T]) TryFromResponse(resp *http.Response) (List[T], error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return List[T]{}, err
	}
	l, err := endpoint.DecodeJSON[List[T]](resp)
	if err != nil {
		return List[T]{}, err
	}
	l.TransactionID = id
	return l, nil
}

// Name is a data set listed without attributes.
type Name struct {
	Name string `json:"dsname"`
}

// NameVolume is a data set listed with its volume.
type NameVolume struct {
	Name   string `json:"dsname"`
	Volume string `json:"vol"`
}

// Volume values that do not name a real volume.
const (
	VolumeAlias    = "*ALIAS"
	VolumeMigrated = "MIGRAT"
	VolumeVSAM     = "*VSAM*"
)

// Dataset is a data set listed with its base attributes. Dates are in
// the yyyy/mm/dd form z/OSMF uses; "***None***" means no date.
type Dataset struct {
	Name               string `json:"dsname"`
	BlockSize          string `json:"blksz,omitempty"`
	Catalog            string `json:"catnm,omitempty"`
	CreationDate       string `json:"cdate,omitempty"`
	DeviceType         string `json:"dev,omitempty"`
	DatasetType        string `json:"dsntp,omitempty"`
	Organization       string `json:"dsorg,omitempty"`
	ExpirationDate     string `json:"edate,omitempty"`
	ExtentsUsed        string `json:"extx,omitempty"`
	RecordLength       string `json:"lrecl,omitempty"`
	Migrated           Flag   `json:"migr"`
	MultiVolume        Flag   `json:"mvol"`
	SpaceOverflow      Flag   `json:"ovf"`
	LastReferencedDate string `json:"rdate,omitempty"`
	RecordFormat       string `json:"recfm,omitempty"`
	SizeInTracks       string `json:"sizex,omitempty"`
	SpaceUnits         string `json:"spacu,omitempty"`
	PercentUsed        string `json:"used,omitempty"`
	Volume             string `json:"vol"`
	Volumes            string `json:"vols,omitempty"`
}

// ListBuilder lists the data sets matching a name pattern such as
// "IBMUSER.CONFIG.*".
//
//zosmf:endpoint GET /zosmf/restfiles/ds
type ListBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	namePattern string  `endpoint:"query=dslevel"`
	volume      *string `endpoint:"query=volser"`
	start       *string `endpoint:"query=start"`
	maxItems    *int    `endpoint:"header=X-IBM-Max-Items"`
	attributes  string  `endpoint:"header=X-IBM-Attributes,optional,skip_setter,builder=listAttributes"`

	// IncludeTotal asks for the total number of matching data sets.
	includeTotal bool `endpoint:"optional"`
}

// AttributesBase lists every data set with its base attributes.
func (b ListBuilder[T]) AttributesBase() ListBuilder[List[Dataset]] {
	n := narrowListBuilder[List[Dataset]](b)
	n.attributes = "base"
	return n
}

// AttributesName lists data set names only.
func (b ListBuilder[T]) AttributesName() ListBuilder[List[Name]] {
	n := narrowListBuilder[List[Name]](b)
	n.attributes = "dsname"
	return n
}

// AttributesVolume lists data set names with their volumes.
func (b ListBuilder[T]) AttributesVolume() ListBuilder[List[NameVolume]] {
	n := narrowListBuilder[List[NameVolume]](b)
	n.attributes = "vol"
	return n
}

func listAttributes[T endpoint.Target[T]](r endpoint.Request, b *ListBuilder[T]) endpoint.Request {
	return attributesHeader(r, b.attributes, "dsname", b.includeTotal)
}
