package datasets

import "github.com/wmcgee3/zosmf/endpoint"

// CreateBuilder allocates a new sequential or partitioned data set.
// Attributes left unset are taken from the model data set (Like) or the
// system defaults.
//
//zosmf:endpoint POST /zosmf/restfiles/ds/{datasetName} target=Result
type CreateBuilder struct {
	base endpoint.Base

	datasetName string `endpoint:"path"`

	// Volume sets the volume serial to allocate on.
	volume *string `endpoint:"body,builder=createBody"`
	// Unit sets the device type, such as "3390".
	unit *string
	// Organization sets the data set organization, such as "PS" or "PO".
	organization *string
	// AllocationUnit sets the unit of the space quantities: "TRK", "CYL"
	// or "BLK".
	allocationUnit *string
	// Primary sets the primary space allocation.
	primary *int
	// Secondary sets the secondary space allocation.
	secondary *int
	// DirectoryBlocks sets the number of directory blocks of a
	// partitioned data set.
	directoryBlocks *int
	// AverageBlock sets the average block length of a BLK allocation.
	averageBlock *int
	// RecordFormat sets the record format, such as "FB".
	recordFormat *string
	// BlockSize sets the block size.
	blockSize *int
	// RecordLength sets the logical record length.
	recordLength *int
	// StorageClass sets the SMS storage class.
	storageClass *string
	// ManagementClass sets the SMS management class.
	managementClass *string
	// DataClass sets the SMS data class.
	dataClass *string
	// DatasetType sets the data set type, such as "LIBRARY" or "PDS".
	datasetType *string
	// Like copies the attributes of an existing model data set.
	like *string
}

type createRequest struct {
	Volume          *string `json:"volser,omitempty"`
	Unit            *string `json:"unit,omitempty"`
	Organization    *string `json:"dsorg,omitempty"`
	AllocationUnit  *string `json:"alcunit,omitempty"`
	Primary         *int    `json:"primary,omitempty"`
	Secondary       *int    `json:"secondary,omitempty"`
	DirectoryBlocks *int    `json:"dirblk,omitempty"`
	AverageBlock    *int    `json:"avgblk,omitempty"`
	RecordFormat    *string `json:"recfm,omitempty"`
	BlockSize       *int    `json:"blksize,omitempty"`
	RecordLength    *int    `json:"lrecl,omitempty"`
	StorageClass    *string `json:"storclass,omitempty"`
	ManagementClass *string `json:"mgntclass,omitempty"`
	DataClass       *string `json:"dataclass,omitempty"`
	DatasetType     *string `json:"dsntype,omitempty"`
	Like            *string `json:"like,omitempty"`
}

func createBody(r endpoint.Request, b *CreateBuilder) endpoint.Request {
	return r.WithJSON(createRequest{
		Volume:          b.volume,
		Unit:            b.unit,
		Organization:    b.organization,
		AllocationUnit:  b.allocationUnit,
		Primary:         b.primary,
		Secondary:       b.secondary,
		DirectoryBlocks: b.directoryBlocks,
		AverageBlock:    b.averageBlock,
		RecordFormat:    b.recordFormat,
		BlockSize:       b.blockSize,
		RecordLength:    b.recordLength,
		StorageClass:    b.storageClass,
		ManagementClass: b.managementClass,
		DataClass:       b.dataClass,
		DatasetType:     b.datasetType,
		Like:            b.like,
	})
}
