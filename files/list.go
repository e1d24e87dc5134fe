package files

import (
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
)

// FileAttributes is one entry of a directory listing.
type FileAttributes struct {
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	Size     int64  `json:"size"`
	UID      int    `json:"uid"`
	User     string `json:"user"`
	GID      int    `json:"gid"`
	Group    string `json:"group"`
	Modified string `json:"mtime"`
	Target   string `json:"target,omitempty"`
}

// IsDir reports whether the entry is a directory.
func (f FileAttributes) IsDir() bool {
	return len(f.Mode) > 0 && f.Mode[0] == 'd'
}

// List is a directory listing.
type List struct {
	Items         []FileAttributes `json:"items"`
	ReturnedRows  int              `json:"returnedRows"`
	TotalRows     int              `json:"totalRows"`
	JSONVersion   int              `json:"JSONversion"`
	TransactionID string           `json:"-"`
}

func (List) TryFromResponse(resp *http.Response) (List, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return List{}, err
	}
	l, err := endpoint.DecodeJSON[List](resp)
	if err != nil {
		return List{}, err
	}
	l.TransactionID = id
	return l, nil
}

// ListBuilder lists a directory, or the single file named by its path.
//
//zosmf:endpoint GET /zosmf/restfiles/fs target=List
type ListBuilder struct {
	base endpoint.Base

	pathname string `endpoint:"query=path"`
	// Lstat reports a symbolic link itself instead of its target.
	lstat bool `endpoint:"header=X-IBM-Lstat,optional"`
	// MaxItems limits the number of entries returned. Zero means no limit.
	maxItems *int `endpoint:"header=X-IBM-Max-Items"`

	name        *string   `endpoint:"query=name"`
	user        *string   `endpoint:"query=user"`
	group       *string   `endpoint:"query=group"`
	permissions *string   `endpoint:"query=perm"`
	fileType    *FileType `endpoint:"query=type"`

	// ModifiedDays filters by the number of days since the last change.
	modifiedDays *Filter `endpoint:"query=mtime"`
	// Size filters by file size.
	size *Filter `endpoint:"query=size"`

	depth      *int        `endpoint:"query=depth"`
	limit      *int        `endpoint:"query=limit"`
	fileSystem *FileSystem `endpoint:"query=filesys"`
	symLinks   *SymLinks   `endpoint:"query=symlinks"`
}
