// Package restfiles holds the request pieces shared by the z/OSMF data
// set and UNIX file services.
package restfiles

import (
	"strconv"

	"github.com/wmcgee3/zosmf/endpoint"
)

// HeaderDataType selects how content is converted on read and write.
const HeaderDataType = "X-IBM-Data-Type"

// Search renders a record search. The options only apply together with a
// search value.
func Search(r endpoint.Request, value *string, regex, caseSensitive bool, maxReturn *int) endpoint.Request {
	if value == nil {
		return r
	}
	key := "search"
	if regex {
		key = "research"
	}
	r = r.WithQuery(key, *value)
	if caseSensitive {
		r = r.WithQuery("insensitive", "false")
	}
	if maxReturn != nil {
		r = r.WithQuery("maxreturnsize", endpoint.Format(*maxReturn))
	}
	return r
}

// ReadDataType renders the data type of a read. Text is the server
// default, so nothing is sent unless a type or an encoding was chosen.
func ReadDataType(r endpoint.Request, dataType string, encoding *string) endpoint.Request {
	switch {
	case dataType != "" && encoding != nil:
		return r.WithHeader(HeaderDataType, dataType+";fileEncoding="+*encoding)
	case dataType != "":
		return r.WithHeader(HeaderDataType, dataType)
	case encoding != nil:
		return r.WithHeader(HeaderDataType, "text;fileEncoding="+*encoding)
	}
	return r
}

// WriteDataType renders the data type of a write. It is always sent, and
// text writes carry their encoding and line ending options.
func WriteDataType(r endpoint.Request, dataType string, encoding *string, crlf bool) endpoint.Request {
	if dataType != "" && dataType != "text" {
		return r.WithHeader(HeaderDataType, dataType)
	}
	value := "text"
	if encoding != nil {
		value += ";fileEncoding=" + *encoding
	}
	if crlf {
		value += ";crlf=true"
	}
	return r.WithHeader(HeaderDataType, value)
}

// Records renders an X-IBM-Record-Range from start to end, both
// zero-based and inclusive.
func Records(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// RecordCount renders an X-IBM-Record-Range of count records beginning at
// start.
func RecordCount(start, count int) string {
	return strconv.Itoa(start) + "," + strconv.Itoa(count)
}
