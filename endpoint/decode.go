package endpoint

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Response headers set by z/OSMF.
const (
	HeaderTransactionID = "X-IBM-Txid"
	HeaderSessionRef    = "X-IBM-Session-Ref"
	HeaderETag          = "Etag"
)

// None is the target of endpoints whose response carries nothing of
// interest beyond a successful status.
type None struct{}

func (None) TryFromResponse(*http.Response) (None, error) {
	return None{}, nil
}

// DecodeJSON decodes the response body as JSON.
func DecodeJSON[T any](resp *http.Response) (T, error) {
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// ReadText returns the response body as a string.
func ReadText(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	return string(data), err
}

// ReadBytes returns the raw response body.
func ReadBytes(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}

// TransactionID returns the z/OSMF transaction id of the response.
// Every z/OSMF data set and file reply carries one.
func TransactionID(resp *http.Response) (string, error) {
	id := resp.Header.Get(HeaderTransactionID)
	if id == "" {
		return "", errors.New("missing " + HeaderTransactionID + " header")
	}
	return id, nil
}

// ETag returns the entity tag of the response, if any.
func ETag(resp *http.Response) string {
	return resp.Header.Get(HeaderETag)
}

// SessionRef returns the ENQ session reference of the response, if any.
func SessionRef(resp *http.Response) string {
	return resp.Header.Get(HeaderSessionRef)
}
