package endpoint

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Format renders a field value as header or query text.
func Format[V any](v V) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// FormatList renders values joined by sep.
func FormatList[V any](values []V, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Format(v)
	}
	return strings.Join(parts, sep)
}
