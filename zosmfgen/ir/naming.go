package ir

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are written in upper case when they form a whole word.
var initialisms = map[string]string{
	"id":   "ID",
	"jcl":  "JCL",
	"json": "JSON",
	"http": "HTTP",
	"url":  "URL",
	"uri":  "URI",
	"enq":  "ENQ",
	"crlf": "CRLF",
}

// Exported returns the exported form of a Go identifier: "maxItems"
// becomes "MaxItems" and "crlf" becomes "CRLF".
func Exported(name string) string {
	if name == "" {
		return ""
	}
	if upper, ok := initialisms[name]; ok {
		return upper
	}
	return title(name[:1]) + name[1:]
}

// CamelCase converts a snake_case name to a Go field name:
// "max_items" becomes "maxItems" and "job_id" becomes "jobID". Names
// without separators, such as "datasetName", are returned unchanged.
func CamelCase(name string) string {
	if !strings.ContainsAny(name, "_-") {
		return name
	}
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for i, w := range words {
		lower := strings.ToLower(w)
		switch {
		case i == 0:
			b.WriteString(lower)
		case initialisms[lower] != "":
			b.WriteString(initialisms[lower])
		default:
			b.WriteString(title(lower))
		}
	}
	return b.String()
}

// title upper-cases the first letter of s. Casers are stateful, so each
// call gets its own.
func title(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
