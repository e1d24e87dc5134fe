package ir

import (
	"fmt"
	"strings"
)

// PathPart is one piece of a path template: either literal text or a
// placeholder naming a path field.
type PathPart struct {
	Literal string
	Field   string
}

// ParsePath splits a template such as "/ds/{volume}{name}{member}" into
// literal and placeholder parts.
func ParsePath(template string) ([]PathPart, error) {
	if !strings.HasPrefix(template, "/") {
		return nil, fmt.Errorf("path template %q must start with /", template)
	}
	var parts []PathPart
	rest := template
	for rest != "" {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			parts = append(parts, PathPart{Literal: rest})
			break
		}
		if rest[open] == '}' {
			return nil, fmt.Errorf("path template %q has unmatched }", template)
		}
		if open > 0 {
			parts = append(parts, PathPart{Literal: rest[:open]})
		}
		rest = rest[open+1:]
		end := strings.IndexAny(rest, "{}")
		if end < 0 || rest[end] == '{' {
			return nil, fmt.Errorf("path template %q has unclosed {", template)
		}
		name := rest[:end]
		if name == "" {
			return nil, fmt.Errorf("path template %q has an empty placeholder", template)
		}
		parts = append(parts, PathPart{Field: name})
		rest = rest[end+1:]
	}
	return parts, nil
}

// Placeholders returns the field names referenced by parts, in order.
func Placeholders(parts []PathPart) []string {
	var names []string
	for _, p := range parts {
		if p.Field != "" {
			names = append(names, p.Field)
		}
	}
	return names
}
