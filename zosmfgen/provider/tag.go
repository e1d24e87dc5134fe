package provider

import (
	"fmt"
	"strings"

	"github.com/wmcgee3/zosmf/zosmfgen/ir"
)

// parseTag applies an endpoint struct tag such as
// `endpoint:"query=volser,optional"` to f.
func parseTag(tag string, f *ir.Field) error {
	roleSet := false
	setRole := func(r ir.Role, key string) error {
		if roleSet {
			return fmt.Errorf("field has more than one role (%s and %s)", f.Role, r)
		}
		roleSet = true
		f.Role = r
		f.Key = key
		return nil
	}

	for _, item := range strings.Split(tag, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, hasValue := strings.Cut(item, "=")
		var err error
		switch key {
		case "path":
			err = setRole(ir.RolePath, "")
		case "query":
			err = setRole(ir.RoleQuery, value)
		case "header":
			err = setRole(ir.RoleHeader, value)
		case "body":
			err = setRole(ir.RoleBody, "")
		case "inert":
			err = setRole(ir.RoleInert, "")
		case "optional":
			f.Optional = true
		case "skip_setter":
			f.SkipSetter = true
		case "setter":
			f.SetterOverride = value
		case "builder":
			f.AssemblyOverride = value
		default:
			return fmt.Errorf("unknown endpoint tag item %q", key)
		}
		if err != nil {
			return err
		}
		switch key {
		case "query", "header", "setter", "builder":
			if !hasValue || value == "" {
				return fmt.Errorf("endpoint tag item %q needs a value", key)
			}
		default:
			if hasValue {
				return fmt.Errorf("endpoint tag item %q takes no value", key)
			}
		}
	}
	return nil
}
