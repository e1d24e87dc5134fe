package golang

import (
	"github.com/wmcgee3/zosmf/zosmfgen/ir"
)

// methodNames are the methods every generated builder declares.
var methodNames = map[string]bool{
	"Build":       true,
	"HTTPRequest": true,
	"path":        true,
	"request":     true,
}

// checkNames reports setters whose names collide with generated methods or
// with each other.
func checkNames(schema *ir.Schema) []error {
	var errs []error
	for _, e := range schema.Endpoints {
		seen := make(map[string]string)
		for _, f := range e.Fields {
			if !f.HasSetter() {
				continue
			}
			name := ir.Exported(f.Name)
			if methodNames[name] {
				errs = append(errs, &ir.ValidationError{
					Code:     "reserved_name",
					Endpoint: e.Name,
					Message:  e.Name + "." + f.Name + ": setter " + name + " collides with a generated method",
				})
			}
			if other, dup := seen[name]; dup {
				errs = append(errs, &ir.ValidationError{
					Code:     "reserved_name",
					Endpoint: e.Name,
					Message:  e.Name + "." + f.Name + ": setter " + name + " collides with the setter of " + other,
				})
			}
			seen[name] = f.Name
		}
	}
	return errs
}
