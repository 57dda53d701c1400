package load

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/modulegen/schema/field"
)

// Severity of a validation issue.
type Severity string

// Validation severities. Only errors block generation.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single issue found in a module definition.
type ValidationError struct {
	// Path of the offending property, e.g. "relationships[0].single".
	Path     string
	Message  string
	Severity Severity
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ValidationErrors is the flat list of issues returned by Validate.
type ValidationErrors []ValidationError

// Passed reports whether no error-severity issue exists.
func (v ValidationErrors) Passed() bool { return len(v.Errors()) == 0 }

// Errors returns the error-severity issues.
func (v ValidationErrors) Errors() ValidationErrors { return v.filter(SeverityError) }

// Warnings returns the warning-severity issues.
func (v ValidationErrors) Warnings() ValidationErrors { return v.filter(SeverityWarning) }

func (v ValidationErrors) filter(s Severity) ValidationErrors {
	var out ValidationErrors
	for _, e := range v {
		if e.Severity == s {
			out = append(out, e)
		}
	}
	return out
}

var (
	moduleNameRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	endpointRe   = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	camelRe      = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	upperSnakeRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
	dirSegmentRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// targetRoots are the allowed first segments of targetDir.
var targetRoots = map[string]bool{"features": true, "foundations": true}

// reservedFields are provided by the entity base type or company scoping.
var reservedFields = map[string]bool{
	"id":        true,
	"type":      true,
	"createdAt": true,
	"updatedAt": true,
	"company":   true,
}

type validator struct {
	issues ValidationErrors
}

func (v *validator) errorf(path, format string, args ...any) {
	v.issues = append(v.issues, ValidationError{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (v *validator) warnf(path, format string, args ...any) {
	v.issues = append(v.issues, ValidationError{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

// Validate checks required properties, naming conventions and the shape of
// fields and relationships. It reports every issue it finds rather than
// stopping at the first one.
func Validate(m *Module) ValidationErrors {
	v := &validator{}
	if m == nil {
		v.errorf("", "schema is empty")
		return v.issues
	}
	switch {
	case m.ModuleName == "":
		v.errorf("moduleName", "is required")
	case !moduleNameRe.MatchString(m.ModuleName):
		v.errorf("moduleName", "%q must be PascalCase (%s)", m.ModuleName, moduleNameRe)
	}
	switch {
	case m.EndpointName == "":
		v.errorf("endpointName", "is required")
	case !endpointRe.MatchString(m.EndpointName):
		v.errorf("endpointName", "%q must be kebab-case (%s)", m.EndpointName, endpointRe)
	}
	v.targetDir(m.TargetDir)
	if m.Fields == nil {
		v.errorf("fields", "is required (use an empty array for a module without fields)")
	}
	names := make(map[string]string)
	for i, f := range m.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		v.field(path, f, true)
		if f == nil || f.Name == "" {
			continue
		}
		if prev, ok := names[f.Name]; ok {
			v.errorf(path+".name", "%q is already declared by %s", f.Name, prev)
			continue
		}
		names[f.Name] = path
	}
	keys := make(map[string]string)
	for i, r := range m.Relationships {
		path := fmt.Sprintf("relationships[%d]", i)
		v.relationship(path, r)
		if r == nil || r.Name == "" {
			continue
		}
		key := strings.ToLower(r.Label())
		if prev, ok := keys[key]; ok {
			v.errorf(path, "relationship %q is already declared by %s; set a distinct variant", r.Label(), prev)
			continue
		}
		if prev, ok := names[r.Key()]; ok {
			v.errorf(path, "relationship %q conflicts with field %s", r.Key(), prev)
		}
		keys[key] = path
	}
	return v.issues
}

func (v *validator) targetDir(dir string) {
	if dir == "" {
		v.errorf("targetDir", "is required")
		return
	}
	v.directory("targetDir", dir)
}

// directory checks a directory relative to the source root.
func (v *validator) directory(path, dir string) {
	segments := strings.Split(dir, "/")
	if !targetRoots[segments[0]] {
		v.errorf(path, "%q must start with features or foundations", dir)
		return
	}
	for _, s := range segments[1:] {
		if !dirSegmentRe.MatchString(s) {
			v.errorf(path, "%q has an invalid path segment %q", dir, s)
			return
		}
	}
}

// field validates a module field (topLevel) or a relationship edge property.
func (v *validator) field(path string, f *Field, topLevel bool) {
	if f == nil {
		v.errorf(path, "must be an object")
		return
	}
	switch {
	case f.Name == "":
		v.errorf(path+".name", "is required")
	case topLevel && reservedFields[f.Name]:
		v.errorf(path+".name", "%q is reserved by the entity base type", f.Name)
	case !camelRe.MatchString(f.Name):
		v.warnf(path+".name", "%q should be camelCase", f.Name)
	}
	if f.Type == "" {
		v.errorf(path+".type", "is required")
	} else if _, ok := field.Normalize(f.Type); !ok {
		v.errorf(path+".type", "unknown type %q (valid types: %s)", f.Type, strings.Join(field.TypeNames(), ", "))
	}
	if f.Nullable == nil {
		v.warnf(path+".nullable", "is missing, assuming false")
	}
}

func (v *validator) relationship(path string, r *Relationship) {
	if r == nil {
		v.errorf(path, "must be an object")
		return
	}
	switch {
	case r.Name == "":
		v.errorf(path+".name", "is required")
	case !moduleNameRe.MatchString(r.Name):
		v.errorf(path+".name", "%q must be PascalCase", r.Name)
	}
	if r.Variant != "" && !moduleNameRe.MatchString(r.Variant) {
		v.errorf(path+".variant", "%q must be PascalCase", r.Variant)
	}
	if r.Directory == "" {
		v.errorf(path+".directory", "is required")
	} else if !r.IsFoundation() {
		v.directory(path+".directory", r.Directory)
	}
	switch {
	case r.RelationshipName == "":
		v.errorf(path+".relationshipName", "is required")
	case !upperSnakeRe.MatchString(r.RelationshipName):
		v.warnf(path+".relationshipName", "%q should be UPPER_SNAKE_CASE", r.RelationshipName)
	}
	if r.Single == nil {
		v.errorf(path+".single", "is required")
	}
	if r.ToNode == nil {
		v.errorf(path+".toNode", "is required")
	}
	if r.Nullable == nil {
		v.errorf(path+".nullable", "is required")
	}
	if len(r.Fields) > 0 && r.Single != nil && !*r.Single {
		v.errorf(path+".fields", "edge properties are only supported when single is true")
	}
	for i, f := range r.Fields {
		v.field(fmt.Sprintf("%s.fields[%d]", path, i), f, false)
	}
}
