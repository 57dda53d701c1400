// Package load reads module schema files and validates them before code
// generation.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/syssam/modulegen/internal/casing"
)

// Module represents a module definition loaded from a schema file.
type Module struct {
	ModuleName    string          `json:"moduleName"`
	EndpointName  string          `json:"endpointName"`
	TargetDir     string          `json:"targetDir"`
	CompanyScoped *bool           `json:"companyScoped,omitempty"`
	Fields        []*Field        `json:"fields"`
	Relationships []*Relationship `json:"relationships,omitempty"`
}

// Field represents a field of a module, or a property of a relationship edge.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable *bool  `json:"nullable,omitempty"`
}

// Relationship represents a relationship from the module to another entity.
// The flags are pointers so validation can tell a missing flag from false.
type Relationship struct {
	Name             string   `json:"name"`
	Variant          string   `json:"variant,omitempty"`
	Directory        string   `json:"directory"`
	Single           *bool    `json:"single,omitempty"`
	RelationshipName string   `json:"relationshipName"`
	ToNode           *bool    `json:"toNode,omitempty"`
	Nullable         *bool    `json:"nullable,omitempty"`
	Fields           []*Field `json:"fields,omitempty"`
}

// FoundationDirectory is the directory sentinel for entities that live in
// the shared foundation package.
const FoundationDirectory = "@foundation"

// ErrEmptySchema is returned when a schema file holds an empty array.
var ErrEmptySchema = errors.New("load: schema array is empty")

// IsNullable reports if the field accepts null. A missing flag means false.
func (f *Field) IsNullable() bool { return f.Nullable != nil && *f.Nullable }

// IsSingle reports if the relationship points to one entity.
func (r *Relationship) IsSingle() bool { return r.Single != nil && *r.Single }

// IsToNode reports if the relationship edge is outgoing.
func (r *Relationship) IsToNode() bool { return r.ToNode != nil && *r.ToNode }

// IsNullable reports if the relationship is optional.
func (r *Relationship) IsNullable() bool { return r.Nullable != nil && *r.Nullable }

// IsFoundation reports if the target lives in the foundation package.
func (r *Relationship) IsFoundation() bool { return r.Directory == FoundationDirectory }

// Label returns variant if set, otherwise the target entity name.
func (r *Relationship) Label() string {
	if r.Variant != "" {
		return r.Variant
	}
	return r.Name
}

// Key returns the property name of the relationship on the entity.
func (r *Relationship) Key() string { return casing.Camel(r.Label()) }

// Load reads the schema file at path. YAML files (.yaml, .yml) are accepted
// as well as JSON. The returned warnings are non-fatal notes about the input.
func Load(fs afero.Fs, path string) (*Module, []string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("load: reading schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return nil, nil, fmt.Errorf("load: converting yaml schema: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a JSON schema. It accepts a single module object or an array
// whose first element is used; extra elements are dropped with a warning.
func Parse(data []byte) (*Module, []string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, nil, fmt.Errorf("load: decoding schema array: %w", err)
		}
		if len(list) == 0 {
			return nil, nil, ErrEmptySchema
		}
		var warnings []string
		if len(list) > 1 {
			warnings = append(warnings, fmt.Sprintf("schema array holds %d modules, only the first is generated", len(list)))
		}
		m, err := decode(list[0])
		return m, warnings, err
	}
	m, err := decode(data)
	return m, nil, err
}

func decode(data []byte) (*Module, error) {
	var m Module
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("load: decoding schema: %w", err)
	}
	return &m, nil
}
