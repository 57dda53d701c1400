package gen

import (
	"github.com/syssam/modulegen/compiler/load"
	"github.com/syssam/modulegen/schema/field"
)

// Type is the template data of one module. It is built once by NewType
// and shared read-only by every generator.
type Type struct {
	*Config

	// Names holds the derived names of the module.
	Names *NamingPlan
	// TargetDir is the directory of the module relative to the source root.
	TargetDir string
	// CompanyScoped modules belong to a company.
	CompanyScoped bool

	Fields        []*Field
	Relationships []*Relationship
	NestedRoutes  []*NestedRoute

	// ValidationImports are the class-validator names the DTOs need.
	ValidationImports []string
}

// NewType resolves a validated module definition. The registry decides the
// structure of every related module.
func NewType(c *Config, m *load.Module, registry ModuleRegistry) (*Type, error) {
	if m == nil {
		return nil, NewSchemaError("", "", "module cannot be nil", nil)
	}
	if registry == nil {
		registry = NewStaticRegistry()
	}
	t := &Type{
		Config:        c,
		Names:         NewNamingPlan(m.ModuleName, m.EndpointName),
		TargetDir:     cleanDir(m.TargetDir),
		CompanyScoped: c.CompanyScoped,
	}
	if m.CompanyScoped != nil {
		t.CompanyScoped = *m.CompanyScoped
	}
	types := make([]field.Type, 0, len(m.Fields))
	for _, f := range m.Fields {
		tf, err := newField(f)
		if err != nil {
			return nil, NewSchemaError(m.ModuleName, f.Name, "", err)
		}
		t.Fields = append(t.Fields, tf)
		types = append(types, tf.Type)
	}
	for _, raw := range m.Relationships {
		r, err := MapRelationship(c, registry, t.Names, t.TargetDir, raw)
		if err != nil {
			return nil, err
		}
		t.Relationships = append(t.Relationships, r)
		for _, f := range r.Fields {
			types = append(types, f.Type)
		}
	}
	t.NestedRoutes = NestedRoutes(t.Names, t.Relationships)
	t.ValidationImports = field.ValidationImports(types)
	return t, nil
}

// EditableRelationships returns the relationships clients may set.
func (t *Type) EditableRelationships() []*Relationship {
	var rels []*Relationship
	for _, r := range t.Relationships {
		if r.Editable() {
			rels = append(rels, r)
		}
	}
	return rels
}

// ContextRelationships returns the relationships supplied from request context.
func (t *Type) ContextRelationships() []*Relationship {
	var rels []*Relationship
	for _, r := range t.Relationships {
		if r.HasContextKey() {
			rels = append(rels, r)
		}
	}
	return rels
}

// EdgeRelationships returns the editable relationships carrying edge properties.
func (t *Type) EdgeRelationships() []*Relationship {
	var rels []*Relationship
	for _, r := range t.EditableRelationships() {
		if r.HasEdgeFields() {
			rels = append(rels, r)
		}
	}
	return rels
}

// ModuleRoot returns the directory of the module relative to the working directory.
func (t *Type) ModuleRoot() string {
	return t.Config.ModuleRoot(t.TargetDir, t.Names.Kebab)
}

// HasManyRelationships reports if any editable relationship holds a list.
func (t *Type) HasManyRelationships() bool {
	for _, r := range t.EditableRelationships() {
		if r.IsMany() {
			return true
		}
	}
	return false
}
