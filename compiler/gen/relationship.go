package gen

import (
	"strings"

	"github.com/syssam/modulegen/compiler/load"
	"github.com/syssam/modulegen/schema/field"
)

// Direction of a relationship edge as seen from the module.
type Direction string

// Cardinality of a relationship.
type Cardinality string

// Directions and cardinalities.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"

	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// AuthorVariant marks a relationship whose target is the requesting user.
const AuthorVariant = "Author"

// UserContextKey is the request context key supplying the author.
const UserContextKey = "userId"

// Relationship is a relationship resolved for code generation.
type Relationship struct {
	// Name of the related entity.
	Name string
	// Variant is the role name of the relationship, if any.
	Variant string
	// Key is the descriptor lookup key.
	Key string
	// DTOKey is the JSON property name exposed by the API.
	DTOKey string
	// ContextKey is set when the target comes from the request context.
	// Such relationships are never editable and get no nested route.
	ContextKey string

	Direction        Direction
	Cardinality      Cardinality
	RelationshipName string
	Nullable         bool

	// Fields are the edge properties, only used with CardinalityOne.
	Fields []*Field

	// Structure of the related module, detected from disk.
	Structure Structure
	// Model is the TypeScript expression of the related model.
	Model string
	// Meta is the exported meta object of a legacy related module.
	Meta string

	// Related TypeScript identifiers.
	Entity      string
	Descriptor  string
	DataDTO     string
	DataListDTO string

	// EdgeDTO and EdgeMetaDTO name the wrapper DTOs of edge properties.
	EdgeDTO     string
	EdgeMetaDTO string

	// Import locates the related module.
	Import Import
	// Self is set when the module relates to itself. Its types are then
	// imported from the module's own files.
	Self bool
}

// IsMany reports if the relationship holds a list.
func (r *Relationship) IsMany() bool { return r.Cardinality == CardinalityMany }

// IsOut reports if the edge points from the module to the related entity.
func (r *Relationship) IsOut() bool { return r.Direction == DirectionOut }

// HasContextKey reports if the target is supplied from request context.
func (r *Relationship) HasContextKey() bool { return r.ContextKey != "" }

// Editable reports if clients may set the relationship.
func (r *Relationship) Editable() bool { return !r.HasContextKey() }

// HasEdgeFields reports if the relationship carries edge properties.
func (r *Relationship) HasEdgeFields() bool {
	return r.Cardinality == CardinalityOne && len(r.Fields) > 0
}

// IsLegacy reports if the related module uses the meta file structure.
func (r *Relationship) IsLegacy() bool { return r.Structure == StructureLegacy }

// EndpointExpr is the TypeScript expression of the related endpoint.
func (r *Relationship) EndpointExpr() string { return r.Model + ".endpoint" }

// PascalKey returns the key in PascalCase.
func (r *Relationship) PascalKey() string { return pascal(r.Key) }

// DTO returns the related DTO class matching the cardinality.
func (r *Relationship) DTO() string {
	if r.IsMany() {
		return r.DataListDTO
	}
	return r.DataDTO
}

// relationshipMapper resolves raw relationships of one module.
type relationshipMapper struct {
	cfg       *Config
	registry  ModuleRegistry
	names     *NamingPlan
	targetDir string
}

// MapRelationship resolves a raw relationship of the module named by names
// living in targetDir. The related module structure is read from registry.
func MapRelationship(cfg *Config, registry ModuleRegistry, names *NamingPlan, targetDir string, raw *load.Relationship) (*Relationship, error) {
	m := &relationshipMapper{cfg: cfg, registry: registry, names: names, targetDir: targetDir}
	return m.mapRelationship(raw)
}

func (m *relationshipMapper) mapRelationship(raw *load.Relationship) (*Relationship, error) {
	r := &Relationship{
		Name:             raw.Name,
		Variant:          raw.Variant,
		Direction:        DirectionIn,
		Cardinality:      CardinalityMany,
		RelationshipName: raw.RelationshipName,
		Nullable:         raw.IsNullable(),
		Entity:           raw.Name,
		Descriptor:       raw.Name + "Descriptor",
		DataDTO:          raw.Name + "DataDTO",
		DataListDTO:      raw.Name + "DataListDTO",
	}
	if raw.IsToNode() {
		r.Direction = DirectionOut
	}
	if raw.IsSingle() {
		r.Cardinality = CardinalityOne
	}
	if raw.Variant == AuthorVariant {
		r.ContextKey = UserContextKey
	}
	label := raw.Label()
	r.DTOKey = strings.ToLower(label)
	if r.IsMany() {
		r.DTOKey = plural(r.DTOKey)
	}
	r.Key = raw.Key()
	if len(raw.Fields) > 0 {
		if !raw.IsSingle() {
			return nil, NewRelationshipError(m.names.Pascal, raw.Name, r.Key, "edge properties require a single relationship", nil)
		}
		for _, f := range raw.Fields {
			ef, err := newField(f)
			if err != nil {
				return nil, NewRelationshipError(m.names.Pascal, raw.Name, r.Key, "invalid edge property", err)
			}
			r.Fields = append(r.Fields, ef)
		}
		r.EdgeDTO = m.names.EdgeDTO(r.Key)
		r.EdgeMetaDTO = m.names.EdgeMetaDTO(r.Key)
	}

	target := kebab(raw.Name)
	dir := raw.Directory
	if !raw.IsFoundation() {
		dir = cleanDir(dir)
	}
	if !raw.IsFoundation() && raw.Name == m.names.Pascal && dir == cleanDir(m.targetDir) {
		// The own descriptor is not initialized where its relationships are
		// declared, so the model is the module's meta object.
		r.Self = true
		r.Meta = m.names.Meta
		r.Model = r.Meta
		return r, nil
	}
	r.Structure = m.registry.Structure(ModuleRef{Directory: dir, Name: target})
	if raw.IsFoundation() {
		r.Import = Import{Package: m.cfg.FoundationPackage, Kebab: target}
	} else {
		r.Import = Import{Base: ResolveImportPath(m.targetDir, dir, target), Kebab: target, Legacy: r.IsLegacy()}
	}
	if r.IsLegacy() {
		r.Meta = camel(label) + "Meta"
		r.Model = r.Meta
	} else {
		r.Model = r.Descriptor + ".model"
	}
	return r, nil
}

// Field is a field resolved for code generation.
type Field struct {
	Name       string
	Type       field.Type
	Nullable   bool
	Decorators []field.Decorator
}

func newField(f *load.Field) (*Field, error) {
	t, ok := field.Normalize(f.Type)
	if !ok {
		return nil, &FieldTypeError{Field: f.Name, Type: f.Type, Valid: field.TypeNames()}
	}
	return &Field{
		Name:       f.Name,
		Type:       t,
		Nullable:   f.IsNullable(),
		Decorators: field.Decorators(t, !f.IsNullable()),
	}, nil
}

// Required reports if the field must be present.
func (f *Field) Required() bool { return !f.Nullable }

// TSType returns the DTO type of the field.
func (f *Field) TSType() string { return f.Type.TSType() }

// EntityTSType returns the entity type of the field.
func (f *Field) EntityTSType() string { return f.Type.EntityTSType() }

// Optional returns "?" for nullable fields, used in TypeScript property declarations.
func (f *Field) Optional() string {
	if f.Nullable {
		return "?"
	}
	return ""
}
