package nest

import (
	"github.com/syssam/modulegen/compiler/gen"
)

// Package specifiers of the generated code.
const (
	nestCommon     = "@nestjs/common"
	nestTesting    = "@nestjs/testing"
	nestCls        = "nestjs-cls"
	fastify        = "fastify"
	classValidator = "class-validator"
	classTransform = "class-transformer"
)

// file is the data of one template execution.
type file struct {
	*gen.Type
	Artifact gen.Artifact
	Imports  *importSet
}

func newFile(t *gen.Type, a gen.Artifact) *file {
	return &file{Type: t, Artifact: a, Imports: newImportSet()}
}

// self imports names from another file of the module.
func (f *file) self(to gen.Artifact, names ...string) {
	f.Imports.add(f.Names.Import(f.Artifact, to), names...)
}

// foundation imports names from the foundation package.
func (f *file) foundation(names ...string) {
	f.Imports.add(f.FoundationPackage, names...)
}

// model imports the model reference of a related module: its meta object
// if it is legacy or the module itself, its descriptor otherwise.
func (f *file) model(r *gen.Relationship) {
	switch {
	case r.Self:
		f.self(gen.ArtifactMeta, r.Meta)
	case r.IsLegacy():
		f.Imports.add(r.Import.Meta(f.Artifact), r.Meta)
	default:
		f.Imports.add(r.Import.Entity(f.Artifact), r.Descriptor)
	}
}

// entity imports the entity type of a related module into the entity file,
// which declares the type itself for a self relationship.
func (f *file) entity(r *gen.Relationship) {
	if r.Self {
		return
	}
	f.Imports.add(r.Import.Entity(f.Artifact), r.Entity)
}

// dto imports a DTO class of a related module.
func (f *file) dto(r *gen.Relationship, name string) {
	if r.Self {
		f.self(gen.ArtifactBaseDTO, name)
		return
	}
	f.Imports.add(r.Import.DTO(f.Artifact), name)
}

func metaFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactMeta)
	f.foundation("DataMeta")
	return f
}

func entityFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactEntity)
	f.foundation("Entity", "defineEntity")
	if t.CompanyScoped {
		f.foundation("Company")
	}
	f.self(gen.ArtifactMeta, t.Names.Meta)
	for _, r := range t.Relationships {
		f.entity(r)
		f.model(r)
	}
	return f
}

func baseDTOFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactBaseDTO)
	f.Imports.add(classTransform, "Type")
	f.Imports.add(classValidator, "Equals", "IsUUID", "ValidateNested")
	f.self(gen.ArtifactEntity, t.Names.Descriptor)
	return f
}

// writeDTO is the data of the POST and PUT DTO files.
type writeDTO struct {
	*file
	Class              string
	DataClass          string
	AttributesClass    string
	RelationshipsClass string
	// Edges wraps edge-property relationships in their relationship DTO.
	Edges bool
}

func postDTOFile(t *gen.Type) *writeDTO {
	return newWriteDTO(t, gen.ArtifactPostDTO, &writeDTO{
		Class:              t.Names.PostDTO,
		DataClass:          t.Names.PostDataDTO,
		AttributesClass:    t.Names.PostAttributesDTO,
		RelationshipsClass: t.Names.PostRelationshipsDTO,
		Edges:              t.FeatureEnabled(gen.FeaturePostEdgeProperties.Name),
	})
}

func putDTOFile(t *gen.Type) *writeDTO {
	return newWriteDTO(t, gen.ArtifactPutDTO, &writeDTO{
		Class:              t.Names.PutDTO,
		DataClass:          t.Names.PutDataDTO,
		AttributesClass:    t.Names.PutAttributesDTO,
		RelationshipsClass: t.Names.PutRelationshipsDTO,
		Edges:              true,
	})
}

func newWriteDTO(t *gen.Type, a gen.Artifact, d *writeDTO) *writeDTO {
	d.file = newFile(t, a)
	d.Imports.add(classTransform, "Type")
	d.Imports.add(classValidator, t.ValidationImports...)
	d.self(gen.ArtifactEntity, t.Names.Descriptor)
	for _, r := range t.EditableRelationships() {
		if d.Edges && r.HasEdgeFields() {
			d.dto(r, r.Entity+"DTO")
			continue
		}
		d.dto(r, r.DTO())
	}
	return d
}

// EdgeRelationships returns the relationships wrapped with their edge
// properties in this file.
func (d *writeDTO) EdgeRelationships() []*gen.Relationship {
	if !d.Edges {
		return nil
	}
	return d.Type.EdgeRelationships()
}

// RelationshipDTO returns the class validating a relationship in this file.
func (d *writeDTO) RelationshipDTO(r *gen.Relationship) string {
	if d.Edges && r.HasEdgeFields() {
		return r.EdgeDTO
	}
	return r.DTO()
}

// RelationshipsRequired reports if any editable relationship is mandatory.
func (d *writeDTO) RelationshipsRequired() bool {
	for _, r := range d.EditableRelationships() {
		if !r.Nullable {
			return true
		}
	}
	return false
}

func repositoryFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactRepository)
	f.Imports.add(nestCommon, "Injectable")
	f.Imports.add(nestCls, "ClsService")
	f.foundation("AbstractRepository", "Neo4jService", "SecurityService")
	f.self(gen.ArtifactEntity, t.Names.Entity, t.Names.Descriptor)
	return f
}

func serviceFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactService)
	f.Imports.add(nestCommon, "Injectable")
	f.Imports.add(nestCls, "ClsService")
	f.foundation("AbstractService", "JsonApiService")
	f.self(gen.ArtifactEntity, t.Names.Entity, t.Names.Descriptor)
	f.self(gen.ArtifactRepository, t.Names.Repository)
	return f
}

func controllerFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactController)
	f.Imports.add(nestCommon, "Body", "Controller", "Delete", "Get", "HttpStatus", "Param",
		"PreconditionFailedException", "Post", "Put", "Query", "Req", "Res", "UseGuards")
	f.Imports.add(fastify, "FastifyReply")
	f.foundation("AuthenticatedRequest", "JwtAuthGuard")
	f.self(gen.ArtifactEntity, t.Names.Descriptor)
	f.self(gen.ArtifactPostDTO, t.Names.PostDTO)
	f.self(gen.ArtifactPutDTO, t.Names.PutDTO)
	f.self(gen.ArtifactService, t.Names.Service)
	for _, r := range t.EditableRelationships() {
		f.model(r)
		f.dto(r, r.DTO())
	}
	return f
}

func moduleFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactModule)
	f.Imports.add(nestCommon, "Module", "OnModuleInit")
	f.foundation("modelRegistry")
	f.self(gen.ArtifactController, t.Names.Controller)
	f.self(gen.ArtifactEntity, t.Names.Descriptor)
	f.self(gen.ArtifactRepository, t.Names.Repository)
	f.self(gen.ArtifactService, t.Names.Service)
	return f
}

func serviceSpecFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactServiceSpec)
	f.Imports.add(nestTesting, "Test", "TestingModule")
	f.Imports.add(nestCls, "ClsService")
	f.foundation("JsonApiService")
	f.self(gen.ArtifactEntity, t.Names.Descriptor)
	f.self(gen.ArtifactRepository, t.Names.Repository)
	f.self(gen.ArtifactService, t.Names.Service)
	return f
}

func controllerSpecFile(t *gen.Type) *file {
	f := newFile(t, gen.ArtifactControllerSpec)
	f.Imports.add(nestCommon, "PreconditionFailedException")
	f.Imports.add(nestTesting, "Test", "TestingModule")
	f.foundation("JwtAuthGuard")
	f.self(gen.ArtifactController, t.Names.Controller)
	f.self(gen.ArtifactService, t.Names.Service)
	return f
}
