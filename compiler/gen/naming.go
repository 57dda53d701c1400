package gen

import (
	"path"
	"strings"
)

// Artifact identifies one generated file of a module.
type Artifact int

// Artifacts in write order.
const (
	ArtifactMeta Artifact = iota
	ArtifactEntity
	ArtifactBaseDTO
	ArtifactPostDTO
	ArtifactPutDTO
	ArtifactRepository
	ArtifactService
	ArtifactController
	ArtifactModule
	ArtifactServiceSpec
	ArtifactControllerSpec
)

// Artifacts returns every artifact in write order.
func Artifacts() []Artifact {
	return []Artifact{
		ArtifactMeta,
		ArtifactEntity,
		ArtifactBaseDTO,
		ArtifactPostDTO,
		ArtifactPutDTO,
		ArtifactRepository,
		ArtifactService,
		ArtifactController,
		ArtifactModule,
		ArtifactServiceSpec,
		ArtifactControllerSpec,
	}
}

var artifactNames = [...]string{
	ArtifactMeta:           "meta",
	ArtifactEntity:         "entity",
	ArtifactBaseDTO:        "dto",
	ArtifactPostDTO:        "post-dto",
	ArtifactPutDTO:         "put-dto",
	ArtifactRepository:     "repository",
	ArtifactService:        "service",
	ArtifactController:     "controller",
	ArtifactModule:         "module",
	ArtifactServiceSpec:    "service-spec",
	ArtifactControllerSpec: "controller-spec",
}

// String implements fmt.Stringer.
func (a Artifact) String() string {
	if int(a) < len(artifactNames) {
		return artifactNames[a]
	}
	return "unknown"
}

// Dir returns the directory of the artifact inside the module root.
func (a Artifact) Dir() string {
	switch a {
	case ArtifactMeta, ArtifactEntity:
		return "entities"
	case ArtifactBaseDTO, ArtifactPostDTO, ArtifactPutDTO:
		return "dtos"
	case ArtifactRepository:
		return "repositories"
	case ArtifactService, ArtifactServiceSpec:
		return "services"
	case ArtifactController, ArtifactControllerSpec:
		return "controllers"
	default:
		return ""
	}
}

// Depth returns how many directories sit between the module root and the artifact.
func (a Artifact) Depth() int {
	if a.Dir() == "" {
		return 0
	}
	return 1
}

// IsTest reports if the artifact is a spec file.
func (a Artifact) IsTest() bool {
	return a == ArtifactServiceSpec || a == ArtifactControllerSpec
}

// NamingPlan holds every derived name of a module. It is computed once and
// the templates only read from it.
type NamingPlan struct {
	// Name forms of the module name.
	Pascal string
	Camel  string
	Kebab  string

	// Endpoint is the URL segment of the resource.
	Endpoint string

	// TypeScript identifiers.
	Entity               string
	Descriptor           string
	Meta                 string
	Module               string
	Service              string
	Repository           string
	Controller           string
	ServiceField         string
	RepositoryField      string
	BaseDTO              string
	DataDTO              string
	DataListDTO          string
	PostDTO              string
	PostDataDTO          string
	PostAttributesDTO    string
	PostRelationshipsDTO string
	PutDTO               string
	PutDataDTO           string
	PutAttributesDTO     string
	PutRelationshipsDTO  string

	// IDParam is the route parameter holding the resource id.
	IDParam string

	// Model and EndpointExpr are the TypeScript expressions for the
	// module's own descriptor model and endpoint.
	Model        string
	EndpointExpr string
}

// NewNamingPlan derives all names from a PascalCase module name and the
// endpoint segment.
func NewNamingPlan(moduleName, endpoint string) *NamingPlan {
	n := moduleName
	return &NamingPlan{
		Pascal:               n,
		Camel:                camel(n),
		Kebab:                kebab(n),
		Endpoint:             endpoint,
		Entity:               n,
		Descriptor:           n + "Descriptor",
		Meta:                 camel(n) + "Meta",
		Module:               n + "Module",
		Service:              n + "Service",
		Repository:           n + "Repository",
		Controller:           n + "Controller",
		ServiceField:         camel(n) + "Service",
		RepositoryField:      camel(n) + "Repository",
		BaseDTO:              n + "DTO",
		DataDTO:              n + "DataDTO",
		DataListDTO:          n + "DataListDTO",
		PostDTO:              n + "PostDTO",
		PostDataDTO:          n + "PostDataDTO",
		PostAttributesDTO:    n + "PostAttributesDTO",
		PostRelationshipsDTO: n + "PostRelationshipsDTO",
		PutDTO:               n + "PutDTO",
		PutDataDTO:           n + "PutDataDTO",
		PutAttributesDTO:     n + "PutAttributesDTO",
		PutRelationshipsDTO:  n + "PutRelationshipsDTO",
		IDParam:              camel(n) + "Id",
		Model:                n + "Descriptor.model",
		EndpointExpr:         n + "Descriptor.model.endpoint",
	}
}

// File returns the path of the artifact relative to the module root.
func (p *NamingPlan) File(a Artifact) string {
	var name string
	switch a {
	case ArtifactMeta:
		name = p.Kebab + ".meta.ts"
	case ArtifactEntity:
		name = p.Kebab + ".ts"
	case ArtifactBaseDTO:
		name = p.Kebab + ".dto.ts"
	case ArtifactPostDTO:
		name = p.Kebab + ".post.dto.ts"
	case ArtifactPutDTO:
		name = p.Kebab + ".put.dto.ts"
	case ArtifactRepository:
		name = p.Kebab + ".repository.ts"
	case ArtifactService:
		name = p.Kebab + ".service.ts"
	case ArtifactController:
		name = p.Kebab + ".controller.ts"
	case ArtifactModule:
		name = p.Kebab + ".module.ts"
	case ArtifactServiceSpec:
		name = p.Kebab + ".service.spec.ts"
	case ArtifactControllerSpec:
		name = p.Kebab + ".controller.spec.ts"
	}
	return path.Join(a.Dir(), name)
}

// Import returns the specifier used by the artifact from to import the
// artifact to of the same module.
func (p *NamingPlan) Import(from, to Artifact) string {
	target := strings.TrimSuffix(path.Base(p.File(to)), ".ts")
	if from.Dir() == to.Dir() {
		return "./" + target
	}
	prefix := strings.Repeat("../", from.Depth())
	if prefix == "" {
		prefix = "./"
	}
	return prefix + path.Join(to.Dir(), target)
}

// EdgeDTO returns the name of the wrapper DTO of a relationship carrying edge properties.
func (p *NamingPlan) EdgeDTO(key string) string {
	return p.Pascal + pascal(key) + "RelationshipDTO"
}

// EdgeMetaDTO returns the name of the DTO holding the edge properties of a relationship.
func (p *NamingPlan) EdgeMetaDTO(key string) string {
	return p.Pascal + pascal(key) + "RelationshipMetaDTO"
}
