package gen

// EntityGenerator renders the per-module files.
// Each method is called once per generation run.
type EntityGenerator interface {
	// GenMeta generates the module metadata (entities/{name}.meta.ts)
	GenMeta(t *Type) ([]byte, error)
	// GenEntity generates the entity type and descriptor (entities/{name}.ts)
	GenEntity(t *Type) ([]byte, error)
	// GenBaseDTO generates the reference DTOs (dtos/{name}.dto.ts)
	GenBaseDTO(t *Type) ([]byte, error)
	// GenPostDTO generates the create DTOs (dtos/{name}.post.dto.ts)
	GenPostDTO(t *Type) ([]byte, error)
	// GenPutDTO generates the update DTOs (dtos/{name}.put.dto.ts)
	GenPutDTO(t *Type) ([]byte, error)
	// GenRepository generates the repository (repositories/{name}.repository.ts)
	GenRepository(t *Type) ([]byte, error)
	// GenService generates the service (services/{name}.service.ts)
	GenService(t *Type) ([]byte, error)
	// GenController generates the controller (controllers/{name}.controller.ts)
	GenController(t *Type) ([]byte, error)
	// GenModule generates the NestJS module ({name}.module.ts)
	GenModule(t *Type) ([]byte, error)
}

// TestGenerator renders spec files.
// This is optional - dialects that support FeatureTests implement this interface.
type TestGenerator interface {
	// GenServiceSpec generates services/{name}.service.spec.ts
	GenServiceSpec(t *Type) ([]byte, error)
	// GenControllerSpec generates controllers/{name}.controller.spec.ts
	GenControllerSpec(t *Type) ([]byte, error)
}

// Dialect is the interface a target framework implements.
type Dialect interface {
	// Name returns the dialect name (e.g. "nest").
	Name() string
	EntityGenerator
}

// Registrar adds a generated module to the aggregator of its directory.
type Registrar interface {
	Register(t *Type) error
}

// render dispatches an artifact to the dialect. ok is false when the
// dialect cannot render the artifact.
func render(d Dialect, a Artifact, t *Type) (b []byte, ok bool, err error) {
	var fn func(*Type) ([]byte, error)
	switch a {
	case ArtifactMeta:
		fn = d.GenMeta
	case ArtifactEntity:
		fn = d.GenEntity
	case ArtifactBaseDTO:
		fn = d.GenBaseDTO
	case ArtifactPostDTO:
		fn = d.GenPostDTO
	case ArtifactPutDTO:
		fn = d.GenPutDTO
	case ArtifactRepository:
		fn = d.GenRepository
	case ArtifactService:
		fn = d.GenService
	case ArtifactController:
		fn = d.GenController
	case ArtifactModule:
		fn = d.GenModule
	case ArtifactServiceSpec, ArtifactControllerSpec:
		tg, isTG := d.(TestGenerator)
		if !isTG {
			return nil, false, nil
		}
		fn = tg.GenServiceSpec
		if a == ArtifactControllerSpec {
			fn = tg.GenControllerSpec
		}
	default:
		return nil, false, nil
	}
	b, err = fn(t)
	return b, true, err
}
