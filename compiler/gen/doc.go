// Package gen provides code generation for NestJS JSON:API modules.
//
// A module definition, loaded and validated by the load package, is
// resolved into a Type: the naming plan, the fields with their validation
// decorators, the relationships with their import locations and the nested
// routes. Every generator reads from the same Type, so names never have to
// be derived twice.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema file (JSON or YAML)
//	        ↓
//	   load.Module + load.Validate
//	        ↓
//	   Type (NamingPlan, Fields, Relationships, NestedRoutes)
//	        ↓
//	   Dialect (renders one file per Artifact)
//	        ↓
//	   FileWriter + Registrar
//
// # Module Structures
//
// A related module is either legacy, keeping its metadata in
// entities/<name>.meta.ts, or descriptor based. The ModuleRegistry answers
// which one, and the Relationship picks the model expression and import
// family from it:
//
//	legacy:     topicMeta             from ".../entities/topic.meta"
//	            Topic                 from ".../entities/topic.entity"
//	descriptor: TopicDescriptor.model from ".../entities/topic"
//	            Topic                 from ".../entities/topic"
//
// A module relating to itself takes its model from its own meta object.
//
// # Interface Hierarchy
//
//	Dialect
//	├── Name() string
//	└── EntityGenerator
//	    ├── GenMeta, GenEntity
//	    ├── GenBaseDTO, GenPostDTO, GenPutDTO
//	    └── GenRepository, GenService, GenController, GenModule
//
//	TestGenerator (optional, used with FeatureTests)
//	└── GenServiceSpec, GenControllerSpec
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: Schema definition errors
//   - FieldTypeError: Unknown field types
//   - ConfigError: Configuration errors
//   - RelationshipError: Relationship errors
//   - GenerationError: Rendering and writing errors
//   - ValidationError: Validation errors
//   - RegistrationError: Aggregator registration errors
//
// Example error handling:
//
//	if _, err := g.Generate(ctx); err != nil {
//	    if errors.Is(err, gen.ErrInvalidSchema) {
//	        // handle schema error
//	    }
//	    var typeErr *gen.FieldTypeError
//	    if errors.As(err, &typeErr) {
//	        fmt.Println("valid types:", typeErr.Valid)
//	    }
//	}
package gen
