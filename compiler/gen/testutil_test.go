package gen

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modulegen/compiler/load"
)

func ptr[T any](v T) *T { return &v }

func testConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	c, err := NewConfig(append([]Option{WithFs(afero.NewMemMapFs()), WithFoundationDir("")}, opts...)...)
	require.NoError(t, err)
	return c
}

func commentModule() *load.Module {
	return &load.Module{
		ModuleName:   "Comment",
		EndpointName: "comments",
		TargetDir:    "features",
		Fields: []*load.Field{
			{Name: "body", Type: "string", Nullable: ptr(false)},
		},
		Relationships: []*load.Relationship{
			{
				Name:             "User",
				Variant:          "Author",
				Directory:        load.FoundationDirectory,
				Single:           ptr(true),
				RelationshipName: "AUTHORED_BY",
				ToNode:           ptr(true),
				Nullable:         ptr(false),
			},
		},
	}
}

func topicRelationship() *load.Relationship {
	return &load.Relationship{
		Name:             "Topic",
		Directory:        "features",
		Single:           ptr(false),
		RelationshipName: "RELEVANT_FOR",
		ToNode:           ptr(true),
		Nullable:         ptr(true),
	}
}
