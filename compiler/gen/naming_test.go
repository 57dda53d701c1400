package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNamingPlan(t *testing.T) {
	p := NewNamingPlan("BlogPost", "blog-posts")

	assert.Equal(t, "BlogPost", p.Pascal)
	assert.Equal(t, "blogPost", p.Camel)
	assert.Equal(t, "blog-post", p.Kebab)
	assert.Equal(t, "blog-posts", p.Endpoint)
	assert.Equal(t, "BlogPostDescriptor", p.Descriptor)
	assert.Equal(t, "blogPostMeta", p.Meta)
	assert.Equal(t, "BlogPostService", p.Service)
	assert.Equal(t, "blogPostRepository", p.RepositoryField)
	assert.Equal(t, "BlogPostDataListDTO", p.DataListDTO)
	assert.Equal(t, "BlogPostPostAttributesDTO", p.PostAttributesDTO)
	assert.Equal(t, "BlogPostPutRelationshipsDTO", p.PutRelationshipsDTO)
	assert.Equal(t, "blogPostId", p.IDParam)
	assert.Equal(t, "BlogPostDescriptor.model.endpoint", p.EndpointExpr)
	assert.Equal(t, "BlogPostTopicRelationshipDTO", p.EdgeDTO("topic"))
	assert.Equal(t, "BlogPostTopicRelationshipMetaDTO", p.EdgeMetaDTO("topic"))
}

func TestNamingPlanFile(t *testing.T) {
	p := NewNamingPlan("Comment", "comments")
	tests := map[Artifact]string{
		ArtifactMeta:           "entities/comment.meta.ts",
		ArtifactEntity:         "entities/comment.ts",
		ArtifactBaseDTO:        "dtos/comment.dto.ts",
		ArtifactPostDTO:        "dtos/comment.post.dto.ts",
		ArtifactPutDTO:         "dtos/comment.put.dto.ts",
		ArtifactRepository:     "repositories/comment.repository.ts",
		ArtifactService:        "services/comment.service.ts",
		ArtifactController:     "controllers/comment.controller.ts",
		ArtifactModule:         "comment.module.ts",
		ArtifactServiceSpec:    "services/comment.service.spec.ts",
		ArtifactControllerSpec: "controllers/comment.controller.spec.ts",
	}
	for a, want := range tests {
		t.Run(a.String(), func(t *testing.T) {
			assert.Equal(t, want, p.File(a))
		})
	}
}

func TestNamingPlanImport(t *testing.T) {
	p := NewNamingPlan("Comment", "comments")
	tests := []struct {
		from, to Artifact
		want     string
	}{
		{ArtifactEntity, ArtifactMeta, "./comment.meta"},
		{ArtifactModule, ArtifactService, "./services/comment.service"},
		{ArtifactController, ArtifactService, "../services/comment.service"},
		{ArtifactController, ArtifactPostDTO, "../dtos/comment.post.dto"},
		{ArtifactServiceSpec, ArtifactService, "./comment.service"},
		{ArtifactPutDTO, ArtifactEntity, "../entities/comment"},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Import(tt.from, tt.to))
		})
	}
}

func TestArtifactDepth(t *testing.T) {
	for _, a := range Artifacts() {
		if a == ArtifactModule {
			assert.Equal(t, 0, a.Depth())
			continue
		}
		assert.Equal(t, 1, a.Depth(), a.String())
	}
}
