package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Comment", []string{"Comment"}},
		{"BlogPost", []string{"Blog", "Post"}},
		{"HTTPCode", []string{"HTTP", "Code"}},
		{"userID", []string{"user", "ID"}},
		{"blog-post", []string{"blog", "post"}},
		{"user_info", []string{"user", "info"}},
		{"Topic2Tag", []string{"Topic2", "Tag"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestForms(t *testing.T) {
	tests := []struct {
		in                   string
		pascal, camel, kebab string
	}{
		{"Comment", "Comment", "comment", "comment"},
		{"BlogPost", "BlogPost", "blogPost", "blog-post"},
		{"author", "Author", "author", "author"},
		{"APIKey", "APIKey", "apiKey", "api-key"},
		{"URL", "URL", "url", "url"},
		{"blog-post", "BlogPost", "blogPost", "blog-post"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, Pascal(tt.in))
			assert.Equal(t, tt.camel, Camel(tt.in))
			assert.Equal(t, tt.kebab, Kebab(tt.in))
		})
	}
}
