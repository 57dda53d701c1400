package gen

import (
	"github.com/go-openapi/inflect"

	"github.com/syssam/modulegen/internal/casing"
)

func pascal(s string) string { return casing.Pascal(s) }

func camel(s string) string { return casing.Camel(s) }

func kebab(s string) string { return casing.Kebab(s) }

// plural returns the English plural of s.
func plural(s string) string {
	return inflect.Pluralize(s)
}

// Pascal converts s to PascalCase, e.g. "blog-post" to "BlogPost".
func Pascal(s string) string {
	return pascal(s)
}
