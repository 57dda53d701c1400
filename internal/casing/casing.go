// Package casing converts identifiers between the case styles used by the
// generated code.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits an identifier into its words. Separators ("-", "_", " ", ".")
// and case transitions both start a new word. A run of capitals is kept as
// one word, so "HTTPCode" splits into "HTTP" and "Code".
func Words(s string) []string {
	var (
		out  []string
		cur  []rune
		rs   = []rune(s)
		emit = func() {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = cur[:0]
			}
		}
	)
	for i, r := range rs {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			emit()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := rs[i-1]
			next := rune(0)
			if i+1 < len(rs) {
				next = rs[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				emit()
			}
		}
		cur = append(cur, r)
	}
	emit()
	return out
}

// Pascal converts s to PascalCase. The tail of each word is kept as is.
//
//	Pascal("author")    // Author
//	Pascal("blog-post") // BlogPost
//	Pascal("blogPost")  // BlogPost
func Pascal(s string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Camel converts s to camelCase. The first word is lowered entirely.
//
//	Camel("BlogPost") // blogPost
//	Camel("APIKey")   // apiKey
func Camel(s string) string {
	ws := Words(s)
	if len(ws) == 0 {
		return ""
	}
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	b.WriteString(strings.ToLower(ws[0]))
	for _, w := range ws[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Kebab converts s to kebab-case.
//
//	Kebab("BlogPost") // blog-post
func Kebab(s string) string {
	ws := Words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "-")
}
