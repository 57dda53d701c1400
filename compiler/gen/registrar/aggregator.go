package registrar

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrNoModuleDecorator is returned for files without a @Module decorator.
	ErrNoModuleDecorator = errors.New("no @Module decorator")
	// ErrUnbalanced is returned when the imports array is not closed.
	ErrUnbalanced = errors.New("unbalanced imports array")
)

var (
	importStmt  = regexp.MustCompile(`(?m)^import\b[^;]*;`)
	importsKey  = regexp.MustCompile(`\bimports\s*:\s*\[`)
	moduleStart = regexp.MustCompile(`@Module\(\s*\{`)
)

// Aggregator is a parsed NestJS module whose imports array lists the
// modules of a directory, such as features.modules.ts:
//
//	import { Module } from "@nestjs/common";
//	import { CommentModule } from "./comment/comment.module";
//
//	@Module({
//	  imports: [CommentModule],
//	})
//	export class FeaturesModules {}
type Aggregator struct {
	src []byte
	// importsEnd is the offset right after the last import statement.
	importsEnd int
	// open and close delimit the contents of the imports array.
	open, close int
	entries     []string
	multiline   bool
	indent      string
	closeIndent string
	// added import statements.
	added []string
	dirty bool
}

// Parse parses an aggregator source. A @Module decorator without an
// imports array gets an empty one.
func Parse(src []byte) (*Aggregator, error) {
	loc := moduleStart.FindIndex(src)
	if loc == nil {
		return nil, ErrNoModuleDecorator
	}
	key := importsKey.FindIndex(src[loc[1]:])
	if key == nil {
		patched := make([]byte, 0, len(src)+16)
		patched = append(patched, src[:loc[1]]...)
		patched = append(patched, "\n  imports: [],"...)
		patched = append(patched, src[loc[1]:]...)
		a, err := Parse(patched)
		if err != nil {
			return nil, err
		}
		a.dirty = true
		return a, nil
	}
	a := &Aggregator{src: src, open: loc[1] + key[1]}
	for _, m := range importStmt.FindAllIndex(src[:loc[0]], -1) {
		a.importsEnd = m[1]
	}
	depth := 1
	for i := a.open; i < len(src); i++ {
		switch src[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		}
		if depth == 0 {
			a.close = i
			break
		}
	}
	if a.close == 0 {
		return nil, ErrUnbalanced
	}
	body := string(src[a.open:a.close])
	a.entries = splitEntries(body)
	a.multiline = strings.Contains(body, "\n")
	a.indent, a.closeIndent = "    ", ""
	if a.multiline {
		lines := strings.Split(body, "\n")
		for _, l := range lines[1:] {
			if t := strings.TrimSpace(l); t != "" {
				a.indent = l[:len(l)-len(strings.TrimLeft(l, " \t"))]
				break
			}
		}
		last := lines[len(lines)-1]
		a.closeIndent = last[:len(last)-len(strings.TrimLeft(last, " \t"))]
	}
	return a, nil
}

// splitEntries splits the array body on top-level commas.
func splitEntries(body string) []string {
	var (
		entries []string
		depth   int
		start   int
	)
	push := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			entries = append(entries, s)
		}
	}
	for i, r := range body {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				push(body[start:i])
				start = i + 1
			}
		}
	}
	push(body[start:])
	return entries
}

// Entries returns the entries of the imports array.
func (a *Aggregator) Entries() []string {
	return append([]string(nil), a.entries...)
}

// Has reports if name is listed in the imports array.
func (a *Aggregator) Has(name string) bool {
	for _, e := range a.entries {
		if e == name {
			return true
		}
	}
	return false
}

// imported reports if an import statement already binds name.
func (a *Aggregator) imported(name string) bool {
	word := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	for _, stmt := range importStmt.FindAll(a.src[:a.importsEnd], -1) {
		if word.Match(stmt) {
			return true
		}
	}
	for _, stmt := range a.added {
		if word.MatchString(stmt) {
			return true
		}
	}
	return false
}

// Add imports name from the specifier from and lists it in the imports
// array, which is then sorted. It reports false if name was already listed.
func (a *Aggregator) Add(name, from string) bool {
	if !a.imported(name) {
		a.added = append(a.added, fmt.Sprintf("import { %s } from %q;", name, from))
		a.dirty = true
	}
	if a.Has(name) {
		return false
	}
	a.entries = append(a.entries, name)
	sort.SliceStable(a.entries, func(i, j int) bool {
		return strings.ToLower(a.entries[i]) < strings.ToLower(a.entries[j])
	})
	a.dirty = true
	return true
}

// Modified reports if Bytes differs from the parsed source.
func (a *Aggregator) Modified() bool { return a.dirty }

// Bytes renders the aggregator.
func (a *Aggregator) Bytes() []byte {
	var b bytes.Buffer
	b.Write(a.src[:a.importsEnd])
	for i, stmt := range a.added {
		if a.importsEnd > 0 || i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(stmt)
	}
	if a.importsEnd == 0 && len(a.added) > 0 {
		b.WriteString("\n\n")
	}
	b.Write(a.src[a.importsEnd:a.open])
	switch {
	case len(a.entries) == 0:
	case a.multiline:
		for _, e := range a.entries {
			b.WriteString("\n" + a.indent + e + ",")
		}
		b.WriteString("\n" + a.closeIndent)
	default:
		b.WriteString(strings.Join(a.entries, ", "))
	}
	b.Write(a.src[a.close:])
	return b.Bytes()
}

// NewAggregator returns the source of an empty aggregator named class.
func NewAggregator(class string) []byte {
	return []byte(fmt.Sprintf(`import { Module } from "@nestjs/common";

@Module({
  imports: [],
})
export class %s {}
`, class))
}
