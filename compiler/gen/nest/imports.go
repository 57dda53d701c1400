package nest

import (
	"sort"
	"strings"
)

// importSet collects the named imports of one TypeScript file.
type importSet struct {
	specs map[string]map[string]struct{}
}

func newImportSet() *importSet {
	return &importSet{specs: make(map[string]map[string]struct{})}
}

// add imports names from the module specifier from.
func (s *importSet) add(from string, names ...string) {
	set, ok := s.specs[from]
	if !ok {
		set = make(map[string]struct{})
		s.specs[from] = set
	}
	for _, n := range names {
		set[n] = struct{}{}
	}
}

// String renders one import statement per specifier. Package imports come
// before relative ones, both sorted; names are sorted case-insensitively.
func (s *importSet) String() string {
	from := make([]string, 0, len(s.specs))
	for spec := range s.specs {
		from = append(from, spec)
	}
	sort.Slice(from, func(i, j int) bool {
		ri, rj := strings.HasPrefix(from[i], "."), strings.HasPrefix(from[j], ".")
		if ri != rj {
			return rj
		}
		return from[i] < from[j]
	})
	var b strings.Builder
	for _, spec := range from {
		names := make([]string, 0, len(s.specs[spec]))
		for n := range s.specs[spec] {
			names = append(names, n)
		}
		if len(names) == 0 {
			continue
		}
		sort.Slice(names, func(i, j int) bool {
			li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
			if li != lj {
				return li < lj
			}
			return names[i] < names[j]
		})
		b.WriteString("import { ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(` } from "`)
		b.WriteString(spec)
		b.WriteString("\";\n")
	}
	return b.String()
}
