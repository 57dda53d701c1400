package field

import (
	"sort"
)

// Decorator is a single class-validator decorator applied to a DTO property.
type Decorator struct {
	// Name of the decorator as exported by class-validator.
	Name string
	// Each marks an element-wise check on an array property.
	Each bool
}

// Decorator names used by the generated DTOs.
const (
	IsDefined      = "IsDefined"
	IsNotEmpty     = "IsNotEmpty"
	IsOptional     = "IsOptional"
	IsString       = "IsString"
	IsNumber       = "IsNumber"
	IsBoolean      = "IsBoolean"
	IsDateString   = "IsDateString"
	IsObject       = "IsObject"
	IsArray        = "IsArray"
	IsUUID         = "IsUUID"
	Equals         = "Equals"
	ValidateNested = "ValidateNested"
)

// baseline decorators are imported by every DTO file regardless of its fields.
var baseline = []string{Equals, IsUUID, ValidateNested, IsNotEmpty, IsDefined, IsOptional}

// decorators whose first argument is a decorator-specific options object,
// so the validation options go second.
var optionsFirst = map[string]bool{
	IsNumber:     true,
	IsDateString: true,
}

// String renders the decorator as TypeScript source.
func (d Decorator) String() string {
	if !d.Each {
		return "@" + d.Name + "()"
	}
	if optionsFirst[d.Name] {
		return "@" + d.Name + "({}, { each: true })"
	}
	return "@" + d.Name + "({ each: true })"
}

// check returns the type-specific decorator name for a scalar type.
func check(t Type) string {
	switch t.Base() {
	case TypeString:
		return IsString
	case TypeNumber:
		return IsNumber
	case TypeBoolean:
		return IsBoolean
	case TypeDate, TypeDateTime:
		return IsDateString
	case TypeJSON:
		return IsObject
	}
	return ""
}

// typeChecks returns the type-specific part of the decorator list.
// Arrays get IsArray and an element-wise check; json arrays have no
// element check.
func typeChecks(t Type) []Decorator {
	if !t.IsArray() {
		return []Decorator{{Name: check(t)}}
	}
	ds := []Decorator{{Name: IsArray}}
	if !t.IsJSON() {
		ds = append(ds, Decorator{Name: check(t), Each: true})
	}
	return ds
}

// Decorators returns the ordered decorator list for a property of the given
// type. Required properties start with IsDefined, followed by IsNotEmpty for
// non-array, non-boolean types. Optional properties start with IsOptional.
// Invalid types yield nil.
func Decorators(t Type, required bool) []Decorator {
	if !t.Valid() {
		return nil
	}
	var ds []Decorator
	if required {
		ds = append(ds, Decorator{Name: IsDefined})
		if !t.IsArray() && !t.IsBoolean() {
			ds = append(ds, Decorator{Name: IsNotEmpty})
		}
	} else {
		ds = append(ds, Decorator{Name: IsOptional})
	}
	return append(ds, typeChecks(t)...)
}

// ValidationImports returns the sorted, de-duplicated decorator names needed
// by a DTO file declaring properties of the given types.
func ValidationImports(ts []Type) []string {
	seen := make(map[string]struct{}, len(baseline)+len(ts))
	for _, name := range baseline {
		seen[name] = struct{}{}
	}
	for _, t := range ts {
		if !t.Valid() {
			continue
		}
		for _, d := range typeChecks(t) {
			seen[d.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
