package field

import (
	"strings"
)

// Type is a canonical field type token as it appears in the entity
// descriptor (for example "string" or "number[]").
type Type string

// List of field types.
const (
	TypeInvalid       Type = ""
	TypeString        Type = "string"
	TypeNumber        Type = "number"
	TypeBoolean       Type = "boolean"
	TypeDate          Type = "date"
	TypeDateTime      Type = "datetime"
	TypeJSON          Type = "json"
	TypeStringArray   Type = "string[]"
	TypeNumberArray   Type = "number[]"
	TypeBooleanArray  Type = "boolean[]"
	TypeDateArray     Type = "date[]"
	TypeDateTimeArray Type = "datetime[]"
	TypeJSONArray     Type = "json[]"
)

var types = []Type{
	TypeString,
	TypeNumber,
	TypeBoolean,
	TypeDate,
	TypeDateTime,
	TypeJSON,
	TypeStringArray,
	TypeNumberArray,
	TypeBooleanArray,
	TypeDateArray,
	TypeDateTimeArray,
	TypeJSONArray,
}

// Types returns all valid field types, scalars first.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// TypeNames returns the valid type tokens as strings, for error messages.
func TypeNames() []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// Normalize lower-cases and trims the given token and reports whether it is
// a recognized field type. Unknown tokens return TypeInvalid and false.
func Normalize(input string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(input)))
	if t.Valid() {
		return t, true
	}
	return TypeInvalid, false
}

// Valid reports if the type is one of the known field types.
func (t Type) Valid() bool {
	for _, v := range types {
		if t == v {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// IsArray reports if the type is the array form of a scalar type.
func (t Type) IsArray() bool { return strings.HasSuffix(string(t), "[]") }

// Base returns the scalar type of an array type, or the type itself.
func (t Type) Base() Type { return Type(strings.TrimSuffix(string(t), "[]")) }

// IsBoolean reports if the base type is boolean.
func (t Type) IsBoolean() bool { return t.Base() == TypeBoolean }

// IsJSON reports if the base type is json.
func (t Type) IsJSON() bool { return t.Base() == TypeJSON }

// TSType returns the TypeScript type used for the field in entities and DTOs.
// Dates travel as ISO strings on the wire but are typed as Date on entities,
// see EntityTSType.
func (t Type) TSType() string {
	var base string
	switch t.Base() {
	case TypeString, TypeDate, TypeDateTime:
		base = "string"
	case TypeNumber:
		base = "number"
	case TypeBoolean:
		base = "boolean"
	case TypeJSON:
		base = "any"
	default:
		return "unknown"
	}
	if t.IsArray() {
		return base + "[]"
	}
	return base
}

// EntityTSType returns the TypeScript type used on the entity type.
func (t Type) EntityTSType() string {
	switch t.Base() {
	case TypeDate, TypeDateTime:
		if t.IsArray() {
			return "Date[]"
		}
		return "Date"
	}
	return t.TSType()
}
