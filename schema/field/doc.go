// Package field describes the scalar field types a module schema may declare and
// the class-validator decorators generated for them.
//
// Type tokens are case-insensitive and whitespace-tolerant on input, and are
// always stored in their canonical lower-case form:
//
//	field.Normalize(" String ")   // field.TypeString, true
//	field.Normalize("NUMBER[]")   // field.TypeNumberArray, true
//	field.Normalize("uuid")       // field.TypeInvalid, false
//
// # Decorators
//
// Decorators returns the ordered decorator list for a field, taking its
// requiredness into account:
//
//	field.Decorators(field.TypeString, true)
//	// @IsDefined() @IsNotEmpty() @IsString()
//
//	field.Decorators(field.TypeNumberArray, false)
//	// @IsOptional() @IsArray() @IsNumber({}, { each: true })
//
// ValidationImports computes the import list for a DTO file: the baseline
// decorators every DTO needs plus the type checks of its fields, sorted.
package field
