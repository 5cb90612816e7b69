package typesystem

import (
	"fmt"

	"github.com/fenwickgql/graphqlcore/errors"
)

// Builder errors are structural (§7): each pinpoints an AST location where
// available and halts the build — later steps dereference the reference
// the earlier step would have established, so there is no useful partial
// result to return alongside the first error.

func errUnknownType(name string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("Unknown type %q.", name),
		Locations: []errors.Location{loc},
		Rule:      "UnknownType",
	}
}

func errExtendingUnknownType(kind, name string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("Cannot extend unknown %s %q.", kind, name),
		Locations: []errors.Location{loc},
		Rule:      "ExtendingUnknownType",
	}
}

func errSchemaDefinitionConflict(locs []errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   "Must provide only one schema definition.",
		Locations: locs,
		Rule:      "SchemaDefinitionConflict",
	}
}

func errInvalidTypeExpression(name string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("The type of %q is not a valid input type.", name),
		Locations: []errors.Location{loc},
		Rule:      "InvalidTypeExpression",
	}
}

func errNonInputDefault(name string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("A default value was supplied for %q, whose type is not an input type.", name),
		Locations: []errors.Location{loc},
		Rule:      "NonInputDefault",
	}
}

func errUnknownDirective(name string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("Unknown directive %q.", name),
		Locations: []errors.Location{loc},
		Rule:      "UnknownDirective",
	}
}

// Validator errors (§4.D) are collecting, not halting: Validate gathers
// every violation it finds and returns them together.

func errRootNotObject(op, typeName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("%s root type %q must be an Object type.", op, typeName),
		Rule:    "RootNotObject",
	}
}

func errInterfaceMissingField(objName, ifaceName, fieldName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Type %q does not define field %q required by interface %q.", objName, fieldName, ifaceName),
		Rule:    "InterfaceMissingField",
	}
}

func errInterfaceFieldTypeMismatch(objName, ifaceName, fieldName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("%s.%s type is not a valid subtype of %s.%s.", objName, fieldName, ifaceName, fieldName),
		Rule:    "InterfaceFieldTypeMismatch",
	}
}

func errInterfaceArgMismatch(objName, ifaceName, fieldName, argName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Argument %q of %s.%s must be the same type as %s.%s.", argName, objName, fieldName, ifaceName, fieldName),
		Rule:    "InterfaceArgMismatch",
	}
}

func errExtraRequiredArgument(objName, fieldName, argName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Argument %q of %s.%s must not be required (it is not present on the implemented interface's field).", argName, objName, fieldName),
		Rule:    "ExtraRequiredArgument",
	}
}

func errEnumReservedName(enumName, valueName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Enum %q cannot include value %q.", enumName, valueName),
		Rule:    "EnumReservedName",
	}
}

func errInputObjectCycle(name string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Input object %q references itself through a chain of non-null fields, which can never be satisfied.", name),
		Rule:    "InputObjectCycle",
	}
}

func errOneOfFieldNotNullable(objName, fieldName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("OneOf input object %q field %q must be nullable and have no default value.", objName, fieldName),
		Rule:    "OneOfFieldNotNullable",
	}
}

func errReferenceIntegrityViolation(typeName string) *errors.QueryError {
	return &errors.QueryError{
		Message: fmt.Sprintf("Internal error: type %q in the schema graph is not identity-equal to typeMap[%q].", typeName, typeName),
		Rule:    "ReferenceIntegrityViolation",
	}
}

func errDirectiveLocationNotAllowed(name, loc string, at errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("Directive %q is not allowed at %s location.", name, loc),
		Locations: []errors.Location{at},
		Rule:      "DirectiveLocationNotAllowed",
	}
}
