package typesystem

import (
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
)

// Validate walks a built Schema and asserts every invariant in §3. Its
// failure mode is collecting: every violation found is returned, not just
// the first (§4.D). If schema.AssumeValid is set, validation is skipped
// entirely and Validate returns nil.
func Validate(schema *Schema) []*errors.QueryError {
	if schema.AssumeValid {
		return nil
	}
	var errs []*errors.QueryError
	errs = append(errs, validateReferenceIntegrity(schema)...)
	errs = append(errs, validateBuiltinPreservation(schema)...)
	errs = append(errs, validateRootTypes(schema)...)
	errs = append(errs, validateInterfaceImplementations(schema)...)
	errs = append(errs, validateEnumValues(schema)...)
	errs = append(errs, validateInputObjectAcyclicity(schema)...)
	errs = append(errs, validateOneOf(schema)...)
	errs = append(errs, validateDirectiveLegality(schema)...)
	return errs
}

// validateRootTypes reports the root-type overrides the builder recorded as
// resolving to a non-Object type instead of halting on (§3 "Root operation
// types, if present, are Objects").
func validateRootTypes(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError
	for _, op := range []string{"query", "mutation", "subscription"} {
		if t, ok := schema.invalidRoots[op]; ok {
			errs = append(errs, errRootNotObject(op, t.TypeName()))
		}
	}
	return errs
}

// validateBuiltinPreservation asserts the built-in scalars, introspection
// types, and directives sitting in schema are identity-equal to the
// package-level Meta singleton (§3 "built-in preservation"). A mismatch here
// would be an internal defect in the builder, not a user-authored one.
func validateBuiltinPreservation(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError
	check := func(name string, want NamedType) {
		got, ok := schema.TypeMap.Get(name)
		if !ok || got != want {
			errs = append(errs, errReferenceIntegrityViolation(name))
		}
	}
	for _, name := range Meta.Scalars.Keys() {
		check(name, Meta.Scalars.MustGet(name))
	}
	for _, name := range Meta.Introspection.Keys() {
		check(name, Meta.Introspection.MustGet(name))
	}
	for _, name := range Meta.Directives.Keys() {
		want := Meta.Directives.MustGet(name)
		got, ok := schema.Directives.Get(name)
		if !ok || got != want {
			errs = append(errs, errReferenceIntegrityViolation(name))
		}
	}
	return errs
}

// validateReferenceIntegrity asserts that every type reference reachable
// from the schema graph (field types, argument types, implemented
// interfaces, union members) is identity-equal to typeMap's entry for that
// name (§3 "reference integrity").
func validateReferenceIntegrity(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError

	checkNamed := func(name string, got NamedType) {
		found, ok := schema.TypeMap.Get(name)
		if !ok || found != got {
			errs = append(errs, errReferenceIntegrityViolation(name))
		}
	}
	checkType := func(t ast.Type) {
		leaf := ast.Unwrap(t)
		nt, ok := leaf.(NamedType)
		if !ok {
			return
		}
		checkNamed(nt.TypeName(), nt)
	}
	checkFields := func(fields *OrderedMap[*Field]) {
		for _, fname := range fields.Keys() {
			f := fields.MustGet(fname)
			checkType(f.Type)
			for _, aname := range f.Args.Keys() {
				checkType(f.Args.MustGet(aname).Type)
			}
		}
	}

	for _, name := range schema.TypeMap.Keys() {
		t, _ := schema.TypeMap.Get(name)
		switch x := t.(type) {
		case *Object:
			checkFields(x.Fields)
			for _, i := range x.Interfaces {
				checkNamed(i.Name, i)
			}
		case *Interface:
			checkFields(x.Fields)
			for _, i := range x.Interfaces {
				checkNamed(i.Name, i)
			}
		case *Union:
			for _, p := range x.PossibleTypes {
				checkNamed(p.Name, p)
			}
		case *InputObject:
			for _, fname := range x.Fields.Keys() {
				ft := x.Fields.MustGet(fname).Type
				checkType(ft)
				if !isInputType(ft) {
					errs = append(errs, errInvalidTypeExpression(fname, errors.Location{}))
				}
			}
		}
	}
	for _, name := range schema.Directives.Keys() {
		d := schema.Directives.MustGet(name)
		for _, aname := range d.Args.Keys() {
			checkType(d.Args.MustGet(aname).Type)
		}
	}
	return errs
}

// validateInterfaceImplementations checks, for every Object/Interface and
// each interface it declares implementing, that: every interface field is
// present with a covariant return type; every interface argument is present
// with an identical type; and any extra argument the implementor adds is
// either nullable or carries a default (§3 "interface-implementation
// covariance"). This is the check that produces scenarios 5 and 6's exact
// named errors.
func validateInterfaceImplementations(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError

	check := func(typeName string, fields *OrderedMap[*Field], ifaces []*Interface) {
		for _, iface := range ifaces {
			for _, fname := range iface.Fields.Keys() {
				ifield := iface.Fields.MustGet(fname)
				ofield, ok := fields.Get(fname)
				if !ok {
					errs = append(errs, errInterfaceMissingField(typeName, iface.Name, fname))
					continue
				}
				if !IsCovariantSubtype(schema, ofield.Type, ifield.Type) {
					errs = append(errs, errInterfaceFieldTypeMismatch(typeName, iface.Name, fname))
				}
				for _, argName := range ifield.Args.Keys() {
					iarg := ifield.Args.MustGet(argName)
					oarg, ok := ofield.Args.Get(argName)
					if !ok || !sameType(oarg.Type, iarg.Type) {
						errs = append(errs, errInterfaceArgMismatch(typeName, iface.Name, fname, argName))
					}
				}
				for _, argName := range ofield.Args.Keys() {
					if ifield.Args.Has(argName) {
						continue
					}
					oarg := ofield.Args.MustGet(argName)
					if ast.IsNonNull(oarg.Type) && oarg.Default == nil {
						errs = append(errs, errExtraRequiredArgument(typeName, fname, argName))
					}
				}
			}
		}
	}

	for _, name := range schema.TypeMap.Keys() {
		t, _ := schema.TypeMap.Get(name)
		switch x := t.(type) {
		case *Object:
			check(x.Name, x.Fields, x.Interfaces)
		case *Interface:
			check(x.Name, x.Fields, x.Interfaces)
		}
	}
	return errs
}

// sameType is structural, invariant type-expression equality: List/NonNull
// wrapping must match exactly and leaves must be the identical linked
// NamedType. Used for interface argument types, which the GraphQL spec (and
// this builder, per §3) requires to be invariant rather than covariant.
func sameType(a, b ast.Type) bool {
	switch x := a.(type) {
	case *ast.NonNull:
		y, ok := b.(*ast.NonNull)
		return ok && sameType(x.OfType, y.OfType)
	case *ast.List:
		y, ok := b.(*ast.List)
		return ok && sameType(x.OfType, y.OfType)
	default:
		return a == b
	}
}

var reservedEnumNames = map[string]bool{"true": true, "false": true, "null": true}

// validateEnumValues asserts no enum value is named true, false, or null
// (§3 "enum value uniqueness + reserved-name exclusion"; uniqueness itself
// is structural — OrderedMap can't hold two values under the same name).
func validateEnumValues(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError
	for _, name := range schema.TypeMap.Keys() {
		e, ok := mustEnum(schema, name)
		if !ok {
			continue
		}
		for _, vname := range e.Values.Keys() {
			if reservedEnumNames[vname] {
				errs = append(errs, errEnumReservedName(e.Name, vname))
			}
		}
	}
	return errs
}

func mustEnum(schema *Schema, name string) (*Enum, bool) {
	t, _ := schema.TypeMap.Get(name)
	e, ok := t.(*Enum)
	return e, ok
}

// inputObjectDependency reports whether t forces an InputObject to be
// present (as opposed to merely allowing one): a bare InputObject reference
// wrapped in NonNull with no List in between. A List breaks the cycle since
// an empty list always satisfies a NonNull(List(...)) field without
// requiring any element.
func inputObjectDependency(t ast.Type) (*InputObject, bool) {
	nn, ok := t.(*ast.NonNull)
	if !ok {
		return nil, false
	}
	if io, ok := nn.OfType.(*InputObject); ok {
		return io, true
	}
	return nil, false
}

// validateInputObjectAcyclicity detects cycles in the graph induced by
// inputObjectDependency edges (§3 "InputObject acyclicity specifically
// through NonNull-only chains"). Standard three-color DFS: a back edge to a
// node still on the stack is a cycle.
func validateInputObjectAcyclicity(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)

	var visit func(io *InputObject) bool
	visit = func(io *InputObject) bool {
		switch color[io.Name] {
		case gray:
			return true
		case black:
			return false
		}
		color[io.Name] = gray
		cyclic := false
		for _, fname := range io.Fields.Keys() {
			f := io.Fields.MustGet(fname)
			if dep, ok := inputObjectDependency(f.Type); ok {
				if visit(dep) {
					cyclic = true
				}
			}
		}
		color[io.Name] = black
		return cyclic
	}

	for _, name := range schema.TypeMap.Keys() {
		t, _ := schema.TypeMap.Get(name)
		io, ok := t.(*InputObject)
		if !ok {
			continue
		}
		if visit(io) {
			errs = append(errs, errInputObjectCycle(io.Name))
		}
	}
	return errs
}

// validateOneOf asserts every field of a @oneOf input object is nullable
// with no default value (§3 "@oneOf InputObject fields must all be
// nullable with no default").
func validateOneOf(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError
	for _, name := range schema.TypeMap.Keys() {
		t, _ := schema.TypeMap.Get(name)
		io, ok := t.(*InputObject)
		if !ok || !io.IsOneOf {
			continue
		}
		for _, fname := range io.Fields.Keys() {
			f := io.Fields.MustGet(fname)
			if ast.IsNonNull(f.Type) || f.Default != nil {
				errs = append(errs, errOneOfFieldNotNullable(io.Name, fname))
			}
		}
	}
	return errs
}

// validateDirectiveLegality walks every directive usage site recorded on
// the schema's own definitions and asserts the directive both exists and
// declares that location as legal (§3 "directive legality").
func validateDirectiveLegality(schema *Schema) []*errors.QueryError {
	var errs []*errors.QueryError

	use := func(directives ast.DirectiveList, loc DirectiveLocation) {
		for _, d := range directives {
			dd, ok := schema.Directives.Get(d.Name.Name)
			if !ok {
				errs = append(errs, errUnknownDirective(d.Name.Name, d.Name.Loc))
				continue
			}
			allowed := false
			for _, l := range dd.Locations {
				if l == loc {
					allowed = true
					break
				}
			}
			if !allowed {
				errs = append(errs, errDirectiveLocationNotAllowed(d.Name.Name, string(loc), d.Name.Loc))
			}
		}
	}
	useFields := func(fields *OrderedMap[*Field]) {
		for _, fname := range fields.Keys() {
			f := fields.MustGet(fname)
			if f.Node != nil {
				use(f.Node.Directives, LocFieldDefinition)
			}
			for _, aname := range f.Args.Keys() {
				a := f.Args.MustGet(aname)
				if a.Node != nil {
					use(a.Node.Directives, LocArgumentDefinition)
				}
			}
		}
	}

	for _, name := range schema.TypeMap.Keys() {
		if IsBuiltinType(name) {
			continue
		}
		t, _ := schema.TypeMap.Get(name)
		switch x := t.(type) {
		case *Scalar:
			if sd, ok := x.Node.(*ast.ScalarTypeDefinition); ok {
				use(sd.Directives, LocScalar)
			}
		case *Object:
			if od, ok := x.Node.(*ast.ObjectTypeDefinition); ok {
				use(od.Directives, LocObject)
			}
			useFields(x.Fields)
		case *Interface:
			if id, ok := x.Node.(*ast.InterfaceTypeDefinition); ok {
				use(id.Directives, LocInterface)
			}
			useFields(x.Fields)
		case *Union:
			if ud, ok := x.Node.(*ast.UnionTypeDefinition); ok {
				use(ud.Directives, LocUnion)
			}
		case *Enum:
			if ed, ok := x.Node.(*ast.EnumTypeDefinition); ok {
				use(ed.Directives, LocEnum)
			}
			for _, vname := range x.Values.Keys() {
				v := x.Values.MustGet(vname)
				if v.Node != nil {
					use(v.Node.Directives, LocEnumValue)
				}
			}
		case *InputObject:
			if iod, ok := x.Node.(*ast.InputObjectTypeDefinition); ok {
				use(iod.Directives, LocInputObject)
			}
			for _, fname := range x.Fields.Keys() {
				f := x.Fields.MustGet(fname)
				if f.Node != nil {
					use(f.Node.Directives, LocInputFieldDefinition)
				}
			}
		}
	}
	if schema.Node != nil {
		use(schema.Node.Directives, LocSchema)
	}
	return errs
}
