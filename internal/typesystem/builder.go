package typesystem

import (
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
)

// Build turns a document into a fresh Schema (§4.C, "existing is empty").
func Build(doc *ast.Document) (*Schema, *errors.QueryError) {
	return link(nil, doc)
}

// Extend produces a new Schema from existing plus doc's additional
// definitions and extend clauses, without mutating existing (§3
// "extension purity").
func Extend(existing *Schema, doc *ast.Document) (*Schema, *errors.QueryError) {
	return link(existing, doc)
}

// partition is the result of step 1: the document's definitions bucketed
// by kind.
type partition struct {
	typeDefs       []ast.Definition
	extensionsFor  map[string][]ast.Extension
	extensionOrder []string
	directiveDefs  []*ast.DirectiveDefinition
	schemaDefs     []*ast.SchemaDefinition
	schemaExts     []*ast.SchemaExtension
}

func (p *partition) empty() bool {
	return len(p.typeDefs) == 0 && len(p.extensionsFor) == 0 &&
		len(p.directiveDefs) == 0 && len(p.schemaDefs) == 0 && len(p.schemaExts) == 0
}

func partitionDocument(doc *ast.Document) *partition {
	p := &partition{extensionsFor: make(map[string][]ast.Extension)}
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.ScalarTypeDefinition, *ast.ObjectTypeDefinition, *ast.InterfaceTypeDefinition,
			*ast.UnionTypeDefinition, *ast.EnumTypeDefinition, *ast.InputObjectTypeDefinition:
			p.typeDefs = append(p.typeDefs, d)
		case *ast.DirectiveDefinition:
			p.directiveDefs = append(p.directiveDefs, d)
		case *ast.SchemaDefinition:
			p.schemaDefs = append(p.schemaDefs, d)
		case *ast.SchemaExtension:
			p.schemaExts = append(p.schemaExts, d)
		case ast.Extension:
			name := d.ExtendedType()
			if _, ok := p.extensionsFor[name]; !ok {
				p.extensionOrder = append(p.extensionOrder, name)
			}
			p.extensionsFor[name] = append(p.extensionsFor[name], d)
		// *ast.OperationDefinition, *ast.FragmentDefinition: ignored by C (§4.C step 1).
		default:
		}
	}
	return p
}

func definitionName(def ast.Definition) string {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		return d.Name.Name
	case *ast.ObjectTypeDefinition:
		return d.Name.Name
	case *ast.InterfaceTypeDefinition:
		return d.Name.Name
	case *ast.UnionTypeDefinition:
		return d.Name.Name
	case *ast.EnumTypeDefinition:
		return d.Name.Name
	case *ast.InputObjectTypeDefinition:
		return d.Name.Name
	}
	return ""
}

func link(existing *Schema, doc *ast.Document) (*Schema, *errors.QueryError) {
	p := partitionDocument(doc)

	if existing != nil && p.empty() {
		return existing, nil // identity short-circuit (§4.C step 1)
	}

	if len(p.schemaDefs) > 1 {
		var locs []errors.Location
		for _, sd := range p.schemaDefs {
			locs = append(locs, sd.Loc)
		}
		return nil, errSchemaDefinitionConflict(locs)
	}

	newTypeMap := NewOrderedMap[NamedType]()
	for _, name := range Meta.Scalars.Keys() {
		newTypeMap.Set(name, Meta.Scalars.MustGet(name))
	}
	for _, name := range Meta.Introspection.Keys() {
		newTypeMap.Set(name, Meta.Introspection.MustGet(name))
	}

	if existing != nil {
		for _, name := range existing.TypeMap.Keys() {
			if IsBuiltinType(name) {
				continue
			}
			old, _ := existing.TypeMap.Get(name)
			newTypeMap.Set(name, shallowCopyNamedType(old))
		}
	}

	for _, def := range p.typeDefs {
		name := definitionName(def)
		if IsBuiltinType(name) {
			continue // step 2: a built-in of that name wins, silently
		}
		newTypeMap.Set(name, constructFreshNamedType(def))
	}

	for _, name := range p.extensionOrder {
		if name == "schema" {
			continue
		}
		if _, ok := newTypeMap.Get(name); !ok {
			loc := p.extensionsFor[name][0].Location()
			return nil, errExtendingUnknownType("type", name, loc)
		}
	}

	resolve := func(name string) (NamedType, bool) { return newTypeMap.Get(name) }

	for _, name := range newTypeMap.Keys() {
		if IsBuiltinType(name) {
			continue
		}
		t, _ := newTypeMap.Get(name)
		var old NamedType
		if existing != nil {
			old, _ = existing.TypeMap.Get(name)
		}
		if err := populateNamedType(t, old, resolve); err != nil {
			return nil, err
		}
		if err := applyExtensions(t, p.extensionsFor[name], resolve); err != nil {
			return nil, err
		}
	}

	// Second pass: resolve Object.Interfaces / Interface.Interfaces now
	// that every type in newTypeMap has its extension-contributed
	// interface names recorded.
	if err := linkInterfaceLists(newTypeMap, resolve); err != nil {
		return nil, err
	}
	if err := linkUnionMembers(newTypeMap, resolve); err != nil {
		return nil, err
	}

	newDirectives := NewOrderedMap[*Directive]()
	for _, name := range Meta.Directives.Keys() {
		newDirectives.Set(name, Meta.Directives.MustGet(name))
	}
	if existing != nil {
		for _, name := range existing.Directives.Keys() {
			if IsBuiltinDirective(name) {
				continue
			}
			old := existing.Directives.MustGet(name)
			relinked, err := relinkDirective(old, resolve)
			if err != nil {
				return nil, err
			}
			newDirectives.Set(name, relinked)
		}
	}
	for _, dd := range p.directiveDefs {
		if IsBuiltinDirective(dd.Name.Name) {
			continue
		}
		d, err := buildDirective(dd, resolve)
		if err != nil {
			return nil, err
		}
		newDirectives.Set(dd.Name.Name, d)
	}

	schema := &Schema{
		TypeMap:    newTypeMap,
		Directives: newDirectives,
	}
	if existing != nil {
		schema.Query = relinkRoot(existing.Query, resolve)
		schema.Mutation = relinkRoot(existing.Mutation, resolve)
		schema.Subscription = relinkRoot(existing.Subscription, resolve)
		schema.Desc = existing.Desc
		schema.AssumeValid = existing.AssumeValid
		schema.Node = existing.Node
		schema.ExtNodes = append(schema.ExtNodes, existing.ExtNodes...)
	}

	if len(p.schemaDefs) == 1 {
		sd := p.schemaDefs[0]
		schema.Node = sd
		schema.Desc = sd.Desc
		for _, opType := range sd.OperationTypes {
			if err := assignRoot(schema, opType.Operation, opType.Type, resolve); err != nil {
				return nil, err
			}
		}
	}
	for _, se := range p.schemaExts {
		schema.ExtNodes = append(schema.ExtNodes, se)
		for _, opType := range se.OperationTypes {
			if err := assignRoot(schema, opType.Operation, opType.Type, resolve); err != nil {
				return nil, err
			}
		}
	}

	// §9 Open Question: default roots are assigned per operation kind
	// whenever nothing above supplied that kind's root, regardless of
	// whether a schema block was present at all.
	fallbackRoot(schema, "query", &schema.Query, resolve)
	fallbackRoot(schema, "mutation", &schema.Mutation, resolve)
	fallbackRoot(schema, "subscription", &schema.Subscription, resolve)

	schema.possibleTypes = buildPossibleTypes(newTypeMap)

	return schema, nil
}

func shallowCopyNamedType(t NamedType) NamedType {
	switch x := t.(type) {
	case *Scalar:
		return &Scalar{Name: x.Name, Desc: x.Desc, SpecifiedByURL: x.SpecifiedByURL,
			Serialize: x.Serialize, ParseValue: x.ParseValue, ParseLiteral: x.ParseLiteral,
			Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	case *Object:
		return &Object{Name: x.Name, Desc: x.Desc, Fields: NewOrderedMap[*Field](),
			IsTypeOf: x.IsTypeOf, Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	case *Interface:
		return &Interface{Name: x.Name, Desc: x.Desc, Fields: NewOrderedMap[*Field](),
			ResolveType: x.ResolveType, Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	case *Union:
		return &Union{Name: x.Name, Desc: x.Desc, ResolveType: x.ResolveType,
			Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	case *Enum:
		return &Enum{Name: x.Name, Desc: x.Desc, Values: NewOrderedMap[*EnumValueDef](),
			Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	case *InputObject:
		return &InputObject{Name: x.Name, Desc: x.Desc, Fields: NewOrderedMap[*InputField](),
			IsOneOf: x.IsOneOf, Node: x.Node, ExtNodes: append([]ast.Extension(nil), x.ExtNodes...)}
	}
	panic("typesystem: unknown NamedType concrete type")
}

func constructFreshNamedType(def ast.Definition) NamedType {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		return &Scalar{Name: d.Name.Name, Desc: d.Desc, Node: d}
	case *ast.ObjectTypeDefinition:
		return &Object{Name: d.Name.Name, Desc: d.Desc, Fields: NewOrderedMap[*Field](), Node: d}
	case *ast.InterfaceTypeDefinition:
		return &Interface{Name: d.Name.Name, Desc: d.Desc, Fields: NewOrderedMap[*Field](), Node: d}
	case *ast.UnionTypeDefinition:
		return &Union{Name: d.Name.Name, Desc: d.Desc, Node: d}
	case *ast.EnumTypeDefinition:
		return &Enum{Name: d.Name.Name, Desc: d.Desc, Values: NewOrderedMap[*EnumValueDef](), Node: d}
	case *ast.InputObjectTypeDefinition:
		return &InputObject{Name: d.Name.Name, Desc: d.Desc, Fields: NewOrderedMap[*InputField](), Node: d}
	}
	panic("typesystem: unknown type definition kind")
}
