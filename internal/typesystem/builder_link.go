package typesystem

import (
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
)

type resolveFunc func(name string) (NamedType, bool)

// relinkType walks a (possibly wrapped) type expression and replaces its
// leaf with the NamedType resolve finds for that name — whether the leaf
// started as an unresolved *ast.TypeName (linking a fresh definition) or
// as an already-linked NamedType from a previous build (relinking an
// existing schema's type graph into the new type map, §4.C step 4).
func relinkType(t ast.Type, resolve resolveFunc) (ast.Type, *errors.QueryError) {
	switch x := t.(type) {
	case *ast.NonNull:
		inner, err := relinkType(x.OfType, resolve)
		if err != nil {
			return nil, err
		}
		return &ast.NonNull{OfType: inner}, nil
	case *ast.List:
		inner, err := relinkType(x.OfType, resolve)
		if err != nil {
			return nil, err
		}
		return &ast.List{OfType: inner}, nil
	case *ast.TypeName:
		nt, ok := resolve(x.Name.Name)
		if !ok {
			return nil, errUnknownType(x.Name.Name, x.Name.Loc)
		}
		return nt, nil
	case NamedType:
		nt, ok := resolve(x.TypeName())
		if !ok {
			return nil, errUnknownType(x.TypeName(), errors.Location{})
		}
		return nt, nil
	default:
		return nil, errInvalidTypeExpression(t.String(), errors.Location{})
	}
}

func isInputType(t ast.Type) bool {
	switch ast.Unwrap(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

func identNames(idents []ast.Ident) []string {
	names := make([]string, len(idents))
	for i, id := range idents {
		names[i] = id.Name
	}
	return names
}

func interfaceNamesOf(ifaces []*Interface) []string {
	names := make([]string, len(ifaces))
	for i, ifc := range ifaces {
		names[i] = ifc.Name
	}
	return names
}

func objectNamesOf(objs []*Object) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = o.Name
	}
	return names
}

func deprecationReason(directives ast.DirectiveList) string {
	d := directives.Get("deprecated")
	if d == nil {
		return ""
	}
	if v, ok := d.Arguments.Get("reason"); ok {
		if s, ok := v.(*ast.StringValue); ok {
			return s.Val
		}
	}
	return "No longer supported"
}

func specifiedByURL(directives ast.DirectiveList) (string, bool) {
	d := directives.Get("specifiedBy")
	if d == nil {
		return "", false
	}
	if v, ok := d.Arguments.Get("url"); ok {
		if s, ok := v.(*ast.StringValue); ok {
			return s.Val, true
		}
	}
	return "", false
}

func populateArgsFromAST(args ast.InputValueDefinitionList, resolve resolveFunc) (*OrderedMap[*Argument], *errors.QueryError) {
	out := NewOrderedMap[*Argument]()
	for _, a := range args {
		typ, err := relinkType(a.Type, resolve)
		if err != nil {
			return nil, err
		}
		if a.Default != nil && !isInputType(typ) {
			return nil, errNonInputDefault(a.Name.Name, a.Loc)
		}
		out.Set(a.Name.Name, &Argument{
			Name: a.Name.Name, Desc: a.Desc, Type: typ, Default: a.Default,
			DeprecationReason: deprecationReason(a.Directives), Node: a,
		})
	}
	return out, nil
}

func populateArgsFromOld(old *OrderedMap[*Argument], resolve resolveFunc) (*OrderedMap[*Argument], *errors.QueryError) {
	out := NewOrderedMap[*Argument]()
	for _, name := range old.Keys() {
		a := old.MustGet(name)
		typ, err := relinkType(a.Type, resolve)
		if err != nil {
			return nil, err
		}
		out.Set(name, &Argument{Name: a.Name, Desc: a.Desc, Type: typ, Default: a.Default,
			DeprecationReason: a.DeprecationReason, Node: a.Node})
	}
	return out, nil
}

func populateInputFieldsFromAST(fields ast.InputValueDefinitionList, resolve resolveFunc) (*OrderedMap[*InputField], *errors.QueryError) {
	out := NewOrderedMap[*InputField]()
	for _, f := range fields {
		typ, err := relinkType(f.Type, resolve)
		if err != nil {
			return nil, err
		}
		if f.Default != nil && !isInputType(typ) {
			return nil, errNonInputDefault(f.Name.Name, f.Loc)
		}
		out.Set(f.Name.Name, &InputField{
			Name: f.Name.Name, Desc: f.Desc, Type: typ, Default: f.Default,
			DeprecationReason: deprecationReason(f.Directives), Node: f,
		})
	}
	return out, nil
}

func populateInputFieldsFromOld(old *OrderedMap[*InputField], resolve resolveFunc) (*OrderedMap[*InputField], *errors.QueryError) {
	out := NewOrderedMap[*InputField]()
	for _, name := range old.Keys() {
		f := old.MustGet(name)
		typ, err := relinkType(f.Type, resolve)
		if err != nil {
			return nil, err
		}
		out.Set(name, &InputField{Name: f.Name, Desc: f.Desc, Type: typ, Default: f.Default,
			DeprecationReason: f.DeprecationReason, Node: f.Node})
	}
	return out, nil
}

func populateFieldsFromAST(fields ast.FieldDefinitionList, resolve resolveFunc) (*OrderedMap[*Field], *errors.QueryError) {
	out := NewOrderedMap[*Field]()
	for _, f := range fields {
		typ, err := relinkType(f.Type, resolve)
		if err != nil {
			return nil, err
		}
		args, err := populateArgsFromAST(f.Arguments, resolve)
		if err != nil {
			return nil, err
		}
		out.Set(f.Name.Name, &Field{
			Name: f.Name.Name, Desc: f.Desc, Type: typ, Args: args,
			DeprecationReason: deprecationReason(f.Directives), Node: f,
		})
	}
	return out, nil
}

func populateFieldsFromOld(old *OrderedMap[*Field], resolve resolveFunc) (*OrderedMap[*Field], *errors.QueryError) {
	out := NewOrderedMap[*Field]()
	for _, name := range old.Keys() {
		f := old.MustGet(name)
		typ, err := relinkType(f.Type, resolve)
		if err != nil {
			return nil, err
		}
		args, err := populateArgsFromOld(f.Args, resolve)
		if err != nil {
			return nil, err
		}
		out.Set(name, &Field{Name: f.Name, Desc: f.Desc, Type: typ, Args: args,
			DeprecationReason: f.DeprecationReason, Resolve: f.Resolve, Subscribe: f.Subscribe, Node: f.Node})
	}
	return out, nil
}

func isRewrite(t, old NamedType) bool {
	return old != nil && old.ASTNode() != nil && t.ASTNode() == old.ASTNode()
}

// populateNamedType fills in t's field/argument/member references (left
// empty by shallowCopyNamedType / constructFreshNamedType), choosing
// whether to source them from old (a rewritten existing type, §4.C step 4)
// or from t's own AST node (a fresh definition, step 2).
func populateNamedType(t NamedType, old NamedType, resolve resolveFunc) *errors.QueryError {
	rewrite := isRewrite(t, old)

	switch x := t.(type) {
	case *Scalar:
		if rewrite {
			x.SpecifiedByURL = old.(*Scalar).SpecifiedByURL
		}
		return nil

	case *Object:
		if rewrite {
			o := old.(*Object)
			fields, err := populateFieldsFromOld(o.Fields, resolve)
			if err != nil {
				return err
			}
			x.Fields = fields
			x.pendingInterfaces = interfaceNamesOf(o.Interfaces)
			return nil
		}
		d := x.Node.(*ast.ObjectTypeDefinition)
		fields, err := populateFieldsFromAST(d.Fields, resolve)
		if err != nil {
			return err
		}
		x.Fields = fields
		x.pendingInterfaces = identNames(d.Interfaces)
		return nil

	case *Interface:
		if rewrite {
			o := old.(*Interface)
			fields, err := populateFieldsFromOld(o.Fields, resolve)
			if err != nil {
				return err
			}
			x.Fields = fields
			x.pendingInterfaces = interfaceNamesOf(o.Interfaces)
			return nil
		}
		d := x.Node.(*ast.InterfaceTypeDefinition)
		fields, err := populateFieldsFromAST(d.Fields, resolve)
		if err != nil {
			return err
		}
		x.Fields = fields
		x.pendingInterfaces = identNames(d.Interfaces)
		return nil

	case *Union:
		if rewrite {
			x.pendingMembers = objectNamesOf(old.(*Union).PossibleTypes)
			return nil
		}
		d := x.Node.(*ast.UnionTypeDefinition)
		x.pendingMembers = identNames(d.Members)
		return nil

	case *Enum:
		if rewrite {
			x.Values = old.(*Enum).Values.Clone()
			return nil
		}
		d := x.Node.(*ast.EnumTypeDefinition)
		values := NewOrderedMap[*EnumValueDef]()
		for _, v := range d.Values {
			values.Set(v.Name.Name, &EnumValueDef{
				Name: v.Name.Name, Desc: v.Desc, Node: v,
				DeprecationReason: deprecationReason(v.Directives),
			})
		}
		x.Values = values
		return nil

	case *InputObject:
		if rewrite {
			fields, err := populateInputFieldsFromOld(old.(*InputObject).Fields, resolve)
			if err != nil {
				return err
			}
			x.Fields = fields
			return nil
		}
		d := x.Node.(*ast.InputObjectTypeDefinition)
		fields, err := populateInputFieldsFromAST(d.Fields, resolve)
		if err != nil {
			return err
		}
		x.Fields = fields
		x.IsOneOf = d.Directives.Get("oneOf") != nil
		return nil
	}
	return nil
}

// applyExtensions appends the contributions of exts, in document order, to
// t (§4.C step 4 / "Ordering rules": definitions first, then extensions in
// document order; a duplicate name later wins via OrderedMap.Set).
func applyExtensions(t NamedType, exts []ast.Extension, resolve resolveFunc) *errors.QueryError {
	for _, ext := range exts {
		switch e := ext.(type) {
		case *ast.ScalarTypeExtension:
			x, ok := t.(*Scalar)
			if !ok {
				continue
			}
			if url, ok := specifiedByURL(e.Directives); ok {
				x.SpecifiedByURL = url
			}
			x.ExtNodes = append(x.ExtNodes, ext)

		case *ast.ObjectTypeExtension:
			x, ok := t.(*Object)
			if !ok {
				continue
			}
			fields, err := populateFieldsFromAST(e.Fields, resolve)
			if err != nil {
				return err
			}
			for _, name := range fields.Keys() {
				x.Fields.Set(name, fields.MustGet(name))
			}
			x.pendingInterfaces = append(x.pendingInterfaces, identNames(e.Interfaces)...)
			x.ExtNodes = append(x.ExtNodes, ext)

		case *ast.InterfaceTypeExtension:
			x, ok := t.(*Interface)
			if !ok {
				continue
			}
			fields, err := populateFieldsFromAST(e.Fields, resolve)
			if err != nil {
				return err
			}
			for _, name := range fields.Keys() {
				x.Fields.Set(name, fields.MustGet(name))
			}
			x.pendingInterfaces = append(x.pendingInterfaces, identNames(e.Interfaces)...)
			x.ExtNodes = append(x.ExtNodes, ext)

		case *ast.UnionTypeExtension:
			x, ok := t.(*Union)
			if !ok {
				continue
			}
			x.pendingMembers = append(x.pendingMembers, identNames(e.Members)...)
			x.ExtNodes = append(x.ExtNodes, ext)

		case *ast.EnumTypeExtension:
			x, ok := t.(*Enum)
			if !ok {
				continue
			}
			for _, v := range e.Values {
				x.Values.Set(v.Name.Name, &EnumValueDef{
					Name: v.Name.Name, Desc: v.Desc, Node: v,
					DeprecationReason: deprecationReason(v.Directives),
				})
			}
			x.ExtNodes = append(x.ExtNodes, ext)

		case *ast.InputObjectTypeExtension:
			x, ok := t.(*InputObject)
			if !ok {
				continue
			}
			fields, err := populateInputFieldsFromAST(e.Fields, resolve)
			if err != nil {
				return err
			}
			for _, name := range fields.Keys() {
				x.Fields.Set(name, fields.MustGet(name))
			}
			x.ExtNodes = append(x.ExtNodes, ext)
		}
	}
	return nil
}

// linkInterfaceLists resolves every Object/Interface's pendingInterfaces
// (definition order then extensions, deduplicated keeping the first
// occurrence — §4.C "Ordering rules").
func linkInterfaceLists(typeMap *OrderedMap[NamedType], resolve resolveFunc) *errors.QueryError {
	for _, name := range typeMap.Keys() {
		if IsBuiltinType(name) {
			continue
		}
		t, _ := typeMap.Get(name)
		switch x := t.(type) {
		case *Object:
			ifaces, err := resolveInterfaceNames(x.pendingInterfaces, resolve)
			if err != nil {
				return err
			}
			x.Interfaces = ifaces
		case *Interface:
			ifaces, err := resolveInterfaceNames(x.pendingInterfaces, resolve)
			if err != nil {
				return err
			}
			x.Interfaces = ifaces
		}
	}
	return nil
}

func resolveInterfaceNames(names []string, resolve resolveFunc) ([]*Interface, *errors.QueryError) {
	var out []*Interface
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		t, ok := resolve(name)
		if !ok {
			return nil, errUnknownType(name, errors.Location{})
		}
		ifc, ok := t.(*Interface)
		if !ok {
			return nil, errInvalidTypeExpression(name, errors.Location{})
		}
		out = append(out, ifc)
	}
	return out, nil
}

func linkUnionMembers(typeMap *OrderedMap[NamedType], resolve resolveFunc) *errors.QueryError {
	for _, name := range typeMap.Keys() {
		if IsBuiltinType(name) {
			continue
		}
		t, _ := typeMap.Get(name)
		u, ok := t.(*Union)
		if !ok {
			continue
		}
		var members []*Object
		seen := make(map[string]bool)
		for _, n := range u.pendingMembers {
			if seen[n] {
				continue
			}
			seen[n] = true
			mt, ok := resolve(n)
			if !ok {
				return errUnknownType(n, errors.Location{})
			}
			obj, ok := mt.(*Object)
			if !ok {
				return errInvalidTypeExpression(n, errors.Location{})
			}
			members = append(members, obj)
		}
		u.PossibleTypes = members
	}
	return nil
}

func buildPossibleTypes(typeMap *OrderedMap[NamedType]) map[string][]*Object {
	result := make(map[string][]*Object)
	for _, name := range typeMap.Keys() {
		t, _ := typeMap.Get(name)
		if obj, ok := t.(*Object); ok {
			for _, ifc := range obj.Interfaces {
				result[ifc.Name] = appendUniqueObject(result[ifc.Name], obj)
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, name := range typeMap.Keys() {
			t, _ := typeMap.Get(name)
			ifc, ok := t.(*Interface)
			if !ok {
				continue
			}
			for _, parent := range ifc.Interfaces {
				for _, obj := range result[ifc.Name] {
					before := len(result[parent.Name])
					result[parent.Name] = appendUniqueObject(result[parent.Name], obj)
					if len(result[parent.Name]) != before {
						changed = true
					}
				}
			}
		}
	}
	return result
}

func appendUniqueObject(objs []*Object, obj *Object) []*Object {
	for _, o := range objs {
		if o == obj {
			return objs
		}
	}
	return append(objs, obj)
}

func relinkDirective(old *Directive, resolve resolveFunc) (*Directive, *errors.QueryError) {
	args, err := populateArgsFromOld(old.Args, resolve)
	if err != nil {
		return nil, err
	}
	return &Directive{Name: old.Name, Desc: old.Desc, Locations: old.Locations,
		Args: args, Repeatable: old.Repeatable, Node: old.Node}, nil
}

func buildDirective(dd *ast.DirectiveDefinition, resolve resolveFunc) (*Directive, *errors.QueryError) {
	args, err := populateArgsFromAST(dd.Arguments, resolve)
	if err != nil {
		return nil, err
	}
	locs := make([]DirectiveLocation, len(dd.Locations))
	for i, l := range dd.Locations {
		locs[i] = DirectiveLocation(l)
	}
	return &Directive{Name: dd.Name.Name, Desc: dd.Desc, Locations: locs,
		Args: args, Repeatable: dd.Repeatable, Node: dd}, nil
}

func relinkRoot(old *Object, resolve resolveFunc) *Object {
	if old == nil {
		return nil
	}
	t, ok := resolve(old.Name)
	if !ok {
		return nil
	}
	obj, _ := t.(*Object)
	return obj
}

func assignRoot(schema *Schema, op string, typeIdent ast.Ident, resolve resolveFunc) *errors.QueryError {
	t, ok := resolve(typeIdent.Name)
	if !ok {
		return errUnknownType(typeIdent.Name, typeIdent.Loc)
	}
	obj, isObj := t.(*Object)
	if !isObj {
		if schema.invalidRoots == nil {
			schema.invalidRoots = make(map[string]NamedType)
		}
		schema.invalidRoots[op] = t
		return nil
	}
	switch op {
	case "query":
		schema.Query = obj
	case "mutation":
		schema.Mutation = obj
	case "subscription":
		schema.Subscription = obj
	}
	return nil
}

var defaultRootNames = map[string]string{"query": "Query", "mutation": "Mutation", "subscription": "Subscription"}

func fallbackRoot(schema *Schema, op string, target **Object, resolve resolveFunc) {
	if *target != nil {
		return
	}
	if _, attempted := schema.invalidRoots[op]; attempted {
		return
	}
	t, ok := resolve(defaultRootNames[op])
	if !ok {
		return
	}
	if obj, ok := t.(*Object); ok {
		*target = obj
	}
}
