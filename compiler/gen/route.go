package gen

// NestedRoute is a sub-route listing the module's resources that belong
// to one related entity.
type NestedRoute struct {
	// Path is a TypeScript template literal body, e.g.
	// ${UserDescriptor.model.endpoint}/:userId/${CommentDescriptor.model.endpoint}.
	Path string
	// MethodName of the controller handler.
	MethodName string
	// RelationshipKey is the descriptor key of the relationship.
	RelationshipKey string
	// ParamName is the route parameter holding the related id.
	ParamName string
	// Relationship the route was derived from.
	Relationship *Relationship
}

// NestedRoutes derives one route per relationship without a context key,
// in declaration order.
func NestedRoutes(names *NamingPlan, rels []*Relationship) []*NestedRoute {
	var routes []*NestedRoute
	for _, r := range rels {
		if r.HasContextKey() {
			continue
		}
		param := camel(r.Name) + "Id"
		routes = append(routes, &NestedRoute{
			Path:            "${" + r.EndpointExpr() + "}/:" + param + "/${" + names.EndpointExpr + "}",
			MethodName:      "findBy" + r.PascalKey(),
			RelationshipKey: r.Key,
			ParamName:       param,
			Relationship:    r,
		})
	}
	return routes
}
