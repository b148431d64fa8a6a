package guard

import "strings"

// Route declares a navigable path and its capability requirements.
// RequiresAdmin implies RequiresAuth; the guard enforces this even when the
// auth flag is left unset on an admin route.
type Route struct {
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// DefaultRoutes is the storefront's navigation surface. The set of protected
// paths is fixed at build time.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/"},
		{Path: "/product/{code}"},
		{Path: "/cart"},
		{Path: "/checkout"},
		{Path: "/login"},

		{Path: "/admin", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/products", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/products/{id}", RequiresAuth: true, RequiresAdmin: true},
	}
}

// Table resolves a concrete navigation path to its route descriptor.
type Table struct {
	routes []Route
}

func NewTable(routes []Route) *Table {
	return &Table{routes: routes}
}

// Lookup returns the first declared route whose pattern matches path.
// Unknown paths resolve to a public descriptor, matching the storefront's
// default-open router.
func (t *Table) Lookup(path string) Route {
	segments := splitPath(path)
	for _, route := range t.routes {
		if matchSegments(splitPath(route.Path), segments) {
			return route
		}
	}
	return Route{Path: path}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, part := range pattern {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			continue
		}
		if part != segments[i] {
			return false
		}
	}
	return true
}
