package lambda

// RouteTable maps an exact path to its per-method handlers.
// It is filled during initialization and only read while dispatching.
type RouteTable struct {
	routes map[string]map[string]HandlerFunc
}

// NewRouteTable creates an empty route table
func NewRouteTable() *RouteTable {
	return &RouteTable{
		routes: make(map[string]map[string]HandlerFunc),
	}
}

// Set registers handler for the path and method, replacing any previous one
func (t *RouteTable) Set(path, method string, handler HandlerFunc) {
	methods, ok := t.routes[path]
	if !ok {
		methods = make(map[string]HandlerFunc)
		t.routes[path] = methods
	}
	methods[method] = handler
}

// Find returns the handler for the path and method.
// A handler registered under AnyMethod wins over a method-specific one.
func (t *RouteTable) Find(path, method string) (HandlerFunc, bool) {
	methods, ok := t.routes[path]
	if !ok {
		return nil, false
	}

	if handler, ok := methods[AnyMethod]; ok {
		return handler, true
	}

	handler, ok := methods[method]
	return handler, ok
}

// Len returns the number of registered (path, method) pairs
func (t *RouteTable) Len() int {
	n := 0
	for _, methods := range t.routes {
		n += len(methods)
	}
	return n
}
