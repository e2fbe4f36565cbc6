package lambda

import (
	"context"
	"testing"
)

func bodyHandler(body string) HandlerFunc {
	return func(ctx context.Context, req *Request) (*Response, error) {
		return &Response{Body: body}, nil
	}
}

func findBody(t *testing.T, table *RouteTable, path, method string) (string, bool) {
	t.Helper()
	h, ok := table.Find(path, method)
	if !ok {
		return "", false
	}
	resp, err := h(context.Background(), &Request{Path: path, Method: method})
	if err != nil {
		t.Fatalf("handler for %s %s failed: %v", method, path, err)
	}
	return resp.Body, true
}

func TestRouteTableFind(t *testing.T) {
	table := NewRouteTable()
	table.Set("/customers", "GET", bodyHandler("list"))
	table.Set("/customers", "POST", bodyHandler("create"))
	table.Set("", "GET", bodyHandler("empty"))

	tests := []struct {
		name   string
		path   string
		method string
		want   string
		found  bool
	}{
		{"ExactGet", "/customers", "GET", "list", true},
		{"ExactPost", "/customers", "POST", "create", true},
		{"UnregisteredMethod", "/customers", "DELETE", "", false},
		{"UnknownPath", "/products", "GET", "", false},
		{"TrailingSlashIsDistinct", "/customers/", "GET", "", false},
		{"EmptyPath", "", "GET", "empty", true},
		{"MethodIsCaseSensitive", "/customers", "get", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findBody(t, table, tt.path, tt.method)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.want {
				t.Errorf("Expected body %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRouteTableWildcard(t *testing.T) {
	table := NewRouteTable()
	table.Set("/x", "GET", bodyHandler("get"))
	table.Set("/x", AnyMethod, bodyHandler("any"))

	for _, method := range []string{"GET", "POST", "DELETE", ""} {
		got, ok := findBody(t, table, "/x", method)
		if !ok {
			t.Fatalf("Expected wildcard match for %q", method)
		}
		if got != "any" {
			t.Errorf("Expected wildcard handler for %q, got %q", method, got)
		}
	}

	t.Run("RegistrationOrderDoesNotMatter", func(t *testing.T) {
		table := NewRouteTable()
		table.Set("/y", AnyMethod, bodyHandler("any"))
		table.Set("/y", "GET", bodyHandler("get"))

		if got, _ := findBody(t, table, "/y", "GET"); got != "any" {
			t.Errorf("Expected wildcard handler, got %q", got)
		}
	})

	t.Run("WildcardDoesNotLeakToOtherPaths", func(t *testing.T) {
		if _, ok := table.Find("/z", "GET"); ok {
			t.Error("Expected no handler for /z")
		}
	})
}

func TestRouteTableLastWriteWins(t *testing.T) {
	table := NewRouteTable()
	table.Set("/", "GET", bodyHandler("first"))
	table.Set("/", "GET", bodyHandler("second"))

	if got, _ := findBody(t, table, "/", "GET"); got != "second" {
		t.Errorf("Expected replaced handler, got %q", got)
	}
	if table.Len() != 1 {
		t.Errorf("Expected 1 route, got %d", table.Len())
	}
}
