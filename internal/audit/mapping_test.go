package audit

import (
	"net/http"
	"testing"
)

func TestParseRoute(t *testing.T) {
	cases := []struct {
		method, route    string
		action, resource string
	}{
		{http.MethodGet, "/api/prospects", "list", "prospect"},
		{http.MethodGet, "/api/prospects/:id", "get", "prospect"},
		{http.MethodPost, "/api/prospects", "create", "prospect"},
		{http.MethodPatch, "/api/prospects/:id", "update", "prospect"},
		{http.MethodDelete, "/api/tasks/:id", "delete", "task"},
		{http.MethodPost, "/api/task-categories", "create", "task_category"},
		{http.MethodPost, "/api/settings/modules", "module_changed", "settings"},
		{http.MethodGet, "/api/settings/modules", "list", "module"},
		{http.MethodOptions, "/api/tasks", "options", "task"},
		{http.MethodGet, "/api", "unknown", "unknown"},
		{http.MethodGet, "", "unknown", "unknown"},
	}
	for _, c := range cases {
		ar := ParseRoute(c.method, c.route)
		if ar.Action != c.action || ar.Resource != c.resource {
			t.Errorf("ParseRoute(%s %s) = %+v, want %s/%s", c.method, c.route, ar, c.action, c.resource)
		}
	}
}

func TestSingular(t *testing.T) {
	for in, want := range map[string]string{
		"prospects":       "prospect",
		"task-categories": "task_category",
		"address":         "address",
		"health":          "health",
	} {
		if got := singular(in); got != want {
			t.Errorf("singular(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsMutation(t *testing.T) {
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		if !IsMutation(m) {
			t.Errorf("IsMutation(%s) = false", m)
		}
	}
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		if IsMutation(m) {
			t.Errorf("IsMutation(%s) = true", m)
		}
	}
}
